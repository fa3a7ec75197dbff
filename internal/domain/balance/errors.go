package balance

import "errors"

var (
	ErrBalanceNotFound     = errors.New("leave balance not found")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrNegativeAmount      = errors.New("day amount must not be negative")
)
