package sellback

import "errors"

var (
	ErrSellBackNotFound     = errors.New("sell-back request not found")
	ErrAlreadyProcessed     = errors.New("sell-back request already processed")
	ErrDaysOutOfRange       = errors.New("days_to_sell must be between 1 and 30")
	ErrExceedsAvailableDays = errors.New("days_to_sell exceeds available balance")
)
