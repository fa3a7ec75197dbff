package request

import "errors"

var (
	ErrRequestNotFound        = errors.New("leave request not found")
	ErrInvalidStateTransition = errors.New("invalid leave request state transition")
	ErrLeaveAlreadyStarted    = errors.New("leave has already started")
	ErrNotInProgress          = errors.New("leave is not in progress")
	ErrNotRequestOwner        = errors.New("leave request belongs to another employee")
)
