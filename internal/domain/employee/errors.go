package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrApproverRoleRequired  = errors.New("approver role required")
	ErrAdminRoleRequired     = errors.New("admin role required")
	ErrEmployeeInactive      = errors.New("employee is inactive")
	ErrUnauthorizedViewScope = errors.New("unauthorized to view this employee")
)
