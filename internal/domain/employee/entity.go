package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	FullName      string
	Department    string
	Role          Role
	HireDate      time.Time
	MonthlySalary decimal.Decimal
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleApprover Role = "approver"
	RoleAdmin    Role = "admin"
)

// CanApprove reports whether the role may move requests through the
// approval lifecycle (approve, reject, interrupt).
func (r Role) CanApprove() bool {
	return r == RoleApprover || r == RoleAdmin
}
