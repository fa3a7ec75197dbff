package sellback

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// SellBackRequest converts unused leave days into a payout claim. It never
// consumes a calendar range and never mutates the balance ledger itself;
// the payout side effect lives outside this engine.
type SellBackRequest struct {
	ID              string
	EmployeeID      string
	DaysToSell      int
	Reason          *string
	Status          Status
	EstimatedAmount decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time

	EmployeeName *string
}

// EstimatePayout prices the claim from the employee's monthly salary: one
// thirtieth of the monthly salary per day sold, rounded to cents.
func EstimatePayout(monthlySalary decimal.Decimal, days int) decimal.Decimal {
	dailyRate := monthlySalary.Div(decimal.NewFromInt(30))
	return dailyRate.Mul(decimal.NewFromInt(int64(days))).Round(2)
}
