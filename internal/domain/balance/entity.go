package balance

import "time"

// LeaveBalance is the per-employee, per-accrual-period ledger row.
// used/available day counts are only ever changed through Debit and Credit;
// call sites never assign the fields directly.
type LeaveBalance struct {
	ID         string
	EmployeeID string
	Year       int
	TotalDays  int
	UsedDays   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AvailableDays is the derived projection total - used. The ledger keeps
// 0 <= UsedDays <= TotalDays, so this is never negative.
func (b *LeaveBalance) AvailableDays() int {
	return b.TotalDays - b.UsedDays
}

// Debit consumes days from the balance. Fails without mutating anything
// when the requested amount exceeds what is available.
func (b *LeaveBalance) Debit(days int) error {
	if days < 0 {
		return ErrNegativeAmount
	}
	if days > b.AvailableDays() {
		return ErrInsufficientBalance
	}
	b.UsedDays += days
	return nil
}

// Credit returns days to the balance, flooring used days at zero. The
// returned flag reports whether the floor actually clamped: a true value
// means an upstream invariant was already violated (double refund) and the
// caller should log it.
func (b *LeaveBalance) Credit(days int) (clamped bool, err error) {
	if days < 0 {
		return false, ErrNegativeAmount
	}
	b.UsedDays -= days
	if b.UsedDays < 0 {
		b.UsedDays = 0
		clamped = true
	}
	return clamped, nil
}
