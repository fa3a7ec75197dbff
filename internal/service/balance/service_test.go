package balance

import (
	"context"
	"strconv"
	"testing"

	"github.com/absenta-hr/leave-backend-go/internal/domain/balance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passTx struct{}

func (passTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBalanceRepo struct {
	balances map[string]*balance.LeaveBalance
	creates  int
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]*balance.LeaveBalance)}
}

func key(employeeID string, year int) string {
	return employeeID + "|" + strconv.Itoa(year)
}

func (r *fakeBalanceRepo) Create(_ context.Context, b balance.LeaveBalance) (balance.LeaveBalance, error) {
	r.creates++
	stored := b
	r.balances[key(b.EmployeeID, b.Year)] = &stored
	return stored, nil
}

func (r *fakeBalanceRepo) GetByEmployeeYear(_ context.Context, employeeID string, year int) (balance.LeaveBalance, error) {
	b, ok := r.balances[key(employeeID, year)]
	if !ok {
		return balance.LeaveBalance{}, balance.ErrBalanceNotFound
	}
	return *b, nil
}

func (r *fakeBalanceRepo) GetForUpdate(ctx context.Context, employeeID string, year int) (balance.LeaveBalance, error) {
	return r.GetByEmployeeYear(ctx, employeeID, year)
}

func (r *fakeBalanceRepo) SetUsedDays(_ context.Context, id string, usedDays int) error {
	for _, b := range r.balances {
		if b.ID == id {
			b.UsedDays = usedDays
			return nil
		}
	}
	return balance.ErrBalanceNotFound
}

func (r *fakeBalanceRepo) ListEmployeeIDsWithBalance(_ context.Context, year int) ([]string, error) {
	var ids []string
	for _, b := range r.balances {
		if b.Year == year {
			ids = append(ids, b.EmployeeID)
		}
	}
	return ids, nil
}

func TestEnsureBalance_OpensPeriodOnce(t *testing.T) {
	repo := newFakeBalanceRepo()
	ledger := NewLedger(passTx{}, repo, 30)

	b, err := ledger.EnsureBalance(context.Background(), "emp-1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 30, b.TotalDays)
	assert.Equal(t, 0, b.UsedDays)
	assert.Equal(t, 1, repo.creates)

	// Second touch reuses the existing period.
	_, err = ledger.EnsureBalance(context.Background(), "emp-1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)

	// A different year opens its own period.
	_, err = ledger.EnsureBalance(context.Background(), "emp-1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.creates)
}

func TestDebitAndAvailable(t *testing.T) {
	ledger := NewLedger(passTx{}, newFakeBalanceRepo(), 30)

	b, err := ledger.Debit(context.Background(), "emp-1", 2024, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, b.UsedDays)

	available, err := ledger.Available(context.Background(), "emp-1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 18, available)
}

func TestDebit_InsufficientLeavesBalanceUntouched(t *testing.T) {
	ledger := NewLedger(passTx{}, newFakeBalanceRepo(), 30)

	_, err := ledger.Debit(context.Background(), "emp-1", 2024, 31)
	assert.ErrorIs(t, err, balance.ErrInsufficientBalance)

	available, err := ledger.Available(context.Background(), "emp-1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 30, available)
}

func TestCredit_RefundAndClamp(t *testing.T) {
	ledger := NewLedger(passTx{}, newFakeBalanceRepo(), 30)

	_, err := ledger.Debit(context.Background(), "emp-1", 2024, 10)
	require.NoError(t, err)

	b, err := ledger.Credit(context.Background(), "emp-1", 2024, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, b.UsedDays)

	// Over-refund floors at zero instead of failing.
	b, err = ledger.Credit(context.Background(), "emp-1", 2024, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, b.UsedDays)
	assert.Equal(t, 30, b.AvailableDays())
}
