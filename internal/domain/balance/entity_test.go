package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveBalance_Debit(t *testing.T) {
	b := LeaveBalance{TotalDays: 30, UsedDays: 10}

	require.NoError(t, b.Debit(5))
	assert.Equal(t, 15, b.UsedDays)
	assert.Equal(t, 15, b.AvailableDays())
}

func TestLeaveBalance_DebitInsufficient(t *testing.T) {
	b := LeaveBalance{TotalDays: 30, UsedDays: 25}

	err := b.Debit(6)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 25, b.UsedDays, "failed debit must not mutate")
}

func TestLeaveBalance_DebitExactlyAvailable(t *testing.T) {
	b := LeaveBalance{TotalDays: 30, UsedDays: 25}

	require.NoError(t, b.Debit(5))
	assert.Equal(t, 30, b.UsedDays)
	assert.Equal(t, 0, b.AvailableDays())
}

func TestLeaveBalance_DebitNegative(t *testing.T) {
	b := LeaveBalance{TotalDays: 30, UsedDays: 0}

	err := b.Debit(-1)
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestLeaveBalance_Credit(t *testing.T) {
	b := LeaveBalance{TotalDays: 30, UsedDays: 10}

	clamped, err := b.Credit(4)
	require.NoError(t, err)
	assert.False(t, clamped)
	assert.Equal(t, 6, b.UsedDays)
}

func TestLeaveBalance_CreditClampsAtZero(t *testing.T) {
	b := LeaveBalance{TotalDays: 30, UsedDays: 3}

	clamped, err := b.Credit(10)
	require.NoError(t, err)
	assert.True(t, clamped)
	assert.Equal(t, 0, b.UsedDays)
	assert.Equal(t, 30, b.AvailableDays())
}

func TestLeaveBalance_CreditNegative(t *testing.T) {
	b := LeaveBalance{TotalDays: 30, UsedDays: 3}

	_, err := b.Credit(-2)
	assert.ErrorIs(t, err, ErrNegativeAmount)
	assert.Equal(t, 3, b.UsedDays)
}
