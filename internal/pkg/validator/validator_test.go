package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("123"))
	assert.True(t, IsNumeric("0"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a"))
	assert.False(t, IsNumeric("-5"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0188e8b7-1a2b-7c3d-8e4f-5a6b7c8d9e0f"))
	assert.True(t, IsValidUUID("9b2d64de-3a0c-4b9f-9d6a-0b9e5e2d4c1a"))
	assert.True(t, IsValidUUID("9B2D64DE-3A0C-4B9F-9D6A-0B9E5E2D4C1A"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("9b2d64de3a0c4b9f9d6a0b9e5e2d4c1a"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-06-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), date)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("01-06-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))
}

func TestIsValidYear(t *testing.T) {
	assert.True(t, IsValidYear(2024))
	assert.True(t, IsValidYear(1970))
	assert.False(t, IsValidYear(1969))
	assert.False(t, IsValidYear(10000))
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("b", []string{"a", "b", "c"}))
	assert.False(t, IsInSlice("d", []string{"a", "b", "c"}))
	assert.False(t, IsInSlice("a", nil))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "type", Message: "unknown leave type"},
	}

	assert.Equal(t, "start_date: start_date is required; type: unknown leave type", errs.Error())
	assert.Equal(t, map[string]string{
		"start_date": "start_date is required",
		"type":       "unknown leave type",
	}, errs.ToMap())
}
