package sellback

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEstimatePayout(t *testing.T) {
	salary := decimal.NewFromInt(3000)

	// 3000 / 30 = 100 per day.
	assert.True(t, EstimatePayout(salary, 1).Equal(decimal.NewFromInt(100)))
	assert.True(t, EstimatePayout(salary, 5).Equal(decimal.NewFromInt(500)))
	assert.True(t, EstimatePayout(salary, 30).Equal(decimal.NewFromInt(3000)))
}

func TestEstimatePayout_RoundsToCents(t *testing.T) {
	salary := decimal.NewFromInt(1000)

	// 1000 / 30 = 33.333... per day, 3 days = 100.00 after rounding.
	got := EstimatePayout(salary, 3)
	assert.Equal(t, "100.00", got.StringFixed(2))

	got = EstimatePayout(salary, 1)
	assert.Equal(t, "33.33", got.StringFixed(2))
}
