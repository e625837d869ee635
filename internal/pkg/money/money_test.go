package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromCents(t *testing.T) {
	assert.True(t, FromCents(123456).Equal(decimal.RequireFromString("1234.56")))
	assert.True(t, FromCents(0).IsZero())
	assert.True(t, FromCents(-5).Equal(decimal.RequireFromString("-0.05")))
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(123456), ToCents(decimal.RequireFromString("1234.56")))
	assert.Equal(t, int64(101), ToCents(decimal.RequireFromString("1.005")))
	assert.Equal(t, int64(250000), ToCents(FromCents(250000)))
}
