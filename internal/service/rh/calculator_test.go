package rh

import (
	"testing"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestThirteenthValue(t *testing.T) {
	t.Run("full year equals monthly salary", func(t *testing.T) {
		for _, cents := range []int64{0, 1, 99, 123456, 350000, 1000001} {
			got := ThirteenthValue(cents, 12)
			assert.True(t, got.Equal(decimal.New(cents, -2)), "cents=%d got=%s", cents, got)
		}
	})

	t.Run("monotonic in months", func(t *testing.T) {
		for _, cents := range []int64{0, 1, 7, 250000, 333333} {
			prev := ThirteenthValue(cents, 0)
			assert.True(t, prev.IsZero())
			for m := 1; m <= 12; m++ {
				cur := ThirteenthValue(cents, m)
				assert.True(t, cur.GreaterThanOrEqual(prev), "cents=%d months=%d", cents, m)
				prev = cur
			}
		}
	})

	t.Run("prorated", func(t *testing.T) {
		assert.Equal(t, "1500", ThirteenthValue(360000, 5).String())
		assert.Equal(t, "833.33", ThirteenthValue(200000, 5).String())
	})
}

func TestTimeBankBalance(t *testing.T) {
	first := TimeBankBalance(nil, dec("10"), decimal.Zero)
	assert.True(t, first.Balance.Equal(dec("10")))

	existing := &rh.TimeBank{
		SaldoHoras:   first.Balance,
		TotalCredito: first.TotalCredit,
		TotalDebito:  first.TotalDebit,
	}
	second := TimeBankBalance(existing, decimal.Zero, dec("4"))

	assert.True(t, second.Balance.Equal(dec("6")), second.Balance.String())
	assert.True(t, second.TotalCredit.Equal(dec("10")))
	assert.True(t, second.TotalDebit.Equal(dec("4")))
}

func TestTimeBankBalance_SumOfDeltas(t *testing.T) {
	deltas := [][2]string{{"1.5", "0"}, {"0", "3"}, {"8", "2.25"}, {"0", "0"}, {"4", "10"}}

	var tb *rh.TimeBank
	credits, debits := decimal.Zero, decimal.Zero
	for _, d := range deltas {
		c, db := dec(d[0]), dec(d[1])
		totals := TimeBankBalance(tb, c, db)
		tb = &rh.TimeBank{SaldoHoras: totals.Balance, TotalCredito: totals.TotalCredit, TotalDebito: totals.TotalDebit}
		credits = credits.Add(c)
		debits = debits.Add(db)
	}

	require.NotNil(t, tb)
	assert.True(t, tb.SaldoHoras.Equal(credits.Sub(debits)))
	assert.True(t, tb.TotalCredito.Equal(credits))
	assert.True(t, tb.TotalDebito.Equal(debits))
}

func TestSalaryRaisePercent(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		next     string
		want     string
	}{
		{"ten percent", "1000", "1100", "10"},
		{"zero previous", "0", "500", "0"},
		{"negative previous", "-10", "500", "0"},
		{"decrease", "2000", "1500", "-25"},
		{"rounded", "3000", "3100", "3.33"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SalaryRaisePercent(dec(tt.previous), dec(tt.next))
			assert.True(t, got.Equal(dec(tt.want)), "got %s", got)
		})
	}
}

func TestPaymentTotals(t *testing.T) {
	gross, net := PaymentTotals(dec("3000"), dec("200"), dec("150.50"), dec("300"), dec("500"))
	assert.True(t, gross.Equal(dec("3350.50")))
	assert.True(t, net.Equal(dec("2550.50")))
}

func TestVacationOneThird(t *testing.T) {
	v := dec("900")
	got := VacationOneThird(&v)
	require.NotNil(t, got)
	assert.True(t, got.Equal(dec("300")))

	assert.Nil(t, VacationOneThird(nil))
}
