package rh

import (
	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	three   = decimal.NewFromInt(3)
)

// ThirteenthValue prorates the monthly salary by the months worked:
// salary/12 * months. Exact to the cent for 12 months.
func ThirteenthValue(baseSalaryCents int64, monthsWorked int) decimal.Decimal {
	return decimal.NewFromInt(baseSalaryCents).
		Mul(decimal.NewFromInt(int64(monthsWorked))).
		Div(decimal.NewFromInt(1200)).
		Round(2)
}

type TimeBankTotals struct {
	Balance     decimal.Decimal
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal
}

// TimeBankBalance applies credit and debit on top of the existing balance.
// A nil existing record starts from zero.
func TimeBankBalance(existing *rh.TimeBank, credit, debit decimal.Decimal) TimeBankTotals {
	if existing == nil {
		return TimeBankTotals{
			Balance:     credit.Sub(debit),
			TotalCredit: credit,
			TotalDebit:  debit,
		}
	}
	return TimeBankTotals{
		Balance:     existing.SaldoHoras.Add(credit).Sub(debit),
		TotalCredit: existing.TotalCredito.Add(credit),
		TotalDebit:  existing.TotalDebito.Add(debit),
	}
}

// SalaryRaisePercent returns 0 when previous is not positive.
func SalaryRaisePercent(previous, next decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}
	return next.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

func PaymentTotals(base, additions, overtimeValue, deductions, advances decimal.Decimal) (gross, net decimal.Decimal) {
	gross = base.Add(additions).Add(overtimeValue)
	net = gross.Sub(deductions).Sub(advances)
	return gross, net
}

// VacationOneThird is absent when no vacation value was given.
func VacationOneThird(vacationValue *decimal.Decimal) *decimal.Decimal {
	if vacationValue == nil {
		return nil
	}
	v := vacationValue.Div(three).Round(2)
	return &v
}
