package rh

import (
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MaxMesesTrabalhados bounds the months used for thirteenth-salary proration.
const MaxMesesTrabalhados = 12

// ========== PAYMENT DTOs ==========

// CreatePaymentRequest: when SalarioBase is absent the employee's current
// salary is used; when ValorAdiantamentos is absent the advances registered
// for the competencia are summed.
type CreatePaymentRequest struct {
	EmployeeID         string           `json:"employeeId" validate:"required,uuid"`
	Competencia        string           `json:"competencia" validate:"required,competencia"`
	SalarioBase        *decimal.Decimal `json:"salarioBase,omitempty"`
	Adicionais         decimal.Decimal  `json:"adicionais"`
	HorasExtras        decimal.Decimal  `json:"horasExtras"`
	ValorHorasExtras   decimal.Decimal  `json:"valorHorasExtras"`
	Descontos          decimal.Decimal  `json:"descontos"`
	ValorAdiantamentos *decimal.Decimal `json:"valorAdiantamentos,omitempty"`
	Status             *string          `json:"status,omitempty" validate:"omitempty,oneof=pendente pago"`
	DataPagamento      *string          `json:"dataPagamento,omitempty" validate:"omitempty,date"`
	Observacoes        *string          `json:"observacoes,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	errs := validator.Struct(r)
	nonNegative := map[string]decimal.Decimal{
		"adicionais":       r.Adicionais,
		"horasExtras":      r.HorasExtras,
		"valorHorasExtras": r.ValorHorasExtras,
		"descontos":        r.Descontos,
	}
	if r.SalarioBase != nil {
		nonNegative["salarioBase"] = *r.SalarioBase
	}
	if r.ValorAdiantamentos != nil {
		nonNegative["valorAdiantamentos"] = *r.ValorAdiantamentos
	}
	for field, v := range nonNegative {
		if v.IsNegative() {
			errs.Add(field, "must be non-negative")
		}
	}
	return errs.Err()
}

type PaymentFilter struct {
	EmployeeID  *string
	Competencia *string
}

// ========== THIRTEENTH DTOs ==========

type CreateThirteenthRequest struct {
	EmployeeID       string `json:"employeeId" validate:"required,uuid"`
	AnoReferencia    int    `json:"anoReferencia" validate:"required,gte=1900,lte=2200"`
	MesesTrabalhados int    `json:"mesesTrabalhados" validate:"gte=0,lte=12"`
}

func (r *CreateThirteenthRequest) Validate() error {
	return validator.Struct(r).Err()
}

type ThirteenthFilter struct {
	EmployeeID    *string
	AnoReferencia *int
}

// ========== TIME BANK DTOs ==========

type TimeBankRequest struct {
	EmployeeID   string           `json:"employeeId" validate:"required,uuid"`
	HorasCredito *decimal.Decimal `json:"horasCredito,omitempty"`
	HorasDebito  *decimal.Decimal `json:"horasDebito,omitempty"`
}

func (r *TimeBankRequest) Validate() error {
	errs := validator.Struct(r)
	if r.HorasCredito != nil && r.HorasCredito.IsNegative() {
		errs.Add("horasCredito", "must be non-negative")
	}
	if r.HorasDebito != nil && r.HorasDebito.IsNegative() {
		errs.Add("horasDebito", "must be non-negative")
	}
	return errs.Err()
}

// Deltas returns the credit and debit with absent values as zero.
func (r *TimeBankRequest) Deltas() (credit, debit decimal.Decimal) {
	if r.HorasCredito != nil {
		credit = *r.HorasCredito
	}
	if r.HorasDebito != nil {
		debit = *r.HorasDebito
	}
	return credit, debit
}

// ========== SALARY HISTORY DTOs ==========

type CreateSalaryHistoryRequest struct {
	EmployeeID      string          `json:"employeeId" validate:"required,uuid"`
	SalarioAnterior decimal.Decimal `json:"salarioAnterior"`
	NovoSalario     decimal.Decimal `json:"novoSalario"`
	Motivo          *string         `json:"motivo,omitempty" validate:"omitempty,max=255"`
	DataVigencia    string          `json:"dataVigencia" validate:"required,date"`
}

func (r *CreateSalaryHistoryRequest) Validate() error {
	errs := validator.Struct(r)
	if r.SalarioAnterior.IsNegative() {
		errs.Add("salarioAnterior", "must be non-negative")
	}
	if r.NovoSalario.IsNegative() {
		errs.Add("novoSalario", "must be non-negative")
	}
	return errs.Err()
}

// ========== VACATION DTOs ==========

type CreateVacationRequest struct {
	EmployeeID              string           `json:"employeeId" validate:"required,uuid"`
	PeriodoAquisitivoInicio string           `json:"periodoAquisitivoInicio" validate:"required,date"`
	PeriodoAquisitivoFim    string           `json:"periodoAquisitivoFim" validate:"required,date"`
	DataInicio              *string          `json:"dataInicio,omitempty" validate:"omitempty,date"`
	DataFim                 *string          `json:"dataFim,omitempty" validate:"omitempty,date"`
	DiasDireito             int              `json:"diasDireito" validate:"gte=0,lte=30"`
	DiasUtilizados          int              `json:"diasUtilizados" validate:"gte=0"`
	ValorFerias             *decimal.Decimal `json:"valorFerias,omitempty"`
	Status                  *string          `json:"status,omitempty" validate:"omitempty,oneof=programada em_andamento concluida"`
	Observacoes             *string          `json:"observacoes,omitempty"`
}

func (r *CreateVacationRequest) Validate() error {
	errs := validator.Struct(r)

	inicio, okInicio := validator.IsValidDate(r.PeriodoAquisitivoInicio)
	fim, okFim := validator.IsValidDate(r.PeriodoAquisitivoFim)
	if okInicio && okFim && !fim.After(inicio) {
		errs.Add("periodoAquisitivoFim", "must be after periodoAquisitivoInicio")
	}
	if r.DataInicio != nil && r.DataFim != nil {
		di, ok1 := validator.IsValidDate(*r.DataInicio)
		df, ok2 := validator.IsValidDate(*r.DataFim)
		if ok1 && ok2 && df.Before(di) {
			errs.Add("dataFim", "must not be before dataInicio")
		}
	}
	if r.DiasUtilizados > r.DiasDireito {
		errs.Add("diasUtilizados", "must not exceed diasDireito")
	}
	if r.ValorFerias != nil && r.ValorFerias.IsNegative() {
		errs.Add("valorFerias", "must be non-negative")
	}
	return errs.Err()
}
