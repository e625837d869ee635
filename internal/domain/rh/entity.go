package rh

import (
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusPago     PaymentStatus = "pago"
)

// Payment is a monthly payroll entry. Totals are computed at creation time.
type Payment struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employeeId"`
	Competencia        string          `json:"competencia"`
	SalarioBase        decimal.Decimal `json:"salarioBase"`
	Adicionais         decimal.Decimal `json:"adicionais"`
	HorasExtras        decimal.Decimal `json:"horasExtras"`
	ValorHorasExtras   decimal.Decimal `json:"valorHorasExtras"`
	Descontos          decimal.Decimal `json:"descontos"`
	ValorAdiantamentos decimal.Decimal `json:"valorAdiantamentos"`
	TotalBruto         decimal.Decimal `json:"totalBruto"`
	TotalLiquido       decimal.Decimal `json:"totalLiquido"`
	Status             PaymentStatus   `json:"status"`
	DataPagamento      *time.Time      `json:"dataPagamento,omitempty"`
	Observacoes        *string         `json:"observacoes,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

func (Payment) AuditEntity() audit.Entity { return audit.EntityRHPayment }

type ThirteenthSalary struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employeeId"`
	AnoReferencia    int             `json:"anoReferencia"`
	MesesTrabalhados int             `json:"mesesTrabalhados"`
	ValorTotal       decimal.Decimal `json:"valorTotal"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func (ThirteenthSalary) AuditEntity() audit.Entity { return audit.EntityThirteenthSalary }

// TimeBank is the single running hour balance of an employee.
type TimeBank struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	SaldoHoras   decimal.Decimal `json:"saldoHoras"`
	TotalCredito decimal.Decimal `json:"totalCredito"`
	TotalDebito  decimal.Decimal `json:"totalDebito"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (TimeBank) AuditEntity() audit.Entity { return audit.EntityTimeBank }

type SalaryHistory struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employeeId"`
	SalarioAnterior   decimal.Decimal `json:"salarioAnterior"`
	NovoSalario       decimal.Decimal `json:"novoSalario"`
	PercentualAumento decimal.Decimal `json:"percentualAumento"`
	Motivo            *string         `json:"motivo,omitempty"`
	DataVigencia      time.Time       `json:"dataVigencia"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func (SalaryHistory) AuditEntity() audit.Entity { return audit.EntitySalaryHistory }

type VacationStatus string

const (
	VacationStatusProgramada  VacationStatus = "programada"
	VacationStatusEmAndamento VacationStatus = "em_andamento"
	VacationStatusConcluida   VacationStatus = "concluida"
)

type Vacation struct {
	ID                      string           `json:"id"`
	EmployeeID              string           `json:"employeeId"`
	PeriodoAquisitivoInicio time.Time        `json:"periodoAquisitivoInicio"`
	PeriodoAquisitivoFim    time.Time        `json:"periodoAquisitivoFim"`
	DataInicio              *time.Time       `json:"dataInicio,omitempty"`
	DataFim                 *time.Time       `json:"dataFim,omitempty"`
	DiasDireito             int              `json:"diasDireito"`
	DiasUtilizados          int              `json:"diasUtilizados"`
	ValorFerias             *decimal.Decimal `json:"valorFerias"`
	AdicionalUmTerco        *decimal.Decimal `json:"adicionalUmTerco"`
	Status                  VacationStatus   `json:"status"`
	Observacoes             *string          `json:"observacoes,omitempty"`
	CreatedAt               time.Time        `json:"createdAt"`
}

func (Vacation) AuditEntity() audit.Entity { return audit.EntityVacation }
