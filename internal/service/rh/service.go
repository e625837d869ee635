package rh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/advance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/money"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RHServiceImpl struct {
	transactor database.Transactor
	rh.RHRepository
	employeeRepo employee.EmployeeRepository
	advanceRepo  advance.AdvanceRepository
	recorder     audit.Recorder
}

func NewRHService(
	transactor database.Transactor,
	rhRepo rh.RHRepository,
	employeeRepo employee.EmployeeRepository,
	advanceRepo advance.AdvanceRepository,
	recorder audit.Recorder,
) rh.RHService {
	return &RHServiceImpl{
		transactor:   transactor,
		RHRepository: rhRepo,
		employeeRepo: employeeRepo,
		advanceRepo:  advanceRepo,
		recorder:     recorder,
	}
}

// ========== PAYMENTS ==========

// CreatePayment implements rh.RHService.
func (s *RHServiceImpl) CreatePayment(ctx context.Context, req rh.CreatePaymentRequest) (rh.Payment, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return rh.Payment{}, err
	}
	if err := req.Validate(); err != nil {
		return rh.Payment{}, err
	}

	var created rh.Payment
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		base := money.FromCents(emp.SalaryCents)
		if req.SalarioBase != nil {
			base = *req.SalarioBase
		}

		advances := decimal.Zero
		if req.ValorAdiantamentos != nil {
			advances = *req.ValorAdiantamentos
		} else {
			advances, err = s.advanceRepo.SumByPayrollReference(ctx, req.EmployeeID, req.Competencia)
			if err != nil {
				return fmt.Errorf("failed to sum advances: %w", err)
			}
		}

		gross, net := PaymentTotals(base, req.Adicionais, req.ValorHorasExtras, req.Descontos, advances)

		payment := rh.Payment{
			EmployeeID:         req.EmployeeID,
			Competencia:        req.Competencia,
			SalarioBase:        base,
			Adicionais:         req.Adicionais,
			HorasExtras:        req.HorasExtras,
			ValorHorasExtras:   req.ValorHorasExtras,
			Descontos:          req.Descontos,
			ValorAdiantamentos: advances,
			TotalBruto:         gross,
			TotalLiquido:       net,
			Status:             rh.PaymentStatusPendente,
			DataPagamento:      parseOptionalDate(req.DataPagamento),
			Observacoes:        req.Observacoes,
		}
		if req.Status != nil {
			payment.Status = rh.PaymentStatus(*req.Status)
		}

		created, err = s.RHRepository.CreatePayment(ctx, payment)
		if err != nil {
			return err
		}

		_, err = s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionCreate,
			EntityID: created.ID,
			New:      created,
			UserID:   userID,
		})
		return err
	})
	if err != nil {
		return rh.Payment{}, err
	}

	return created, nil
}

func (s *RHServiceImpl) ListPayments(ctx context.Context, filter rh.PaymentFilter) ([]rh.Payment, error) {
	if _, err := actor.Require(ctx); err != nil {
		return nil, err
	}
	if filter.Competencia != nil && !validator.IsValidCompetencia(*filter.Competencia) {
		return nil, validator.ValidationErrors{{Field: "competencia", Message: "must be in YYYY-MM format"}}
	}
	return s.RHRepository.ListPayments(ctx, filter)
}

// ========== THIRTEENTH SALARY ==========

// CreateThirteenth implements rh.RHService.
func (s *RHServiceImpl) CreateThirteenth(ctx context.Context, req rh.CreateThirteenthRequest) (rh.ThirteenthSalary, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return rh.ThirteenthSalary{}, err
	}
	if err := req.Validate(); err != nil {
		return rh.ThirteenthSalary{}, err
	}

	var created rh.ThirteenthSalary
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		created, err = s.RHRepository.CreateThirteenth(ctx, rh.ThirteenthSalary{
			EmployeeID:       req.EmployeeID,
			AnoReferencia:    req.AnoReferencia,
			MesesTrabalhados: req.MesesTrabalhados,
			ValorTotal:       ThirteenthValue(emp.SalaryCents, req.MesesTrabalhados),
		})
		if err != nil {
			return err
		}

		_, err = s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionCreate,
			EntityID: created.ID,
			New:      created,
			UserID:   userID,
		})
		return err
	})
	if err != nil {
		return rh.ThirteenthSalary{}, err
	}

	return created, nil
}

func (s *RHServiceImpl) ListThirteenth(ctx context.Context, filter rh.ThirteenthFilter) ([]rh.ThirteenthSalary, error) {
	if _, err := actor.Require(ctx); err != nil {
		return nil, err
	}
	return s.RHRepository.ListThirteenth(ctx, filter)
}

// ========== TIME BANK ==========

// ApplyTimeBank implements rh.RHService.
// The employee row is locked before the balance is read, so concurrent
// requests for the same employee are serialized even when no time bank
// row exists yet.
func (s *RHServiceImpl) ApplyTimeBank(ctx context.Context, req rh.TimeBankRequest) (rh.TimeBank, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return rh.TimeBank{}, err
	}
	if err := req.Validate(); err != nil {
		return rh.TimeBank{}, err
	}
	credit, debit := req.Deltas()

	var saved rh.TimeBank
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByIDForUpdate(ctx, req.EmployeeID); err != nil {
			return err
		}

		var existing *rh.TimeBank
		current, err := s.RHRepository.GetTimeBankForUpdate(ctx, req.EmployeeID)
		switch {
		case err == nil:
			existing = &current
		case errors.Is(err, rh.ErrTimeBankNotFound):
		default:
			return fmt.Errorf("failed to load time bank: %w", err)
		}

		totals := TimeBankBalance(existing, credit, debit)
		next := rh.TimeBank{
			EmployeeID:   req.EmployeeID,
			SaldoHoras:   totals.Balance,
			TotalCredito: totals.TotalCredit,
			TotalDebito:  totals.TotalDebit,
		}
		if existing != nil {
			next.ID = existing.ID
			next.CreatedAt = existing.CreatedAt
		}

		saved, err = s.RHRepository.UpsertTimeBank(ctx, next)
		if err != nil {
			return err
		}

		entry := audit.Entry{
			Action:   audit.ActionCreate,
			EntityID: saved.ID,
			New:      saved,
			UserID:   userID,
		}
		if existing != nil {
			entry.Action = audit.ActionUpdate
			entry.Old = *existing
		}
		_, err = s.recorder.Record(ctx, entry)
		return err
	})
	if err != nil {
		return rh.TimeBank{}, err
	}

	return saved, nil
}

func (s *RHServiceImpl) GetTimeBank(ctx context.Context, employeeID string) (rh.TimeBank, error) {
	if _, err := actor.Require(ctx); err != nil {
		return rh.TimeBank{}, err
	}
	return s.RHRepository.GetTimeBank(ctx, employeeID)
}

// ========== SALARY HISTORY ==========

func (s *RHServiceImpl) CreateSalaryHistory(ctx context.Context, req rh.CreateSalaryHistoryRequest) (rh.SalaryHistory, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return rh.SalaryHistory{}, err
	}
	if err := req.Validate(); err != nil {
		return rh.SalaryHistory{}, err
	}

	var created rh.SalaryHistory
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		created, err = s.RHRepository.CreateSalaryHistory(ctx, rh.SalaryHistory{
			EmployeeID:        req.EmployeeID,
			SalarioAnterior:   req.SalarioAnterior,
			NovoSalario:       req.NovoSalario,
			PercentualAumento: SalaryRaisePercent(req.SalarioAnterior, req.NovoSalario),
			Motivo:            req.Motivo,
			DataVigencia:      parseDate(req.DataVigencia),
		})
		if err != nil {
			return err
		}

		_, err = s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionCreate,
			EntityID: created.ID,
			New:      created,
			UserID:   userID,
		})
		return err
	})
	if err != nil {
		return rh.SalaryHistory{}, err
	}

	return created, nil
}

func (s *RHServiceImpl) ListSalaryHistory(ctx context.Context, employeeID *string) ([]rh.SalaryHistory, error) {
	if _, err := actor.Require(ctx); err != nil {
		return nil, err
	}
	return s.RHRepository.ListSalaryHistory(ctx, employeeID)
}

// ========== VACATIONS ==========

func (s *RHServiceImpl) CreateVacation(ctx context.Context, req rh.CreateVacationRequest) (rh.Vacation, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return rh.Vacation{}, err
	}
	if err := req.Validate(); err != nil {
		return rh.Vacation{}, err
	}

	var created rh.Vacation
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		vacation := rh.Vacation{
			EmployeeID:              req.EmployeeID,
			PeriodoAquisitivoInicio: parseDate(req.PeriodoAquisitivoInicio),
			PeriodoAquisitivoFim:    parseDate(req.PeriodoAquisitivoFim),
			DataInicio:              parseOptionalDate(req.DataInicio),
			DataFim:                 parseOptionalDate(req.DataFim),
			DiasDireito:             req.DiasDireito,
			DiasUtilizados:          req.DiasUtilizados,
			ValorFerias:             req.ValorFerias,
			AdicionalUmTerco:        VacationOneThird(req.ValorFerias),
			Status:                  rh.VacationStatusProgramada,
			Observacoes:             req.Observacoes,
		}
		if req.Status != nil {
			vacation.Status = rh.VacationStatus(*req.Status)
		}

		created, err = s.RHRepository.CreateVacation(ctx, vacation)
		if err != nil {
			return err
		}

		_, err = s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionCreate,
			EntityID: created.ID,
			New:      created,
			UserID:   userID,
		})
		return err
	})
	if err != nil {
		return rh.Vacation{}, err
	}

	return created, nil
}

func (s *RHServiceImpl) ListVacations(ctx context.Context, employeeID *string) ([]rh.Vacation, error) {
	if _, err := actor.Require(ctx); err != nil {
		return nil, err
	}
	return s.RHRepository.ListVacations(ctx, employeeID)
}

func parseDate(s string) time.Time {
	d, _ := validator.IsValidDate(s)
	return d
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	d := parseDate(*s)
	return &d
}
