package advance

import (
	"context"
	"fmt"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/advance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
)

type AdvanceServiceImpl struct {
	transactor database.Transactor
	advance.AdvanceRepository
	transactionRepo finance.TransactionRepository
	employeeRepo    employee.EmployeeRepository
	recorder        audit.Recorder
}

func NewAdvanceService(
	transactor database.Transactor,
	advanceRepo advance.AdvanceRepository,
	transactionRepo finance.TransactionRepository,
	employeeRepo employee.EmployeeRepository,
	recorder audit.Recorder,
) advance.AdvanceService {
	return &AdvanceServiceImpl{
		transactor:        transactor,
		AdvanceRepository: advanceRepo,
		transactionRepo:   transactionRepo,
		employeeRepo:      employeeRepo,
		recorder:          recorder,
	}
}

// CreateAdvance implements advance.AdvanceService.
// The expense transaction and the advance are written in one database
// transaction; if either insert fails neither row survives.
func (s *AdvanceServiceImpl) CreateAdvance(ctx context.Context, req advance.CreateAdvanceRequest) (advance.Advance, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return advance.Advance{}, err
	}
	if err := req.Validate(); err != nil {
		return advance.Advance{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	var created advance.Advance
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		employeeID := emp.ID
		tx, err := s.transactionRepo.Create(ctx, finance.Transaction{
			Type:          finance.TransactionTypeExpense,
			Category:      finance.CategoryAdvance,
			Description:   fmt.Sprintf("Adiantamento - %s", emp.Name),
			Amount:        req.Amount,
			Date:          date,
			Status:        finance.TransactionStatusPaid,
			PaymentMethod: req.PaymentMethod,
			EmployeeID:    &employeeID,
			CreatedBy:     userID,
		})
		if err != nil {
			return fmt.Errorf("failed to create advance transaction: %w", err)
		}

		created, err = s.AdvanceRepository.Create(ctx, advance.Advance{
			EmployeeID:       emp.ID,
			Amount:           req.Amount,
			Date:             date,
			Note:             req.Note,
			PayrollReference: req.PayrollReference,
			PaymentMethod:    req.PaymentMethod,
			TransactionID:    &tx.ID,
			CreatedBy:        userID,
		})
		if err != nil {
			return fmt.Errorf("failed to create advance: %w", err)
		}

		if _, err := s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionCreate,
			EntityID: tx.ID,
			New:      tx,
			UserID:   userID,
		}); err != nil {
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
		return advance.Advance{}, err
	}

	return created, nil
}

// ListAdvances implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ListAdvances(ctx context.Context, employeeID string) ([]advance.Advance, error) {
	if _, err := actor.Require(ctx); err != nil {
		return nil, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.AdvanceRepository.ListByEmployee(ctx, employeeID)
}

// DeleteAdvance implements advance.AdvanceService. The linked transaction is removed with it.
func (s *AdvanceServiceImpl) DeleteAdvance(ctx context.Context, employeeID string, id string) error {
	userID, err := actor.Require(ctx)
	if err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.AdvanceRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if old.EmployeeID != employeeID {
			return advance.ErrAdvanceNotFound
		}

		if err := s.AdvanceRepository.Delete(ctx, id); err != nil {
			return err
		}
		if _, err := s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionDelete,
			EntityID: old.ID,
			Old:      old,
			UserID:   userID,
		}); err != nil {
			return err
		}

		if old.TransactionID == nil {
			return nil
		}
		tx, err := s.transactionRepo.GetByID(ctx, *old.TransactionID)
		if err != nil {
			return err
		}
		if err := s.transactionRepo.Delete(ctx, tx.ID); err != nil {
			return err
		}
		_, err = s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionDelete,
			EntityID: tx.ID,
			Old:      tx,
			UserID:   userID,
		})
		return err
	})
}
