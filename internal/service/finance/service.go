package finance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
)

type FinanceServiceImpl struct {
	transactor  database.Transactor
	txRepo      finance.TransactionRepository
	payableRepo finance.AccountPayableRepository
	recorder    audit.Recorder
	now         func() time.Time
}

func NewFinanceService(
	transactor database.Transactor,
	txRepo finance.TransactionRepository,
	payableRepo finance.AccountPayableRepository,
	recorder audit.Recorder,
) finance.FinanceService {
	return &FinanceServiceImpl{
		transactor:  transactor,
		txRepo:      txRepo,
		payableRepo: payableRepo,
		recorder:    recorder,
		now:         time.Now,
	}
}

// ========== TRANSACTIONS ==========

func (s *FinanceServiceImpl) CreateTransaction(ctx context.Context, req finance.CreateTransactionRequest) (finance.Transaction, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return finance.Transaction{}, err
	}
	if err := req.Validate(); err != nil {
		return finance.Transaction{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	tx := finance.Transaction{
		Type:          finance.TransactionType(req.Type),
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          date,
		Status:        finance.TransactionStatusPending,
		PaymentMethod: req.PaymentMethod,
		EmployeeID:    req.EmployeeID,
		CreatedBy:     userID,
	}
	if req.Status != nil {
		tx.Status = finance.TransactionStatus(*req.Status)
	}

	var created finance.Transaction
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err = s.txRepo.Create(ctx, tx)
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
		return finance.Transaction{}, err
	}
	return created, nil
}

func (s *FinanceServiceImpl) ListTransactions(ctx context.Context, filter finance.TransactionFilter) ([]finance.Transaction, error) {
	if _, err := actor.Require(ctx); err != nil {
		return nil, err
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, validator.ValidationErrors{{Field: "to", Message: "must not be before from"}}
	}
	filter.Normalize()
	return s.txRepo.List(ctx, filter)
}

// DeleteTransaction removes a free-standing transaction. Transactions owned
// by an advance or a payable are removed through their owner.
func (s *FinanceServiceImpl) DeleteTransaction(ctx context.Context, id string) error {
	userID, err := actor.Require(ctx)
	if err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if old.AccountPayableID != nil || old.Category == finance.CategoryAdvance {
			return finance.ErrTransactionLinked
		}

		if err := s.txRepo.Delete(ctx, id); err != nil {
			return err
		}
		_, err = s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionDelete,
			EntityID: id,
			Old:      old,
			UserID:   userID,
		})
		return err
	})
}

// ========== ACCOUNTS PAYABLE ==========

func (s *FinanceServiceImpl) CreatePayable(ctx context.Context, req finance.CreatePayableRequest) (finance.AccountPayable, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return finance.AccountPayable{}, err
	}
	if err := req.Validate(); err != nil {
		return finance.AccountPayable{}, err
	}
	dueDate, _ := validator.IsValidDate(req.DueDate)

	var created finance.AccountPayable
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err = s.payableRepo.Create(ctx, finance.AccountPayable{
			Supplier:    req.Supplier,
			Description: req.Description,
			Amount:      req.Amount,
			DueDate:     dueDate,
			Status:      finance.PayableStatusPending,
			CreatedBy:   userID,
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
		return finance.AccountPayable{}, err
	}
	return created, nil
}

func (s *FinanceServiceImpl) ListPayables(ctx context.Context, filter finance.PayableFilter) ([]finance.AccountPayable, error) {
	if _, err := actor.Require(ctx); err != nil {
		return nil, err
	}
	return s.payableRepo.List(ctx, filter)
}

func (s *FinanceServiceImpl) UpdatePayable(ctx context.Context, req finance.UpdatePayableRequest) (finance.AccountPayable, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return finance.AccountPayable{}, err
	}
	if err := req.Validate(); err != nil {
		return finance.AccountPayable{}, err
	}

	var updated finance.AccountPayable
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.payableRepo.GetByIDForUpdate(ctx, req.ID)
		if err != nil {
			return err
		}
		if !old.IsOpen() {
			return finance.ErrAccountPayableClosed
		}

		next := old
		if req.Supplier != nil {
			next.Supplier = *req.Supplier
		}
		if req.Description != nil {
			next.Description = req.Description
		}
		if req.Amount != nil {
			next.Amount = *req.Amount
		}
		if req.DueDate != nil {
			next.DueDate, _ = validator.IsValidDate(*req.DueDate)
		}
		if req.Status != nil {
			next.Status = finance.PayableStatus(*req.Status)
		}

		updated, err = s.payableRepo.Update(ctx, next)
		if err != nil {
			return err
		}
		_, err = s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionUpdate,
			EntityID: updated.ID,
			Old:      old,
			New:      updated,
			UserID:   userID,
		})
		return err
	})
	if err != nil {
		return finance.AccountPayable{}, err
	}
	return updated, nil
}

// PayPayable creates the expense transaction and closes the payable atomically.
func (s *FinanceServiceImpl) PayPayable(ctx context.Context, req finance.PayPayableRequest) (finance.PayPayableResponse, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return finance.PayPayableResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return finance.PayPayableResponse{}, err
	}

	paidAt := s.now().UTC().Truncate(24 * time.Hour)
	if req.PaidAt != nil {
		paidAt, _ = validator.IsValidDate(*req.PaidAt)
	}

	var result finance.PayPayableResponse
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.payableRepo.GetByIDForUpdate(ctx, req.ID)
		if err != nil {
			return err
		}
		if !old.IsOpen() {
			return finance.ErrAccountPayableClosed
		}

		description := fmt.Sprintf("Pagamento - %s", old.Supplier)
		if old.Description != nil && *old.Description != "" {
			description = fmt.Sprintf("%s (%s)", description, *old.Description)
		}
		payableID := old.ID
		tx, err := s.txRepo.Create(ctx, finance.Transaction{
			Type:             finance.TransactionTypeExpense,
			Category:         finance.CategoryAccountPayable,
			Description:      description,
			Amount:           old.Amount,
			Date:             paidAt,
			Status:           finance.TransactionStatusPaid,
			PaymentMethod:    req.PaymentMethod,
			AccountPayableID: &payableID,
			CreatedBy:        userID,
		})
		if err != nil {
			return fmt.Errorf("failed to create payment transaction: %w", err)
		}

		next := old
		next.Status = finance.PayableStatusPaid
		next.PaidAt = &paidAt
		next.TransactionID = &tx.ID
		paid, err := s.payableRepo.Update(ctx, next)
		if err != nil {
			return err
		}

		if _, err := s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionCreate,
			EntityID: tx.ID,
			New:      tx,
			UserID:   userID,
		}); err != nil {
			return err
		}
		if _, err := s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionUpdate,
			EntityID: paid.ID,
			Old:      old,
			New:      paid,
			UserID:   userID,
		}); err != nil {
			return err
		}

		result = finance.PayPayableResponse{Payable: paid, Transaction: tx}
		return nil
	})
	if err != nil {
		return finance.PayPayableResponse{}, err
	}
	return result, nil
}

// DeletePayable removes an unpaid payable. Paid payables keep their history.
func (s *FinanceServiceImpl) DeletePayable(ctx context.Context, id string) error {
	userID, err := actor.Require(ctx)
	if err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.payableRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if old.Status == finance.PayableStatusPaid {
			return finance.ErrAccountPayableClosed
		}

		if err := s.payableRepo.Delete(ctx, id); err != nil {
			return err
		}
		_, err = s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionDelete,
			EntityID: id,
			Old:      old,
			UserID:   userID,
		})
		return err
	})
}

// MarkOverduePayables is run by the scheduler. It has no acting user and
// therefore writes no audit records.
func (s *FinanceServiceImpl) MarkOverduePayables(ctx context.Context) (int64, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)
	n, err := s.payableRepo.MarkOverdue(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue payables: %w", err)
	}
	if n > 0 {
		slog.InfoContext(ctx, "payables marked overdue", "count", n, "before", today.Format("2006-01-02"))
	}
	return n, nil
}
