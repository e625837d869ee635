package employment

import (
	"context"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employment"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
)

type EmploymentServiceImpl struct {
	transactor   database.Transactor
	recordRepo   employment.RecordRepository
	contractRepo employment.ContractRepository
	employeeRepo employee.EmployeeRepository
	recorder     audit.Recorder
}

func NewEmploymentService(
	transactor database.Transactor,
	recordRepo employment.RecordRepository,
	contractRepo employment.ContractRepository,
	employeeRepo employee.EmployeeRepository,
	recorder audit.Recorder,
) employment.EmploymentService {
	return &EmploymentServiceImpl{
		transactor:   transactor,
		recordRepo:   recordRepo,
		contractRepo: contractRepo,
		employeeRepo: employeeRepo,
		recorder:     recorder,
	}
}

// ========== RECORDS ==========

func (s *EmploymentServiceImpl) CreateRecord(ctx context.Context, req employment.CreateRecordRequest) (employment.Record, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return employment.Record{}, err
	}
	if err := req.Validate(); err != nil {
		return employment.Record{}, err
	}

	rec := employment.Record{
		EmployeeID: req.EmployeeID,
		Position:   req.Position,
		Department: req.Department,
		StartDate:  employment.ParseDate(req.StartDate),
		Status:     employment.StatusActive,
		Notes:      req.Notes,
	}
	if req.EndDate != nil {
		end := employment.ParseDate(*req.EndDate)
		rec.EndDate = &end
		rec.Status = employment.StatusEnded
	}

	var created employment.Record
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}
		created, err = s.recordRepo.Create(ctx, rec)
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
		return employment.Record{}, err
	}
	return created, nil
}

func (s *EmploymentServiceImpl) ListRecords(ctx context.Context, employeeID string) ([]employment.Record, error) {
	if _, err := actor.Require(ctx); err != nil {
		return nil, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.recordRepo.ListByEmployee(ctx, employeeID)
}

func (s *EmploymentServiceImpl) UpdateRecord(ctx context.Context, req employment.UpdateRecordRequest) (employment.Record, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return employment.Record{}, err
	}
	if err := req.Validate(); err != nil {
		return employment.Record{}, err
	}

	var updated employment.Record
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.recordFor(ctx, req.EmployeeID, req.ID)
		if err != nil {
			return err
		}
		if old.Status == employment.StatusCancelled {
			return employment.ErrAlreadyCancelled
		}

		next := old
		if err := req.Apply(&next); err != nil {
			return err
		}
		updated, err = s.recordRepo.Update(ctx, next)
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
		return employment.Record{}, err
	}
	return updated, nil
}

// CancelRecord soft-deletes the record by setting its status to cancelled.
func (s *EmploymentServiceImpl) CancelRecord(ctx context.Context, employeeID, id string) error {
	userID, err := actor.Require(ctx)
	if err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.recordFor(ctx, employeeID, id)
		if err != nil {
			return err
		}
		if old.Status == employment.StatusCancelled {
			return employment.ErrAlreadyCancelled
		}

		next := old
		next.Status = employment.StatusCancelled
		updated, err := s.recordRepo.Update(ctx, next)
		if err != nil {
			return err
		}
		_, err = s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionDelete,
			EntityID: id,
			Old:      old,
			New:      updated,
			UserID:   userID,
		})
		return err
	})
}

func (s *EmploymentServiceImpl) recordFor(ctx context.Context, employeeID, id string) (employment.Record, error) {
	rec, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return employment.Record{}, err
	}
	if rec.EmployeeID != employeeID {
		return employment.Record{}, employment.ErrRecordNotFound
	}
	return rec, nil
}

// ========== CONTRACTS ==========

func (s *EmploymentServiceImpl) CreateContract(ctx context.Context, req employment.CreateContractRequest) (employment.Contract, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return employment.Contract{}, err
	}
	if err := req.Validate(); err != nil {
		return employment.Contract{}, err
	}

	c := employment.Contract{
		EmployeeID:   req.EmployeeID,
		ContractType: employment.ContractType(req.ContractType),
		StartDate:    employment.ParseDate(req.StartDate),
		SalaryCents:  req.SalaryCents,
		WeeklyHours:  req.WeeklyHours,
		Version:      1,
		Status:       employment.StatusActive,
		Notes:        req.Notes,
	}
	if req.EndDate != nil {
		end := employment.ParseDate(*req.EndDate)
		c.EndDate = &end
	}

	var created employment.Contract
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}
		created, err = s.contractRepo.Create(ctx, c)
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
		return employment.Contract{}, err
	}
	return created, nil
}

func (s *EmploymentServiceImpl) ListContracts(ctx context.Context, employeeID string) ([]employment.Contract, error) {
	if _, err := actor.Require(ctx); err != nil {
		return nil, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.contractRepo.ListByEmployee(ctx, employeeID)
}

func (s *EmploymentServiceImpl) UpdateContract(ctx context.Context, req employment.UpdateContractRequest) (employment.Contract, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return employment.Contract{}, err
	}
	if err := req.Validate(); err != nil {
		return employment.Contract{}, err
	}

	var updated employment.Contract
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.contractFor(ctx, req.EmployeeID, req.ID)
		if err != nil {
			return err
		}
		if old.Status == employment.StatusCancelled {
			return employment.ErrAlreadyCancelled
		}

		next := old
		if err := req.Apply(&next); err != nil {
			return err
		}
		next.Version = old.Version + 1

		updated, err = s.contractRepo.Update(ctx, next)
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
		return employment.Contract{}, err
	}
	return updated, nil
}

// CancelContract soft-deletes the contract. It also bumps the version.
func (s *EmploymentServiceImpl) CancelContract(ctx context.Context, employeeID, id string) error {
	userID, err := actor.Require(ctx)
	if err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.contractFor(ctx, employeeID, id)
		if err != nil {
			return err
		}
		if old.Status == employment.StatusCancelled {
			return employment.ErrAlreadyCancelled
		}

		next := old
		next.Status = employment.StatusCancelled
		next.Version = old.Version + 1
		updated, err := s.contractRepo.Update(ctx, next)
		if err != nil {
			return err
		}
		_, err = s.recorder.Record(ctx, audit.Entry{
			Action:   audit.ActionDelete,
			EntityID: id,
			Old:      old,
			New:      updated,
			UserID:   userID,
		})
		return err
	})
}

func (s *EmploymentServiceImpl) contractFor(ctx context.Context, employeeID, id string) (employment.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return employment.Contract{}, err
	}
	if c.EmployeeID != employeeID {
		return employment.Contract{}, employment.ErrContractNotFound
	}
	return c, nil
}
