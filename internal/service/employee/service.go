package employee

import (
	"context"
	"strings"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	transactor database.Transactor
	employee.EmployeeRepository
	recorder audit.Recorder
}

func NewEmployeeService(transactor database.Transactor, employeeRepo employee.EmployeeRepository, recorder audit.Recorder) employee.EmployeeService {
	return &EmployeeServiceImpl{
		transactor:         transactor,
		EmployeeRepository: employeeRepo,
		recorder:           recorder,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if _, err := actor.Require(ctx); err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if _, err := actor.Require(ctx); err != nil {
		return nil, err
	}
	employees, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		Name:        strings.TrimSpace(req.Name),
		Email:       req.Email,
		Position:    req.Position,
		SalaryCents: req.SalaryCents,
		Active:      true,
	}
	if req.HireDate != nil {
		if d, ok := validator.IsValidDate(*req.HireDate); ok {
			newEmployee.HireDate = &d
		}
	}

	var created employee.Employee
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err = s.EmployeeRepository.Create(ctx, newEmployee)
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
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	userID, err := actor.Require(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.EmployeeRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		next := old
		req.Apply(&next)

		updated, err = s.EmployeeRepository.Update(ctx, next)
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
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	userID, err := actor.Require(ctx)
	if err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.EmployeeRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !old.Active {
			return employee.ErrEmployeeAlreadyInactive
		}

		next := old
		next.Active = false
		updated, err := s.EmployeeRepository.Update(ctx, next)
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
