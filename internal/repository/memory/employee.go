package memory

import (
	"context"
	"strings"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	var emp employee.Employee
	err := r.store.do(ctx, func(st *state) error {
		found, ok := st.employees[id]
		if !ok {
			return employee.ErrEmployeeNotFound
		}
		emp = found
		return nil
	})
	return emp, err
}

// GetByIDForUpdate is GetByID: store transactions already hold the store lock.
func (r *employeeRepository) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return r.GetByID(ctx, id)
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	result := []employee.Employee{}
	err := r.store.do(ctx, func(st *state) error {
		for _, e := range st.employees {
			if filter.Active != nil && e.Active != *filter.Active {
				continue
			}
			result = append(result, e)
		}
		return nil
	})
	sortNewestFirst(result,
		func(e employee.Employee) time.Time { return e.CreatedAt },
		func(e employee.Employee) string { return e.ID })
	return result, err
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	err := r.store.do(ctx, func(st *state) error {
		if emailTaken(st, newEmployee.Email, "") {
			return employee.ErrEmailExists
		}
		now := r.store.now()
		newEmployee.ID = r.store.newID()
		newEmployee.CreatedAt = now
		newEmployee.UpdatedAt = now
		st.employees[newEmployee.ID] = newEmployee
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return newEmployee, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	err := r.store.do(ctx, func(st *state) error {
		old, ok := st.employees[emp.ID]
		if !ok {
			return employee.ErrEmployeeNotFound
		}
		if emailTaken(st, emp.Email, emp.ID) {
			return employee.ErrEmailExists
		}
		emp.CreatedAt = old.CreatedAt
		emp.UpdatedAt = r.store.now()
		st.employees[emp.ID] = emp
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func emailTaken(st *state, email *string, exceptID string) bool {
	if email == nil {
		return false
	}
	for _, e := range st.employees {
		if e.ID != exceptID && e.Email != nil && strings.EqualFold(*e.Email, *email) {
			return true
		}
	}
	return false
}
