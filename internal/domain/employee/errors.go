package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
	ErrEmailExists             = errors.New("email already registered")
)
