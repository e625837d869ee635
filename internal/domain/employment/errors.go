package employment

import "errors"

var (
	ErrRecordNotFound   = errors.New("employment record not found")
	ErrContractNotFound = errors.New("employee contract not found")
	ErrAlreadyCancelled = errors.New("record is already cancelled")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrVersionConflict  = errors.New("contract was modified concurrently")
)
