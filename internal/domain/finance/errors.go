package finance

import "errors"

var (
	ErrTransactionNotFound    = errors.New("financial transaction not found")
	ErrTransactionLinked      = errors.New("transaction is linked to another record and cannot be deleted directly")
	ErrAccountPayableNotFound = errors.New("account payable not found")
	ErrAccountPayableClosed   = errors.New("account payable is already paid or cancelled")
)
