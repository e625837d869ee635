package rh

import "errors"

var (
	ErrPaymentAlreadyExists    = errors.New("payment already exists for this employee and competencia")
	ErrThirteenthAlreadyExists = errors.New("thirteenth salary already exists for this employee and year")
	ErrTimeBankNotFound        = errors.New("time bank not found")
)
