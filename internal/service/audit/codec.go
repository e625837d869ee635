package audit

import (
	"github.com/gestao-rh/gestao-backend-go/internal/domain/advance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employment"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/user"
)

// NewCodec returns a codec that knows every audited entity.
func NewCodec() *audit.Codec {
	c := audit.NewCodec()
	audit.Register[user.LoginEvent](c, audit.EntityUser)
	audit.Register[employee.Employee](c, audit.EntityEmployee)
	audit.Register[advance.Advance](c, audit.EntityEmployeeAdvance)
	audit.Register[employment.Record](c, audit.EntityEmploymentRecord)
	audit.Register[employment.Contract](c, audit.EntityEmployeeContract)
	audit.Register[finance.Transaction](c, audit.EntityFinancialTransaction)
	audit.Register[finance.AccountPayable](c, audit.EntityAccountPayable)
	audit.Register[rh.Payment](c, audit.EntityRHPayment)
	audit.Register[rh.ThirteenthSalary](c, audit.EntityThirteenthSalary)
	audit.Register[rh.TimeBank](c, audit.EntityTimeBank)
	audit.Register[rh.SalaryHistory](c, audit.EntitySalaryHistory)
	audit.Register[rh.Vacation](c, audit.EntityVacation)
	return c
}
