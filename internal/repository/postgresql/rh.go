package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rhRepositoryImpl struct {
	db *database.DB
}

func NewRHRepository(db *database.DB) rh.RHRepository {
	return &rhRepositoryImpl{db: db}
}

// ========== PAYMENTS ==========

const paymentColumns = `id, employee_id, competencia, salario_base, adicionais, horas_extras, valor_horas_extras,
	descontos, valor_adiantamentos, total_bruto, total_liquido, status, data_pagamento, observacoes, created_at`

func scanPayment(row pgx.Row) (rh.Payment, error) {
	var p rh.Payment
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Competencia, &p.SalarioBase, &p.Adicionais, &p.HorasExtras,
		&p.ValorHorasExtras, &p.Descontos, &p.ValorAdiantamentos, &p.TotalBruto, &p.TotalLiquido,
		&p.Status, &p.DataPagamento, &p.Observacoes, &p.CreatedAt,
	)
	return p, err
}

// CreatePayment implements rh.RHRepository.
func (r *rhRepositoryImpl) CreatePayment(ctx context.Context, p rh.Payment) (rh.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rh_payments (
			employee_id, competencia, salario_base, adicionais, horas_extras, valor_horas_extras,
			descontos, valor_adiantamentos, total_bruto, total_liquido, status, data_pagamento, observacoes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + paymentColumns

	created, err := scanPayment(q.QueryRow(ctx, query,
		p.EmployeeID, p.Competencia, p.SalarioBase, p.Adicionais, p.HorasExtras, p.ValorHorasExtras,
		p.Descontos, p.ValorAdiantamentos, p.TotalBruto, p.TotalLiquido, p.Status, p.DataPagamento, p.Observacoes,
	))
	if err != nil {
		if isUniqueViolation(err, "rh_payments_employee_competencia_key") {
			return rh.Payment{}, rh.ErrPaymentAlreadyExists
		}
		return rh.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return created, nil
}

// ListPayments implements rh.RHRepository.
func (r *rhRepositoryImpl) ListPayments(ctx context.Context, filter rh.PaymentFilter) ([]rh.Payment, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	argIndex := 1
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIndex))
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.Competencia != nil {
		conditions = append(conditions, fmt.Sprintf("competencia = $%d", argIndex))
		args = append(args, *filter.Competencia)
	}

	query := fmt.Sprintf(`SELECT %s FROM rh_payments %s ORDER BY competencia DESC, created_at DESC`,
		paymentColumns, where(conditions))

	return queryAll(ctx, q, query, args, scanPayment)
}

// ========== THIRTEENTH SALARY ==========

const thirteenthColumns = `id, employee_id, ano_referencia, meses_trabalhados, valor_total, created_at`

func scanThirteenth(row pgx.Row) (rh.ThirteenthSalary, error) {
	var t rh.ThirteenthSalary
	err := row.Scan(&t.ID, &t.EmployeeID, &t.AnoReferencia, &t.MesesTrabalhados, &t.ValorTotal, &t.CreatedAt)
	return t, err
}

// CreateThirteenth implements rh.RHRepository.
func (r *rhRepositoryImpl) CreateThirteenth(ctx context.Context, t rh.ThirteenthSalary) (rh.ThirteenthSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO thirteenth_salaries (employee_id, ano_referencia, meses_trabalhados, valor_total)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + thirteenthColumns

	created, err := scanThirteenth(q.QueryRow(ctx, query, t.EmployeeID, t.AnoReferencia, t.MesesTrabalhados, t.ValorTotal))
	if err != nil {
		if isUniqueViolation(err, "thirteenth_salaries_employee_ano_key") {
			return rh.ThirteenthSalary{}, rh.ErrThirteenthAlreadyExists
		}
		return rh.ThirteenthSalary{}, fmt.Errorf("failed to create thirteenth salary: %w", err)
	}
	return created, nil
}

// ListThirteenth implements rh.RHRepository.
func (r *rhRepositoryImpl) ListThirteenth(ctx context.Context, filter rh.ThirteenthFilter) ([]rh.ThirteenthSalary, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	argIndex := 1
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIndex))
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.AnoReferencia != nil {
		conditions = append(conditions, fmt.Sprintf("ano_referencia = $%d", argIndex))
		args = append(args, *filter.AnoReferencia)
	}

	query := fmt.Sprintf(`SELECT %s FROM thirteenth_salaries %s ORDER BY ano_referencia DESC, created_at DESC`,
		thirteenthColumns, where(conditions))

	return queryAll(ctx, q, query, args, scanThirteenth)
}

// ========== TIME BANK ==========

const timeBankColumns = `id, employee_id, saldo_horas, total_credito, total_debito, created_at, updated_at`

func scanTimeBank(row pgx.Row) (rh.TimeBank, error) {
	var tb rh.TimeBank
	err := row.Scan(&tb.ID, &tb.EmployeeID, &tb.SaldoHoras, &tb.TotalCredito, &tb.TotalDebito, &tb.CreatedAt, &tb.UpdatedAt)
	return tb, err
}

func (r *rhRepositoryImpl) getTimeBank(ctx context.Context, employeeID string, lock bool) (rh.TimeBank, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeBankColumns + ` FROM time_banks WHERE employee_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	tb, err := scanTimeBank(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rh.TimeBank{}, rh.ErrTimeBankNotFound
		}
		return rh.TimeBank{}, fmt.Errorf("failed to get time bank for employee %s: %w", employeeID, err)
	}
	return tb, nil
}

// GetTimeBankForUpdate implements rh.RHRepository.
func (r *rhRepositoryImpl) GetTimeBankForUpdate(ctx context.Context, employeeID string) (rh.TimeBank, error) {
	return r.getTimeBank(ctx, employeeID, true)
}

// GetTimeBank implements rh.RHRepository.
func (r *rhRepositoryImpl) GetTimeBank(ctx context.Context, employeeID string) (rh.TimeBank, error) {
	return r.getTimeBank(ctx, employeeID, false)
}

// UpsertTimeBank implements rh.RHRepository.
func (r *rhRepositoryImpl) UpsertTimeBank(ctx context.Context, tb rh.TimeBank) (rh.TimeBank, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_banks (employee_id, saldo_horas, total_credito, total_debito)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id) DO UPDATE
		SET saldo_horas = EXCLUDED.saldo_horas,
			total_credito = EXCLUDED.total_credito,
			total_debito = EXCLUDED.total_debito,
			updated_at = NOW()
		RETURNING ` + timeBankColumns

	saved, err := scanTimeBank(q.QueryRow(ctx, query, tb.EmployeeID, tb.SaldoHoras, tb.TotalCredito, tb.TotalDebito))
	if err != nil {
		return rh.TimeBank{}, fmt.Errorf("failed to save time bank: %w", err)
	}
	return saved, nil
}

// ========== SALARY HISTORY ==========

const salaryHistoryColumns = `id, employee_id, salario_anterior, novo_salario, percentual_aumento, motivo, data_vigencia, created_at`

func scanSalaryHistory(row pgx.Row) (rh.SalaryHistory, error) {
	var h rh.SalaryHistory
	err := row.Scan(&h.ID, &h.EmployeeID, &h.SalarioAnterior, &h.NovoSalario, &h.PercentualAumento,
		&h.Motivo, &h.DataVigencia, &h.CreatedAt)
	return h, err
}

// CreateSalaryHistory implements rh.RHRepository.
func (r *rhRepositoryImpl) CreateSalaryHistory(ctx context.Context, h rh.SalaryHistory) (rh.SalaryHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_history (employee_id, salario_anterior, novo_salario, percentual_aumento, motivo, data_vigencia)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + salaryHistoryColumns

	created, err := scanSalaryHistory(q.QueryRow(ctx, query,
		h.EmployeeID, h.SalarioAnterior, h.NovoSalario, h.PercentualAumento, h.Motivo, h.DataVigencia,
	))
	if err != nil {
		return rh.SalaryHistory{}, fmt.Errorf("failed to create salary history: %w", err)
	}
	return created, nil
}

// ListSalaryHistory implements rh.RHRepository.
func (r *rhRepositoryImpl) ListSalaryHistory(ctx context.Context, employeeID *string) ([]rh.SalaryHistory, error) {
	q := GetQuerier(ctx, r.db)

	conditions, args := byEmployee(employeeID)
	query := fmt.Sprintf(`SELECT %s FROM salary_history %s ORDER BY data_vigencia DESC, created_at DESC`,
		salaryHistoryColumns, where(conditions))

	return queryAll(ctx, q, query, args, scanSalaryHistory)
}

// ========== VACATIONS ==========

const vacationColumns = `id, employee_id, periodo_aquisitivo_inicio, periodo_aquisitivo_fim, data_inicio, data_fim,
	dias_direito, dias_utilizados, valor_ferias, adicional_um_terco, status, observacoes, created_at`

func scanVacation(row pgx.Row) (rh.Vacation, error) {
	var v rh.Vacation
	err := row.Scan(
		&v.ID, &v.EmployeeID, &v.PeriodoAquisitivoInicio, &v.PeriodoAquisitivoFim, &v.DataInicio, &v.DataFim,
		&v.DiasDireito, &v.DiasUtilizados, &v.ValorFerias, &v.AdicionalUmTerco, &v.Status, &v.Observacoes, &v.CreatedAt,
	)
	return v, err
}

// CreateVacation implements rh.RHRepository.
func (r *rhRepositoryImpl) CreateVacation(ctx context.Context, v rh.Vacation) (rh.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacations (
			employee_id, periodo_aquisitivo_inicio, periodo_aquisitivo_fim, data_inicio, data_fim,
			dias_direito, dias_utilizados, valor_ferias, adicional_um_terco, status, observacoes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + vacationColumns

	created, err := scanVacation(q.QueryRow(ctx, query,
		v.EmployeeID, v.PeriodoAquisitivoInicio, v.PeriodoAquisitivoFim, v.DataInicio, v.DataFim,
		v.DiasDireito, v.DiasUtilizados, v.ValorFerias, v.AdicionalUmTerco, v.Status, v.Observacoes,
	))
	if err != nil {
		return rh.Vacation{}, fmt.Errorf("failed to create vacation: %w", err)
	}
	return created, nil
}

// ListVacations implements rh.RHRepository.
func (r *rhRepositoryImpl) ListVacations(ctx context.Context, employeeID *string) ([]rh.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	conditions, args := byEmployee(employeeID)
	query := fmt.Sprintf(`SELECT %s FROM vacations %s ORDER BY periodo_aquisitivo_inicio DESC, created_at DESC`,
		vacationColumns, where(conditions))

	return queryAll(ctx, q, query, args, scanVacation)
}

// ========== HELPERS ==========

func byEmployee(employeeID *string) ([]string, []interface{}) {
	if employeeID == nil {
		return nil, nil
	}
	return []string{"employee_id = $1"}, []interface{}{*employeeID}
}

func where(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conditions, " AND ")
}

// queryAll runs query and scans every row with scan. The result is never nil.
func queryAll[T any](ctx context.Context, q database.Querier, query string, args []interface{}, scan func(pgx.Row) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
