package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/advance"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const advanceColumns = `id, employee_id, amount, date, note, payroll_reference, payment_method, transaction_id, created_by, created_at`

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var a advance.Advance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Amount, &a.Date, &a.Note, &a.PayrollReference,
		&a.PaymentMethod, &a.TransactionID, &a.CreatedBy, &a.CreatedAt,
	)
	return a, err
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_advances (employee_id, amount, date, note, payroll_reference, payment_method, transaction_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + advanceColumns

	created, err := scanAdvance(q.QueryRow(ctx, query,
		adv.EmployeeID, adv.Amount, adv.Date, adv.Note, adv.PayrollReference,
		adv.PaymentMethod, adv.TransactionID, adv.CreatedBy,
	))
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}
	return created, nil
}

// GetByID implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAdvance(q.QueryRow(ctx, `SELECT `+advanceColumns+` FROM employee_advances WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance with id %s: %w", id, err)
	}
	return a, nil
}

// ListByEmployee implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM employee_advances
		WHERE employee_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	advances := []advance.Advance{}
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, err
		}
		advances = append(advances, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return advances, nil
}

// SumByPayrollReference implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) SumByPayrollReference(ctx context.Context, employeeID string, competencia string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM employee_advances
		WHERE employee_id = $1 AND payroll_reference = $2
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, competencia).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum advances: %w", err)
	}
	return total, nil
}

// Delete implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete advance with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}
	return nil
}
