package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/employment"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// ========== EMPLOYMENT RECORDS ==========

const recordColumns = `id, employee_id, position, department, start_date, end_date, status, notes, created_at, updated_at`

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) employment.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

func scanRecord(row pgx.Row) (employment.Record, error) {
	var rec employment.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Position, &rec.Department, &rec.StartDate,
		&rec.EndDate, &rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements employment.RecordRepository.
func (r *recordRepositoryImpl) Create(ctx context.Context, rec employment.Record) (employment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employment_records (employee_id, position, department, start_date, end_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + recordColumns

	created, err := scanRecord(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Position, rec.Department, rec.StartDate, rec.EndDate, rec.Status, rec.Notes,
	))
	if err != nil {
		return employment.Record{}, fmt.Errorf("failed to create employment record: %w", err)
	}
	return created, nil
}

// GetByID implements employment.RecordRepository.
func (r *recordRepositoryImpl) GetByID(ctx context.Context, id string) (employment.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanRecord(q.QueryRow(ctx, `SELECT `+recordColumns+` FROM employment_records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employment.Record{}, employment.ErrRecordNotFound
		}
		return employment.Record{}, fmt.Errorf("failed to get employment record with id %s: %w", id, err)
	}
	return rec, nil
}

// ListByEmployee implements employment.RecordRepository.
func (r *recordRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]employment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM employment_records
		WHERE employee_id = $1
		ORDER BY start_date DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment records: %w", err)
	}
	defer rows.Close()

	records := []employment.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Update implements employment.RecordRepository.
func (r *recordRepositoryImpl) Update(ctx context.Context, rec employment.Record) (employment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employment_records
		SET position = $1, department = $2, start_date = $3, end_date = $4, status = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + recordColumns

	updated, err := scanRecord(q.QueryRow(ctx, query,
		rec.Position, rec.Department, rec.StartDate, rec.EndDate, rec.Status, rec.Notes, rec.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employment.Record{}, employment.ErrRecordNotFound
		}
		return employment.Record{}, fmt.Errorf("failed to update employment record with id %s: %w", rec.ID, err)
	}
	return updated, nil
}

// ========== CONTRACTS ==========

const contractColumns = `id, employee_id, contract_type, start_date, end_date, salary_cents, weekly_hours,
	version, status, notes, created_at, updated_at`

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) employment.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

func scanContract(row pgx.Row) (employment.Contract, error) {
	var c employment.Contract
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.ContractType, &c.StartDate, &c.EndDate, &c.SalaryCents,
		&c.WeeklyHours, &c.Version, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements employment.ContractRepository.
func (r *contractRepositoryImpl) Create(ctx context.Context, c employment.Contract) (employment.Contract, error) {
	q := GetQuerier(ctx, r.db)

	if c.Version == 0 {
		c.Version = 1
	}

	query := `
		INSERT INTO employee_contracts (
			employee_id, contract_type, start_date, end_date, salary_cents, weekly_hours, version, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + contractColumns

	created, err := scanContract(q.QueryRow(ctx, query,
		c.EmployeeID, c.ContractType, c.StartDate, c.EndDate, c.SalaryCents,
		c.WeeklyHours, c.Version, c.Status, c.Notes,
	))
	if err != nil {
		return employment.Contract{}, fmt.Errorf("failed to create contract: %w", err)
	}
	return created, nil
}

// GetByID implements employment.ContractRepository.
func (r *contractRepositoryImpl) GetByID(ctx context.Context, id string) (employment.Contract, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanContract(q.QueryRow(ctx, `SELECT `+contractColumns+` FROM employee_contracts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employment.Contract{}, employment.ErrContractNotFound
		}
		return employment.Contract{}, fmt.Errorf("failed to get contract with id %s: %w", id, err)
	}
	return c, nil
}

// ListByEmployee implements employment.ContractRepository.
func (r *contractRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]employment.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractColumns + `
		FROM employee_contracts
		WHERE employee_id = $1
		ORDER BY start_date DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	contracts := []employment.Contract{}
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return contracts, nil
}

// Update implements employment.ContractRepository.
// The WHERE clause on version makes a stale write affect no rows.
func (r *contractRepositoryImpl) Update(ctx context.Context, c employment.Contract) (employment.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_contracts
		SET contract_type = $1, start_date = $2, end_date = $3, salary_cents = $4, weekly_hours = $5,
			version = $6, status = $7, notes = $8, updated_at = NOW()
		WHERE id = $9 AND version = $10
		RETURNING ` + contractColumns

	updated, err := scanContract(q.QueryRow(ctx, query,
		c.ContractType, c.StartDate, c.EndDate, c.SalaryCents, c.WeeklyHours,
		c.Version, c.Status, c.Notes, c.ID, c.Version-1,
	))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return employment.Contract{}, fmt.Errorf("failed to update contract with id %s: %w", c.ID, err)
	}

	// Distinguish a missing contract from a concurrent modification.
	if _, getErr := r.GetByID(ctx, c.ID); getErr != nil {
		return employment.Contract{}, getErr
	}
	return employment.Contract{}, employment.ErrVersionConflict
}
