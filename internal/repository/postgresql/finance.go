package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// ========== TRANSACTIONS ==========

const transactionColumns = `id, type, category, description, amount, date, status, payment_method,
	employee_id, account_payable_id, created_by, created_at, updated_at`

type transactionRepositoryImpl struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) finance.TransactionRepository {
	return &transactionRepositoryImpl{db: db}
}

func scanTransaction(row pgx.Row) (finance.Transaction, error) {
	var tx finance.Transaction
	err := row.Scan(
		&tx.ID, &tx.Type, &tx.Category, &tx.Description, &tx.Amount, &tx.Date, &tx.Status,
		&tx.PaymentMethod, &tx.EmployeeID, &tx.AccountPayableID, &tx.CreatedBy, &tx.CreatedAt, &tx.UpdatedAt,
	)
	return tx, err
}

// Create implements finance.TransactionRepository.
func (r *transactionRepositoryImpl) Create(ctx context.Context, tx finance.Transaction) (finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO financial_transactions (
			type, category, description, amount, date, status, payment_method,
			employee_id, account_payable_id, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + transactionColumns

	created, err := scanTransaction(q.QueryRow(ctx, query,
		tx.Type, tx.Category, tx.Description, tx.Amount, tx.Date, tx.Status, tx.PaymentMethod,
		tx.EmployeeID, tx.AccountPayableID, tx.CreatedBy,
	))
	if err != nil {
		return finance.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return created, nil
}

// GetByID implements finance.TransactionRepository.
func (r *transactionRepositoryImpl) GetByID(ctx context.Context, id string) (finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	tx, err := scanTransaction(q.QueryRow(ctx, `SELECT `+transactionColumns+` FROM financial_transactions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return finance.Transaction{}, finance.ErrTransactionNotFound
		}
		return finance.Transaction{}, fmt.Errorf("failed to get transaction with id %s: %w", id, err)
	}
	return tx, nil
}

// List implements finance.TransactionRepository.
func (r *transactionRepositoryImpl) List(ctx context.Context, filter finance.TransactionFilter) ([]finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIndex))
		args = append(args, *filter.Type)
		argIndex++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIndex))
		args = append(args, *filter.From)
		argIndex++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIndex))
		args = append(args, *filter.To)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM financial_transactions
		%s
		ORDER BY date DESC, id DESC
		LIMIT $%d
	`, transactionColumns, whereClause, argIndex)
	args = append(args, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []finance.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

// Delete implements finance.TransactionRepository.
func (r *transactionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM financial_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return finance.ErrTransactionNotFound
	}
	return nil
}

// ========== ACCOUNTS PAYABLE ==========

const payableColumns = `id, supplier, description, amount, due_date, status, paid_at, transaction_id,
	created_by, created_at, updated_at`

type accountPayableRepositoryImpl struct {
	db *database.DB
}

func NewAccountPayableRepository(db *database.DB) finance.AccountPayableRepository {
	return &accountPayableRepositoryImpl{db: db}
}

func scanPayable(row pgx.Row) (finance.AccountPayable, error) {
	var p finance.AccountPayable
	err := row.Scan(
		&p.ID, &p.Supplier, &p.Description, &p.Amount, &p.DueDate, &p.Status, &p.PaidAt,
		&p.TransactionID, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements finance.AccountPayableRepository.
func (r *accountPayableRepositoryImpl) Create(ctx context.Context, payable finance.AccountPayable) (finance.AccountPayable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts_payable (supplier, description, amount, due_date, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + payableColumns

	created, err := scanPayable(q.QueryRow(ctx, query,
		payable.Supplier, payable.Description, payable.Amount, payable.DueDate, payable.Status, payable.CreatedBy,
	))
	if err != nil {
		return finance.AccountPayable{}, fmt.Errorf("failed to create account payable: %w", err)
	}
	return created, nil
}

// GetByID implements finance.AccountPayableRepository.
func (r *accountPayableRepositoryImpl) GetByID(ctx context.Context, id string) (finance.AccountPayable, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate implements finance.AccountPayableRepository.
func (r *accountPayableRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (finance.AccountPayable, error) {
	return r.getByID(ctx, id, true)
}

func (r *accountPayableRepositoryImpl) getByID(ctx context.Context, id string, lock bool) (finance.AccountPayable, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payableColumns + ` FROM accounts_payable WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	p, err := scanPayable(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return finance.AccountPayable{}, finance.ErrAccountPayableNotFound
		}
		return finance.AccountPayable{}, fmt.Errorf("failed to get account payable with id %s: %w", id, err)
	}
	return p, nil
}

// List implements finance.AccountPayableRepository.
func (r *accountPayableRepositoryImpl) List(ctx context.Context, filter finance.PayableFilter) ([]finance.AccountPayable, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := ""
	args := []interface{}{}
	if filter.Status != nil {
		whereClause = "WHERE status = $1"
		args = append(args, *filter.Status)
	}

	query := fmt.Sprintf(`SELECT %s FROM accounts_payable %s ORDER BY due_date ASC, id ASC`, payableColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts payable: %w", err)
	}
	defer rows.Close()

	payables := []finance.AccountPayable{}
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, err
		}
		payables = append(payables, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return payables, nil
}

// Update implements finance.AccountPayableRepository.
func (r *accountPayableRepositoryImpl) Update(ctx context.Context, payable finance.AccountPayable) (finance.AccountPayable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts_payable
		SET supplier = $1, description = $2, amount = $3, due_date = $4, status = $5,
			paid_at = $6, transaction_id = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + payableColumns

	updated, err := scanPayable(q.QueryRow(ctx, query,
		payable.Supplier, payable.Description, payable.Amount, payable.DueDate, payable.Status,
		payable.PaidAt, payable.TransactionID, payable.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return finance.AccountPayable{}, finance.ErrAccountPayableNotFound
		}
		return finance.AccountPayable{}, fmt.Errorf("failed to update account payable with id %s: %w", payable.ID, err)
	}
	return updated, nil
}

// Delete implements finance.AccountPayableRepository.
func (r *accountPayableRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM accounts_payable WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account payable with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return finance.ErrAccountPayableNotFound
	}
	return nil
}

// MarkOverdue implements finance.AccountPayableRepository.
func (r *accountPayableRepositoryImpl) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts_payable
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND due_date < $3
	`

	tag, err := q.Exec(ctx, query, finance.PayableStatusOverdue, finance.PayableStatusPending, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
