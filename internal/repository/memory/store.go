// Package memory implements every repository interface on an in-process
// store. Transactions are serialized and roll back by restoring a snapshot.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/advance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employment"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/user"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type state struct {
	users         map[string]user.User
	employees     map[string]employee.Employee
	advances      map[string]advance.Advance
	transactions  map[string]finance.Transaction
	payables      map[string]finance.AccountPayable
	records       map[string]employment.Record
	contracts     map[string]employment.Contract
	payments      map[string]rh.Payment
	thirteenth    map[string]rh.ThirteenthSalary
	timeBanks     map[string]rh.TimeBank // keyed by employee id
	salaryHistory map[string]rh.SalaryHistory
	vacations     map[string]rh.Vacation
	auditLogs     []audit.StoredLog
}

func newState() *state {
	return &state{
		users:         make(map[string]user.User),
		employees:     make(map[string]employee.Employee),
		advances:      make(map[string]advance.Advance),
		transactions:  make(map[string]finance.Transaction),
		payables:      make(map[string]finance.AccountPayable),
		records:       make(map[string]employment.Record),
		contracts:     make(map[string]employment.Contract),
		payments:      make(map[string]rh.Payment),
		thirteenth:    make(map[string]rh.ThirteenthSalary),
		timeBanks:     make(map[string]rh.TimeBank),
		salaryHistory: make(map[string]rh.SalaryHistory),
		vacations:     make(map[string]rh.Vacation),
	}
}

// clone copies every table. Stored values are never mutated in place, so a
// shallow copy of each map is a full snapshot.
func (s *state) clone() *state {
	return &state{
		users:         maps.Clone(s.users),
		employees:     maps.Clone(s.employees),
		advances:      maps.Clone(s.advances),
		transactions:  maps.Clone(s.transactions),
		payables:      maps.Clone(s.payables),
		records:       maps.Clone(s.records),
		contracts:     maps.Clone(s.contracts),
		payments:      maps.Clone(s.payments),
		thirteenth:    maps.Clone(s.thirteenth),
		timeBanks:     maps.Clone(s.timeBanks),
		salaryHistory: maps.Clone(s.salaryHistory),
		vacations:     maps.Clone(s.vacations),
		auditLogs:     slices.Clone(s.auditLogs),
	}
}

type Store struct {
	mu   sync.Mutex
	data *state
	now  func() time.Time
}

func NewStore() *Store {
	return &Store{
		data: newState(),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Close satisfies the same lifecycle as the postgres pool.
func (s *Store) Close() {}

type txKey struct{}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(struct{})
	return ok
}

// do runs fn against the current data. Outside a transaction it takes the
// store lock; inside one the lock is already held by WithinTransaction.
func (s *Store) do(ctx context.Context, fn func(*state) error) error {
	if !inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.data)
}

func (s *Store) newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

type transactor struct {
	store *Store
}

func NewTransactor(store *Store) database.Transactor {
	return &transactor{store: store}
}

// WithinTransaction implements database.Transactor.
// Nested calls reuse the outer transaction.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	snapshot := t.store.data.clone()
	defer func() {
		if p := recover(); p != nil {
			t.store.data = snapshot
			panic(p)
		}
		if err != nil {
			t.store.data = snapshot
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

// sortNewestFirst orders by creation time, newest first, breaking ties by id.
func sortNewestFirst[T any](items []T, createdAt func(T) time.Time, id func(T) string) {
	slices.SortFunc(items, func(a, b T) int {
		if c := createdAt(b).Compare(createdAt(a)); c != 0 {
			return c
		}
		switch {
		case id(a) > id(b):
			return -1
		case id(a) < id(b):
			return 1
		}
		return 0
	})
}
