package audit

import (
	"encoding/json"
	"time"
)

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionLogin  Action = "LOGIN"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionLogin:
		return true
	}
	return false
}

// Entity names the audited resource. It is the tag of the snapshot union.
type Entity string

const (
	EntityUser                 Entity = "user"
	EntityEmployee             Entity = "employee"
	EntityEmployeeAdvance      Entity = "employee_advance"
	EntityEmploymentRecord     Entity = "employment_record"
	EntityEmployeeContract     Entity = "employee_contract"
	EntityFinancialTransaction Entity = "financial_transaction"
	EntityAccountPayable       Entity = "account_payable"
	EntityRHPayment            Entity = "rh_payment"
	EntityThirteenthSalary     Entity = "thirteenth_salary"
	EntityTimeBank             Entity = "time_bank"
	EntitySalaryHistory        Entity = "salary_history"
	EntityVacation             Entity = "vacation"
)

var knownEntities = map[Entity]struct{}{
	EntityUser: {}, EntityEmployee: {}, EntityEmployeeAdvance: {}, EntityEmploymentRecord: {},
	EntityEmployeeContract: {}, EntityFinancialTransaction: {}, EntityAccountPayable: {},
	EntityRHPayment: {}, EntityThirteenthSalary: {}, EntityTimeBank: {}, EntitySalaryHistory: {},
	EntityVacation: {},
}

func (e Entity) IsKnown() bool {
	_, ok := knownEntities[e]
	return ok
}

// Snapshot is the state of one audited entity at a point in time.
// Domain entities implement it; the returned Entity selects the decoder on read.
type Snapshot interface {
	AuditEntity() Entity
}

// RawSnapshot holds snapshot data whose entity has no registered decoder.
type RawSnapshot struct {
	Entity Entity
	Data   json.RawMessage
}

func (r RawSnapshot) AuditEntity() Entity { return r.Entity }

func (r RawSnapshot) MarshalJSON() ([]byte, error) {
	if len(r.Data) == 0 {
		return []byte("null"), nil
	}
	return r.Data, nil
}

// AuditLog is an immutable record of one action on one entity.
type AuditLog struct {
	ID        string
	Action    Action
	Entity    Entity
	EntityID  string
	OldData   Snapshot
	NewData   Snapshot
	UserID    string
	CreatedAt time.Time
}

// StoredLog is the persisted form of AuditLog with encoded snapshots.
type StoredLog struct {
	ID        string
	Action    Action
	Entity    Entity
	EntityID  string
	OldData   json.RawMessage
	NewData   json.RawMessage
	UserID    string
	CreatedAt time.Time
}

// Entry describes an action to record.
type Entry struct {
	Action   Action
	EntityID string
	Old      Snapshot
	New      Snapshot
	UserID   string
}
