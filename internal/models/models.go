// Package models holds the persistence-layer representations scanned from
// and written to PostgreSQL. Mapping to domain types lives in utils/mapping.
package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields mirrors domain.AuditFields at the storage layer.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}

type Account struct {
	AccountID       string
	ChurchID        string
	Code            string
	Name            string
	AccountType     string
	ParentAccountID *string
	Description     string
	IsActive        bool
	AuditFields
}

type JournalEntry struct {
	JournalID     string
	ChurchID      string
	JournalNumber string
	JournalDate   time.Time
	Description   string
	JournalType   string
	Status        string
	TotalDebit    decimal.Decimal
	TotalCredit   decimal.Decimal
	ApprovedBy    *string
	ApprovedAt    *time.Time
	AuditFields
}

type JournalLine struct {
	LineID      string
	JournalID   string
	AccountID   string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

type FiscalPeriod struct {
	PeriodID string
	ChurchID string
	Year     int
	Month    int
	Status   string
	AuditFields
}

type BeginningBalance struct {
	BalanceID              string
	ChurchID               string
	EffectiveDate          time.Time
	Status                 string
	GeneratedJournalNumber *string
	AuditFields
}

type BeginningBalanceEntry struct {
	EntryID     string
	BalanceID   string
	AccountID   string
	Amount      decimal.Decimal
	BalanceType string
}

type Church struct {
	ChurchID string
	Name     string
	Address  string
	AuditFields
}

type ChurchMember struct {
	UserID   string
	ChurchID string
	Role     string
	JoinedAt time.Time
}

type AuditRecord struct {
	AuditID    string
	ChurchID   string
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	Before     json.RawMessage
	After      json.RawMessage
	RecordedAt time.Time
}
