package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the lifecycle state of a journal entry.
// APPROVED is terminal: an approved journal can never be updated or deleted.
type JournalStatus string

const (
	JournalDraft    JournalStatus = "DRAFT"
	JournalApproved JournalStatus = "APPROVED"
)

// JournalType distinguishes ordinary entries from generated ones.
type JournalType string

const (
	JournalTypeGeneral          JournalType = "GENERAL"
	JournalTypeBeginningBalance JournalType = "BEGINNING_BALANCE"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple debit/credit lines posted against accounts of one church.
type JournalEntry struct {
	JournalID     string        `json:"journalID"`     // Primary key (UUID)
	ChurchID      string        `json:"churchID"`      // Owning tenant (NON-NULL)
	JournalNumber string        `json:"journalNumber"` // e.g. JRN-2025-11-0001, unique per church-month
	JournalDate   time.Time     `json:"journalDate"`   // Date the event occurred
	Description   string        `json:"description"`
	JournalType   JournalType   `json:"journalType"`
	Status        JournalStatus `json:"status"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`  // Cached Σ(line.Debit)
	TotalCredit   decimal.Decimal `json:"totalCredit"` // Cached Σ(line.Credit)
	ApprovedBy    *string       `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time    `json:"approvedAt,omitempty"`
	Lines         []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// IsBalanced reports whether the cached totals agree.
func (j *JournalEntry) IsBalanced() bool {
	return j.TotalDebit.Equal(j.TotalCredit)
}

// JournalLine is a single debit or credit against one account.
// Exactly one of Debit/Credit is positive; the other is zero.
type JournalLine struct {
	LineID      string          `json:"lineID"` // Primary key (UUID)
	JournalID   string          `json:"journalID"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Validate enforces the single-side rule on the line.
func (l *JournalLine) Validate() error {
	debitSet := l.Debit.IsPositive()
	creditSet := l.Credit.IsPositive()
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return fmt.Errorf("line for account %s has a negative amount", l.AccountID)
	}
	if debitSet && creditSet {
		return fmt.Errorf("line for account %s sets both debit and credit", l.AccountID)
	}
	if !debitSet && !creditSet {
		return fmt.Errorf("line for account %s sets neither debit nor credit", l.AccountID)
	}
	return nil
}

// SumLines returns the debit and credit totals of the given lines.
func SumLines(lines []JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	return totalDebit, totalCredit
}
