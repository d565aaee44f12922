package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceType is the side an opening-balance entry lands on.
type BalanceType string

const (
	BalanceDebit  BalanceType = "DEBIT"
	BalanceCredit BalanceType = "CREDIT"
)

// IsValid reports whether the balance type is one of the two sides.
func (t BalanceType) IsValid() bool {
	return t == BalanceDebit || t == BalanceCredit
}

// BeginningBalanceStatus tracks whether the snapshot has been posted yet.
// POSTED is terminal; a posted snapshot can never be posted again.
type BeginningBalanceStatus string

const (
	BeginningBalanceDraft  BeginningBalanceStatus = "DRAFT"
	BeginningBalancePosted BeginningBalanceStatus = "POSTED"
)

// BeginningBalance is an opening-balance snapshot that, once posted, produces
// exactly one generated journal entry at the effective date.
type BeginningBalance struct {
	BalanceID              string                  `json:"balanceID"` // Primary key (UUID)
	ChurchID               string                  `json:"churchID"`
	EffectiveDate          time.Time               `json:"effectiveDate"`
	Entries                []BeginningBalanceEntry `json:"entries"`
	Status                 BeginningBalanceStatus  `json:"status"`
	GeneratedJournalNumber *string                 `json:"generatedJournalNumber,omitempty"`
	AuditFields
}

// BeginningBalanceEntry is one account's opening amount.
type BeginningBalanceEntry struct {
	EntryID     string          `json:"entryID"` // Primary key (UUID)
	BalanceID   string          `json:"balanceID"`
	AccountID   string          `json:"accountID"`
	Amount      decimal.Decimal `json:"amount"` // Always positive
	BalanceType BalanceType     `json:"balanceType"`
}

// SumEntries returns the debit-side and credit-side totals of the entries.
func SumEntries(entries []BeginningBalanceEntry) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, e := range entries {
		if e.BalanceType == BalanceDebit {
			totalDebit = totalDebit.Add(e.Amount)
		} else {
			totalCredit = totalCredit.Add(e.Amount)
		}
	}
	return totalDebit, totalCredit
}
