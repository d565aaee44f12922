package dto

import (
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BeginningBalanceEntryRequest is one account's opening amount.
type BeginningBalanceEntryRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	BalanceType string          `json:"balanceType" binding:"required,oneof=DEBIT CREDIT"`
}

// CreateBeginningBalanceRequest is the payload for an opening-balance snapshot.
type CreateBeginningBalanceRequest struct {
	EffectiveDate time.Time                      `json:"effectiveDate" binding:"required"`
	Entries       []BeginningBalanceEntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// BeginningBalanceEntryResponse mirrors one snapshot entry.
type BeginningBalanceEntryResponse struct {
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Amount      decimal.Decimal `json:"amount"`
	BalanceType string          `json:"balanceType"`
}

// BeginningBalanceResponse is the API representation of a snapshot.
type BeginningBalanceResponse struct {
	BalanceID              string                          `json:"balanceID"`
	EffectiveDate          time.Time                       `json:"effectiveDate"`
	Status                 string                          `json:"status"`
	GeneratedJournalNumber *string                         `json:"generatedJournalNumber,omitempty"`
	Entries                []BeginningBalanceEntryResponse `json:"entries"`
	CreatedAt              time.Time                       `json:"createdAt"`
}

func ToBeginningBalanceResponse(b *domain.BeginningBalance) BeginningBalanceResponse {
	entries := make([]BeginningBalanceEntryResponse, len(b.Entries))
	for i, e := range b.Entries {
		entries[i] = BeginningBalanceEntryResponse{
			EntryID:     e.EntryID,
			AccountID:   e.AccountID,
			Amount:      e.Amount,
			BalanceType: string(e.BalanceType),
		}
	}
	return BeginningBalanceResponse{
		BalanceID:              b.BalanceID,
		EffectiveDate:          b.EffectiveDate,
		Status:                 string(b.Status),
		GeneratedJournalNumber: b.GeneratedJournalNumber,
		Entries:                entries,
		CreatedAt:              b.CreatedAt,
	}
}
