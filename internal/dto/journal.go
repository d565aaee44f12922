package dto

import (
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one debit or credit line of a new journal.
// Exactly one of Debit/Credit must be positive; the service enforces this
// beyond what binding can express.
type CreateJournalLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// CreateJournalRequest is the payload for creating a journal entry.
type CreateJournalRequest struct {
	Date        time.Time                  `json:"date" binding:"required"`
	Description string                     `json:"description" binding:"required"`
	JournalType string                     `json:"journalType" binding:"omitempty,oneof=GENERAL BEGINNING_BALANCE"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateJournalRequest is a partial update of a draft journal. When Lines is
// non-nil the whole line set is replaced and totals are re-derived.
type UpdateJournalRequest struct {
	Date        *time.Time                  `json:"date"`
	Description *string                     `json:"description"`
	Lines       *[]CreateJournalLineRequest `json:"lines" binding:"omitempty,min=2,dive"`
}

// ListJournalsParams filters the journal listing.
type ListJournalsParams struct {
	Status    *string    `form:"status" binding:"omitempty,oneof=DRAFT APPROVED"`
	DateFrom  *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo    *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Limit     int        `form:"limit"`
	NextToken *string    `form:"nextToken"`
}

// JournalLineResponse is the API representation of a journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalResponse is the API representation of a journal entry.
type JournalResponse struct {
	JournalID     string                `json:"journalID"`
	JournalNumber string                `json:"journalNumber"`
	Date          time.Time             `json:"date"`
	Description   string                `json:"description"`
	JournalType   string                `json:"journalType"`
	Status        string                `json:"status"`
	TotalDebit    decimal.Decimal       `json:"totalDebit"`
	TotalCredit   decimal.Decimal       `json:"totalCredit"`
	IsBalanced    bool                  `json:"isBalanced"`
	ApprovedBy    *string               `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time            `json:"approvedAt,omitempty"`
	Lines         []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
}

// ListJournalsResponse is a page of journals plus the cursor for the next page.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:      l.LineID,
		AccountID:   l.AccountID,
		Description: l.Description,
		Debit:       l.Debit,
		Credit:      l.Credit,
	}
}

func ToJournalResponse(j *domain.JournalEntry) JournalResponse {
	resp := JournalResponse{
		JournalID:     j.JournalID,
		JournalNumber: j.JournalNumber,
		Date:          j.JournalDate,
		Description:   j.Description,
		JournalType:   string(j.JournalType),
		Status:        string(j.Status),
		TotalDebit:    j.TotalDebit,
		TotalCredit:   j.TotalCredit,
		IsBalanced:    j.IsBalanced(),
		ApprovedBy:    j.ApprovedBy,
		ApprovedAt:    j.ApprovedAt,
		CreatedAt:     j.CreatedAt,
		CreatedBy:     j.CreatedBy,
	}
	if len(j.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(j.Lines))
		for i := range j.Lines {
			resp.Lines[i] = ToJournalLineResponse(&j.Lines[i])
		}
	}
	return resp
}
