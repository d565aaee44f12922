package mapping

import (
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	"github.com/gerejaku/church_ledger_app/internal/models"
)

func ToModelJournal(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalID:     d.JournalID,
		ChurchID:      d.ChurchID,
		JournalNumber: d.JournalNumber,
		JournalDate:   d.JournalDate,
		Description:   d.Description,
		JournalType:   string(d.JournalType),
		Status:        string(d.Status),
		TotalDebit:    d.TotalDebit,
		TotalCredit:   d.TotalCredit,
		ApprovedBy:    d.ApprovedBy,
		ApprovedAt:    d.ApprovedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainJournal(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		JournalID:     m.JournalID,
		ChurchID:      m.ChurchID,
		JournalNumber: m.JournalNumber,
		JournalDate:   m.JournalDate,
		Description:   m.Description,
		JournalType:   domain.JournalType(m.JournalType),
		Status:        domain.JournalStatus(m.Status),
		TotalDebit:    m.TotalDebit,
		TotalCredit:   m.TotalCredit,
		ApprovedBy:    m.ApprovedBy,
		ApprovedAt:    m.ApprovedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		JournalID:   d.JournalID,
		AccountID:   d.AccountID,
		Description: d.Description,
		Debit:       d.Debit,
		Credit:      d.Credit,
	}
}

func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		JournalID:   m.JournalID,
		AccountID:   m.AccountID,
		Description: m.Description,
		Debit:       m.Debit,
		Credit:      m.Credit,
	}
}

func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		lines[i] = ToDomainJournalLine(m)
	}
	return lines
}
