package mapping

import (
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	"github.com/gerejaku/church_ledger_app/internal/models"
)

func ToModelBeginningBalance(d domain.BeginningBalance) models.BeginningBalance {
	return models.BeginningBalance{
		BalanceID:              d.BalanceID,
		ChurchID:               d.ChurchID,
		EffectiveDate:          d.EffectiveDate,
		Status:                 string(d.Status),
		GeneratedJournalNumber: d.GeneratedJournalNumber,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainBeginningBalance(m models.BeginningBalance, entries []models.BeginningBalanceEntry) domain.BeginningBalance {
	d := domain.BeginningBalance{
		BalanceID:              m.BalanceID,
		ChurchID:               m.ChurchID,
		EffectiveDate:          m.EffectiveDate,
		Status:                 domain.BeginningBalanceStatus(m.Status),
		GeneratedJournalNumber: m.GeneratedJournalNumber,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
	d.Entries = make([]domain.BeginningBalanceEntry, len(entries))
	for i, e := range entries {
		d.Entries[i] = ToDomainBeginningBalanceEntry(e)
	}
	return d
}

func ToModelBeginningBalanceEntry(d domain.BeginningBalanceEntry) models.BeginningBalanceEntry {
	return models.BeginningBalanceEntry{
		EntryID:     d.EntryID,
		BalanceID:   d.BalanceID,
		AccountID:   d.AccountID,
		Amount:      d.Amount,
		BalanceType: string(d.BalanceType),
	}
}

func ToDomainBeginningBalanceEntry(m models.BeginningBalanceEntry) domain.BeginningBalanceEntry {
	return domain.BeginningBalanceEntry{
		EntryID:     m.EntryID,
		BalanceID:   m.BalanceID,
		AccountID:   m.AccountID,
		Amount:      m.Amount,
		BalanceType: domain.BalanceType(m.BalanceType),
	}
}
