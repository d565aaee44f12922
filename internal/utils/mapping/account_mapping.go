package mapping

import (
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	"github.com/gerejaku/church_ledger_app/internal/models"
)

// ToModelAccount converts a domain account for persistence.
func ToModelAccount(d domain.Account) models.Account {
	var parentID *string
	if d.ParentAccountID != "" {
		p := d.ParentAccountID
		parentID = &p
	}
	return models.Account{
		AccountID:       d.AccountID,
		ChurchID:        d.ChurchID,
		Code:            d.Code,
		Name:            d.Name,
		AccountType:     string(d.AccountType),
		ParentAccountID: parentID,
		Description:     d.Description,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a persisted account back to the domain type.
func ToDomainAccount(m models.Account) domain.Account {
	parentID := ""
	if m.ParentAccountID != nil {
		parentID = *m.ParentAccountID
	}
	return domain.Account{
		AccountID:       m.AccountID,
		ChurchID:        m.ChurchID,
		Code:            m.Code,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		ParentAccountID: parentID,
		Description:     m.Description,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
