package mapping

import (
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	"github.com/gerejaku/church_ledger_app/internal/models"
)

func ToModelChurch(d domain.Church) models.Church {
	return models.Church{
		ChurchID:    d.ChurchID,
		Name:        d.Name,
		Address:     d.Address,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainChurch(m models.Church) domain.Church {
	return domain.Church{
		ChurchID:    m.ChurchID,
		Name:        m.Name,
		Address:     m.Address,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelChurchMember(d domain.ChurchMember) models.ChurchMember {
	return models.ChurchMember{
		UserID:   d.UserID,
		ChurchID: d.ChurchID,
		Role:     string(d.Role),
		JoinedAt: d.JoinedAt,
	}
}

func ToDomainChurchMember(m models.ChurchMember) domain.ChurchMember {
	return domain.ChurchMember{
		UserID:   m.UserID,
		ChurchID: m.ChurchID,
		Role:     domain.ChurchRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}
