package mapping

import (
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	"github.com/gerejaku/church_ledger_app/internal/models"
)

func ToModelFiscalPeriod(d domain.FiscalPeriod) models.FiscalPeriod {
	return models.FiscalPeriod{
		PeriodID:    d.PeriodID,
		ChurchID:    d.ChurchID,
		Year:        d.Year,
		Month:       d.Month,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainFiscalPeriod(m models.FiscalPeriod) domain.FiscalPeriod {
	return domain.FiscalPeriod{
		PeriodID:    m.PeriodID,
		ChurchID:    m.ChurchID,
		Year:        m.Year,
		Month:       m.Month,
		Status:      domain.PeriodStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
