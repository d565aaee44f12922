package dto

import "github.com/gerejaku/church_ledger_app/internal/core/domain"

// FiscalPeriodResponse is the API representation of a fiscal period.
type FiscalPeriodResponse struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Status string `json:"status"`
}

func ToFiscalPeriodResponse(p *domain.FiscalPeriod) FiscalPeriodResponse {
	return FiscalPeriodResponse{
		Year:   p.Year,
		Month:  p.Month,
		Status: string(p.Status),
	}
}
