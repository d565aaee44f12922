package dto

import "github.com/gerejaku/church_ledger_app/internal/core/domain"

// CreateChurchRequest is the payload for registering a tenant.
type CreateChurchRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// ChurchResponse is the API representation of a church.
type ChurchResponse struct {
	ChurchID string `json:"churchID"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
}

func ToChurchResponse(c *domain.Church) ChurchResponse {
	return ChurchResponse{
		ChurchID: c.ChurchID,
		Name:     c.Name,
		Address:  c.Address,
	}
}

func ToListChurchesResponse(churches []domain.Church) []ChurchResponse {
	responses := make([]ChurchResponse, len(churches))
	for i := range churches {
		responses[i] = ToChurchResponse(&churches[i])
	}
	return responses
}
