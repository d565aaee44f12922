package dto

import (
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
)

// CreateAccountRequest is the payload for creating a chart-of-accounts entry.
type CreateAccountRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name" binding:"required"`
	AccountType     string  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	ParentAccountID *string `json:"parentAccountID"`
	Description     string  `json:"description"`
}

// UpdateAccountRequest is a partial update; nil fields are left unchanged.
type UpdateAccountRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// ListAccountsParams filters the account listing.
type ListAccountsParams struct {
	AccountType *string `form:"accountType" binding:"omitempty,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	Search      string  `form:"q"`
	Limit       int     `form:"limit"`
	Offset      int     `form:"offset"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID       string    `json:"accountID"`
	Code            string    `json:"code,omitempty"`
	Name            string    `json:"name"`
	AccountType     string    `json:"accountType"`
	ParentAccountID string    `json:"parentAccountID,omitempty"`
	Description     string    `json:"description,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AccountTreeNode is one node of the chart-of-accounts hierarchy response.
type AccountTreeNode struct {
	AccountResponse
	Children []AccountTreeNode `json:"children"`
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		Code:            a.Code,
		Name:            a.Name,
		AccountType:     string(a.AccountType),
		ParentAccountID: a.ParentAccountID,
		Description:     a.Description,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
	}
}

func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}

func ToAccountTree(nodes []*domain.AccountNode) []AccountTreeNode {
	tree := make([]AccountTreeNode, len(nodes))
	for i, n := range nodes {
		tree[i] = AccountTreeNode{
			AccountResponse: ToAccountResponse(&n.Account),
			Children:        ToAccountTree(n.Children),
		}
	}
	return tree
}
