package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether the account type is one of the five ledger types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account represents a chart-of-accounts entry within one church.
type Account struct {
	AccountID       string      `json:"accountID"`       // Primary key (UUID)
	ChurchID        string      `json:"churchID"`        // Owning tenant (NON-NULL)
	Code            string      `json:"code"`            // Optional short code, e.g. "1-100"
	Name            string      `json:"name"`            // Unique per church
	AccountType     AccountType `json:"accountType"`     // ASSET, LIABILITY, etc.
	ParentAccountID string      `json:"parentAccountID"` // Nullable self-reference for the account tree
	Description     string      `json:"description"`
	IsActive        bool        `json:"isActive"`
	AuditFields
}

// AccountNode is one node of the chart-of-accounts hierarchy.
type AccountNode struct {
	Account  Account        `json:"account"`
	Children []*AccountNode `json:"children"`
}

// BuildAccountTree arranges a flat account list into its parent/child
// hierarchy. Accounts whose parent is absent from the list are treated as
// roots rather than dropped.
func BuildAccountTree(accounts []Account) []*AccountNode {
	nodes := make(map[string]*AccountNode, len(accounts))
	for i := range accounts {
		nodes[accounts[i].AccountID] = &AccountNode{Account: accounts[i]}
	}

	roots := make([]*AccountNode, 0)
	for i := range accounts {
		node := nodes[accounts[i].AccountID]
		if parent, ok := nodes[accounts[i].ParentAccountID]; ok && accounts[i].ParentAccountID != accounts[i].AccountID {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
	}
	return roots
}
