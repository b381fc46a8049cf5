package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents an entry in the chart of accounts. The treasury core only
// reads accounts; maintaining the chart belongs to the wider accounting system.
type Account struct {
	AccountID     string      `json:"accountID"`     // Primary Key (UUID)
	Code          string      `json:"code"`          // Chart-of-accounts code, e.g. "1-1010"
	Name          string      `json:"name"`          // User-defined name
	AccountType   AccountType `json:"accountType"`   // ASSET, LIABILITY, etc.
	NormalBalance Direction   `json:"normalBalance"` // DEBIT or CREDIT
	IsActive      bool        `json:"isActive"`      // Inactive accounts cannot be posted to
	AuditFields
}
