package models

import "time"

// TransactionType represents the direction of a money movement
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single ledger entry. Amounts are stored in cents and the
// date is a calendar day at UTC midnight.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index:idx_transactions_user_date,priority:1" json:"user_id"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	AmountCents int64           `gorm:"type:bigint;not null" json:"amount_cents"`
	Description string          `json:"description"`
	Type        TransactionType `gorm:"not null" json:"transaction_type"`
	Date        time.Time       `gorm:"not null;index:idx_transactions_user_date,priority:2" json:"date"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
