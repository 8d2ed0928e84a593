package models

// Budget is a spending limit for one category in one calendar month.
type Budget struct {
	Base
	UserID      uint   `gorm:"not null;uniqueIndex:idx_budgets_user_category_month,priority:1" json:"user_id"`
	CategoryID  uint   `gorm:"not null;uniqueIndex:idx_budgets_user_category_month,priority:2" json:"category_id"`
	AmountCents int64  `gorm:"type:bigint;not null" json:"amount_cents"`
	MonthYear   string `gorm:"size:7;not null;uniqueIndex:idx_budgets_user_category_month,priority:3" json:"month_year"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
