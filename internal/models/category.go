package models

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#3b82f6"

// Category groups transactions for a single user. Categories are never shared.
type Category struct {
	Base
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Color  string `gorm:"not null;default:'#3b82f6'" json:"color"`
}

// DefaultCategories are seeded for every new user, in this order.
var DefaultCategories = []Category{
	{Name: "Food & Dining", Color: "#ef4444"},
	{Name: "Transportation", Color: "#3b82f6"},
	{Name: "Shopping", Color: "#8b5cf6"},
	{Name: "Entertainment", Color: "#10b981"},
	{Name: "Bills & Utilities", Color: "#f59e0b"},
	{Name: "Healthcare", Color: "#ec4899"},
	{Name: "Education", Color: "#06b6d4"},
	{Name: "Travel", Color: "#84cc16"},
	{Name: "Income", Color: "#22c55e"},
	{Name: "Other", Color: "#6b7280"},
}
