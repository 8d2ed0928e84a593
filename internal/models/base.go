package models

import "time"

// Base contains common columns for ledger tables. Rows are never soft-deleted,
// so aggregation queries can join tables without a deleted_at filter.
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
