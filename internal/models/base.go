package models

import (
	"time"

	"gorm.io/gorm"
)

// Base contains the identifier and bookkeeping timestamps shared by all tables.
// The timestamps are stamped by the hooks below rather than by GORM's
// CreatedAt/UpdatedAt conventions.
type Base struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DateAdd    time.Time `gorm:"column:date_add;not null" json:"date_add"`
	DateUpdate time.Time `gorm:"column:date_update;not null" json:"date_update"`
}

// BeforeCreate sets date_add once and date_update on first persist.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if b.DateAdd.IsZero() {
		b.DateAdd = now
	}
	b.DateUpdate = now
	return nil
}

// BeforeUpdate refreshes date_update on every persist.
func (b *Base) BeforeUpdate(tx *gorm.DB) error {
	b.DateUpdate = time.Now()
	return nil
}

// All lists every model, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&Creditor{},
		&Agreement{},
		&Portfolio{},
		&AuditLog{},
	}
}
