package models

// Creditor is a lending institution that agreements are signed with.
type Creditor struct {
	Base
	Type CreditorType `gorm:"not null" json:"type"`
	Name string       `gorm:"size:250;not null" json:"name"`
}

// TableName keeps the historical table name.
func (Creditor) TableName() string { return "credit_creditor" }

// String returns the creditor name.
func (c Creditor) String() string { return c.Name }
