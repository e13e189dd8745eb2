package models

// AuditLog records every successful write made through the forms.
type AuditLog struct {
	Base
	Action       string `gorm:"not null;index" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   uint   `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Summary      string `json:"summary"`
	Changes      string `json:"changes,omitempty"`
}
