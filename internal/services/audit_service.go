package services

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"

	"dealbook/internal/logger"
	"dealbook/internal/models"
)

// AuditEntry describes one change to a record of the register.
type AuditEntry struct {
	Action       string
	ResourceType string
	ResourceID   uint
	IPAddress    string
	Summary      string
	Changes      map[string]any
}

// kind is the stored action, e.g. "DELETE_AGREEMENT".
func (e AuditEntry) kind() string {
	return e.Action + "_" + strings.ToUpper(e.ResourceType)
}

type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Record stores entry. Failures are logged and swallowed: the change it
// describes has already been committed.
func (s *auditService) Record(entry AuditEntry) {
	log := logger.Named("audit").With(
		"action", entry.kind(),
		"resource_id", entry.ResourceID,
	)

	row := models.AuditLog{
		Action:       entry.kind(),
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		IPAddress:    entry.IPAddress,
		Summary:      entry.Summary,
	}
	if len(entry.Changes) > 0 {
		data, err := json.Marshal(entry.Changes)
		if err != nil {
			log.Warnw("changes dropped", "error", err)
			data = []byte("{}")
		}
		row.Changes = string(data)
	}

	if err := s.db.Create(&row).Error; err != nil {
		log.Errorw("audit entry not stored", "error", err)
	}
}
