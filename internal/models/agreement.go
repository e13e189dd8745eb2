package models

import (
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Agreement is a debt-collection agreement with a creditor. Portfolios
// placed under the agreement are deleted together with it.
type Agreement struct {
	Base
	CreditorID      uint            `gorm:"not null;index" json:"creditor_id"`
	CreditorFirstID *uint           `gorm:"index" json:"creditor_first_id,omitempty"`
	AgreementCode   string          `gorm:"size:250;not null" json:"agreement_code"`
	AgreementDate   time.Time       `gorm:"not null" json:"agreement_date"`
	AgreementType   AgreementType   `gorm:"not null;default:1" json:"agreement_type"`
	TotalSum        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_sum"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	// Storage key of the uploaded document, agreements/<code>/<file>.
	AgreementDoc         string `gorm:"size:1024" json:"agreement_doc,omitempty"`
	AgreementDocChecksum string `gorm:"size:64" json:"agreement_doc_checksum,omitempty"`

	// Relationships
	Creditor      *Creditor   `gorm:"foreignKey:CreditorID;constraint:OnDelete:CASCADE" json:"creditor,omitempty"`
	CreditorFirst *Creditor   `gorm:"foreignKey:CreditorFirstID;constraint:OnDelete:RESTRICT" json:"creditor_first,omitempty"`
	Portfolios    []Portfolio `gorm:"foreignKey:AgreementID;constraint:OnDelete:CASCADE" json:"portfolios,omitempty"`
}

// TableName keeps the historical table name.
func (Agreement) TableName() string { return "agreement" }

// String renders "<code> (<type>)".
func (a Agreement) String() string {
	return a.AgreementCode + " (" + a.AgreementType.Label() + ")"
}

// CreditorName returns the resolved creditor name, or "" when not loaded.
func (a Agreement) CreditorName() string {
	if a.Creditor == nil {
		return ""
	}
	return a.Creditor.Name
}

// CreditorFirstName returns the resolved original creditor name, or "".
func (a Agreement) CreditorFirstName() string {
	if a.CreditorFirst == nil {
		return ""
	}
	return a.CreditorFirst.Name
}

// DocumentName returns the uploaded file name of the stored document,
// without the upload id prefix.
func (a Agreement) DocumentName() string {
	if a.AgreementDoc == "" {
		return ""
	}
	base := path.Base(a.AgreementDoc)
	if id, name, ok := strings.Cut(base, "_"); ok {
		if _, err := uuid.Parse(id); err == nil {
			return name
		}
	}
	return base
}

// DocumentKey builds the storage key of one upload:
// agreements/<code>/<upload id>_<file name>. Agreement codes are not unique,
// so the upload id keeps two uploads from sharing an object. The code and
// the file name are reduced to a single safe path segment.
func DocumentKey(agreementCode string, upload uuid.UUID, filename string) string {
	name := safeSegment(path.Base(strings.ReplaceAll(filename, "\\", "/")))
	return path.Join("agreements",
		clipBytes(safeSegment(agreementCode), maxSegmentBytes),
		upload.String()+"_"+clipBytes(name, maxSegmentBytes-37))
}

// maxSegmentBytes keeps every key segment within common file name limits.
const maxSegmentBytes = 200

// clipBytes cuts s to at most n bytes on a rune boundary, keeping the file
// extension when there is room for it.
func clipBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	ext := path.Ext(s)
	if len(ext) >= n/2 {
		ext = ""
	}
	head := s[:len(s)-len(ext)]
	limit := n - len(ext)
	for limit > 0 && !utf8.RuneStart(head[limit]) {
		limit--
	}
	return head[:limit] + ext
}

func safeSegment(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', 0:
			return '_'
		}
		return r
	}, s)
	if s == "" || s == "." || s == ".." {
		return "_"
	}
	return s
}
