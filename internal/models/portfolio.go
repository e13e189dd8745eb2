package models

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// LabelMaxLen is the size of the label column, in characters.
const LabelMaxLen = 250

// Portfolio is a batch of claims placed for work under an agreement.
type Portfolio struct {
	Base
	Label         string          `gorm:"size:250" json:"label"`
	Type          PortfolioType   `gorm:"not null;default:1" json:"type"`
	ProcessType   ProcessType     `gorm:"not null;default:1" json:"process_type"`
	AgreementID   uint            `gorm:"not null;index" json:"agreement_id"`
	TotalSum      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_sum"`
	DatePlacement time.Time       `gorm:"type:date;not null" json:"date_placement"`
	DateFinish    *time.Time      `gorm:"type:date" json:"date_finish,omitempty"`
	CessionDate   *time.Time      `gorm:"type:date" json:"cession_date,omitempty"`

	Agreement *Agreement `gorm:"foreignKey:AgreementID" json:"-"`
}

// TableName keeps the historical table name.
func (Portfolio) TableName() string { return "credit_portfolio" }

// String returns the label, or a placeholder for unnamed portfolios.
func (p Portfolio) String() string {
	if p.Label == "" {
		return "Без названия"
	}
	return p.Label
}

// DefaultLabel derives the display label from the parent agreement:
// {creditor}_{agreement type}_{placement DD.MM.YYYY}_{process type}.
// The agreement's Creditor must be loaded. A long creditor name is cut so
// the label fits LabelMaxLen.
func (p Portfolio) DefaultLabel(agreement *Agreement) string {
	suffix := "_" + agreement.AgreementType.Label() +
		"_" + p.DatePlacement.Format("02.01.2006") +
		"_" + p.ProcessType.Label()

	name := []rune(agreement.CreditorName())
	if room := LabelMaxLen - utf8.RuneCountInString(suffix); len(name) > room {
		name = name[:max(room, 0)]
	}
	return string(name) + suffix
}
