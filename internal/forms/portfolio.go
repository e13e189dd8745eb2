package forms

import (
	"strconv"
	"strings"
	"time"

	"dealbook/internal/format"
	"dealbook/internal/models"
	"dealbook/internal/services"
	"dealbook/internal/validator"
)

// PortfolioForm is the portfolio create/update submission. The parent
// agreement always comes from the route, so the form has no agreement field.
type PortfolioForm struct {
	Label         string `form:"label" binding:"max=250"`
	Type          string `form:"type" binding:"required,portfolio_type"`
	ProcessType   string `form:"process_type" binding:"required,process_type"`
	TotalSum      string `form:"total_sum" binding:"required,money"`
	DatePlacement string `form:"date_placement" binding:"omitempty,form_date"`
	DateFinish    string `form:"date_finish" binding:"omitempty,form_date"`
	CessionDate   string `form:"cession_date" binding:"omitempty,form_date"`
}

// NewPortfolioForm returns a blank create form placed today.
func NewPortfolioForm(today time.Time) PortfolioForm {
	return PortfolioForm{
		Type:          strconv.Itoa(int(models.PortfolioTypeCession)),
		ProcessType:   strconv.Itoa(int(models.ProcessTypeLegal)),
		DatePlacement: format.InputDate(today),
	}
}

// PortfolioFormFrom fills the form from a stored portfolio.
func PortfolioFormFrom(p *models.Portfolio) PortfolioForm {
	return PortfolioForm{
		Label:         p.Label,
		Type:          strconv.Itoa(int(p.Type)),
		ProcessType:   strconv.Itoa(int(p.ProcessType)),
		TotalSum:      format.Amount(p.TotalSum),
		DatePlacement: format.InputDate(p.DatePlacement),
		DateFinish:    format.InputDate(p.DateFinish),
		CessionDate:   format.InputDate(p.CessionDate),
	}
}

// Input converts the submitted values. Blank dates are nil; date_placement
// is required on create only.
func (f *PortfolioForm) Input(create bool) (services.PortfolioInput, Errors) {
	errs := Errors{}
	in := services.PortfolioInput{
		Label:    strings.TrimSpace(f.Label),
		TotalSum: parseMoney(errs, "total_sum", f.TotalSum),
	}

	in.Type = models.PortfolioType(parseChoice(errs, "type", f.Type))
	if !in.Type.Valid() {
		errs.Add("type", msgInvalidChoice)
	}
	in.ProcessType = models.ProcessType(parseChoice(errs, "process_type", f.ProcessType))
	if !in.ProcessType.Valid() {
		errs.Add("process_type", msgInvalidChoice)
	}

	in.DatePlacement = parseOptionalDate(errs, "date_placement", f.DatePlacement, validator.ParseDate)
	if create && in.DatePlacement == nil {
		errs.Add("date_placement", msgRequired)
	}
	in.DateFinish = parseOptionalDate(errs, "date_finish", f.DateFinish, validator.ParseDate)
	in.CessionDate = parseOptionalDate(errs, "cession_date", f.CessionDate, validator.ParseDate)
	return in, errs
}
