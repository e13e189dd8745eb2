package forms

import (
	"strconv"
	"strings"

	"dealbook/internal/models"
	"dealbook/internal/services"
)

// CreditorForm is the creditor create/update submission.
type CreditorForm struct {
	Type string `form:"type" binding:"required,creditor_type"`
	Name string `form:"name" binding:"required,max=250"`
}

// CreditorFormFrom fills the form from a stored creditor.
func CreditorFormFrom(c *models.Creditor) CreditorForm {
	return CreditorForm{Type: strconv.Itoa(int(c.Type)), Name: c.Name}
}

// Input converts the submitted values.
func (f *CreditorForm) Input() (services.CreditorInput, Errors) {
	errs := Errors{}
	in := services.CreditorInput{Name: strings.TrimSpace(f.Name)}
	in.Type = models.CreditorType(parseChoice(errs, "type", f.Type))
	if !in.Type.Valid() {
		errs.Add("type", msgInvalidChoice)
	}
	if in.Name == "" {
		errs.Add("name", msgRequired)
	}
	return in, errs
}
