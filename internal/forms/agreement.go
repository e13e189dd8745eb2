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

// AgreementForm is the agreement create/update submission. The document
// file is read separately from the multipart body.
type AgreementForm struct {
	Creditor      string `form:"creditor" binding:"required"`
	CreditorFirst string `form:"creditor_first"`
	AgreementCode string `form:"agreement_code" binding:"required,max=250"`
	AgreementDate string `form:"agreement_date" binding:"omitempty,form_datetime"`
	AgreementType string `form:"agreement_type" binding:"required,agreement_type"`
	TotalSum      string `form:"total_sum" binding:"required,money"`
	TotalAmount   string `form:"total_amount" binding:"required,money"`
}

// NewAgreementForm returns a blank create form dated now.
func NewAgreementForm(now time.Time) AgreementForm {
	return AgreementForm{
		AgreementDate: format.InputDateTime(now),
		AgreementType: strconv.Itoa(int(models.AgreementTypeCession)),
	}
}

// AgreementFormFrom fills the form from a stored agreement.
func AgreementFormFrom(a *models.Agreement) AgreementForm {
	creditor := ""
	if a.CreditorID != 0 {
		creditor = format.ID(&a.CreditorID)
	}
	return AgreementForm{
		Creditor:      creditor,
		CreditorFirst: format.ID(a.CreditorFirstID),
		AgreementCode: a.AgreementCode,
		AgreementDate: format.InputDateTime(a.AgreementDate),
		AgreementType: strconv.Itoa(int(a.AgreementType)),
		TotalSum:      format.Amount(a.TotalSum),
		TotalAmount:   format.Amount(a.TotalAmount),
	}
}

// Input converts the submitted values. A blank agreement_date is an error
// on create and means "keep the stored date" on update.
func (f *AgreementForm) Input(create bool) (services.AgreementInput, Errors) {
	errs := Errors{}
	in := services.AgreementInput{
		AgreementCode: strings.TrimSpace(f.AgreementCode),
		TotalSum:      parseMoney(errs, "total_sum", f.TotalSum),
		TotalAmount:   parseMoney(errs, "total_amount", f.TotalAmount),
	}

	if strings.TrimSpace(f.Creditor) == "" {
		errs.Add("creditor", msgRequired)
	} else {
		in.CreditorID = parseRef(errs, "creditor", f.Creditor)
	}
	if strings.TrimSpace(f.CreditorFirst) != "" {
		id := parseRef(errs, "creditor_first", f.CreditorFirst)
		if id != 0 {
			in.CreditorFirstID = &id
		}
	}
	if in.AgreementCode == "" {
		errs.Add("agreement_code", msgRequired)
	}

	in.AgreementDate = parseOptionalDate(errs, "agreement_date", f.AgreementDate, validator.ParseDateTime)
	if create && in.AgreementDate == nil {
		errs.Add("agreement_date", msgRequired)
	}

	in.AgreementType = models.AgreementType(parseChoice(errs, "agreement_type", f.AgreementType))
	if !in.AgreementType.Valid() {
		errs.Add("agreement_type", msgInvalidChoice)
	}
	return in, errs
}
