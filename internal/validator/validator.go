// Package validator provides custom validation functions for Gin's binding
// engine and the parsers that turn submitted form strings into typed values.
package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"dealbook/internal/models"
)

// Money columns are decimal(10,2).
const (
	MoneyMaxDigits   = 10
	MoneyMaxDecimals = 2
)

var moneyRegex = regexp.MustCompile(`^[+-]?\d+([.,]\d+)?$`)

var dateLayouts = []string{"2006-01-02", "02.01.2006"}

var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"02.01.2006 15:04",
	"2006-01-02",
	"02.01.2006",
}

var registerOnce sync.Once

// Register registers all custom validators with the Gin binding engine and
// makes validation errors report the form field name instead of the Go name.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("money", validateMoney)
		_ = v.RegisterValidation("form_date", validateDate)
		_ = v.RegisterValidation("form_datetime", validateDateTime)
		_ = v.RegisterValidation("creditor_type", validateCreditorType)
		_ = v.RegisterValidation("agreement_type", validateAgreementType)
		_ = v.RegisterValidation("portfolio_type", validatePortfolioType)
		_ = v.RegisterValidation("process_type", validateProcessType)
	})
}

func validateMoney(fl validator.FieldLevel) bool {
	_, err := ParseMoney(fl.Field().String())
	return err == nil
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func validateDateTime(fl validator.FieldLevel) bool {
	_, err := ParseDateTime(fl.Field().String())
	return err == nil
}

func validateCreditorType(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	return err == nil && models.CreditorType(n).Valid()
}

func validateAgreementType(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	return err == nil && models.AgreementType(n).Valid()
}

func validatePortfolioType(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	return err == nil && models.PortfolioType(n).Valid()
}

func validateProcessType(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	return err == nil && models.ProcessType(n).Valid()
}

// Parse errors.
var (
	ErrNotANumber   = errors.New("not a number")
	ErrTooManyDigit = errors.New("too many digits")
	ErrBadDate      = errors.New("invalid date")
)

// ParseMoney parses an amount typed by a user. Spaces (including
// non-breaking ones) are treated as grouping and a comma as the decimal
// separator. The result has at most 10 digits with at most 2 fractional.
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '\t':
			return -1
		}
		return r
	}, s)
	if !moneyRegex.MatchString(s) {
		return decimal.Zero, ErrNotANumber
	}
	s = strings.Replace(s, ",", ".", 1)

	digits := strings.TrimLeft(s, "+-")
	intPart, frac, _ := strings.Cut(digits, ".")
	intPart = strings.TrimLeft(intPart, "0")
	if len(frac) > MoneyMaxDecimals || len(intPart) > MoneyMaxDigits-MoneyMaxDecimals {
		return decimal.Zero, ErrTooManyDigit
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	return d.Round(MoneyMaxDecimals), nil
}

// ParseDate parses a calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDate
}

// ParseDateTime parses a datetime-local value (or a bare date) in local time.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDate
}

// FieldMessages converts binding errors into field -> message pairs keyed
// by the form field name. Errors that are not validation errors are
// reported under the "__all__" key.
func FieldMessages(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["__all__"] = "Некорректные данные формы."
		return out
	}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Обязательное поле."
	case "max":
		return "Слишком длинное значение (максимум " + fe.Param() + " символов)."
	case "money":
		return "Введите число: не более 10 цифр, из них не более 2 после запятой."
	case "form_date":
		return "Введите правильную дату."
	case "form_datetime":
		return "Введите правильные дату и время."
	case "creditor_type", "agreement_type", "portfolio_type", "process_type", "numeric":
		return "Выберите корректный вариант."
	}
	return "Некорректное значение."
}
