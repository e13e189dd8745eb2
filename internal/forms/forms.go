// Package forms holds the HTML form submissions. Each form keeps the raw
// submitted strings so a rejected submission can be rendered back exactly
// as typed, and converts itself into a typed service input.
package forms

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"dealbook/internal/validator"
)

const (
	msgRequired      = "Обязательное поле."
	msgInvalidChoice = "Выберите корректный вариант."
)

// Errors maps a form field name to its message. The "__all__" key holds
// errors not tied to a single field.
type Errors map[string]string

// Add records msg for field unless the field already has a message.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Merge adds every message of other that e does not have yet.
func (e Errors) Merge(other map[string]string) {
	for field, msg := range other {
		e.Add(field, msg)
	}
}

// Any reports whether at least one error is recorded.
func (e Errors) Any() bool { return len(e) > 0 }

// Bind fills form from the request body and runs the binding validators.
// The form is populated even when validation fails.
func Bind(c *gin.Context, form any) Errors {
	errs := Errors{}
	if err := c.ShouldBind(form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			errs.Add("__all__", "Размер запроса превышает "+strconv.FormatInt(tooLarge.Limit>>20, 10)+" МБ.")
			return errs
		}
		errs.Merge(validator.FieldMessages(err))
	}
	return errs
}

func parseChoice(errs Errors, field, raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		errs.Add(field, msgInvalidChoice)
		return 0
	}
	return n
}

func parseRef(errs Errors, field, raw string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil || id == 0 {
		errs.Add(field, msgInvalidChoice)
		return 0
	}
	return uint(id)
}

func parseMoney(errs Errors, field, raw string) decimal.Decimal {
	if strings.TrimSpace(raw) == "" {
		errs.Add(field, msgRequired)
		return decimal.Zero
	}
	d, err := validator.ParseMoney(raw)
	if err != nil {
		errs.Add(field, "Введите число: не более 10 цифр, из них не более 2 после запятой.")
		return decimal.Zero
	}
	return d
}

// parseOptionalDate returns nil for a blank value.
func parseOptionalDate(errs Errors, field, raw string, parse func(string) (time.Time, error)) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	t, err := parse(raw)
	if err != nil {
		errs.Add(field, "Введите правильную дату.")
		return nil
	}
	return &t
}
