package validator

import (
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"plain", "1500", "1500", nil},
		{"comma_decimal", "1500,5", "1500.5", nil},
		{"grouped", "100 000,50", "100000.5", nil},
		{"nbsp_grouped", "1 000.25", "1000.25", nil},
		{"max_digits", "99999999.99", "99999999.99", nil},
		{"leading_zeros", "000123.10", "123.1", nil},
		{"negative", "-5", "-5", nil},
		{"too_many_fraction_digits", "1.234", "", ErrTooManyDigit},
		{"too_many_integer_digits", "123456789", "", ErrTooManyDigit},
		{"letters", "12a", "", ErrNotANumber},
		{"blank", "", "", ErrNotANumber},
		{"two_separators", "1.2.3", "", ErrNotANumber},
		{"comma_grouping", "1,000.50", "", ErrNotANumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2024-04-01", "01.04.2024", " 2024-04-01 "} {
		got, err := ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", in, err)
		}
		if !got.Equal(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("ParseDate(%q) = %v", in, got)
		}
	}
	if _, err := ParseDate("2024-13-01"); !errors.Is(err, ErrBadDate) {
		t.Errorf("expected ErrBadDate, got %v", err)
	}
}

func TestParseDateTime(t *testing.T) {
	for _, in := range []string{"2024-03-15T10:30", "2024-03-15 10:30:00", "15.03.2024 10:30"} {
		got, err := ParseDateTime(in)
		if err != nil {
			t.Fatalf("ParseDateTime(%q): %v", in, err)
		}
		if got.Hour() != 10 || got.Minute() != 30 || got.Day() != 15 {
			t.Errorf("ParseDateTime(%q) = %v", in, got)
		}
	}
	if _, err := ParseDateTime("yesterday"); !errors.Is(err, ErrBadDate) {
		t.Errorf("expected ErrBadDate, got %v", err)
	}
}

type sampleForm struct {
	Name  string `form:"name" binding:"required,max=5"`
	Sum   string `form:"total_sum" binding:"required,money"`
	Kind  string `form:"agreement_type" binding:"required,agreement_type"`
	Day   string `form:"date_placement" binding:"omitempty,form_date"`
	Stamp string `form:"agreement_date" binding:"omitempty,form_datetime"`
}

func TestFieldMessages(t *testing.T) {
	Register()

	t.Run("keyed_by_form_name", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&sampleForm{
			Name:  "toolong",
			Sum:   "1.234",
			Kind:  "9",
			Day:   "32.01.2024",
			Stamp: "noon",
		})
		msgs := FieldMessages(err)
		for _, field := range []string{"name", "total_sum", "agreement_type", "date_placement", "agreement_date"} {
			if msgs[field] == "" {
				t.Errorf("expected a message for %s, got %v", field, msgs)
			}
		}
		if msgs["agreement_type"] != "Выберите корректный вариант." {
			t.Errorf("unexpected choice message %q", msgs["agreement_type"])
		}
	})

	t.Run("required", func(t *testing.T) {
		msgs := FieldMessages(binding.Validator.ValidateStruct(&sampleForm{}))
		if msgs["name"] != "Обязательное поле." {
			t.Errorf("unexpected message %q", msgs["name"])
		}
	})

	t.Run("valid_form", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&sampleForm{Name: "ok", Sum: "10,50", Kind: "2", Day: "2024-04-01"})
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("non_validation_error", func(t *testing.T) {
		msgs := FieldMessages(errors.New("boom"))
		if msgs["__all__"] == "" {
			t.Errorf("expected a form-level message, got %v", msgs)
		}
	})
}
