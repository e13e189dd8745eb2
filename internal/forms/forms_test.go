package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"dealbook/internal/models"
	"dealbook/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func postContext(values url.Values) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestAgreementForm(t *testing.T) {
	valid := url.Values{
		"creditor":       {"3"},
		"creditor_first": {""},
		"agreement_code": {" Ц-1 "},
		"agreement_date": {"2024-05-20T09:15"},
		"agreement_type": {"2"},
		"total_sum":      {"100 000,50"},
		"total_amount":   {"12"},
	}

	t.Run("valid", func(t *testing.T) {
		var f AgreementForm
		errs := Bind(postContext(valid), &f)
		in, more := f.Input(true)
		errs.Merge(more)
		if errs.Any() {
			t.Fatalf("unexpected errors %v", errs)
		}
		if in.CreditorID != 3 || in.CreditorFirstID != nil {
			t.Errorf("unexpected creditors %d / %v", in.CreditorID, in.CreditorFirstID)
		}
		if in.AgreementCode != "Ц-1" {
			t.Errorf("expected trimmed code, got %q", in.AgreementCode)
		}
		if in.AgreementType != models.AgreementTypeOutsourcing {
			t.Errorf("expected outsourcing, got %d", in.AgreementType)
		}
		if !in.TotalSum.Equal(decimal.RequireFromString("100000.5")) {
			t.Errorf("expected sum 100000.50, got %s", in.TotalSum)
		}
		want := time.Date(2024, 5, 20, 9, 15, 0, 0, time.Local)
		if in.AgreementDate == nil || !in.AgreementDate.Equal(want) {
			t.Errorf("expected date %v, got %v", want, in.AgreementDate)
		}
	})

	t.Run("missing_code_keeps_submitted_values", func(t *testing.T) {
		values := url.Values{}
		for k, v := range valid {
			values[k] = v
		}
		values.Set("agreement_code", "")
		values.Set("total_sum", "12,5")

		var f AgreementForm
		errs := Bind(postContext(values), &f)
		if _, ok := errs["agreement_code"]; !ok {
			t.Errorf("expected agreement_code error, got %v", errs)
		}
		if f.TotalSum != "12,5" {
			t.Errorf("expected submitted value to be kept, got %q", f.TotalSum)
		}
	})

	t.Run("bad_values", func(t *testing.T) {
		f := AgreementForm{
			Creditor:      "x",
			CreditorFirst: "0",
			AgreementCode: "A",
			AgreementDate: "31.02.2024 10:00",
			AgreementType: "7",
			TotalSum:      "123456789",
			TotalAmount:   "1.234",
		}
		_, errs := f.Input(true)
		for _, field := range []string{"creditor", "creditor_first", "agreement_date", "agreement_type", "total_sum", "total_amount"} {
			if _, ok := errs[field]; !ok {
				t.Errorf("expected an error for %s, got %v", field, errs)
			}
		}
	})

	t.Run("blank_date_on_update", func(t *testing.T) {
		f := AgreementForm{Creditor: "1", AgreementCode: "A", AgreementType: "1", TotalSum: "1", TotalAmount: "1"}

		in, errs := f.Input(false)
		if errs.Any() {
			t.Fatalf("unexpected errors %v", errs)
		}
		if in.AgreementDate != nil {
			t.Error("expected a nil date to keep the stored one")
		}

		_, errs = f.Input(true)
		if errs["agreement_date"] != msgRequired {
			t.Errorf("expected agreement_date to be required on create, got %v", errs)
		}
	})
}

func TestAgreementFormFrom(t *testing.T) {
	first := uint(4)
	a := &models.Agreement{
		CreditorID:      2,
		CreditorFirstID: &first,
		AgreementCode:   "A-1",
		AgreementDate:   time.Date(2023, 1, 2, 3, 4, 0, 0, time.UTC),
		AgreementType:   models.AgreementTypeCession,
		TotalSum:        decimal.RequireFromString("1500"),
		TotalAmount:     decimal.RequireFromString("3.5"),
	}
	f := AgreementFormFrom(a)
	if f.Creditor != "2" || f.CreditorFirst != "4" || f.AgreementDate != "2023-01-02T03:04" || f.TotalSum != "1500.00" || f.TotalAmount != "3.50" {
		t.Errorf("unexpected form %+v", f)
	}
}

func TestPortfolioForm(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := PortfolioForm{Type: "1", ProcessType: "6", TotalSum: "10", DatePlacement: "01.06.2024", CessionDate: "2024-07-01"}
		in, errs := f.Input(true)
		if errs.Any() {
			t.Fatalf("unexpected errors %v", errs)
		}
		if in.ProcessType != models.ProcessTypeBankruptcy {
			t.Errorf("expected bankruptcy, got %d", in.ProcessType)
		}
		if in.DatePlacement == nil || !in.DatePlacement.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected placement %v", in.DatePlacement)
		}
		if in.DateFinish != nil {
			t.Error("expected blank date_finish to be nil")
		}
	})

	t.Run("placement_required_on_create", func(t *testing.T) {
		f := PortfolioForm{Type: "1", ProcessType: "1", TotalSum: "10"}
		if _, errs := f.Input(true); errs["date_placement"] == "" {
			t.Error("expected date_placement error")
		}
		if _, errs := f.Input(false); errs.Any() {
			t.Errorf("unexpected errors on update %v", errs)
		}
	})

	t.Run("default_form", func(t *testing.T) {
		f := NewPortfolioForm(time.Date(2025, 3, 8, 15, 0, 0, 0, time.UTC))
		if f.DatePlacement != "2025-03-08" || f.Type != "1" || f.ProcessType != "1" {
			t.Errorf("unexpected defaults %+v", f)
		}
	})
}

func TestCreditorForm(t *testing.T) {
	var f CreditorForm
	errs := Bind(postContext(url.Values{"type": {"5"}, "name": {""}}), &f)
	if errs["type"] == "" || errs["name"] == "" {
		t.Errorf("expected type and name errors, got %v", errs)
	}

	f = CreditorForm{Type: "2", Name: " МФК "}
	in, errs := f.Input()
	if errs.Any() || in.Type != models.CreditorTypeMFKO || in.Name != "МФК" {
		t.Errorf("unexpected input %+v errors %v", in, errs)
	}
}

func TestErrorsAddKeepsFirst(t *testing.T) {
	errs := Errors{}
	errs.Add("a", "first")
	errs.Add("a", "second")
	if errs["a"] != "first" {
		t.Errorf("expected first message to win, got %q", errs["a"])
	}
}
