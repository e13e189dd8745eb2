package services

import (
	"testing"

	"dealbook/internal/models"
	"dealbook/internal/testutil"
)

func TestNotices(t *testing.T) {
	a := &models.Agreement{AgreementCode: "Д-1"}
	if got := AgreementNotice(ActionCreate, a); got != "Договор «Д-1» создан." {
		t.Errorf("unexpected notice %q", got)
	}
	if got := PortfolioNotice(ActionDelete, &models.Portfolio{}); got != "Портфель «Без названия» удалён." {
		t.Errorf("unexpected notice %q", got)
	}
	if got := CreditorNotice(ActionUpdate, &models.Creditor{Name: "Банк"}); got != "Кредитор «Банк» обновлён." {
		t.Errorf("unexpected notice %q", got)
	}
}

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAuditService(db)

	svc.Record(AuditEntry{
		Action:       ActionCreate,
		ResourceType: "agreement",
		ResourceID:   7,
		IPAddress:    "10.0.0.1",
		Summary:      "Договор «Д-1» создан.",
		Changes:      map[string]any{"agreement_code": "Д-1"},
	})

	var entry models.AuditLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("expected an audit entry: %v", err)
	}
	if entry.Action != "CREATE_AGREEMENT" || entry.ResourceID != 7 {
		t.Errorf("unexpected entry %+v", entry)
	}
	if entry.Changes != `{"agreement_code":"Д-1"}` {
		t.Errorf("unexpected changes %q", entry.Changes)
	}
}
