package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportHandler_Agreements(t *testing.T) {
	svc := &mockExportService{}
	r := newTestRouter(t)
	r.GET("/export/agreements.xlsx", NewExportHandler(svc).Agreements)

	rec := doGet(r, "/export/agreements.xlsx?sort=total_sum&dir=desc")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, `attachment; filename="agreements-`) {
		t.Errorf("unexpected content disposition %q", cd)
	}
	if svc.lastSort.Sort != "total_sum" || svc.lastSort.Dir != "desc" {
		t.Errorf("unexpected sort %+v", svc.lastSort)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a workbook: %v", err)
	}
	defer func() { _ = f.Close() }()
}
