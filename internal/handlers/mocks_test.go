package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"dealbook/internal/flash"
	"dealbook/internal/listing"
	"dealbook/internal/logger"
	"dealbook/internal/models"
	"dealbook/internal/services"
	"dealbook/internal/validator"
	"dealbook/internal/web"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// --- mock services ---

type mockAgreementService struct {
	getFn    func(id uint) (*models.Agreement, error)
	createFn func(in services.AgreementInput, doc *services.DocumentUpload) (*models.Agreement, error)
	updateFn func(id uint, in services.AgreementInput, doc *services.DocumentUpload) (*models.Agreement, error)
	deleteFn func(id uint) (*models.Agreement, error)
}

func (m *mockAgreementService) GetAgreementByID(id uint) (*models.Agreement, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return &models.Agreement{Base: models.Base{ID: id}, AgreementCode: "A-1", AgreementType: models.AgreementTypeCession}, nil
}

func (m *mockAgreementService) CreateAgreement(_ context.Context, in services.AgreementInput, doc *services.DocumentUpload) (*models.Agreement, error) {
	if m.createFn != nil {
		return m.createFn(in, doc)
	}
	return &models.Agreement{Base: models.Base{ID: 1}, AgreementCode: in.AgreementCode}, nil
}

func (m *mockAgreementService) UpdateAgreement(_ context.Context, id uint, in services.AgreementInput, doc *services.DocumentUpload) (*models.Agreement, error) {
	if m.updateFn != nil {
		return m.updateFn(id, in, doc)
	}
	return &models.Agreement{Base: models.Base{ID: id}, AgreementCode: in.AgreementCode}, nil
}

func (m *mockAgreementService) DeleteAgreement(_ context.Context, id uint) (*models.Agreement, error) {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return &models.Agreement{Base: models.Base{ID: id}, AgreementCode: "A-1"}, nil
}

var _ services.AgreementServicer = (*mockAgreementService)(nil)

type mockPortfolioService struct {
	getFn    func(id uint) (*models.Portfolio, error)
	createFn func(agreementID uint, in services.PortfolioInput) (*models.Portfolio, error)
	updateFn func(id uint, in services.PortfolioInput) (*models.Portfolio, error)
	deleteFn func(id uint) (*models.Portfolio, error)
}

func (m *mockPortfolioService) GetPortfolioByID(id uint) (*models.Portfolio, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return &models.Portfolio{
		Base:        models.Base{ID: id},
		AgreementID: 3,
		Label:       "P",
		Agreement:   &models.Agreement{Base: models.Base{ID: 3}, AgreementCode: "A-3"},
	}, nil
}

func (m *mockPortfolioService) CreatePortfolio(agreementID uint, in services.PortfolioInput) (*models.Portfolio, error) {
	if m.createFn != nil {
		return m.createFn(agreementID, in)
	}
	return &models.Portfolio{Base: models.Base{ID: 1}, AgreementID: agreementID, Label: in.Label}, nil
}

func (m *mockPortfolioService) UpdatePortfolio(id uint, in services.PortfolioInput) (*models.Portfolio, error) {
	if m.updateFn != nil {
		return m.updateFn(id, in)
	}
	return &models.Portfolio{Base: models.Base{ID: id}, AgreementID: 3, Label: in.Label}, nil
}

func (m *mockPortfolioService) DeletePortfolio(id uint) (*models.Portfolio, error) {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return &models.Portfolio{Base: models.Base{ID: id}, AgreementID: 3, Label: "P"}, nil
}

var _ services.PortfolioServicer = (*mockPortfolioService)(nil)

type mockCreditorService struct {
	creditors []models.Creditor
	getFn     func(id uint) (*models.Creditor, error)
	createFn  func(in services.CreditorInput) (*models.Creditor, error)
	deleteFn  func(id uint) (*models.Creditor, error)
}

func (m *mockCreditorService) ListCreditors(page listing.PageRequest) (*listing.PageResponse[models.Creditor], error) {
	page.Defaults()
	resp := listing.NewPageResponse(m.creditors, page.Page, page.PageSize, int64(len(m.creditors)))
	return &resp, nil
}

func (m *mockCreditorService) AllCreditors() ([]models.Creditor, error) {
	return m.creditors, nil
}

func (m *mockCreditorService) GetCreditorByID(id uint) (*models.Creditor, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return &models.Creditor{Base: models.Base{ID: id}, Type: models.CreditorTypeBank, Name: "Bank"}, nil
}

func (m *mockCreditorService) CreateCreditor(in services.CreditorInput) (*models.Creditor, error) {
	if m.createFn != nil {
		return m.createFn(in)
	}
	return &models.Creditor{Base: models.Base{ID: 1}, Type: in.Type, Name: in.Name}, nil
}

func (m *mockCreditorService) UpdateCreditor(id uint, in services.CreditorInput) (*models.Creditor, error) {
	return &models.Creditor{Base: models.Base{ID: id}, Type: in.Type, Name: in.Name}, nil
}

func (m *mockCreditorService) DeleteCreditor(_ context.Context, id uint) (*models.Creditor, error) {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return &models.Creditor{Base: models.Base{ID: id}, Name: "Bank"}, nil
}

var _ services.CreditorServicer = (*mockCreditorService)(nil)

type mockDashboardService struct {
	dashboardFn func(q services.DashboardQuery) (*services.Dashboard, error)
	listFn      func(sort listing.SortRequest, page listing.PageRequest) (*listing.PageResponse[models.Agreement], error)
}

func (m *mockDashboardService) Dashboard(q services.DashboardQuery) (*services.Dashboard, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(q)
	}
	return &services.Dashboard{CurrentSort: "id", CurrentDir: "asc", RevDir: "desc"}, nil
}

func (m *mockDashboardService) SortedAgreements(sort listing.SortRequest) ([]models.Agreement, listing.SortRequest, error) {
	return nil, services.NormalizeAgreementSort(sort), nil
}

func (m *mockDashboardService) ListAgreements(sort listing.SortRequest, page listing.PageRequest) (*listing.PageResponse[models.Agreement], error) {
	if m.listFn != nil {
		return m.listFn(sort, page)
	}
	page.Defaults()
	resp := listing.NewPageResponse([]models.Agreement{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

type mockExportService struct {
	lastSort listing.SortRequest
}

func (m *mockExportService) AgreementsWorkbook(sort listing.SortRequest) (*excelize.File, error) {
	m.lastSort = sort
	return excelize.NewFile(), nil
}

var _ services.ExportServicer = (*mockExportService)(nil)

type mockAuditService struct {
	entries []services.AuditEntry
}

func (m *mockAuditService) Record(entry services.AuditEntry) {
	m.entries = append(m.entries, entry)
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

func testFlasher() *flash.Flasher {
	return flash.New("test-secret", time.Minute, false)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	tmpl, err := web.Templates(nil)
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	return r
}

func doRequest(r *gin.Engine, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodGet, path, nil, "")
}

func doForm(r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, path, strings.NewReader(values.Encode()), "application/x-www-form-urlencoded")
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Errorf("expected redirect to %q, got %q", location, got)
	}
}

func assertBodyContains(t *testing.T, rec *httptest.ResponseRecorder, parts ...string) {
	t.Helper()
	body := rec.Body.String()
	for _, p := range parts {
		if !strings.Contains(body, p) {
			t.Errorf("expected body to contain %q\nbody: %s", p, body)
		}
	}
}

func flashCookieSet(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName && c.Value != "" {
			return true
		}
	}
	return false
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
