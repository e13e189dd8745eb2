package services

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"dealbook/internal/listing"
	"dealbook/internal/models"
)

// CreditorInput is a validated creditor form submission.
type CreditorInput struct {
	Type models.CreditorType
	Name string
}

// AgreementInput is a validated agreement form submission. A nil
// AgreementDate on update keeps the stored date.
type AgreementInput struct {
	CreditorID      uint
	CreditorFirstID *uint
	AgreementCode   string
	AgreementDate   *time.Time
	AgreementType   models.AgreementType
	TotalSum        decimal.Decimal
	TotalAmount     decimal.Decimal
}

// DocumentUpload is an uploaded agreement document.
type DocumentUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// PortfolioInput is a validated portfolio form submission. Nil dates on
// update keep the stored values; a blank Label means "derive it".
type PortfolioInput struct {
	Label         string
	Type          models.PortfolioType
	ProcessType   models.ProcessType
	TotalSum      decimal.Decimal
	DatePlacement *time.Time
	DateFinish    *time.Time
	CessionDate   *time.Time
}

// CreditorServicer defines the contract for the creditor registry.
type CreditorServicer interface {
	ListCreditors(page listing.PageRequest) (*listing.PageResponse[models.Creditor], error)
	AllCreditors() ([]models.Creditor, error)
	GetCreditorByID(id uint) (*models.Creditor, error)
	CreateCreditor(in CreditorInput) (*models.Creditor, error)
	UpdateCreditor(id uint, in CreditorInput) (*models.Creditor, error)
	DeleteCreditor(ctx context.Context, id uint) (*models.Creditor, error)
}

// AgreementServicer defines the contract for agreement writes.
type AgreementServicer interface {
	GetAgreementByID(id uint) (*models.Agreement, error)
	CreateAgreement(ctx context.Context, in AgreementInput, doc *DocumentUpload) (*models.Agreement, error)
	UpdateAgreement(ctx context.Context, id uint, in AgreementInput, doc *DocumentUpload) (*models.Agreement, error)
	DeleteAgreement(ctx context.Context, id uint) (*models.Agreement, error)
}

// PortfolioServicer defines the contract for portfolio writes.
type PortfolioServicer interface {
	GetPortfolioByID(id uint) (*models.Portfolio, error)
	CreatePortfolio(agreementID uint, in PortfolioInput) (*models.Portfolio, error)
	UpdatePortfolio(id uint, in PortfolioInput) (*models.Portfolio, error)
	DeletePortfolio(id uint) (*models.Portfolio, error)
}

// DashboardQuery carries the raw dashboard query string.
type DashboardQuery struct {
	Sort      listing.SortRequest
	Agreement string
}

// Dashboard is the ordered agreement list plus the selected agreement.
type Dashboard struct {
	Agreements  []models.Agreement
	Current     *models.Agreement
	CurrentSort string
	CurrentDir  string
	RevDir      string
	TotalSum    decimal.Decimal
	TotalAmount decimal.Decimal
}

// DashboardServicer defines the contract for the read side.
type DashboardServicer interface {
	Dashboard(q DashboardQuery) (*Dashboard, error)
	SortedAgreements(sort listing.SortRequest) ([]models.Agreement, listing.SortRequest, error)
	ListAgreements(sort listing.SortRequest, page listing.PageRequest) (*listing.PageResponse[models.Agreement], error)
}

// ExportServicer builds downloadable reports.
type ExportServicer interface {
	AgreementsWorkbook(sort listing.SortRequest) (*excelize.File, error)
}

// AuditServicer records changes to the register.
type AuditServicer interface {
	Record(entry AuditEntry)
}
