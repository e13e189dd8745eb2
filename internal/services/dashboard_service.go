package services

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "dealbook/internal/errors"
	"dealbook/internal/listing"
	"dealbook/internal/models"
)

// Dashboard sort keys. Anything else falls back to SortByID.
const (
	SortByID            = "id"
	SortByCode          = "agreement_code"
	SortByDate          = "agreement_date"
	SortByTotalSum      = "total_sum"
	SortByCreditor      = "creditor"
	SortByAgreementType = "agreement_type"
)

// AgreementSortKeys lists the accepted dashboard sort keys.
var AgreementSortKeys = []string{SortByID, SortByCode, SortByDate, SortByTotalSum, SortByCreditor, SortByAgreementType}

// NormalizeAgreementSort applies the dashboard fallbacks: sort id, dir asc.
func NormalizeAgreementSort(sort listing.SortRequest) listing.SortRequest {
	return sort.Normalize(AgreementSortKeys, SortByID, listing.DirAsc)
}

// orderAgreements joins the creditor and applies the requested order with
// id as the tie-breaker in the same direction.
func orderAgreements(db *gorm.DB, sort listing.SortRequest) *gorm.DB {
	desc := sort.Desc()
	db = db.Joins("Creditor")

	col := clause.Column{Table: clause.CurrentTable, Name: sort.Sort}
	if sort.Sort == SortByCreditor {
		col = clause.Column{Table: "Creditor", Name: "name"}
	}
	db = db.Order(clause.OrderByColumn{Column: col, Desc: desc})
	if sort.Sort != SortByID {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Desc: desc})
	}
	return db
}

// dashboardService serves the read side: the dashboard and the API listing.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// SortedAgreements returns every agreement, with its creditor, in the
// normalized order.
func (s *dashboardService) SortedAgreements(sort listing.SortRequest) ([]models.Agreement, listing.SortRequest, error) {
	sort = NormalizeAgreementSort(sort)

	var agreements []models.Agreement
	if err := orderAgreements(s.db, sort).Find(&agreements).Error; err != nil {
		return nil, sort, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return agreements, sort, nil
}

// Dashboard builds the ordered list and resolves the selected agreement.
// Without a selector the agreement with the highest id is selected; a
// selector that is not a positive integer or matches nothing selects none.
func (s *dashboardService) Dashboard(q DashboardQuery) (*Dashboard, error) {
	agreements, sort, err := s.SortedAgreements(q.Sort)
	if err != nil {
		return nil, err
	}

	result := &Dashboard{
		Agreements:  agreements,
		CurrentSort: sort.Sort,
		CurrentDir:  sort.Dir,
		RevDir:      sort.Reverse(),
		TotalSum:    decimal.Zero,
		TotalAmount: decimal.Zero,
	}

	var latest uint
	for _, a := range agreements {
		result.TotalSum = result.TotalSum.Add(a.TotalSum)
		result.TotalAmount = result.TotalAmount.Add(a.TotalAmount)
		if a.ID > latest {
			latest = a.ID
		}
	}

	selected := latest
	if sel := strings.TrimSpace(q.Agreement); sel != "" {
		selected = 0
		if id, err := strconv.ParseUint(sel, 10, 0); err == nil {
			selected = uint(id)
		}
	}
	if selected == 0 {
		return result, nil
	}

	var current models.Agreement
	tx := agreementDetail(s.db).Limit(1).Find(&current, selected)
	if tx.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, tx.Error)
	}
	if tx.RowsAffected > 0 {
		result.Current = &current
	}
	return result, nil
}

// ListAgreements returns a page of agreements in the normalized order.
func (s *dashboardService) ListAgreements(sort listing.SortRequest, page listing.PageRequest) (*listing.PageResponse[models.Agreement], error) {
	sort = NormalizeAgreementSort(sort)
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Agreement{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var agreements []models.Agreement
	if err := orderAgreements(s.db, sort).Scopes(listing.Paginate(page)).Find(&agreements).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := listing.NewPageResponse(agreements, page.Page, page.PageSize, totalItems)
	return &result, nil
}
