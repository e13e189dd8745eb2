package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "dealbook/internal/errors"
	"dealbook/internal/models"
)

// portfolioService handles portfolio writes.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

// GetPortfolioByID retrieves a portfolio with its agreement and creditor.
func (s *portfolioService) GetPortfolioByID(id uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := s.db.Preload("Agreement.Creditor").First(&portfolio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &portfolio, nil
}

// CreatePortfolio places a new portfolio under the given agreement. A blank
// label is derived from the agreement and the submitted values.
func (s *portfolioService) CreatePortfolio(agreementID uint, in PortfolioInput) (*models.Portfolio, error) {
	var agreement models.Agreement
	if err := s.db.Preload("Creditor").First(&agreement, agreementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgreementNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if fields := checkPortfolioInput(in, true); len(fields) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrValidation, fields)
	}

	portfolio := &models.Portfolio{AgreementID: agreement.ID}
	applyPortfolioInput(portfolio, &agreement, in)

	if err := s.db.Omit(clause.Associations).Create(portfolio).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.Agreement = &agreement
	return portfolio, nil
}

// UpdatePortfolio applies the input in place. Nil dates keep the stored
// values and the label is recomputed unless one is submitted.
func (s *portfolioService) UpdatePortfolio(id uint, in PortfolioInput) (*models.Portfolio, error) {
	portfolio, err := s.GetPortfolioByID(id)
	if err != nil {
		return nil, err
	}
	if fields := checkPortfolioInput(in, false); len(fields) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrValidation, fields)
	}

	applyPortfolioInput(portfolio, portfolio.Agreement, in)

	if err := s.db.Omit(clause.Associations).Save(portfolio).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return portfolio, nil
}

// DeletePortfolio deletes a single portfolio.
func (s *portfolioService) DeletePortfolio(id uint) (*models.Portfolio, error) {
	portfolio, err := s.GetPortfolioByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Portfolio{}, id).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return portfolio, nil
}

// applyPortfolioInput merges the input into p and then derives the label
// from the merged values.
func applyPortfolioInput(p *models.Portfolio, agreement *models.Agreement, in PortfolioInput) {
	p.Type = in.Type
	p.ProcessType = in.ProcessType
	p.TotalSum = in.TotalSum.Round(2)
	if in.DatePlacement != nil {
		p.DatePlacement = *in.DatePlacement
	}
	if in.DateFinish != nil {
		p.DateFinish = in.DateFinish
	}
	if in.CessionDate != nil {
		p.CessionDate = in.CessionDate
	}

	if label := strings.TrimSpace(in.Label); label != "" {
		p.Label = label
	} else if agreement != nil {
		p.Label = p.DefaultLabel(agreement)
	}
}

func checkPortfolioInput(in PortfolioInput, create bool) map[string]string {
	fields := make(map[string]string)
	if !in.Type.Valid() {
		fields["type"] = msgInvalidChoice
	}
	if !in.ProcessType.Valid() {
		fields["process_type"] = msgInvalidChoice
	}
	if !moneyInRange(in.TotalSum) {
		fields["total_sum"] = msgMoneyRange
	}
	if create && in.DatePlacement == nil {
		fields["date_placement"] = msgRequired
	}
	if utf8.RuneCountInString(in.Label) > models.LabelMaxLen {
		fields["label"] = "Слишком длинное значение (максимум 250 символов)."
	}
	return fields
}
