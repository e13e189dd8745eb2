package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dealbook/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestCreditor creates a bank creditor with a unique name.
func CreateTestCreditor(t *testing.T, db *gorm.DB) *models.Creditor {
	t.Helper()
	return CreateTestCreditorWithName(t, db, fmt.Sprintf("Test Bank %d", nextID()))
}

// CreateTestCreditorWithName creates a bank creditor with the given name.
func CreateTestCreditorWithName(t *testing.T, db *gorm.DB, name string) *models.Creditor {
	t.Helper()

	creditor := &models.Creditor{Type: models.CreditorTypeBank, Name: name}
	if err := db.Create(creditor).Error; err != nil {
		t.Fatalf("failed to create test creditor: %v", err)
	}
	return creditor
}

// CreateTestAgreement creates a cession agreement for the given creditor.
func CreateTestAgreement(t *testing.T, db *gorm.DB, creditorID uint) *models.Agreement {
	t.Helper()
	return CreateTestAgreementWithSum(t, db, creditorID, decimal.NewFromInt(100000))
}

// CreateTestAgreementWithSum creates a cession agreement with the given total sum.
func CreateTestAgreementWithSum(t *testing.T, db *gorm.DB, creditorID uint, sum decimal.Decimal) *models.Agreement {
	t.Helper()

	agreement := &models.Agreement{
		CreditorID:    creditorID,
		AgreementCode: fmt.Sprintf("AG-%d", nextID()),
		AgreementDate: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		AgreementType: models.AgreementTypeCession,
		TotalSum:      sum,
		TotalAmount:   decimal.NewFromInt(10),
	}
	if err := db.Omit(clause.Associations).Create(agreement).Error; err != nil {
		t.Fatalf("failed to create test agreement: %v", err)
	}
	return agreement
}

// CreateTestPortfolio creates a legal-stage portfolio under the given agreement.
func CreateTestPortfolio(t *testing.T, db *gorm.DB, agreementID uint) *models.Portfolio {
	t.Helper()

	finish := Date(2024, 12, 31)
	portfolio := &models.Portfolio{
		Label:         fmt.Sprintf("Portfolio %d", nextID()),
		Type:          models.PortfolioTypeCession,
		ProcessType:   models.ProcessTypeLegal,
		AgreementID:   agreementID,
		TotalSum:      decimal.NewFromInt(5000),
		DatePlacement: Date(2024, 4, 1),
		DateFinish:    &finish,
	}
	if err := db.Omit(clause.Associations).Create(portfolio).Error; err != nil {
		t.Fatalf("failed to create test portfolio: %v", err)
	}
	return portfolio
}
