package services

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/blake2b"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "dealbook/internal/errors"
	"dealbook/internal/models"
	"dealbook/internal/storage"
)

// maxMoney bounds decimal(10,2) columns: at most 8 integer digits.
var maxMoney = decimal.New(1, 8)

const (
	msgRequired      = "Обязательное поле."
	msgInvalidChoice = "Выберите корректный вариант."
	msgMoneyRange    = "Введите число: не более 10 цифр, из них не более 2 после запятой."
)

// agreementService handles agreement writes and the attached document.
type agreementService struct {
	db    *gorm.DB
	store storage.Store
}

// NewAgreementService creates a new AgreementServicer.
func NewAgreementService(db *gorm.DB, store storage.Store) AgreementServicer {
	return &agreementService{db: db, store: store}
}

// agreementDetail preloads everything the detail panel and the edit form show.
func agreementDetail(db *gorm.DB) *gorm.DB {
	return db.Preload("Creditor").
		Preload("CreditorFirst").
		Preload("Portfolios", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
}

// GetAgreementByID retrieves an agreement with its creditors and portfolios.
func (s *agreementService) GetAgreementByID(id uint) (*models.Agreement, error) {
	var agreement models.Agreement
	if err := agreementDetail(s.db).First(&agreement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgreementNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &agreement, nil
}

// CreateAgreement validates the input, stores the optional document and
// inserts the agreement in one transaction.
func (s *agreementService) CreateAgreement(ctx context.Context, in AgreementInput, doc *DocumentUpload) (*models.Agreement, error) {
	if fields := checkAgreementInput(in, true); len(fields) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrValidation, fields)
	}

	agreement := &models.Agreement{}
	applyAgreementInput(agreement, in)

	var stored string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkCreditorRefs(tx, in); err != nil {
			return err
		}
		if doc != nil {
			key, sum, err := s.saveDocument(ctx, in.AgreementCode, doc)
			if err != nil {
				return err
			}
			stored = key
			agreement.AgreementDoc = key
			agreement.AgreementDocChecksum = sum
		}
		if err := tx.Omit(clause.Associations).Create(agreement).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		if stored != "" {
			removeDocuments(ctx, s.store, stored)
		}
		return nil, err
	}

	return s.GetAgreementByID(agreement.ID)
}

// UpdateAgreement applies the input to the existing row in place. A nil
// AgreementDate keeps the stored date and a nil doc keeps the stored
// document.
func (s *agreementService) UpdateAgreement(ctx context.Context, id uint, in AgreementInput, doc *DocumentUpload) (*models.Agreement, error) {
	var agreement models.Agreement
	if err := s.db.First(&agreement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgreementNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if fields := checkAgreementInput(in, false); len(fields) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrValidation, fields)
	}

	previous := agreement.AgreementDoc
	var stored string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkCreditorRefs(tx, in); err != nil {
			return err
		}
		applyAgreementInput(&agreement, in)
		if doc != nil {
			key, sum, err := s.saveDocument(ctx, in.AgreementCode, doc)
			if err != nil {
				return err
			}
			stored = key
			agreement.AgreementDoc = key
			agreement.AgreementDocChecksum = sum
		}
		if err := tx.Omit(clause.Associations).Save(&agreement).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		if stored != "" {
			removeDocuments(ctx, s.store, stored)
		}
		return nil, err
	}
	if stored != "" && previous != "" {
		removeDocuments(ctx, s.store, previous)
	}

	return s.GetAgreementByID(agreement.ID)
}

// DeleteAgreement deletes the agreement, its portfolios and its document.
func (s *agreementService) DeleteAgreement(ctx context.Context, id uint) (*models.Agreement, error) {
	agreement, err := s.GetAgreementByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("agreement_id = ?", id).Delete(&models.Portfolio{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&models.Agreement{}, id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if agreement.AgreementDoc != "" {
		removeDocuments(ctx, s.store, agreement.AgreementDoc)
	}
	return agreement, nil
}

// saveDocument streams the upload to the store and returns its key and
// BLAKE2b-256 digest.
func (s *agreementService) saveDocument(ctx context.Context, code string, doc *DocumentUpload) (string, string, error) {
	if s.store == nil {
		return "", "", apperrors.WithMessage(apperrors.ErrStorage, "Хранилище документов не настроено")
	}
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", "", apperrors.Wrap(apperrors.ErrStorage, err)
	}
	upload, err := uuid.NewV7()
	if err != nil {
		upload = uuid.New()
	}
	key := models.DocumentKey(code, upload, doc.Filename)
	if err := s.store.Save(ctx, key, io.TeeReader(doc.Body, h), doc.ContentType); err != nil {
		return "", "", apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return key, hex.EncodeToString(h.Sum(nil)), nil
}

func applyAgreementInput(a *models.Agreement, in AgreementInput) {
	a.CreditorID = in.CreditorID
	a.CreditorFirstID = in.CreditorFirstID
	a.AgreementCode = strings.TrimSpace(in.AgreementCode)
	if in.AgreementDate != nil {
		a.AgreementDate = *in.AgreementDate
	}
	a.AgreementType = in.AgreementType
	a.TotalSum = in.TotalSum.Round(2)
	a.TotalAmount = in.TotalAmount.Round(2)
}

func checkAgreementInput(in AgreementInput, create bool) map[string]string {
	fields := make(map[string]string)
	if in.CreditorID == 0 {
		fields["creditor"] = msgRequired
	}
	if strings.TrimSpace(in.AgreementCode) == "" {
		fields["agreement_code"] = msgRequired
	}
	if create && in.AgreementDate == nil {
		fields["agreement_date"] = msgRequired
	}
	if !in.AgreementType.Valid() {
		fields["agreement_type"] = msgInvalidChoice
	}
	if !moneyInRange(in.TotalSum) {
		fields["total_sum"] = msgMoneyRange
	}
	if !moneyInRange(in.TotalAmount) {
		fields["total_amount"] = msgMoneyRange
	}
	return fields
}

// checkCreditorRefs reports references to missing creditors as field errors.
func checkCreditorRefs(tx *gorm.DB, in AgreementInput) error {
	fields := make(map[string]string)
	ok, err := creditorExists(tx, in.CreditorID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		fields["creditor"] = msgInvalidChoice
	}
	if in.CreditorFirstID != nil {
		ok, err := creditorExists(tx, *in.CreditorFirstID)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !ok {
			fields["creditor_first"] = msgInvalidChoice
		}
	}
	if len(fields) > 0 {
		return apperrors.WithFields(apperrors.ErrValidation, fields)
	}
	return nil
}

func creditorExists(tx *gorm.DB, id uint) (bool, error) {
	var n int64
	if err := tx.Model(&models.Creditor{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func moneyInRange(d decimal.Decimal) bool {
	return d.Round(2).Abs().LessThan(maxMoney)
}
