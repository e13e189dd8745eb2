package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "dealbook/internal/errors"
	"dealbook/internal/listing"
	"dealbook/internal/logger"
	"dealbook/internal/models"
	"dealbook/internal/storage"
)

// creditorService handles the creditor registry.
type creditorService struct {
	db    *gorm.DB
	store storage.Store
}

// NewCreditorService creates a new CreditorServicer. The store is used to
// remove documents of agreements deleted along with a creditor.
func NewCreditorService(db *gorm.DB, store storage.Store) CreditorServicer {
	return &creditorService{db: db, store: store}
}

// ListCreditors returns a page of creditors ordered by id.
func (s *creditorService) ListCreditors(page listing.PageRequest) (*listing.PageResponse[models.Creditor], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Creditor{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var creditors []models.Creditor
	if err := base.Order("id").Scopes(listing.Paginate(page)).Find(&creditors).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := listing.NewPageResponse(creditors, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// AllCreditors returns every creditor ordered by name, for form selects.
func (s *creditorService) AllCreditors() ([]models.Creditor, error) {
	var creditors []models.Creditor
	if err := s.db.Order("name").Order("id").Find(&creditors).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return creditors, nil
}

// GetCreditorByID retrieves a creditor.
func (s *creditorService) GetCreditorByID(id uint) (*models.Creditor, error) {
	var creditor models.Creditor
	if err := s.db.First(&creditor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCreditorNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &creditor, nil
}

// CreateCreditor creates a new creditor.
func (s *creditorService) CreateCreditor(in CreditorInput) (*models.Creditor, error) {
	if fields := checkCreditorInput(in); len(fields) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrValidation, fields)
	}

	creditor := &models.Creditor{Type: in.Type, Name: strings.TrimSpace(in.Name)}
	if err := s.db.Create(creditor).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return creditor, nil
}

// UpdateCreditor replaces the creditor's type and name in place.
func (s *creditorService) UpdateCreditor(id uint, in CreditorInput) (*models.Creditor, error) {
	creditor, err := s.GetCreditorByID(id)
	if err != nil {
		return nil, err
	}
	if fields := checkCreditorInput(in); len(fields) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrValidation, fields)
	}

	creditor.Type = in.Type
	creditor.Name = strings.TrimSpace(in.Name)
	if err := s.db.Save(creditor).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return creditor, nil
}

// DeleteCreditor deletes a creditor together with the agreements (and their
// portfolios) that name it as the current creditor. A creditor still named
// as the original creditor of any agreement is protected.
func (s *creditorService) DeleteCreditor(ctx context.Context, id uint) (*models.Creditor, error) {
	creditor, err := s.GetCreditorByID(id)
	if err != nil {
		return nil, err
	}

	var docs []string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var protected int64
		if err := tx.Model(&models.Agreement{}).Where("creditor_first_id = ?", id).Count(&protected).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if protected > 0 {
			return apperrors.ErrCreditorProtected
		}

		var agreements []models.Agreement
		if err := tx.Select("id", "agreement_doc").Where("creditor_id = ?", id).Find(&agreements).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		ids := make([]uint, 0, len(agreements))
		for _, a := range agreements {
			ids = append(ids, a.ID)
			if a.AgreementDoc != "" {
				docs = append(docs, a.AgreementDoc)
			}
		}

		if len(ids) > 0 {
			if err := tx.Where("agreement_id IN ?", ids).Delete(&models.Portfolio{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := tx.Where("id IN ?", ids).Delete(&models.Agreement{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if err := tx.Delete(creditor).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	removeDocuments(ctx, s.store, docs...)
	return creditor, nil
}

func checkCreditorInput(in CreditorInput) map[string]string {
	fields := make(map[string]string)
	if !in.Type.Valid() {
		fields["type"] = msgInvalidChoice
	}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = msgRequired
	}
	return fields
}

// removeDocuments deletes stored objects after the owning rows are gone.
// Failures are logged: the rows are already committed.
func removeDocuments(ctx context.Context, store storage.Store, keys ...string) {
	if store == nil {
		return
	}
	for _, key := range keys {
		if err := store.Delete(ctx, key); err != nil {
			logger.Named("storage").Warnw("failed to remove document", "key", key, "error", err)
		}
	}
}
