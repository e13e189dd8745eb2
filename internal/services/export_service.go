package services

import (
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	apperrors "dealbook/internal/errors"
	"dealbook/internal/listing"
	"dealbook/internal/models"
)

// AgreementsSheet is the sheet name of the agreements export.
const AgreementsSheet = "Договоры"

var agreementHeadings = []string{
	"ID", "Номер договора", "Дата договора", "Тип договора",
	"Кредитор", "Первоначальный кредитор", "Общая сумма", "Общее количество", "Портфелей",
}

// exportService builds XLSX reports.
type exportService struct {
	db *gorm.DB
}

// NewExportService creates a new ExportServicer.
func NewExportService(db *gorm.DB) ExportServicer {
	return &exportService{db: db}
}

// AgreementsWorkbook renders the dashboard listing, in dashboard order, as
// a single-sheet workbook. The caller closes the returned file.
func (s *exportService) AgreementsWorkbook(sort listing.SortRequest) (*excelize.File, error) {
	sort = NormalizeAgreementSort(sort)

	var agreements []models.Agreement
	err := orderAgreements(s.db, sort).
		Preload("CreditorFirst").
		Preload("Portfolios").
		Find(&agreements).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", AgreementsSheet); err != nil {
		_ = f.Close()
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := f.SetSheetRow(AgreementsSheet, "A1", &agreementHeadings); err != nil {
		_ = f.Close()
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i, a := range agreements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		row := []interface{}{
			a.ID,
			a.AgreementCode,
			a.AgreementDate.Format("02.01.2006"),
			a.AgreementType.Label(),
			a.CreditorName(),
			a.CreditorFirstName(),
			a.TotalSum.InexactFloat64(),
			a.TotalAmount.InexactFloat64(),
			len(a.Portfolios),
		}
		if err := f.SetSheetRow(AgreementsSheet, cell, &row); err != nil {
			_ = f.Close()
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return f, nil
}
