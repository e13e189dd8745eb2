package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dealbook/internal/listing"
	"dealbook/internal/logger"
	"dealbook/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves downloadable reports.
type ExportHandler struct {
	exportService services.ExportServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService services.ExportServicer) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Agreements streams the dashboard listing as an XLSX workbook, ordered by
// the same sort and dir query parameters as the dashboard.
func (h *ExportHandler) Agreements(c *gin.Context) {
	sort := listing.SortRequest{Sort: c.Query("sort"), Dir: c.Query("dir")}

	f, err := h.exportService.AgreementsWorkbook(sort)
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	filename := "agreements-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		logger.Get().Errorw("failed to write workbook", "error", err)
	}
}
