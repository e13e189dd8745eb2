package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "dealbook/internal/errors"
	"dealbook/internal/listing"
	"dealbook/internal/models"
	"dealbook/internal/services"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// AgreementListResponse is a page of agreements.
type AgreementListResponse = listing.PageResponse[models.Agreement]

// APIHandler serves the read-only JSON API.
type APIHandler struct {
	dashboardService services.DashboardServicer
	agreementService services.AgreementServicer
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(dashboardService services.DashboardServicer, agreementService services.AgreementServicer) *APIHandler {
	return &APIHandler{dashboardService: dashboardService, agreementService: agreementService}
}

// Health reports that the server is up.
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /health [get]
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// ListAgreements returns a page of agreements in dashboard order.
// @Summary     List agreements
// @Description Agreements with their creditor, ordered like the dashboard.
// @Tags        agreements
// @Produce     json
// @Param       sort      query string false "Sort key" Enums(id, agreement_code, agreement_date, total_sum, creditor, agreement_type)
// @Param       dir       query string false "Direction" Enums(asc, desc)
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} AgreementListResponse
// @Failure     400 {object} ErrorResponse "Invalid pagination"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /v1/agreements [get]
func (h *APIHandler) ListAgreements(c *gin.Context) {
	var page listing.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}
	sort := listing.SortRequest{Sort: c.Query("sort"), Dir: c.Query("dir")}

	result, err := h.dashboardService.ListAgreements(sort, page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAgreement returns one agreement with its creditors and portfolios.
// @Summary     Get an agreement
// @Tags        agreements
// @Produce     json
// @Param       id  path int true "Agreement ID"
// @Success     200 {object} models.Agreement
// @Failure     404 {object} ErrorResponse "Agreement not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /v1/agreements/{id} [get]
func (h *APIHandler) GetAgreement(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		_ = c.Error(apperrors.ErrAgreementNotFound)
		return
	}

	agreement, err := h.agreementService.GetAgreementByID(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, agreement)
}
