package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dealbook/internal/flash"
	"dealbook/internal/forms"
	"dealbook/internal/models"
	"dealbook/internal/services"
)

// PortfolioHandler handles the portfolio create, update and delete pages.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
	agreementService services.AgreementServicer
	auditService     services.AuditServicer
	flash            *flash.Flasher
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(
	portfolioService services.PortfolioServicer,
	agreementService services.AgreementServicer,
	auditService services.AuditServicer,
	flasher *flash.Flasher,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		agreementService: agreementService,
		auditService:     auditService,
		flash:            flasher,
	}
}

// New renders an empty create form under the agreement in the path.
func (h *PortfolioHandler) New(c *gin.Context) {
	agreement, ok := h.loadAgreement(c)
	if !ok {
		return
	}
	h.renderForm(c, agreement, nil, forms.NewPortfolioForm(time.Now()), nil)
}

// Create places a new portfolio under the agreement in the path. The parent
// always comes from the route.
func (h *PortfolioHandler) Create(c *gin.Context) {
	agreement, ok := h.loadAgreement(c)
	if !ok {
		return
	}

	var form forms.PortfolioForm
	errs := forms.Bind(c, &form)
	in, more := form.Input(true)
	errs.Merge(more)
	if errs.Any() {
		h.renderForm(c, agreement, nil, form, errs)
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(agreement.ID, in)
	if err != nil {
		if fields, ok := validationErrors(err); ok {
			h.renderForm(c, agreement, nil, form, fields)
			return
		}
		respondWithError(c, err)
		return
	}

	h.done(c, services.ActionCreate, portfolio)
	c.Redirect(http.StatusFound, dashboardURL(agreement.ID))
}

// Edit renders the update form filled from the stored portfolio.
func (h *PortfolioHandler) Edit(c *gin.Context) {
	portfolio, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, portfolio.Agreement, portfolio, forms.PortfolioFormFrom(portfolio), nil)
}

// Update applies the submission in place. Blank dates keep the stored ones.
func (h *PortfolioHandler) Update(c *gin.Context) {
	portfolio, ok := h.load(c)
	if !ok {
		return
	}

	var form forms.PortfolioForm
	errs := forms.Bind(c, &form)
	in, more := form.Input(false)
	errs.Merge(more)
	if errs.Any() {
		h.renderForm(c, portfolio.Agreement, portfolio, form, errs)
		return
	}

	updated, err := h.portfolioService.UpdatePortfolio(portfolio.ID, in)
	if err != nil {
		if fields, ok := validationErrors(err); ok {
			h.renderForm(c, portfolio.Agreement, portfolio, form, fields)
			return
		}
		respondWithError(c, err)
		return
	}

	h.done(c, services.ActionUpdate, updated)
	c.Redirect(http.StatusFound, dashboardURL(updated.AgreementID))
}

// ConfirmDelete renders the delete confirmation page.
func (h *PortfolioHandler) ConfirmDelete(c *gin.Context) {
	portfolio, ok := h.load(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "confirm_delete.html", confirmDeletePage{
		layout:    newLayout(c, h.flash, "Удаление портфеля"),
		Kind:      "портфель",
		Object:    portfolio.String(),
		Action:    fmt.Sprintf("/portfolio/%d/delete/", portfolio.ID),
		CancelURL: dashboardURL(portfolio.AgreementID),
	})
}

// Delete removes the portfolio and returns to its former parent.
func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	portfolio, err := h.portfolioService.DeletePortfolio(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.done(c, services.ActionDelete, portfolio)
	c.Redirect(http.StatusFound, dashboardURL(portfolio.AgreementID))
}

func (h *PortfolioHandler) loadAgreement(c *gin.Context) (*models.Agreement, bool) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	agreement, err := h.agreementService.GetAgreementByID(id)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return agreement, true
}

func (h *PortfolioHandler) load(c *gin.Context) (*models.Portfolio, bool) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	portfolio, err := h.portfolioService.GetPortfolioByID(id)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return portfolio, true
}

func (h *PortfolioHandler) done(c *gin.Context, action string, p *models.Portfolio) {
	notice := services.PortfolioNotice(action, p)
	h.auditService.Record(services.AuditEntry{
		Action:       action,
		ResourceType: "portfolio",
		ResourceID:   p.ID,
		IPAddress:    c.ClientIP(),
		Summary:      notice,
		Changes: map[string]any{
			"agreement_id":   p.AgreementID,
			"label":          p.Label,
			"process_type":   p.ProcessType,
			"total_sum":      p.TotalSum.StringFixed(2),
			"date_placement": p.DatePlacement.Format("2006-01-02"),
		},
	})
	h.flash.Success(c, notice)
}

func (h *PortfolioHandler) renderForm(c *gin.Context, agreement *models.Agreement, portfolio *models.Portfolio, form forms.PortfolioForm, errs forms.Errors) {
	page := portfolioFormPage{
		Form:      form,
		Errors:    errs,
		Agreement: agreement,
		Portfolio: portfolio,
		Action:    fmt.Sprintf("/agreements/%d/portfolio/new/", agreement.ID),
		CancelURL: dashboardURL(agreement.ID),
	}
	title := "Новый портфель"
	if portfolio != nil {
		title = "Портфель " + portfolio.String()
		page.Action = fmt.Sprintf("/portfolio/%d/edit/", portfolio.ID)
	}
	page.layout = newLayout(c, h.flash, title)
	c.HTML(http.StatusOK, "portfolio_form.html", page)
}
