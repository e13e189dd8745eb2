package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"dealbook/internal/flash"
	"dealbook/internal/forms"
	"dealbook/internal/listing"
	"dealbook/internal/models"
	"dealbook/internal/services"
)

const creditorsURL = "/creditors/"

// CreditorHandler handles the creditor registry pages.
type CreditorHandler struct {
	creditorService services.CreditorServicer
	auditService    services.AuditServicer
	flash           *flash.Flasher
}

// NewCreditorHandler creates a new CreditorHandler.
func NewCreditorHandler(creditorService services.CreditorServicer, auditService services.AuditServicer, flasher *flash.Flasher) *CreditorHandler {
	return &CreditorHandler{creditorService: creditorService, auditService: auditService, flash: flasher}
}

// List renders a page of creditors. Query: page, page_size.
func (h *CreditorHandler) List(c *gin.Context) {
	var page listing.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		page = listing.PageRequest{}
	}

	result, err := h.creditorService.ListCreditors(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "creditor_list.html", creditorListPage{
		layout: newLayout(c, h.flash, "Кредиторы"),
		Page:   result,
	})
}

// New renders an empty create form.
func (h *CreditorHandler) New(c *gin.Context) {
	h.renderForm(c, nil, forms.CreditorForm{}, nil)
}

// Create validates the submission and creates the creditor.
func (h *CreditorHandler) Create(c *gin.Context) {
	var form forms.CreditorForm
	errs := forms.Bind(c, &form)
	in, more := form.Input()
	errs.Merge(more)
	if errs.Any() {
		h.renderForm(c, nil, form, errs)
		return
	}

	creditor, err := h.creditorService.CreateCreditor(in)
	if err != nil {
		if fields, ok := validationErrors(err); ok {
			h.renderForm(c, nil, form, fields)
			return
		}
		respondWithError(c, err)
		return
	}

	h.done(c, services.ActionCreate, creditor)
	c.Redirect(http.StatusFound, creditorsURL)
}

// Edit renders the update form filled from the stored creditor.
func (h *CreditorHandler) Edit(c *gin.Context) {
	creditor, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, creditor, forms.CreditorFormFrom(creditor), nil)
}

// Update applies the submission in place.
func (h *CreditorHandler) Update(c *gin.Context) {
	creditor, ok := h.load(c)
	if !ok {
		return
	}

	var form forms.CreditorForm
	errs := forms.Bind(c, &form)
	in, more := form.Input()
	errs.Merge(more)
	if errs.Any() {
		h.renderForm(c, creditor, form, errs)
		return
	}

	updated, err := h.creditorService.UpdateCreditor(creditor.ID, in)
	if err != nil {
		if fields, ok := validationErrors(err); ok {
			h.renderForm(c, creditor, form, fields)
			return
		}
		respondWithError(c, err)
		return
	}

	h.done(c, services.ActionUpdate, updated)
	c.Redirect(http.StatusFound, creditorsURL)
}

// ConfirmDelete renders the delete confirmation page.
func (h *CreditorHandler) ConfirmDelete(c *gin.Context) {
	creditor, ok := h.load(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "confirm_delete.html", confirmDeletePage{
		layout:    newLayout(c, h.flash, "Удаление кредитора"),
		Kind:      "кредитора",
		Object:    creditor.Name,
		Warning:   "Договоры, где он указан кредитором, будут удалены вместе с портфелями.",
		Action:    fmt.Sprintf("/creditors/%d/delete/", creditor.ID),
		CancelURL: creditorsURL,
	})
}

// Delete removes the creditor. A creditor named as the original creditor
// of an agreement is rejected with 409.
func (h *CreditorHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	creditor, err := h.creditorService.DeleteCreditor(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.done(c, services.ActionDelete, creditor)
	c.Redirect(http.StatusFound, creditorsURL)
}

func (h *CreditorHandler) load(c *gin.Context) (*models.Creditor, bool) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	creditor, err := h.creditorService.GetCreditorByID(id)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return creditor, true
}

func (h *CreditorHandler) done(c *gin.Context, action string, cr *models.Creditor) {
	notice := services.CreditorNotice(action, cr)
	h.auditService.Record(services.AuditEntry{
		Action:       action,
		ResourceType: "creditor",
		ResourceID:   cr.ID,
		IPAddress:    c.ClientIP(),
		Summary:      notice,
		Changes: map[string]any{
			"type": cr.Type,
			"name": cr.Name,
		},
	})
	h.flash.Success(c, notice)
}

func (h *CreditorHandler) renderForm(c *gin.Context, creditor *models.Creditor, form forms.CreditorForm, errs forms.Errors) {
	page := creditorFormPage{
		Form:     form,
		Errors:   errs,
		Creditor: creditor,
		Action:   "/creditors/new/",
	}
	title := "Новый кредитор"
	if creditor != nil {
		title = "Кредитор " + creditor.Name
		page.Action = fmt.Sprintf("/creditors/%d/edit/", creditor.ID)
	}
	page.layout = newLayout(c, h.flash, title)
	c.HTML(http.StatusOK, "creditor_form.html", page)
}
