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

// AgreementHandler handles the agreement create, update and delete pages.
type AgreementHandler struct {
	agreementService services.AgreementServicer
	creditorService  services.CreditorServicer
	auditService     services.AuditServicer
	flash            *flash.Flasher
	maxUpload        int64
}

// NewAgreementHandler creates a new AgreementHandler. maxUpload bounds the
// request body of a submission, document included.
func NewAgreementHandler(
	agreementService services.AgreementServicer,
	creditorService services.CreditorServicer,
	auditService services.AuditServicer,
	flasher *flash.Flasher,
	maxUpload int64,
) *AgreementHandler {
	return &AgreementHandler{
		agreementService: agreementService,
		creditorService:  creditorService,
		auditService:     auditService,
		flash:            flasher,
		maxUpload:        maxUpload,
	}
}

// New renders an empty create form dated now.
func (h *AgreementHandler) New(c *gin.Context) {
	h.renderForm(c, nil, forms.NewAgreementForm(time.Now()), nil)
}

// Create validates the submission and creates the agreement.
func (h *AgreementHandler) Create(c *gin.Context) {
	form, in, errs := h.bind(c, true)
	if errs.Any() {
		h.renderForm(c, nil, form, errs)
		return
	}

	doc, closeDoc := documentFromRequest(c)
	defer closeDoc()

	agreement, err := h.agreementService.CreateAgreement(c.Request.Context(), in, doc)
	if err != nil {
		if fields, ok := validationErrors(err); ok {
			h.renderForm(c, nil, form, fields)
			return
		}
		respondWithError(c, err)
		return
	}

	h.done(c, services.ActionCreate, agreement)
	c.Redirect(http.StatusFound, dashboardURL(agreement.ID))
}

// Edit renders the update form filled from the stored agreement.
func (h *AgreementHandler) Edit(c *gin.Context) {
	agreement, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, agreement, forms.AgreementFormFrom(agreement), nil)
}

// Update validates the submission and applies it in place. A blank date
// keeps the stored one and no file keeps the stored document.
func (h *AgreementHandler) Update(c *gin.Context) {
	agreement, ok := h.load(c)
	if !ok {
		return
	}

	form, in, errs := h.bind(c, false)
	if errs.Any() {
		h.renderForm(c, agreement, form, errs)
		return
	}

	doc, closeDoc := documentFromRequest(c)
	defer closeDoc()

	updated, err := h.agreementService.UpdateAgreement(c.Request.Context(), agreement.ID, in, doc)
	if err != nil {
		if fields, ok := validationErrors(err); ok {
			h.renderForm(c, agreement, form, fields)
			return
		}
		respondWithError(c, err)
		return
	}

	h.done(c, services.ActionUpdate, updated)
	c.Redirect(http.StatusFound, dashboardURL(updated.ID))
}

// ConfirmDelete renders the delete confirmation page.
func (h *AgreementHandler) ConfirmDelete(c *gin.Context) {
	agreement, ok := h.load(c)
	if !ok {
		return
	}

	page := confirmDeletePage{
		layout:    newLayout(c, h.flash, "Удаление договора"),
		Kind:      "договор",
		Object:    agreement.String(),
		Action:    fmt.Sprintf("/agreements/%d/delete/", agreement.ID),
		CancelURL: dashboardURL(agreement.ID),
	}
	if n := len(agreement.Portfolios); n > 0 {
		page.Warning = fmt.Sprintf("Вместе с договором будут удалены его портфели: %d.", n)
	}
	c.HTML(http.StatusOK, "confirm_delete.html", page)
}

// Delete removes the agreement with its portfolios and document.
func (h *AgreementHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	agreement, err := h.agreementService.DeleteAgreement(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.done(c, services.ActionDelete, agreement)
	c.Redirect(http.StatusFound, "/")
}

func (h *AgreementHandler) load(c *gin.Context) (*models.Agreement, bool) {
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

func (h *AgreementHandler) bind(c *gin.Context, create bool) (forms.AgreementForm, services.AgreementInput, forms.Errors) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}
	var form forms.AgreementForm
	errs := forms.Bind(c, &form)
	in, more := form.Input(create)
	errs.Merge(more)
	return form, in, errs
}

// done records the audit entry and queues the notice.
func (h *AgreementHandler) done(c *gin.Context, action string, a *models.Agreement) {
	notice := services.AgreementNotice(action, a)
	h.auditService.Record(services.AuditEntry{
		Action:       action,
		ResourceType: "agreement",
		ResourceID:   a.ID,
		IPAddress:    c.ClientIP(),
		Summary:      notice,
		Changes: map[string]any{
			"agreement_code": a.AgreementCode,
			"creditor_id":    a.CreditorID,
			"agreement_type": a.AgreementType,
			"total_sum":      a.TotalSum.StringFixed(2),
			"total_amount":   a.TotalAmount.StringFixed(2),
			"agreement_doc":  a.AgreementDoc,
		},
	})
	h.flash.Success(c, notice)
}

func (h *AgreementHandler) renderForm(c *gin.Context, agreement *models.Agreement, form forms.AgreementForm, errs forms.Errors) {
	creditors, err := h.creditorService.AllCreditors()
	if err != nil {
		respondWithError(c, err)
		return
	}

	page := agreementFormPage{
		Form:      form,
		Errors:    errs,
		Creditors: creditors,
		Agreement: agreement,
		Action:    "/agreements/new/",
		CancelURL: "/",
	}
	title := "Новый договор"
	if agreement != nil {
		title = "Договор " + agreement.String()
		page.Action = fmt.Sprintf("/agreements/%d/edit/", agreement.ID)
		page.CancelURL = dashboardURL(agreement.ID)
	}
	page.layout = newLayout(c, h.flash, title)
	c.HTML(http.StatusOK, "agreement_form.html", page)
}

// documentFromRequest returns the uploaded agreement_doc, or nil when no
// file was sent. The returned func closes the file.
func documentFromRequest(c *gin.Context) (*services.DocumentUpload, func()) {
	fh, err := c.FormFile("agreement_doc")
	if err != nil || fh.Filename == "" {
		return nil, func() {}
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}
	}
	return &services.DocumentUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}, func() { _ = f.Close() }
}
