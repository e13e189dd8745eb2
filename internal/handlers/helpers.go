package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "dealbook/internal/errors"
	"dealbook/internal/flash"
	"dealbook/internal/forms"
	"dealbook/internal/logger"
)

// layout carries what the shared page header renders.
type layout struct {
	Title   string
	Notices []flash.Notice
}

// newLayout consumes the pending notices; they are shown once.
func newLayout(c *gin.Context, f *flash.Flasher, title string) layout {
	l := layout{Title: title}
	if f != nil {
		l.Notices = f.Pop(c)
	}
	return l
}

// parsePathID parses a positive integer path parameter. Anything else is a
// page that does not exist.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 0)
	if err != nil || id == 0 {
		return 0, apperrors.ErrNotFound
	}
	return uint(id), nil
}

// toAppError logs internal causes and maps unknown errors to ErrInternalServer.
func toAppError(c *gin.Context, err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		return appErr
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	return apperrors.ErrInternalServer
}

// respondWithError renders the error page with the error's status code.
func respondWithError(c *gin.Context, err error) {
	appErr := toAppError(c, err)
	status := appErr.StatusCode
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.HTML(status, "error.html", errorPage{
		layout:  layout{Title: appErr.Message},
		Status:  status,
		Message: appErr.Message,
	})
}

// validationErrors returns the field messages of a service-side validation
// failure.
func validationErrors(err error) (forms.Errors, bool) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code == apperrors.ErrValidation.Code {
		errs := forms.Errors{}
		errs.Merge(appErr.Fields)
		return errs, true
	}
	return nil, false
}

// dashboardURL returns the dashboard address with the agreement selected.
func dashboardURL(agreementID uint) string {
	return "/?agreement=" + strconv.FormatUint(uint64(agreementID), 10)
}

// NotFound renders the error page for unknown routes.
func NotFound(c *gin.Context) {
	respondWithError(c, apperrors.ErrNotFound)
}
