package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealbook/internal/flash"
	"dealbook/internal/listing"
	"dealbook/internal/services"
)

// DashboardHandler serves the agreement dashboard.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
	flash            *flash.Flasher
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer, flasher *flash.Flasher) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, flash: flasher}
}

// Show renders the ordered agreement list and the selected agreement.
// Query: sort, dir, agreement. Unknown values fall back silently.
func (h *DashboardHandler) Show(c *gin.Context) {
	sort := listing.SortRequest{Sort: c.Query("sort"), Dir: c.Query("dir")}

	dashboard, err := h.dashboardService.Dashboard(services.DashboardQuery{
		Sort:      sort,
		Agreement: c.Query("agreement"),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", newDashboardPage(newLayout(c, h.flash, "Договоры"), dashboard))
}
