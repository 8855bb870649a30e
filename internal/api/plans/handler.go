package plans

import (
	"net/http"

	"enrollment-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *plans.Catalog
}

func NewHandler(catalog *plans.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

type planView struct {
	plans.Plan
	// Display helper only; the server recomputes the settlement amount on
	// every charge.
	AmountDueTodayCents int64 `json:"amount_due_today_cents"`
}

// ListPlans serves the client-rendering copy of the catalog.
func (h *Handler) ListPlans(c *gin.Context) {
	all := h.catalog.All()
	views := make([]planView, 0, len(all))
	for _, p := range all {
		views = append(views, planView{Plan: p, AmountDueTodayCents: plans.AmountDueCents(p)})
	}
	c.JSON(http.StatusOK, views)
}
