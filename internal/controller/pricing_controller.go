// internal/controller/pricing_controller.go
package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openclaw/literary-agent/internal/service"
)

type PricingController struct {
	Service *service.PricingService
}

// GetListing fetches the live listing for an ASIN and records the
// price point while it is at it.
func (c *PricingController) GetListing(w http.ResponseWriter, r *http.Request) {
	asin := chi.URLParam(r, "asin")

	listing, history, err := c.Service.TrackPrice(r.Context(), asin)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"listing": listing,
		"history": history,
	})
}

func (c *PricingController) GetHistory(w http.ResponseWriter, r *http.Request) {
	asin := chi.URLParam(r, "asin")

	history, err := c.Service.PriceHistory(asin)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"asin":    asin,
		"history": history,
	})
}
