// internal/controller/dashboard_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/openclaw/literary-agent/internal/errors"
	"github.com/openclaw/literary-agent/internal/service"
)

type DashboardController struct {
	Service *service.DashboardService
}

// GenerateReport builds and saves the requested report kind.
func (c *DashboardController) GenerateReport(w http.ResponseWriter, r *http.Request) {
	switch kind := chi.URLParam(r, "kind"); kind {
	case "daily":
		report, path, err := c.Service.DailyReport()
		respondReport(w, report, path, err)
	case "weekly":
		report, path, err := c.Service.WeeklyReport()
		respondReport(w, report, path, err)
	case "forecast":
		forecast, path, err := c.Service.MonthlyForecast()
		respondReport(w, forecast, path, err)
	default:
		writeError(w, http.StatusBadRequest, "unknown report kind: "+kind)
	}
}

func respondReport(w http.ResponseWriter, report any, path string, err error) {
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"report": report,
		"file":   path,
	})
}

func (c *DashboardController) TrackKPI(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Metric string  `json:"metric"`
		Value  float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Metric == "" {
		writeError(w, http.StatusBadRequest, "metric is required")
		return
	}

	if err := c.Service.TrackKPI(body.Metric, body.Value); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "tracked",
		"metric": body.Metric,
	})
}

func (c *DashboardController) KPITrend(w http.ResponseWriter, r *http.Request) {
	metric := chi.URLParam(r, "metric")
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	trend, err := c.Service.KPITrend(metric, days)
	if err != nil {
		if errors.Is(err, appErrors.ErrNoHistory) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, trend)
}
