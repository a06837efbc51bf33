// internal/controller/social_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/openclaw/literary-agent/internal/service"
)

type SocialController struct {
	Service *service.SocialService
}

// WeeklyPlan generates seven days of content, saves the rendered plan
// and returns both.
func (c *SocialController) WeeklyPlan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	plan := c.Service.WeeklyPlan(body.Language)
	path, err := c.Service.SaveWeeklyPlan(plan, body.Language)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"file": path,
		"plan": plan,
	})
}
