// internal/controller/outreach_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/openclaw/literary-agent/internal/service"
)

type OutreachController struct {
	Service *service.OutreachService
}

// RunCampaign kicks off one outreach batch. A run whose filters match
// nothing still answers 200; the status field says no_contacts.
func (c *OutreachController) RunCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Region      string `json:"region"`
		Language    string `json:"language"`
		MaxContacts int    `json:"max_contacts"`
		DryRun      bool   `json:"dry_run"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	result, err := c.Service.RunBatch(service.BatchParams{
		Region:   body.Region,
		Language: body.Language,
		MaxItems: body.MaxContacts,
		DryRun:   body.DryRun,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (c *OutreachController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Stats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (c *OutreachController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := c.Service.Campaigns()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total":     len(campaigns),
		"campaigns": campaigns,
	})
}
