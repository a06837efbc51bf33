// internal/handler/contact_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/repository"
	"github.com/openclaw/literary-agent/internal/service"
)

// ContactHandler holds the dependencies for contact-related HTTP handlers
type ContactHandler struct {
	Repo    repository.ContactRepositoryInterface
	Service *service.OutreachService
}

// ListContactsHandler returns the contact list, optionally filtered by
// region, language and contacted state.
func (h *ContactHandler) ListContactsHandler(w http.ResponseWriter, r *http.Request) {
	filter := model.ContactFilter{
		Region:           r.URL.Query().Get("region"),
		Language:         r.URL.Query().Get("language"),
		ExcludeContacted: r.URL.Query().Get("exclude_contacted") == "true",
	}

	if err := h.Repo.Initialize(); err != nil {
		http.Error(w, "failed to initialize contact store: "+err.Error(), http.StatusInternalServerError)
		return
	}
	contacts, err := h.Repo.Load(filter)
	if err != nil {
		http.Error(w, "failed to load contacts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"total":    len(contacts),
		"contacts": contacts,
	})
}

// TrackContactHandler marks one contact after a reply. Unknown emails
// get a 404 with a JSON error body.
func (h *ContactHandler) TrackContactHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email   string `json:"email"`
		Outcome string `json:"outcome"`
		Notes   string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}
	if payload.Outcome == "" {
		payload.Outcome = "responded"
	}

	ok, err := h.Service.Track(payload.Email, payload.Outcome, payload.Notes)
	if err != nil {
		http.Error(w, "failed to track contact: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "contact not found: " + payload.Email,
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"email":     payload.Email,
		"contacted": true,
		"outcome":   payload.Outcome,
	})
}
