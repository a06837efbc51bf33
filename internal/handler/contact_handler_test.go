package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/literary-agent/internal/handler"
	"github.com/openclaw/literary-agent/internal/logging"
	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/repository"
	"github.com/openclaw/literary-agent/internal/service"
)

func newContactHandler(t *testing.T) (*handler.ContactHandler, *repository.ContactRepository) {
	t.Helper()
	repo := &repository.ContactRepository{Path: filepath.Join(t.TempDir(), "libraries.csv")}
	h := &handler.ContactHandler{
		Repo: repo,
		Service: &service.OutreachService{
			Contacts: repo,
			Logger:   logging.Nop(),
		},
	}
	return h, repo
}

func TestListContactsHandler(t *testing.T) {
	h, _ := newContactHandler(t)

	req := httptest.NewRequest("GET", "/contacts?region=Norte+America&language=EN", nil)
	w := httptest.NewRecorder()

	h.ListContactsHandler(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var res struct {
		Total    int             `json:"total"`
		Contacts []model.Contact `json:"contacts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))

	assert.Equal(t, 5, res.Total)
	require.Len(t, res.Contacts, 5)
	for _, c := range res.Contacts {
		assert.Equal(t, "Norte America", c.Region)
		assert.Equal(t, "EN", c.PreferredLanguage)
	}
}

func TestListContactsExcludesContacted(t *testing.T) {
	h, repo := newContactHandler(t)

	require.NoError(t, repo.Initialize())
	ok, err := repo.MarkContacted("acquisitions@nypl.org", "responded", "")
	require.NoError(t, err)
	require.True(t, ok)

	req := httptest.NewRequest("GET", "/contacts?region=Norte+America&exclude_contacted=true", nil)
	w := httptest.NewRecorder()

	h.ListContactsHandler(w, req)

	var res struct {
		Total    int             `json:"total"`
		Contacts []model.Contact `json:"contacts"`
	}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&res))

	assert.Equal(t, 5, res.Total)
	for _, c := range res.Contacts {
		assert.NotEqual(t, "acquisitions@nypl.org", c.Email)
	}
}

func TestTrackContactHandler(t *testing.T) {
	h, repo := newContactHandler(t)

	body := `{"email": "collections@lapl.org", "outcome": "interested", "notes": "wants catalog"}`
	req := httptest.NewRequest("POST", "/contacts/track", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.TrackContactHandler(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		Email     string `json:"email"`
		Contacted bool   `json:"contacted"`
		Outcome   string `json:"outcome"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "collections@lapl.org", res.Email)
	assert.True(t, res.Contacted)
	assert.Equal(t, "interested", res.Outcome)

	stored, err := repo.GetByEmail("collections@lapl.org")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Contacted)
	assert.Equal(t, "interested", stored.LastResponse)
	assert.Equal(t, "wants catalog", stored.Notes)
}

func TestTrackContactDefaultsOutcome(t *testing.T) {
	h, _ := newContactHandler(t)

	body := `{"email": "acquisitions@nypl.org"}`
	req := httptest.NewRequest("POST", "/contacts/track", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.TrackContactHandler(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		Outcome string `json:"outcome"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "responded", res.Outcome)
}

func TestTrackContactUnknownEmail(t *testing.T) {
	h, _ := newContactHandler(t)

	body := `{"email": "nobody@example.com", "outcome": "responded"}`
	req := httptest.NewRequest("POST", "/contacts/track", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.TrackContactHandler(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var res map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "contact not found: nobody@example.com", res["error"])
}

func TestTrackContactRequiresEmail(t *testing.T) {
	h, _ := newContactHandler(t)

	req := httptest.NewRequest("POST", "/contacts/track", strings.NewReader(`{"outcome": "responded"}`))
	w := httptest.NewRecorder()

	h.TrackContactHandler(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, w.Body.String(), "email is required")
}
