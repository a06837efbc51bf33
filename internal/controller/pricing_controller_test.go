package controller_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/literary-agent/internal/controller"
	appErrors "github.com/openclaw/literary-agent/internal/errors"
	"github.com/openclaw/literary-agent/internal/logging"
	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/repository"
	"github.com/openclaw/literary-agent/internal/service"
)

// stubFetcher serves canned listings so no request leaves the test.
type stubFetcher struct {
	listings map[string]*model.Listing
}

func (f *stubFetcher) Fetch(_ context.Context, asin string) (*model.Listing, error) {
	listing, ok := f.listings[asin]
	if !ok {
		return nil, fmt.Errorf("fetch %s: %w", asin, appErrors.ErrPriceUnavailable)
	}
	out := *listing
	return &out, nil
}

func newPricingRouter(t *testing.T, fetcher *stubFetcher) http.Handler {
	t.Helper()
	ctrl := &controller.PricingController{
		Service: &service.PricingService{
			Fetcher: fetcher,
			History: &repository.PriceHistoryRepository{Dir: t.TempDir()},
			Reports: &repository.ReportWriter{ReportsDir: t.TempDir(), CampaignsDir: t.TempDir()},
			Logger:  logging.Nop(),
		},
	}

	r := chi.NewRouter()
	r.Get("/prices/{asin}", ctrl.GetListing)
	r.Get("/prices/{asin}/history", ctrl.GetHistory)
	return r
}

func TestGetListingTracksPrice(t *testing.T) {
	router := newPricingRouter(t, &stubFetcher{listings: map[string]*model.Listing{
		"B0CLQ2RJP3": {ASIN: "B0CLQ2RJP3", Title: "ApocalypsAI", Price: "$2.99"},
	}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/prices/B0CLQ2RJP3", nil))

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		Listing model.Listing      `json:"listing"`
		History []model.PricePoint `json:"history"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "ApocalypsAI", res.Listing.Title)
	assert.Equal(t, "$2.99", res.Listing.Price)
	require.Len(t, res.History, 1)
	assert.Equal(t, "$2.99", res.History[0].Price)
}

func TestGetListingFetchFailure(t *testing.T) {
	router := newPricingRouter(t, &stubFetcher{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/prices/MISSING", nil))

	resp := w.Result()
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var res map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Contains(t, res["error"], "MISSING")
}

func TestGetHistoryGrowsWithEachTrack(t *testing.T) {
	router := newPricingRouter(t, &stubFetcher{listings: map[string]*model.Listing{
		"AAA": {ASIN: "AAA", Title: "Rival", Price: "$4.99"},
	}})

	// Never-tracked listings answer with an empty history, not a 404.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/prices/AAA/history", nil))
	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		ASIN    string             `json:"asin"`
		History []model.PricePoint `json:"history"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "AAA", res.ASIN)
	assert.Empty(t, res.History)

	for i := 0; i < 2; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/prices/AAA", nil))
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/prices/AAA/history", nil))
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&res))
	assert.Len(t, res.History, 2)
}
