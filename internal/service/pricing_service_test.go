package service_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/openclaw/literary-agent/internal/errors"
	"github.com/openclaw/literary-agent/internal/logging"
	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/repository"
	"github.com/openclaw/literary-agent/internal/service"
)

// fakeFetcher serves canned listings without any network.
type fakeFetcher struct {
	listings map[string]*model.Listing
}

func (f *fakeFetcher) Fetch(_ context.Context, asin string) (*model.Listing, error) {
	listing, ok := f.listings[asin]
	if !ok {
		return nil, fmt.Errorf("fetch %s: %w", asin, appErrors.ErrPriceUnavailable)
	}
	out := *listing
	return &out, nil
}

func newPricingService(t *testing.T, fetcher *fakeFetcher) (*service.PricingService, *repository.PriceHistoryRepository) {
	t.Helper()
	history := &repository.PriceHistoryRepository{Dir: t.TempDir()}
	return &service.PricingService{
		Fetcher: fetcher,
		History: history,
		Reports: &repository.ReportWriter{ReportsDir: t.TempDir(), CampaignsDir: t.TempDir()},
		Logger:  logging.Nop(),
	}, history
}

func TestCheckCompetitorsAssemblesReport(t *testing.T) {
	fetcher := &fakeFetcher{listings: map[string]*model.Listing{
		"AAA": {ASIN: "AAA", Title: "Rival One", Price: "$3.99"},
		"BBB": {ASIN: "BBB", Title: "Rival Two", Price: "$5.99"},
	}}
	svc, _ := newPricingService(t, fetcher)

	report, path, err := svc.CheckCompetitors(context.Background(), map[string][]string{
		"sci_fi_ai":          {"AAA", "BBB"},
		"thriller_espionage": {"ZZZ"},
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Contains(t, path, "price_report_")

	scifi := report.Categories["sci_fi_ai"]
	require.Len(t, scifi, 2)
	// Rows keep the input ASIN order even though fetches run in
	// parallel.
	assert.Equal(t, "AAA", scifi[0].ASIN)
	assert.Equal(t, "$3.99", scifi[0].Price)
	assert.Equal(t, "BBB", scifi[1].ASIN)

	thriller := report.Categories["thriller_espionage"]
	require.Len(t, thriller, 1)
	assert.Equal(t, "ZZZ", thriller[0].ASIN)
	assert.NotEmpty(t, thriller[0].Error)
	assert.Empty(t, thriller[0].Price)
}

func TestTrackPriceAppendsHistory(t *testing.T) {
	fetcher := &fakeFetcher{listings: map[string]*model.Listing{
		"AAA": {ASIN: "AAA", Title: "Rival One", Price: "$3.99"},
	}}
	svc, history := newPricingService(t, fetcher)

	listing, points, err := svc.TrackPrice(context.Background(), "AAA")
	require.NoError(t, err)
	assert.Equal(t, "Rival One", listing.Title)
	require.Len(t, points, 1)

	fetcher.listings["AAA"].Price = "$4.49"
	_, points, err = svc.TrackPrice(context.Background(), "AAA")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "$3.99", points[0].Price)
	assert.Equal(t, "$4.49", points[1].Price)

	stored, err := history.History("AAA")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestDetectPriceChange(t *testing.T) {
	svc, history := newPricingService(t, &fakeFetcher{})

	t.Run("insufficient history", func(t *testing.T) {
		_, err := history.Track("AAA", "$4.99")
		require.NoError(t, err)

		_, err = svc.DetectPriceChange("AAA")
		require.Error(t, err)
		assert.True(t, errors.Is(err, appErrors.ErrNoHistory))
	})

	t.Run("big drop raises alert", func(t *testing.T) {
		_, err := history.Track("AAA", "$2.99")
		require.NoError(t, err)

		alert, err := svc.DetectPriceChange("AAA")
		require.NoError(t, err)
		require.NotNil(t, alert)
		assert.Equal(t, "$4.99", alert.Previous)
		assert.Equal(t, "$2.99", alert.Current)
		assert.InDelta(t, -40.0, alert.ChangePct, 1.0)
	})

	t.Run("stable price stays quiet", func(t *testing.T) {
		_, err := history.Track("BBB", "$4.99")
		require.NoError(t, err)
		_, err = history.Track("BBB", "$4.99")
		require.NoError(t, err)

		alert, err := svc.DetectPriceChange("BBB")
		require.NoError(t, err)
		assert.Nil(t, alert)
	})

	t.Run("european decimal comma", func(t *testing.T) {
		_, err := history.Track("CCC", "4,99 €")
		require.NoError(t, err)
		_, err = history.Track("CCC", "9,99 €")
		require.NoError(t, err)

		alert, err := svc.DetectPriceChange("CCC")
		require.NoError(t, err)
		require.NotNil(t, alert)
		assert.InDelta(t, 100.0, alert.ChangePct, 1.5)
	})

	t.Run("unparseable price is not an alert", func(t *testing.T) {
		_, err := history.Track("DDD", "No disponible")
		require.NoError(t, err)
		_, err = history.Track("DDD", "$3.99")
		require.NoError(t, err)

		alert, err := svc.DetectPriceChange("DDD")
		require.NoError(t, err)
		assert.Nil(t, alert)
	})
}

func TestFormatPriceSummary(t *testing.T) {
	report := &model.PriceReport{
		Categories: map[string][]model.Listing{
			"writing_guides": {
				{ASIN: "AAA", Title: "On Writing Well", Price: "$4.99", Rating: "4.8 out of 5 stars"},
				{ASIN: "BBB", Error: "HTTP 503"},
			},
		},
	}

	out := service.FormatPriceSummary(report)
	assert.Contains(t, out, "WRITING GUIDES")
	assert.Contains(t, out, "On Writing Well")
	assert.Contains(t, out, "$4.99")
	assert.Contains(t, out, "HTTP 503")
	assert.Contains(t, out, "RECOMMENDATIONS")
}

func TestLoadCompetitors(t *testing.T) {
	t.Run("missing file falls back to built-ins", func(t *testing.T) {
		competitors, err := service.LoadCompetitors(filepath.Join(t.TempDir(), "competitors.yaml"))
		require.NoError(t, err)
		assert.Equal(t, service.DefaultCompetitors(), competitors)
	})

	t.Run("file replaces the catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "competitors.yaml")
		yamlBody := "categories:\n  cozy_mystery:\n    - B0AAAA1\n    - B0AAAA2\n"
		require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o644))

		competitors, err := service.LoadCompetitors(path)
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"cozy_mystery": {"B0AAAA1", "B0AAAA2"}}, competitors)
	})

	t.Run("empty catalog is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "competitors.yaml")
		require.NoError(t, os.WriteFile(path, []byte("categories: {}\n"), 0o644))

		_, err := service.LoadCompetitors(path)
		require.Error(t, err)
	})
}
