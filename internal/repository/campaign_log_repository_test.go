package repository_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/repository"
)

func strPtr(s string) *string { return &s }

func sampleRecord(id string, region, language *string) model.CampaignRecord {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return model.CampaignRecord{
		ID:             id,
		Timestamp:      ts,
		RegionFilter:   region,
		LanguageFilter: language,
		TotalSent:      1,
		Mode:           model.ModeSimulation,
		Results: []model.OutcomeEntry{
			{
				Organization: "New York Public Library",
				Email:        "acquisitions@nypl.org",
				City:         "New York",
				Country:      "USA",
				Language:     "EN",
				Subject:      "New Spanish Author Catalog",
				Status:       model.OutcomeSimulated,
				Timestamp:    ts,
			},
		},
	}
}

func TestAppendRoundTrip(t *testing.T) {
	repo := &repository.CampaignLogRepository{Path: filepath.Join(t.TempDir(), "campaigns.json")}

	want := sampleRecord("20260314_093000_ab12cd34", strPtr("Norte America"), nil)
	require.NoError(t, repo.Append(want))

	got, err := repo.List()
	require.NoError(t, err)
	require.Len(t, got, 1)

	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Errorf("record changed across append/list (-want +got):\n%s", diff)
	}
}

func TestAppendKeepsEarlierRecords(t *testing.T) {
	repo := &repository.CampaignLogRepository{Path: filepath.Join(t.TempDir(), "campaigns.json")}

	require.NoError(t, repo.Append(sampleRecord("a", nil, nil)))
	require.NoError(t, repo.Append(sampleRecord("b", strPtr("Europa"), strPtr("EN"))))

	got, err := repo.List()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestListMissingFile(t *testing.T) {
	repo := &repository.CampaignLogRepository{Path: filepath.Join(t.TempDir(), "campaigns.json")}

	got, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStatsBucketsNilFiltersUnderSentinels(t *testing.T) {
	repo := &repository.CampaignLogRepository{Path: filepath.Join(t.TempDir(), "campaigns.json")}

	require.NoError(t, repo.Append(sampleRecord("a", nil, nil)))
	require.NoError(t, repo.Append(sampleRecord("b", strPtr("Europa"), nil)))
	require.NoError(t, repo.Append(sampleRecord("c", strPtr("Europa"), strPtr("FR"))))

	stats, err := repo.Stats()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalCampaigns)
	assert.Equal(t, 3, stats.TotalSent)
	assert.Equal(t, map[string]int{model.RegionAll: 1, "Europa": 2}, stats.ByRegion)
	assert.Equal(t, map[string]int{model.LanguageAuto: 2, "FR": 1}, stats.ByLanguage)
}

func TestStatsEmptyLog(t *testing.T) {
	repo := &repository.CampaignLogRepository{Path: filepath.Join(t.TempDir(), "campaigns.json")}

	stats, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalCampaigns)
	assert.Equal(t, 0, stats.TotalSent)
	assert.Empty(t, stats.ByRegion)
}
