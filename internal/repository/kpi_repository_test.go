package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/literary-agent/internal/repository"
)

func TestKPITrackAndHistory(t *testing.T) {
	repo := &repository.KPIRepository{Path: filepath.Join(t.TempDir(), "kpi_history.json")}

	require.NoError(t, repo.Track("conversion_rate", 3.2))
	require.NoError(t, repo.Track("conversion_rate", 4.1))
	require.NoError(t, repo.Track("return_on_ad_spend", 2.8))

	points, err := repo.History("conversion_rate")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 3.2, points[0].Value)
	assert.Equal(t, 4.1, points[1].Value)

	roas, err := repo.History("return_on_ad_spend")
	require.NoError(t, err)
	assert.Len(t, roas, 1)
}

func TestKPIHistoryUnknownMetric(t *testing.T) {
	repo := &repository.KPIRepository{Path: filepath.Join(t.TempDir(), "kpi_history.json")}

	points, err := repo.History("never_tracked")
	require.NoError(t, err)
	assert.Empty(t, points)
}
