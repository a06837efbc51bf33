package repository_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/literary-agent/internal/repository"
)

func TestTrackAppendsInOrder(t *testing.T) {
	repo := &repository.PriceHistoryRepository{Dir: t.TempDir()}

	_, err := repo.Track("B0CLQ2RJP3", "$3.99")
	require.NoError(t, err)
	history, err := repo.Track("B0CLQ2RJP3", "$4.99")
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, "$3.99", history[0].Price)
	assert.Equal(t, "$4.99", history[1].Price)

	// Listings do not share history.
	other, err := repo.History("B00PIPTRI8")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTrackCapsHistory(t *testing.T) {
	repo := &repository.PriceHistoryRepository{Dir: t.TempDir()}

	for i := 0; i < 95; i++ {
		_, err := repo.Track("B0CLQ2RJP3", fmt.Sprintf("$%d.99", i))
		require.NoError(t, err)
	}

	history, err := repo.History("B0CLQ2RJP3")
	require.NoError(t, err)
	require.Len(t, history, 90)
	// Oldest entries are dropped first.
	assert.Equal(t, "$5.99", history[0].Price)
	assert.Equal(t, "$94.99", history[89].Price)
}
