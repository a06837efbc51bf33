package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/openclaw/literary-agent/internal/model"
)

// keepPoints caps how much history is retained per listing.
const keepPoints = 90

// PriceHistoryRepositoryInterface defines methods used by service
type PriceHistoryRepositoryInterface interface {
	Track(asin, price string) ([]model.PricePoint, error)
	History(asin string) ([]model.PricePoint, error)
}

// PriceHistoryRepository stores one JSON file of price points per
// listing, trimmed to the most recent entries.
type PriceHistoryRepository struct {
	Dir string
}

var _ PriceHistoryRepositoryInterface = (*PriceHistoryRepository)(nil)

func (r *PriceHistoryRepository) file(asin string) string {
	return filepath.Join(r.Dir, fmt.Sprintf("price_history_%s.json", asin))
}

// Track appends today's price and returns the updated history.
func (r *PriceHistoryRepository) Track(asin, price string) ([]model.PricePoint, error) {
	history, err := r.History(asin)
	if err != nil {
		return nil, err
	}

	history = append(history, model.PricePoint{Date: time.Now(), Price: price})
	if len(history) > keepPoints {
		history = history[len(history)-keepPoints:]
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode price history: %w", err)
	}

	path := r.file(asin)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return nil, fmt.Errorf("write price history: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return nil, err
	}
	return history, nil
}

// History returns the recorded points for a listing, oldest first. A
// listing never tracked yields an empty history.
func (r *PriceHistoryRepository) History(asin string) ([]model.PricePoint, error) {
	data, err := os.ReadFile(r.file(asin))
	if os.IsNotExist(err) {
		return []model.PricePoint{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read price history: %w", err)
	}

	var history []model.PricePoint
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("decode price history: %w", err)
	}
	return history, nil
}
