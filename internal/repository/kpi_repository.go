package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/openclaw/literary-agent/internal/model"
)

// KPIRepositoryInterface defines methods used by service
type KPIRepositoryInterface interface {
	Track(metric string, value float64) error
	History(metric string) ([]model.KPIPoint, error)
}

// KPIRepository stores metric histories keyed by name in one JSON
// file. Each metric keeps its most recent points only.
type KPIRepository struct {
	Path string
}

var _ KPIRepositoryInterface = (*KPIRepository)(nil)

// Track appends a point to the metric's history.
func (r *KPIRepository) Track(metric string, value float64) error {
	all, err := r.readAll()
	if err != nil {
		return err
	}

	points := append(all[metric], model.KPIPoint{Timestamp: time.Now(), Value: value})
	if len(points) > keepPoints {
		points = points[len(points)-keepPoints:]
	}
	all[metric] = points

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode kpi history: %w", err)
	}

	tmp := r.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write kpi history: %w", err)
	}
	return os.Rename(tmp, r.Path)
}

// History returns the recorded points for one metric, oldest first.
func (r *KPIRepository) History(metric string) ([]model.KPIPoint, error) {
	all, err := r.readAll()
	if err != nil {
		return nil, err
	}
	points, ok := all[metric]
	if !ok {
		return []model.KPIPoint{}, nil
	}
	return points, nil
}

func (r *KPIRepository) readAll() (map[string][]model.KPIPoint, error) {
	data, err := os.ReadFile(r.Path)
	if os.IsNotExist(err) {
		return map[string][]model.KPIPoint{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read kpi history: %w", err)
	}

	var all map[string][]model.KPIPoint
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decode kpi history: %w", err)
	}
	if all == nil {
		all = map[string][]model.KPIPoint{}
	}
	return all, nil
}
