package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/openclaw/literary-agent/internal/model"
)

// CampaignLogRepositoryInterface defines methods used by service
type CampaignLogRepositoryInterface interface {
	Append(record model.CampaignRecord) error
	List() ([]model.CampaignRecord, error)
	Stats() (*model.CampaignStats, error)
}

// CampaignLogRepository keeps every campaign run in one JSON array,
// newest last. Records are never edited after being appended.
type CampaignLogRepository struct {
	Path string
}

var _ CampaignLogRepositoryInterface = (*CampaignLogRepository)(nil)

func (r *CampaignLogRepository) Append(record model.CampaignRecord) error {
	records, err := r.List()
	if err != nil {
		return err
	}
	records = append(records, record)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode campaign log: %w", err)
	}

	tmp := r.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write campaign log: %w", err)
	}
	return os.Rename(tmp, r.Path)
}

// List returns all recorded campaigns, oldest first. A missing file is
// an empty log, not an error.
func (r *CampaignLogRepository) List() ([]model.CampaignRecord, error) {
	data, err := os.ReadFile(r.Path)
	if os.IsNotExist(err) {
		return []model.CampaignRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read campaign log: %w", err)
	}

	var records []model.CampaignRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode campaign log: %w", err)
	}
	return records, nil
}

// Stats aggregates across all runs. Unfiltered runs land in the
// "all" region and "auto" language buckets.
func (r *CampaignLogRepository) Stats() (*model.CampaignStats, error) {
	records, err := r.List()
	if err != nil {
		return nil, err
	}

	stats := &model.CampaignStats{
		ByRegion:   map[string]int{},
		ByLanguage: map[string]int{},
	}
	for _, rec := range records {
		stats.TotalCampaigns++
		stats.TotalSent += rec.TotalSent

		region := model.RegionAll
		if rec.RegionFilter != nil && *rec.RegionFilter != "" {
			region = *rec.RegionFilter
		}
		language := model.LanguageAuto
		if rec.LanguageFilter != nil && *rec.LanguageFilter != "" {
			language = *rec.LanguageFilter
		}
		stats.ByRegion[region]++
		stats.ByLanguage[language]++
	}
	return stats, nil
}
