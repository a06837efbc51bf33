// internal/model/campaign.go
package model

import "time"

const (
	ModeSimulation = "simulation"
	ModeReal       = "real"
)

const (
	OutcomeSimulated = "simulated"
	OutcomeSent      = "sent"
)

// Stats bucket keys used when a campaign ran without a filter.
const (
	RegionAll    = "all"
	LanguageAuto = "auto"
)

type CampaignRecord struct {
	ID             string         `json:"id"`
	Timestamp      time.Time      `json:"timestamp"`
	RegionFilter   *string        `json:"region_filter"`
	LanguageFilter *string        `json:"language_filter"`
	TotalSent      int            `json:"total_sent"`
	Mode           string         `json:"mode"`
	Results        []OutcomeEntry `json:"results"`
}

type OutcomeEntry struct {
	Organization string    `json:"organization"`
	Email        string    `json:"email"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Language     string    `json:"language"`
	Subject      string    `json:"subject"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

type CampaignStats struct {
	TotalCampaigns int            `json:"total_campaigns"`
	TotalSent      int            `json:"total_sent"`
	ByRegion       map[string]int `json:"by_region"`
	ByLanguage     map[string]int `json:"by_language"`
}
