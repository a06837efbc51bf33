// internal/model/pricing.go
package model

import "time"

// Listing holds the scraped state of one store page. Price, Rating and
// Rank stay raw strings exactly as the page shows them. Error is set on
// report rows whose fetch failed.
type Listing struct {
	ASIN   string `json:"asin"`
	Title  string `json:"title"`
	Price  string `json:"price"`
	Rating string `json:"rating,omitempty"`
	Rank   string `json:"rank,omitempty"`
	Error  string `json:"error,omitempty"`
}

type PriceReport struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Categories  map[string][]Listing `json:"categories"`
}

type PricePoint struct {
	Date  time.Time `json:"date"`
	Price string    `json:"price"`
}

type PriceAlert struct {
	ASIN       string    `json:"asin"`
	Previous   string    `json:"previous"`
	Current    string    `json:"current"`
	ChangePct  float64   `json:"change_pct"`
	DetectedAt time.Time `json:"detected_at"`
}
