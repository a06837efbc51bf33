// internal/model/sales.go
package model

import "time"

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	TrendUp           = "up"
	TrendDown         = "down"
	TrendStable       = "stable"
	TrendInsufficient = "insufficient_data"
)

type PlatformSales struct {
	SalesUSD  float64 `json:"sales_usd"`
	Units     int     `json:"units"`
	PageReads int     `json:"page_reads,omitempty"`
}

type BookSales struct {
	Title     string  `json:"title"`
	SalesUSD  float64 `json:"sales_usd"`
	Units     int     `json:"units"`
	PageReads int     `json:"page_reads"`
	Rank      int     `json:"bsr"`
}

type MarketSales struct {
	SalesUSD float64 `json:"sales_usd"`
	Units    int     `json:"units"`
}

type KPISet struct {
	ConversionRate          float64 `json:"conversion_rate"`
	AverageOrderValue       float64 `json:"average_order_value"`
	CustomerAcquisitionCost float64 `json:"customer_acquisition_cost"`
	ReturnOnAdSpend         float64 `json:"return_on_ad_spend"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SalesSummary struct {
	TotalSalesUSD float64 `json:"total_sales_usd"`
	UnitsSold     int     `json:"units_sold"`
	PageReadsKU   int     `json:"page_reads_ku"`
	NewReviews    int     `json:"new_reviews"`
	BestSeller    string  `json:"best_seller"`
	TopPlatform   string  `json:"top_platform"`
}

type Recommendation struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

type Alert struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type SalesReport struct {
	GeneratedAt     time.Time                `json:"generated_at"`
	Period          Period                   `json:"period"`
	Summary         SalesSummary             `json:"summary"`
	ByPlatform      map[string]PlatformSales `json:"by_platform"`
	ByBook          map[string]BookSales     `json:"by_book"`
	ByMarket        map[string]MarketSales   `json:"by_market"`
	DailyKPIs       KPISet                   `json:"daily_kpis"`
	Alerts          []Alert                  `json:"alerts"`
	Recommendations []Recommendation         `json:"recommendations"`
}

// DailySales is one day of raw figures as delivered by a metrics
// source, keyed by platform name and by ASIN. ByMarket may be nil,
// in which case reports split the totals across markets themselves.
type DailySales struct {
	ByPlatform map[string]PlatformSales `json:"by_platform"`
	ByBook     map[string]BookSales     `json:"by_book"`
	ByMarket   map[string]MarketSales   `json:"by_market,omitempty"`
	NewReviews int                      `json:"new_reviews"`
	KPIs       KPISet                   `json:"kpis"`
}

// CatalogBook describes one published title for reporting purposes.
type CatalogBook struct {
	Title     string   `json:"title"`
	Genre     string   `json:"genre"`
	Languages []string `json:"languages"`
	Formats   []string `json:"formats"`
}

type Projection struct {
	SalesUSD       float64 `json:"sales_usd"`
	Units          int     `json:"units"`
	PageReadsKU    int     `json:"page_reads_ku"`
	NewSubscribers int     `json:"new_subscribers"`
}

type GrowthFactor struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"`
}

type Risk struct {
	Risk       string `json:"risk"`
	Mitigation string `json:"mitigation"`
}

type Scenario struct {
	SalesUSD    float64 `json:"sales_usd"`
	Probability string  `json:"probability"`
}

type Forecast struct {
	GeneratedAt   time.Time           `json:"generated_at"`
	Month         string              `json:"month"`
	Projection    Projection          `json:"projection"`
	GrowthFactors []GrowthFactor      `json:"growth_factors"`
	Risks         []Risk              `json:"risks"`
	Scenarios     map[string]Scenario `json:"scenarios"`
}

type KPIPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

type KPITrend struct {
	Metric        string  `json:"metric"`
	PeriodDays    int     `json:"period_days"`
	Average       float64 `json:"average"`
	Trend         string  `json:"trend"`
	ChangePercent float64 `json:"change_percent"`
	DataPoints    int     `json:"data_points"`
}
