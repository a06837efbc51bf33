// internal/service/dashboard_service.go
package service

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/openclaw/literary-agent/internal/errors"
	"github.com/openclaw/literary-agent/internal/metrics"
	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/repository"
)

const defaultTrendDays = 7

// marketShares splits headline totals across storefronts when the
// metrics source has no per-market breakdown of its own.
var marketShares = map[string]float64{
	"US": 0.45,
	"UK": 0.15,
	"ES": 0.20,
	"MX": 0.08,
	"FR": 0.05,
	"DE": 0.04,
	"IT": 0.02,
	"JP": 0.01,
}

// Catalog returns the published titles reports are built around,
// keyed by ASIN.
func Catalog() map[string]model.CatalogBook {
	return map[string]model.CatalogBook{
		"B00PIPTRI8": {
			Title:     "Things you shouldn't do if you want to be a writer",
			Genre:     "Writing/Non-Fiction",
			Languages: []string{"ES", "EN"},
			Formats:   []string{"ebook", "paperback", "audiobook"},
		},
		"B0CLQ2RJP3": {
			Title:     "ApocalypsAI: The Day After AGI",
			Genre:     "Science Fiction",
			Languages: []string{"ES", "EN", "FR"},
			Formats:   []string{"ebook", "paperback", "audiobook"},
		},
		"B0CL2YJMH6": {
			Title:     "La Invasión de las Medusas Mutantes",
			Genre:     "Children's Illustrated",
			Languages: []string{"ES", "EN", "FR", "IT", "PT", "JP"},
			Formats:   []string{"ebook", "paperback"},
		},
		"B0CHMQWSQB": {
			Title:     "Eco-fuel-FA (ECOFA)",
			Genre:     "Sustainability/Non-Fiction",
			Formats:   []string{"ebook", "paperback"},
			Languages: []string{"ES", "EN"},
		},
	}
}

// ====================== Metrics source ======================

// MetricsSource supplies one day of raw sales figures. Storefront
// APIs would sit behind this; SampleMetricsSource stands in for them.
type MetricsSource interface {
	ProvideDaily() model.DailySales
}

// SampleMetricsSource fabricates plausible daily figures.
type SampleMetricsSource struct {
	rng *rand.Rand
}

var _ MetricsSource = (*SampleMetricsSource)(nil)

// NewSampleMetricsSource returns a source driven by rng. A nil rng
// gets a time-seeded one.
func NewSampleMetricsSource(rng *rand.Rand) *SampleMetricsSource {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SampleMetricsSource{rng: rng}
}

// ProvideDaily draws a fresh day of figures.
func (s *SampleMetricsSource) ProvideDaily() model.DailySales {
	byPlatform := map[string]model.PlatformSales{
		"Amazon KDP": {
			SalesUSD:  s.dollars(150, 400),
			Units:     s.between(40, 100),
			PageReads: s.between(5000, 15000),
		},
		"Apple Books":    {SalesUSD: s.dollars(30, 80), Units: s.between(8, 20)},
		"Kobo":           {SalesUSD: s.dollars(20, 60), Units: s.between(5, 15)},
		"Barnes & Noble": {SalesUSD: s.dollars(15, 50), Units: s.between(4, 12)},
		"Google Play":    {SalesUSD: s.dollars(25, 70), Units: s.between(6, 18)},
	}

	// Fixed ASIN order keeps draws reproducible for a given seed.
	catalog := Catalog()
	asins := make([]string, 0, len(catalog))
	for asin := range catalog {
		asins = append(asins, asin)
	}
	sort.Strings(asins)

	byBook := map[string]model.BookSales{}
	for _, asin := range asins {
		byBook[asin] = model.BookSales{
			Title:     catalog[asin].Title,
			SalesUSD:  s.dollars(20, 150),
			Units:     s.between(5, 35),
			PageReads: s.between(500, 4000),
			Rank:      s.between(5000, 500000),
		}
	}

	return model.DailySales{
		ByPlatform: byPlatform,
		ByBook:     byBook,
		NewReviews: s.between(1, 5),
		KPIs: model.KPISet{
			ConversionRate:          s.dollars(2.5, 8.5),
			AverageOrderValue:       s.dollars(3.5, 6.5),
			CustomerAcquisitionCost: s.dollars(0.5, 2.5),
			ReturnOnAdSpend:         s.dollars(2.0, 5.5),
		},
	}
}

func (s *SampleMetricsSource) dollars(min, max float64) float64 {
	return round2(min + s.rng.Float64()*(max-min))
}

func (s *SampleMetricsSource) between(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

// ====================== Dashboard service ======================

// DashboardService assembles sales reports and tracks KPI history.
type DashboardService struct {
	Source  MetricsSource
	KPIs    repository.KPIRepositoryInterface
	Reports repository.ReportWriterInterface
	Logger  *zap.SugaredLogger
}

// DailyReport builds, saves and returns the report for the last day.
func (s *DashboardService) DailyReport() (*model.SalesReport, string, error) {
	now := time.Now()
	report := s.assemble(s.Source.ProvideDaily(), model.Period{
		Start: now.AddDate(0, 0, -1).Format("2006-01-02"),
		End:   now.Format("2006-01-02"),
	})
	return s.save(report, "daily")
}

// WeeklyReport builds a consolidated seven-day report. Headline
// totals are scaled from the daily figures; splits, alerts and
// recommendations keep their daily basis.
func (s *DashboardService) WeeklyReport() (*model.SalesReport, string, error) {
	now := time.Now()
	report := s.assemble(s.Source.ProvideDaily(), model.Period{
		Start: now.AddDate(0, 0, -7).Format("2006-01-02"),
		End:   now.Format("2006-01-02"),
	})

	report.Summary.TotalSalesUSD = round2(report.Summary.TotalSalesUSD * 7)
	report.Summary.UnitsSold *= 7
	report.Summary.PageReadsKU *= 7

	return s.save(report, "weekly")
}

func (s *DashboardService) save(report *model.SalesReport, kind string) (*model.SalesReport, string, error) {
	path, err := s.Reports.JSONReport(kind, report)
	if err != nil {
		return nil, "", err
	}
	metrics.ReportsGenerated.Inc()
	s.Logger.Infow("✅ sales report generated",
		"type", kind,
		"total_usd", report.Summary.TotalSalesUSD,
		"report", path,
	)
	return report, path, nil
}

func (s *DashboardService) assemble(data model.DailySales, period model.Period) *model.SalesReport {
	totalSales := 0.0
	totalUnits := 0
	for _, p := range data.ByPlatform {
		totalSales += p.SalesUSD
		totalUnits += p.Units
	}
	totalSales = round2(totalSales)

	byMarket := data.ByMarket
	if byMarket == nil {
		byMarket = map[string]model.MarketSales{}
		for market, share := range marketShares {
			byMarket[market] = model.MarketSales{
				SalesUSD: round2(totalSales * share),
				Units:    int(float64(totalUnits) * share),
			}
		}
	}

	report := &model.SalesReport{
		GeneratedAt: time.Now(),
		Period:      period,
		Summary: model.SalesSummary{
			TotalSalesUSD: totalSales,
			UnitsSold:     totalUnits,
			PageReadsKU:   data.ByPlatform["Amazon KDP"].PageReads,
			NewReviews:    data.NewReviews,
			BestSeller:    bestSeller(data.ByBook),
			TopPlatform:   topPlatform(data.ByPlatform),
		},
		ByPlatform: data.ByPlatform,
		ByBook:     data.ByBook,
		ByMarket:   byMarket,
		DailyKPIs:  data.KPIs,
	}
	report.Recommendations = recommendationsFor(report)
	report.Alerts = alertsFor(report)
	return report
}

func topPlatform(byPlatform map[string]model.PlatformSales) string {
	best := ""
	for name, p := range byPlatform {
		if best == "" || p.SalesUSD > byPlatform[best].SalesUSD ||
			(p.SalesUSD == byPlatform[best].SalesUSD && name < best) {
			best = name
		}
	}
	return best
}

func bestSeller(byBook map[string]model.BookSales) string {
	best := ""
	for asin, b := range byBook {
		if best == "" || b.SalesUSD > byBook[best].SalesUSD ||
			(b.SalesUSD == byBook[best].SalesUSD && asin < best) {
			best = asin
		}
	}
	if best == "" {
		return ""
	}
	return byBook[best].Title
}

func recommendationsFor(report *model.SalesReport) []model.Recommendation {
	recs := []model.Recommendation{}
	total := report.Summary.TotalSalesUSD

	amazonShare := 0.0
	if total > 0 {
		amazonShare = report.ByPlatform["Amazon KDP"].SalesUSD / total * 100
	}
	if amazonShare > 70 {
		recs = append(recs, model.Recommendation{
			Type:     "diversification",
			Priority: model.PriorityHigh,
			Message:  "📊 Amazon accounts for over 70% of sales. Consider diversifying to other platforms to reduce dependency.",
		})
	}

	if report.Summary.PageReadsKU > 10000 {
		recs = append(recs, model.Recommendation{
			Type:     "kindle_unlimited",
			Priority: model.PriorityMedium,
			Message:  "📚 Excellent Kindle Unlimited performance. Consider enrolling more titles in KDP Select.",
		})
	}

	if report.ByMarket["US"].SalesUSD < total*0.35 {
		recs = append(recs, model.Recommendation{
			Type:     "expansion",
			Priority: model.PriorityHigh,
			Message:  "🇺🇸 The US market is under-represented. Increase ad spend on Amazon.com",
		})
	}

	recs = append(recs,
		model.Recommendation{
			Type:     "pricing",
			Priority: model.PriorityMedium,
			Message:  "💰 Books with BSR < 50,000 could support a 10-15% price increase",
		},
		model.Recommendation{
			Type:     "bundling",
			Priority: model.PriorityLow,
			Message:  "📦 A 'Valentina Smirnova - Complete Series' bundle could raise AOV",
		},
		model.Recommendation{
			Type:     "promotion",
			Priority: model.PriorityMedium,
			Message:  "🎁 Schedule a free promotion for the least visible title this weekend",
		},
		model.Recommendation{
			Type:     "content",
			Priority: model.PriorityLow,
			Message:  "✍️ Post more often on BookTok, engagement keeps trending up",
		},
	)
	return recs
}

func alertsFor(report *model.SalesReport) []model.Alert {
	alerts := []model.Alert{}

	if report.Summary.UnitsSold < 20 {
		alerts = append(alerts, model.Alert{
			Type:     "low_sales",
			Severity: model.PriorityHigh,
			Message:  "⚠️ Sales significantly below normal. Review visibility and ads.",
		})
	}

	if report.Summary.NewReviews == 0 {
		alerts = append(alerts, model.Alert{
			Type:     "no_reviews",
			Severity: model.PriorityMedium,
			Message:  "📭 No new reviews in 24h. Trigger a review request campaign.",
		})
	}

	// Stable order regardless of map iteration.
	asins := make([]string, 0, len(report.ByBook))
	for asin := range report.ByBook {
		asins = append(asins, asin)
	}
	sort.Strings(asins)
	for _, asin := range asins {
		if book := report.ByBook[asin]; book.Rank > 100000 {
			alerts = append(alerts, model.Alert{
				Type:     "high_bsr",
				Severity: model.PriorityLow,
				Message:  fmt.Sprintf("📉 '%s' ranks low on the charts. Consider a promotion.", clip(book.Title, 30)),
			})
		}
	}
	return alerts
}

// MonthlyForecast builds and saves the projection for the coming
// month. Figures are a planning baseline, not a statistical model.
func (s *DashboardService) MonthlyForecast() (*model.Forecast, string, error) {
	now := time.Now()
	forecast := &model.Forecast{
		GeneratedAt: now,
		Month:       now.AddDate(0, 0, 30).Format("2006-01"),
		Projection: model.Projection{
			SalesUSD:       8500,
			Units:          2200,
			PageReadsKU:    350000,
			NewSubscribers: 150,
		},
		GrowthFactors: []model.GrowthFactor{
			{Factor: "Spring reading season", Impact: "+15%"},
			{Factor: "New scheduled promotions", Impact: "+10%"},
			{Factor: "Latin American market expansion", Impact: "+8%"},
			{Factor: "BookTok campaign", Impact: "+12%"},
		},
		Risks: []model.Risk{
			{Risk: "Rising competition in the sci-fi category", Mitigation: "Differentiate through author marketing"},
			{Risk: "Amazon algorithm changes", Mitigation: "Diversify to other platforms"},
			{Risk: "EUR/USD exchange rate swings", Mitigation: "Dynamic pricing per region"},
		},
		Scenarios: map[string]model.Scenario{
			"optimistic":   {SalesUSD: 10500, Probability: "25%"},
			"expected":     {SalesUSD: 8500, Probability: "50%"},
			"conservative": {SalesUSD: 6500, Probability: "25%"},
		},
	}

	path, err := s.Reports.JSONReport("forecast", forecast)
	if err != nil {
		return nil, "", err
	}
	metrics.ReportsGenerated.Inc()
	s.Logger.Infow("🔮 monthly forecast generated", "month", forecast.Month, "report", path)
	return forecast, path, nil
}

// TrackKPI records one metric observation.
func (s *DashboardService) TrackKPI(metric string, value float64) error {
	if err := s.KPIs.Track(metric, value); err != nil {
		return err
	}
	s.Logger.Debugw("kpi tracked", "metric", metric, "value", value)
	return nil
}

// KPITrend compares the halves of the last days observations of a
// metric and classifies the direction.
func (s *DashboardService) KPITrend(metric string, days int) (*model.KPITrend, error) {
	if days <= 0 {
		days = defaultTrendDays
	}

	points, err := s.KPIs.History(metric)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("kpi %s: %w", metric, appErrors.ErrNoHistory)
	}
	if len(points) > days {
		points = points[len(points)-days:]
	}

	trend := &model.KPITrend{
		Metric:     metric,
		PeriodDays: days,
		DataPoints: len(points),
	}
	if len(points) < 2 {
		trend.Trend = model.TrendInsufficient
		return trend, nil
	}

	sum := 0.0
	for _, p := range points {
		sum += p.Value
	}
	trend.Average = round2(sum / float64(len(points)))

	firstAvg := average(points[:len(points)/2])
	secondAvg := average(points[len(points)/2:])

	switch {
	case secondAvg > firstAvg*1.1:
		trend.Trend = model.TrendUp
	case secondAvg < firstAvg*0.9:
		trend.Trend = model.TrendDown
	default:
		trend.Trend = model.TrendStable
	}
	if firstAvg != 0 {
		trend.ChangePercent = round2((secondAvg - firstAvg) / firstAvg * 100)
	}
	return trend, nil
}

func average(points []model.KPIPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatSalesReport renders a report for terminal display.
func FormatSalesReport(report *model.SalesReport) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("=", 70) + "\n")
	b.WriteString("📊 SALES REPORT\n")
	b.WriteString(strings.Repeat("=", 70) + "\n")
	fmt.Fprintf(&b, "Period: %s to %s\n\n", report.Period.Start, report.Period.End)

	b.WriteString("📈 EXECUTIVE SUMMARY\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "💰 Total sales: $%.2f\n", report.Summary.TotalSalesUSD)
	fmt.Fprintf(&b, "📚 Units sold: %d\n", report.Summary.UnitsSold)
	fmt.Fprintf(&b, "📖 Page Reads KU: %d\n", report.Summary.PageReadsKU)
	fmt.Fprintf(&b, "⭐ New reviews: %d\n", report.Summary.NewReviews)
	fmt.Fprintf(&b, "🏆 Best seller: %s\n", clip(report.Summary.BestSeller, 40))
	fmt.Fprintf(&b, "🛒 Top platform: %s\n\n", report.Summary.TopPlatform)

	b.WriteString("🌐 SALES BY PLATFORM\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, name := range sortedBySales(report.ByPlatform) {
		p := report.ByPlatform[name]
		fmt.Fprintf(&b, "%-20s $%8.2f | %4d units\n", name, p.SalesUSD, p.Units)
	}
	b.WriteString("\n🌍 SALES BY MARKET\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, market := range sortedMarkets(report.ByMarket) {
		m := report.ByMarket[market]
		fmt.Fprintf(&b, "%-6s $%8.2f | %4d units\n", market, m.SalesUSD, m.Units)
	}

	b.WriteString("\n📊 DAILY KPIs\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Conversion Rate:      %.2f%%\n", report.DailyKPIs.ConversionRate)
	fmt.Fprintf(&b, "Average Order Value:  $%.2f\n", report.DailyKPIs.AverageOrderValue)
	fmt.Fprintf(&b, "CAC:                  $%.2f\n", report.DailyKPIs.CustomerAcquisitionCost)
	fmt.Fprintf(&b, "ROAS:                 %.2fx\n", report.DailyKPIs.ReturnOnAdSpend)

	if len(report.Alerts) > 0 {
		b.WriteString("\n⚠️ ALERTS\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, alert := range report.Alerts {
			fmt.Fprintf(&b, "[%s] %s\n", strings.ToUpper(alert.Severity), alert.Message)
		}
	}

	b.WriteString("\n💡 RECOMMENDATIONS\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	recs := report.Recommendations
	if len(recs) > 5 {
		recs = recs[:5]
	}
	for _, rec := range recs {
		fmt.Fprintf(&b, "[%s] %s\n", strings.ToUpper(rec.Priority), rec.Message)
	}

	b.WriteString("\n" + strings.Repeat("=", 70) + "\n")
	return b.String()
}

func sortedBySales(byPlatform map[string]model.PlatformSales) []string {
	names := make([]string, 0, len(byPlatform))
	for name := range byPlatform {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := byPlatform[names[i]], byPlatform[names[j]]
		if a.SalesUSD != b.SalesUSD {
			return a.SalesUSD > b.SalesUSD
		}
		return names[i] < names[j]
	})
	return names
}

func sortedMarkets(byMarket map[string]model.MarketSales) []string {
	markets := make([]string, 0, len(byMarket))
	for market := range byMarket {
		markets = append(markets, market)
	}
	sort.Slice(markets, func(i, j int) bool {
		a, b := byMarket[markets[i]], byMarket[markets[j]]
		if a.SalesUSD != b.SalesUSD {
			return a.SalesUSD > b.SalesUSD
		}
		return markets[i] < markets[j]
	})
	return markets
}
