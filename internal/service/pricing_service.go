// internal/service/pricing_service.go
package service

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	appErrors "github.com/openclaw/literary-agent/internal/errors"
	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/pricefetch"
	"github.com/openclaw/literary-agent/internal/repository"
)

// changeThresholdPct is how far a price must move, in percent, before
// DetectPriceChange raises an alert.
const changeThresholdPct = 20.0

// fetchParallelism bounds concurrent page fetches so a big competitor
// list does not hammer the store.
const fetchParallelism = 4

type PricingService struct {
	Fetcher pricefetch.Fetcher
	History repository.PriceHistoryRepositoryInterface
	Reports repository.ReportWriterInterface
	Logger  *zap.SugaredLogger
}

// DefaultCompetitors maps watch categories to the ASINs tracked in
// each. Placeholder ASINs; swap in real competitor listings.
func DefaultCompetitors() map[string][]string {
	return map[string][]string{
		"sci_fi_post_apocalyptic": {"B08XXXX1"},
		"sci_fi_ai":               {"B00XXXX2"},
		"thriller_espionage":      {"B07XXXX3"},
		"writing_guides":          {"B00XXXX4"},
	}
}

// LoadCompetitors reads a category-to-ASINs watch list from a YAML
// file. A missing file falls back to the built-in catalog.
func LoadCompetitors(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultCompetitors(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read competitors file: %w", err)
	}

	var file struct {
		Categories map[string][]string `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse competitors file: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("competitors file %s lists no categories", path)
	}
	return file.Categories, nil
}

// CheckCompetitors fetches every listed ASIN, assembles a price report
// grouped by category and saves it. A failed fetch becomes an error
// row in the report instead of aborting the run.
func (s *PricingService) CheckCompetitors(ctx context.Context, competitors map[string][]string) (*model.PriceReport, string, error) {
	report := &model.PriceReport{
		GeneratedAt: time.Now(),
		Categories:  make(map[string][]model.Listing, len(competitors)),
	}

	total := 0
	for category, asins := range competitors {
		report.Categories[category] = make([]model.Listing, len(asins))
		total += len(asins)
	}
	s.Logger.Infow("🔍 checking competitor prices", "categories", len(competitors), "listings", total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchParallelism)

	for category, asins := range competitors {
		for i, asin := range asins {
			row := &report.Categories[category][i]
			g.Go(func() error {
				listing, err := s.Fetcher.Fetch(ctx, asin)
				if err != nil {
					s.Logger.Warnw("⚠️ listing fetch failed", "asin", asin, "error", err)
					*row = model.Listing{ASIN: asin, Error: err.Error()}
					return nil
				}
				*row = *listing
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	path, err := s.Reports.JSONReport("price", report)
	if err != nil {
		return nil, "", err
	}
	s.Logger.Infow("✅ price report saved", "report", path)
	return report, path, nil
}

// TrackPrice fetches one listing and appends its price to the history.
func (s *PricingService) TrackPrice(ctx context.Context, asin string) (*model.Listing, []model.PricePoint, error) {
	listing, err := s.Fetcher.Fetch(ctx, asin)
	if err != nil {
		return nil, nil, err
	}

	history, err := s.History.Track(asin, listing.Price)
	if err != nil {
		return nil, nil, err
	}
	return listing, history, nil
}

// PriceHistory returns the recorded points for one ASIN, oldest first.
func (s *PricingService) PriceHistory(asin string) ([]model.PricePoint, error) {
	return s.History.History(asin)
}

// DetectPriceChange compares the two most recent recorded prices and
// reports a move beyond the threshold. Returns nil when the listing is
// stable or a price cannot be parsed as a number.
func (s *PricingService) DetectPriceChange(asin string) (*model.PriceAlert, error) {
	history, err := s.History.History(asin)
	if err != nil {
		return nil, err
	}
	if len(history) < 2 {
		return nil, fmt.Errorf("detect change for %s: %w", asin, appErrors.ErrNoHistory)
	}

	prev := history[len(history)-2]
	cur := history[len(history)-1]

	prevVal, ok := parsePrice(prev.Price)
	if !ok || prevVal == 0 {
		return nil, nil
	}
	curVal, ok := parsePrice(cur.Price)
	if !ok {
		return nil, nil
	}

	change := (curVal - prevVal) / prevVal * 100
	if math.Abs(change) <= changeThresholdPct {
		return nil, nil
	}

	return &model.PriceAlert{
		ASIN:       asin,
		Previous:   prev.Price,
		Current:    cur.Price,
		ChangePct:  change,
		DetectedAt: time.Now(),
	}, nil
}

// FormatPriceSummary renders a report for terminal display.
func FormatPriceSummary(report *model.PriceReport) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("COMPETITOR PRICE ANALYSIS\n")
	b.WriteString("Date: " + report.GeneratedAt.Format("2006-01-02 15:04") + "\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")

	for category, listings := range report.Categories {
		b.WriteString("\n📚 " + strings.ToUpper(strings.ReplaceAll(category, "_", " ")) + "\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, l := range listings {
			if l.Error != "" {
				fmt.Fprintf(&b, "  ❌ %s: %s\n", l.ASIN, l.Error)
				continue
			}
			fmt.Fprintf(&b, "\n  📖 %s\n", clip(l.Title, 50))
			fmt.Fprintf(&b, "     💰 Price: %s\n", l.Price)
			if l.Rating != "" {
				fmt.Fprintf(&b, "     ⭐ Rating: %s\n", l.Rating)
			}
			if l.Rank != "" {
				fmt.Fprintf(&b, "     📊 Rank: %s\n", clip(l.Rank, 50))
			}
		}
	}

	b.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	b.WriteString("RECOMMENDATIONS:\n")
	b.WriteString("• Keep prices competitive in the $2.99-$4.99 range\n")
	b.WriteString("• Monitor price changes weekly\n")
	b.WriteString("• Adjust strategy by season\n")
	return b.String()
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// parsePrice pulls a numeric value out of strings like "$4.99",
// "4,99 €" or "USD 12.50".
func parsePrice(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0, false
	}

	if strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
