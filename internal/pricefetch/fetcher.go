// Package pricefetch pulls listing details off store product pages.
package pricefetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	appErrors "github.com/openclaw/literary-agent/internal/errors"
	"github.com/openclaw/literary-agent/internal/metrics"
	"github.com/openclaw/literary-agent/internal/model"
)

const (
	amazonBase = "https://www.amazon.com"
	userAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// maxBody caps how much of a product page we read.
	maxBody = 1 << 20
)

// Fetcher loads the current state of one listing.
type Fetcher interface {
	Fetch(ctx context.Context, asin string) (*model.Listing, error)
}

// AmazonFetcher scrapes Amazon product pages. The price is taken from
// the first matching selector of a fixed candidate list; pages change
// layout often enough that no single selector is reliable.
type AmazonFetcher struct {
	Client  *http.Client
	BaseURL string
}

var _ Fetcher = (*AmazonFetcher)(nil)

func NewAmazonFetcher(client *http.Client) *AmazonFetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &AmazonFetcher{Client: client, BaseURL: amazonBase}
}

func (f *AmazonFetcher) Fetch(ctx context.Context, asin string) (*model.Listing, error) {
	metrics.PriceFetches.Inc()

	listing, err := f.fetch(ctx, asin)
	if err != nil {
		metrics.PriceFetchErrors.Inc()
		return nil, err
	}
	return listing, nil
}

func (f *AmazonFetcher) fetch(ctx context.Context, asin string) (*model.Listing, error) {
	url := fmt.Sprintf("%s/dp/%s", f.BaseURL, asin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d", asin, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}

	price := extractPrice(doc)
	if price == "" {
		return nil, fmt.Errorf("fetch %s: %w", asin, appErrors.ErrPriceUnavailable)
	}

	title := "Unknown"
	if node := findByID(doc, "productTitle"); node != nil {
		title = textContent(node)
	}

	rating := ""
	if node := findByClass(doc, "a-icon-alt"); node != nil {
		rating = textContent(node)
	}

	return &model.Listing{
		ASIN:   asin,
		Title:  title,
		Price:  price,
		Rating: rating,
		Rank:   extractRank(doc),
	}, nil
}

// extractPrice tries the known price selectors in a fixed order.
func extractPrice(doc *html.Node) string {
	candidates := []*html.Node{
		findByClass(doc, "kindlePrice"),
		findByID(doc, "kindle-price"),
		findNestedClass(doc, "a-price", "a-offscreen"),
		findByID(doc, "priceblock_kindleprice"),
		findByClass(doc, "a-color-price"),
	}
	for _, node := range candidates {
		if node == nil {
			continue
		}
		if price := textContent(node); price != "" {
			return price
		}
	}
	return ""
}

// extractRank locates the "Best Sellers Rank" label and returns its
// enclosing element's text, clipped to a readable length.
func extractRank(doc *html.Node) string {
	node := findTextNode(doc, "Best Sellers Rank")
	if node == nil || node.Parent == nil {
		return ""
	}
	rank := textContent(node.Parent)
	if len(rank) > 100 {
		rank = rank[:100]
	}
	return rank
}
