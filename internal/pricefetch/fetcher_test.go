package pricefetch_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/openclaw/literary-agent/internal/errors"
	"github.com/openclaw/literary-agent/internal/pricefetch"
)

func newTestFetcher(t *testing.T, pages map[string]string) *pricefetch.AmazonFetcher {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, page)
	}))
	t.Cleanup(srv.Close)

	f := pricefetch.NewAmazonFetcher(srv.Client())
	f.BaseURL = srv.URL
	return f
}

func TestFetchReadsKindlePrice(t *testing.T) {
	f := newTestFetcher(t, map[string]string{
		"/dp/B0CLQ2RJP3": `<html><body>
			<span id="productTitle"> ApocalypsAI: The Day After AGI </span>
			<div class="kindlePrice">$4.99</div>
			<i class="a-icon-alt">4.5 out of 5 stars</i>
			<ul><li><span>Best Sellers Rank: #12,345 in Kindle Store</span></li></ul>
		</body></html>`,
	})

	listing, err := f.Fetch(context.Background(), "B0CLQ2RJP3")
	require.NoError(t, err)

	assert.Equal(t, "B0CLQ2RJP3", listing.ASIN)
	assert.Equal(t, "ApocalypsAI: The Day After AGI", listing.Title)
	assert.Equal(t, "$4.99", listing.Price)
	assert.Equal(t, "4.5 out of 5 stars", listing.Rating)
	assert.Contains(t, listing.Rank, "#12,345")
}

func TestFetchFallsBackThroughSelectors(t *testing.T) {
	f := newTestFetcher(t, map[string]string{
		"/dp/AAA": `<html><body>
			<span class="a-price"><span class="a-offscreen">$2.99</span></span>
		</body></html>`,
		"/dp/BBB": `<html><body>
			<span class="a-color-price">$7.49</span>
		</body></html>`,
	})

	nested, err := f.Fetch(context.Background(), "AAA")
	require.NoError(t, err)
	assert.Equal(t, "$2.99", nested.Price)
	assert.Equal(t, "Unknown", nested.Title)

	last, err := f.Fetch(context.Background(), "BBB")
	require.NoError(t, err)
	assert.Equal(t, "$7.49", last.Price)
}

func TestFetchPrefersEarlierSelectors(t *testing.T) {
	f := newTestFetcher(t, map[string]string{
		"/dp/CCC": `<html><body>
			<span class="a-color-price">$9.99</span>
			<div class="kindlePrice">$3.99</div>
		</body></html>`,
	})

	listing, err := f.Fetch(context.Background(), "CCC")
	require.NoError(t, err)
	assert.Equal(t, "$3.99", listing.Price)
}

func TestFetchNoPriceOnPage(t *testing.T) {
	f := newTestFetcher(t, map[string]string{
		"/dp/DDD": `<html><body><span id="productTitle">No buy box today</span></body></html>`,
	})

	_, err := f.Fetch(context.Background(), "DDD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrPriceUnavailable))
}

func TestFetchHTTPError(t *testing.T) {
	f := newTestFetcher(t, map[string]string{})

	_, err := f.Fetch(context.Background(), "MISSING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}
