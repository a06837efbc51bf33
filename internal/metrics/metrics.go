// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CampaignsRun = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "literary_agent",
		Name:      "campaigns_run_total",
		Help:      "Total outreach campaigns executed.",
	})
	EmailsPrepared = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "literary_agent",
		Name:      "emails_prepared_total",
		Help:      "Total outreach emails rendered across campaigns.",
	})
	PriceFetches = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "literary_agent",
		Name:      "price_fetches_total",
		Help:      "Total store pages fetched for price checks.",
	})
	PriceFetchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "literary_agent",
		Name:      "price_fetch_errors_total",
		Help:      "Total store page fetches that failed.",
	})
	ReportsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "literary_agent",
		Name:      "reports_generated_total",
		Help:      "Total sales reports and forecasts generated.",
	})
	SocialPlansGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "literary_agent",
		Name:      "social_plans_generated_total",
		Help:      "Total weekly social content plans generated.",
	})
)

// Init registers collectors; call once from main.
func Init() {
	prometheus.MustRegister(
		CampaignsRun,
		EmailsPrepared,
		PriceFetches,
		PriceFetchErrors,
		ReportsGenerated,
		SocialPlansGenerated,
	)
}

// Serve starts a /metrics server on the given addr (e.g., ":9090").
// Blocking; run in a goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
