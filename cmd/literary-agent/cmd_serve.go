// cmd/literary-agent/cmd_serve.go
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/openclaw/literary-agent/internal/controller"
	"github.com/openclaw/literary-agent/internal/handler"
	"github.com/openclaw/literary-agent/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API over the toolkit services",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	outreachController := &controller.OutreachController{Service: tk.outreach}
	pricingController := &controller.PricingController{Service: tk.pricing}
	dashboardController := &controller.DashboardController{Service: tk.dashboard}
	socialController := &controller.SocialController{Service: tk.social}

	contactHandler := &handler.ContactHandler{
		Repo:    tk.contacts,
		Service: tk.outreach,
	}

	r := chi.NewRouter()

	// Outreach routes
	r.Post("/outreach/run", outreachController.RunCampaign)
	r.Get("/outreach/stats", outreachController.Stats)
	r.Get("/outreach/campaigns", outreachController.ListCampaigns)
	r.Get("/contacts", contactHandler.ListContactsHandler)
	r.Post("/contacts/track", contactHandler.TrackContactHandler)

	// Pricing routes
	r.Get("/prices/{asin}", pricingController.GetListing)
	r.Get("/prices/{asin}/history", pricingController.GetHistory)

	// Dashboard routes
	r.Post("/dashboard/reports/{kind}", dashboardController.GenerateReport)
	r.Post("/dashboard/kpi", dashboardController.TrackKPI)
	r.Get("/dashboard/kpi/{metric}/trend", dashboardController.KPITrend)

	// Social routes
	r.Post("/social/plan", socialController.WeeklyPlan)

	r.Handle("/metrics", promhttp.Handler())

	if tk.cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(tk.cfg.MetricsAddr); err != nil {
				logger.Errorw("metrics server stopped", "error", err)
			}
		}()
	}

	logger.Infow("🚀 Server running", "addr", tk.cfg.Addr)
	return http.ListenAndServe(tk.cfg.Addr, r)
}
