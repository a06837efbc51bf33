// cmd/literary-agent/helpers.go
package main

import (
	"fmt"
	"os"

	"github.com/openclaw/literary-agent/internal/config"
	"github.com/openclaw/literary-agent/internal/pricefetch"
	"github.com/openclaw/literary-agent/internal/repository"
	"github.com/openclaw/literary-agent/internal/service"
)

// toolkit bundles the wired services for one process. Every surface
// (CLI command, HTTP server, MCP server) drives the same instances.
type toolkit struct {
	cfg       config.Config
	contacts  *repository.ContactRepository
	outreach  *service.OutreachService
	pricing   *service.PricingService
	dashboard *service.DashboardService
	social    *service.SocialService
}

// newToolkit loads config, prepares the data directory and wires
// repositories into services. Optional YAML catalogs under the data
// dir replace the built-in templates, books and competitor lists.
func newToolkit() (*toolkit, error) {
	cfg := config.Load()
	if err := cfg.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	contacts := &repository.ContactRepository{Path: cfg.ContactsFile()}
	campaignLog := &repository.CampaignLogRepository{Path: cfg.CampaignLogFile()}
	reports := &repository.ReportWriter{
		ReportsDir:   cfg.ReportsDir(),
		CampaignsDir: cfg.CampaignsDir(),
	}

	templates := service.NewTemplateService()
	if fileExists(cfg.TemplatesFile()) {
		if err := templates.LoadFile(cfg.TemplatesFile()); err != nil {
			return nil, err
		}
		logger.Infow("📄 loaded template overrides", "file", cfg.TemplatesFile())
	}

	social := service.NewSocialService(reports, logger, nil)
	if fileExists(cfg.BooksFile()) {
		if err := social.LoadBooks(cfg.BooksFile()); err != nil {
			return nil, err
		}
		logger.Infow("📄 loaded book catalog", "file", cfg.BooksFile())
	}

	return &toolkit{
		cfg:      cfg,
		contacts: contacts,
		outreach: &service.OutreachService{
			Contacts:  contacts,
			Log:       campaignLog,
			Reports:   reports,
			Templates: templates,
			Logger:    logger,
		},
		pricing: &service.PricingService{
			Fetcher: pricefetch.NewAmazonFetcher(nil),
			History: &repository.PriceHistoryRepository{Dir: cfg.ReportsDir()},
			Reports: reports,
			Logger:  logger,
		},
		dashboard: &service.DashboardService{
			Source:  service.NewSampleMetricsSource(nil),
			KPIs:    &repository.KPIRepository{Path: cfg.KPIFile()},
			Reports: reports,
			Logger:  logger,
		},
		social: social,
	}, nil
}

// competitors resolves the watch list, honoring competitors.yaml.
func (tk *toolkit) competitors() (map[string][]string, error) {
	return service.LoadCompetitors(tk.cfg.CompetitorsFile())
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
