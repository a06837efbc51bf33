// internal/mcp/server.go
package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	appErrors "github.com/openclaw/literary-agent/internal/errors"
	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/service"
)

// Version is stamped into the MCP handshake.
var Version = "dev"

// Server exposes the toolkit services as MCP tools over one SDK
// server. Agents drive the same service layer the HTTP API and CLI
// use.
type Server struct {
	MCPServer *sdkmcp.Server

	outreach  *service.OutreachService
	pricing   *service.PricingService
	dashboard *service.DashboardService
	social    *service.SocialService
	logger    *zap.SugaredLogger
}

func NewServer(outreach *service.OutreachService, pricing *service.PricingService, dashboard *service.DashboardService, social *service.SocialService, logger *zap.SugaredLogger) *Server {
	s := &Server{
		outreach:  outreach,
		pricing:   pricing,
		dashboard: dashboard,
		social:    social,
		logger:    logger,
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "literary-agent", Version: Version},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves MCP over stdio until the context ends.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Infow("📡 MCP server listening on stdio")
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "run_outreach_campaign",
		Description: "Run one outreach batch against the library contact list. Dry runs prepare and report without marking anyone contacted.",
	}, s.handleRunCampaign)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "track_contact",
		Description: "Record the outcome of a single contact after a reply, e.g. responded, interested, rejected.",
	}, s.handleTrackContact)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_contacts",
		Description: "List library contacts, optionally filtered by region, language and contacted state.",
	}, s.handleListContacts)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_campaign_stats",
		Description: "Aggregate statistics across all recorded outreach campaigns.",
	}, s.handleCampaignStats)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "check_competitor_prices",
		Description: "Fetch competitor listings by watch category and save a price report. Omit category to check the whole catalog.",
	}, s.handleCheckPrices)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_price_history",
		Description: "Recorded price points for one ASIN, oldest first, with a change alert when the newest move crosses the threshold.",
	}, s.handlePriceHistory)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "generate_sales_report",
		Description: "Build and save a sales report. Periods: daily, weekly, forecast.",
	}, s.handleSalesReport)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_kpi_trend",
		Description: "Trend analysis for one tracked KPI metric over the last N days.",
	}, s.handleKPITrend)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "generate_social_plan",
		Description: "Generate a seven-day social content plan in the requested language and save the rendered file.",
	}, s.handleSocialPlan)
}

// --- Tool input/output types ---

type runCampaignInput struct {
	Region      string `json:"region,omitempty" jsonschema:"region filter, e.g. Europa, Norte America (empty = all)"`
	Language    string `json:"language,omitempty" jsonschema:"preferred language filter, e.g. ES, EN (empty = all)"`
	MaxContacts int    `json:"max_contacts,omitempty" jsonschema:"batch size cap (default 10)"`
	DryRun      bool   `json:"dry_run,omitempty" jsonschema:"simulate without marking contacts"`
}

type runCampaignOutput struct {
	Status     string `json:"status"`
	CampaignID string `json:"campaign_id,omitempty"`
	TotalSent  int    `json:"total_sent"`
	ReportFile string `json:"report_file,omitempty"`
}

type trackContactInput struct {
	Email   string `json:"email" jsonschema:"email of the contact to mark"`
	Outcome string `json:"outcome,omitempty" jsonschema:"outcome label (default responded)"`
	Notes   string `json:"notes,omitempty" jsonschema:"free-form notes about the reply"`
}

type trackContactOutput struct {
	Email     string `json:"email"`
	Contacted bool   `json:"contacted"`
	Outcome   string `json:"outcome"`
}

type listContactsInput struct {
	Region           string `json:"region,omitempty" jsonschema:"region filter (empty = all)"`
	Language         string `json:"language,omitempty" jsonschema:"preferred language filter (empty = all)"`
	ExcludeContacted bool   `json:"exclude_contacted,omitempty" jsonschema:"drop contacts already marked"`
}

type listContactsOutput struct {
	Total    int             `json:"total"`
	Contacts []model.Contact `json:"contacts"`
}

type campaignStatsInput struct{}

type checkPricesInput struct {
	Category string `json:"category,omitempty" jsonschema:"single watch category to check (empty = all categories)"`
}

type checkPricesOutput struct {
	Report     *model.PriceReport `json:"report"`
	ReportFile string             `json:"report_file"`
}

type priceHistoryInput struct {
	ASIN string `json:"asin" jsonschema:"Amazon ASIN of the tracked listing"`
}

type priceHistoryOutput struct {
	ASIN    string             `json:"asin"`
	History []model.PricePoint `json:"history"`
	Alert   *model.PriceAlert  `json:"alert,omitempty"`
}

type salesReportInput struct {
	Period string `json:"period" jsonschema:"report period: daily, weekly or forecast"`
}

type salesReportOutput struct {
	Period     string             `json:"period"`
	Report     *model.SalesReport `json:"report,omitempty"`
	Forecast   *model.Forecast    `json:"forecast,omitempty"`
	ReportFile string             `json:"report_file"`
}

type kpiTrendInput struct {
	Metric string `json:"metric" jsonschema:"KPI metric name, e.g. conversion_rate"`
	Days   int    `json:"days,omitempty" jsonschema:"analysis window in days (default 7)"`
}

type socialPlanInput struct {
	Language string `json:"language,omitempty" jsonschema:"content language code, e.g. ES, EN (default ES)"`
}

type socialPlanOutput struct {
	File string          `json:"file"`
	Plan []model.DayPlan `json:"plan"`
}

// --- Tool handlers ---

func (s *Server) handleRunCampaign(ctx context.Context, _ *sdkmcp.CallToolRequest, input runCampaignInput) (*sdkmcp.CallToolResult, runCampaignOutput, error) {
	max := input.MaxContacts
	if max == 0 {
		max = 10
	}

	result, err := s.outreach.RunBatch(service.BatchParams{
		Region:   input.Region,
		Language: input.Language,
		MaxItems: max,
		DryRun:   input.DryRun,
	})
	if err != nil {
		return nil, runCampaignOutput{}, fmt.Errorf("run_outreach_campaign: %w", err)
	}

	out := runCampaignOutput{
		Status:     result.Status,
		TotalSent:  result.TotalSent,
		ReportFile: result.ReportFile,
	}
	if result.Record != nil {
		out.CampaignID = result.Record.ID
	}
	return nil, out, nil
}

func (s *Server) handleTrackContact(ctx context.Context, _ *sdkmcp.CallToolRequest, input trackContactInput) (*sdkmcp.CallToolResult, trackContactOutput, error) {
	if input.Email == "" {
		return nil, trackContactOutput{}, fmt.Errorf("email is required")
	}
	outcome := input.Outcome
	if outcome == "" {
		outcome = "responded"
	}

	ok, err := s.outreach.Track(input.Email, outcome, input.Notes)
	if err != nil {
		return nil, trackContactOutput{}, fmt.Errorf("track_contact: %w", err)
	}
	if !ok {
		return nil, trackContactOutput{}, appErrors.NewContactNotFound(input.Email)
	}

	return nil, trackContactOutput{Email: input.Email, Contacted: true, Outcome: outcome}, nil
}

func (s *Server) handleListContacts(ctx context.Context, _ *sdkmcp.CallToolRequest, input listContactsInput) (*sdkmcp.CallToolResult, listContactsOutput, error) {
	contacts, err := s.outreach.LoadContacts(model.ContactFilter{
		Region:           input.Region,
		Language:         input.Language,
		ExcludeContacted: input.ExcludeContacted,
	})
	if err != nil {
		return nil, listContactsOutput{}, fmt.Errorf("list_contacts: %w", err)
	}
	return nil, listContactsOutput{Total: len(contacts), Contacts: contacts}, nil
}

func (s *Server) handleCampaignStats(ctx context.Context, _ *sdkmcp.CallToolRequest, _ campaignStatsInput) (*sdkmcp.CallToolResult, model.CampaignStats, error) {
	stats, err := s.outreach.Stats()
	if err != nil {
		return nil, model.CampaignStats{}, fmt.Errorf("get_campaign_stats: %w", err)
	}
	return nil, *stats, nil
}

func (s *Server) handleCheckPrices(ctx context.Context, _ *sdkmcp.CallToolRequest, input checkPricesInput) (*sdkmcp.CallToolResult, checkPricesOutput, error) {
	competitors := service.DefaultCompetitors()
	if input.Category != "" {
		asins, ok := competitors[input.Category]
		if !ok {
			return nil, checkPricesOutput{}, fmt.Errorf("unknown watch category %q", input.Category)
		}
		competitors = map[string][]string{input.Category: asins}
	}

	report, path, err := s.pricing.CheckCompetitors(ctx, competitors)
	if err != nil {
		return nil, checkPricesOutput{}, fmt.Errorf("check_competitor_prices: %w", err)
	}
	return nil, checkPricesOutput{Report: report, ReportFile: path}, nil
}

func (s *Server) handlePriceHistory(ctx context.Context, _ *sdkmcp.CallToolRequest, input priceHistoryInput) (*sdkmcp.CallToolResult, priceHistoryOutput, error) {
	if input.ASIN == "" {
		return nil, priceHistoryOutput{}, fmt.Errorf("asin is required")
	}

	history, err := s.pricing.PriceHistory(input.ASIN)
	if err != nil {
		return nil, priceHistoryOutput{}, fmt.Errorf("get_price_history: %w", err)
	}

	out := priceHistoryOutput{ASIN: input.ASIN, History: history}
	if len(history) >= 2 {
		alert, err := s.pricing.DetectPriceChange(input.ASIN)
		if err != nil {
			return nil, priceHistoryOutput{}, fmt.Errorf("get_price_history: %w", err)
		}
		out.Alert = alert
	}
	return nil, out, nil
}

func (s *Server) handleSalesReport(ctx context.Context, _ *sdkmcp.CallToolRequest, input salesReportInput) (*sdkmcp.CallToolResult, salesReportOutput, error) {
	out := salesReportOutput{Period: input.Period}

	switch input.Period {
	case "daily":
		report, path, err := s.dashboard.DailyReport()
		if err != nil {
			return nil, salesReportOutput{}, fmt.Errorf("generate_sales_report: %w", err)
		}
		out.Report, out.ReportFile = report, path
	case "weekly":
		report, path, err := s.dashboard.WeeklyReport()
		if err != nil {
			return nil, salesReportOutput{}, fmt.Errorf("generate_sales_report: %w", err)
		}
		out.Report, out.ReportFile = report, path
	case "forecast":
		forecast, path, err := s.dashboard.MonthlyForecast()
		if err != nil {
			return nil, salesReportOutput{}, fmt.Errorf("generate_sales_report: %w", err)
		}
		out.Forecast, out.ReportFile = forecast, path
	default:
		return nil, salesReportOutput{}, fmt.Errorf("unknown period %q (want daily, weekly or forecast)", input.Period)
	}

	return nil, out, nil
}

func (s *Server) handleKPITrend(ctx context.Context, _ *sdkmcp.CallToolRequest, input kpiTrendInput) (*sdkmcp.CallToolResult, model.KPITrend, error) {
	if input.Metric == "" {
		return nil, model.KPITrend{}, fmt.Errorf("metric is required")
	}

	trend, err := s.dashboard.KPITrend(input.Metric, input.Days)
	if err != nil {
		return nil, model.KPITrend{}, fmt.Errorf("get_kpi_trend: %w", err)
	}
	return nil, *trend, nil
}

func (s *Server) handleSocialPlan(ctx context.Context, _ *sdkmcp.CallToolRequest, input socialPlanInput) (*sdkmcp.CallToolResult, socialPlanOutput, error) {
	plan := s.social.WeeklyPlan(input.Language)
	path, err := s.social.SaveWeeklyPlan(plan, input.Language)
	if err != nil {
		return nil, socialPlanOutput{}, fmt.Errorf("generate_social_plan: %w", err)
	}
	return nil, socialPlanOutput{File: path, Plan: plan}, nil
}
