package repository

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/openclaw/literary-agent/internal/model"
)

// ReportWriterInterface defines methods used by service
type ReportWriterInterface interface {
	CampaignCSV(record model.CampaignRecord) (string, error)
	JSONReport(kind string, v any) (string, error)
	SocialPlan(language, content string) (string, error)
}

// ReportWriter drops generated artifacts into the reports and
// campaigns directories. Filenames carry a timestamp so repeated runs
// never clobber each other.
type ReportWriter struct {
	ReportsDir   string
	CampaignsDir string
}

var _ ReportWriterInterface = (*ReportWriter)(nil)

var campaignReportHeader = []string{
	"organization", "email", "city", "country", "language", "subject", "status", "timestamp",
}

// CampaignCSV writes the per-run outreach report, one row per outcome
// entry. A run with no entries still produces the header row.
func (w *ReportWriter) CampaignCSV(record model.CampaignRecord) (string, error) {
	path := filepath.Join(w.ReportsDir, fmt.Sprintf("library_campaign_%s.csv", record.ID))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create campaign report: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(campaignReportHeader); err != nil {
		return "", err
	}
	for _, e := range record.Results {
		row := []string{
			e.Organization, e.Email, e.City, e.Country,
			e.Language, e.Subject, e.Status, e.Timestamp.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return path, nil
}

// JSONReport writes a dated report of the given kind (daily, weekly,
// forecast, prices) and returns its path.
func (w *ReportWriter) JSONReport(kind string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %s report: %w", kind, err)
	}

	name := fmt.Sprintf("%s_report_%s.json", kind, time.Now().Format("20060102_1504"))
	path := filepath.Join(w.ReportsDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s report: %w", kind, err)
	}
	return path, nil
}

// SocialPlan saves a rendered weekly content plan for one language.
func (w *ReportWriter) SocialPlan(language, content string) (string, error) {
	name := fmt.Sprintf("social_content_%s_%s.txt", language, time.Now().Format("20060102"))
	path := filepath.Join(w.CampaignsDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write social plan: %w", err)
	}
	return path, nil
}
