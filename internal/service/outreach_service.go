// internal/service/outreach_service.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openclaw/literary-agent/internal/metrics"
	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/repository"
)

// Batch outcomes. NoContacts means the filters matched nothing, which
// is different from a batch that processed zero contacts.
const (
	BatchStatusSuccess    = "success"
	BatchStatusNoContacts = "no_contacts"
)

// EmailSender hands a prepared message to whatever transport the
// deployment wires in. With no sender configured, real-mode campaigns
// prepare and record messages without transmitting anything.
type EmailSender interface {
	Send(to, subject, body string) error
}

type OutreachService struct {
	Contacts  repository.ContactRepositoryInterface
	Log       repository.CampaignLogRepositoryInterface
	Reports   repository.ReportWriterInterface
	Templates *TemplateService
	Sender    EmailSender
	Logger    *zap.SugaredLogger
}

type BatchParams struct {
	Region   string
	Language string
	MaxItems int
	DryRun   bool
}

// BatchResult is what one campaign run produces.
type BatchResult struct {
	Status     string                `json:"status"`
	TotalSent  int                   `json:"total_sent"`
	ReportFile string                `json:"report_file,omitempty"`
	Record     *model.CampaignRecord `json:"campaign,omitempty"`
}

// RunBatch executes one outreach campaign: load eligible contacts,
// render an email per contact, mark them contacted (unless dry run),
// then append the run to the campaign log and write the CSV report.
//
// Contacts are marked before the log append. If the append or the
// report write fails afterwards, the marks are not rolled back; the
// error says so and the operator reconciles by hand.
func (s *OutreachService) RunBatch(params BatchParams) (*BatchResult, error) {
	if err := s.Contacts.Initialize(); err != nil {
		return nil, err
	}

	eligible, err := s.Contacts.Load(model.ContactFilter{
		Region:           params.Region,
		Language:         params.Language,
		ExcludeContacted: true,
	})
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		s.Logger.Infow("no eligible contacts for campaign",
			"region", orAll(params.Region), "language", orAuto(params.Language))
		return &BatchResult{Status: BatchStatusNoContacts}, nil
	}

	if params.MaxItems < 0 {
		params.MaxItems = 0
	}
	batch := eligible
	if len(batch) > params.MaxItems {
		batch = batch[:params.MaxItems]
	}

	mode := model.ModeReal
	status := model.OutcomeSent
	if params.DryRun {
		mode = model.ModeSimulation
		status = model.OutcomeSimulated
	}

	s.Logger.Infow("📚 preparing campaign",
		"contacts", len(batch),
		"region", orAll(params.Region),
		"language", orAuto(params.Language),
		"mode", mode,
	)

	entries := make([]model.OutcomeEntry, 0, len(batch))
	emails := make([]string, 0, len(batch))
	for _, contact := range batch {
		language := params.Language
		if language == "" {
			language = contact.PreferredLanguage
		}
		tpl := s.Templates.Resolve(language)
		body := s.Templates.Render(tpl, contact.Name)

		if !params.DryRun && s.Sender != nil {
			if err := s.Sender.Send(contact.Email, tpl.Subject, body); err != nil {
				s.Logger.Warnw("⚠️ send failed, still recording outcome",
					"email", contact.Email, "error", err)
			}
		}

		entries = append(entries, model.OutcomeEntry{
			Organization: contact.Name,
			Email:        contact.Email,
			City:         contact.City,
			Country:      contact.Country,
			Language:     language,
			Subject:      tpl.Subject,
			Status:       status,
			Timestamp:    time.Now(),
		})
		emails = append(emails, contact.Email)
	}

	if !params.DryRun && len(emails) > 0 {
		if _, err := s.Contacts.MarkContactedBatch(emails, model.OutcomeSent, ""); err != nil {
			return nil, fmt.Errorf("mark contacts: %w", err)
		}
	}

	now := time.Now()
	record := model.CampaignRecord{
		ID:             newCampaignID(now),
		Timestamp:      now,
		RegionFilter:   optional(params.Region),
		LanguageFilter: optional(params.Language),
		TotalSent:      len(entries),
		Mode:           mode,
		Results:        entries,
	}

	if err := s.Log.Append(record); err != nil {
		if !params.DryRun {
			s.Logger.Errorw("⚠️ campaign log append failed after contacts were marked",
				"campaign", record.ID, "error", err)
		}
		return nil, fmt.Errorf("append campaign log: %w", err)
	}

	reportFile, err := s.Reports.CampaignCSV(record)
	if err != nil {
		s.Logger.Errorw("⚠️ campaign report write failed, log entry already appended",
			"campaign", record.ID, "error", err)
		return nil, fmt.Errorf("write campaign report: %w", err)
	}

	metrics.CampaignsRun.Inc()
	metrics.EmailsPrepared.Add(float64(len(entries)))
	s.Logger.Infow("✅ campaign complete",
		"campaign", record.ID, "sent", record.TotalSent, "report", reportFile)

	return &BatchResult{
		Status:     BatchStatusSuccess,
		TotalSent:  record.TotalSent,
		ReportFile: reportFile,
		Record:     &record,
	}, nil
}

// Track records the outcome of a single contact outside a batch run,
// e.g. after a library replies. Returns false when the email is not in
// the store.
func (s *OutreachService) Track(email, outcome, notes string) (bool, error) {
	if err := s.Contacts.Initialize(); err != nil {
		return false, err
	}
	return s.Contacts.MarkContacted(email, outcome, notes)
}

// LoadContacts lists contacts, optionally narrowed the same way
// RunBatch narrows its batch.
func (s *OutreachService) LoadContacts(filter model.ContactFilter) ([]model.Contact, error) {
	if err := s.Contacts.Initialize(); err != nil {
		return nil, err
	}
	return s.Contacts.Load(filter)
}

// Campaigns returns the full campaign history.
func (s *OutreachService) Campaigns() ([]model.CampaignRecord, error) {
	return s.Log.List()
}

// Stats aggregates the campaign history.
func (s *OutreachService) Stats() (*model.CampaignStats, error) {
	return s.Log.Stats()
}

// newCampaignID combines a second-resolution timestamp with a random
// suffix so two runs in the same second still get distinct IDs.
func newCampaignID(now time.Time) string {
	return now.Format("20060102_150405") + "_" + uuid.NewString()[:8]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orAll(s string) string {
	if s == "" {
		return model.RegionAll
	}
	return s
}

func orAuto(s string) string {
	if s == "" {
		return model.LanguageAuto
	}
	return s
}
