package service_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/literary-agent/internal/logging"
	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/repository"
	"github.com/openclaw/literary-agent/internal/service"
)

type outreachFixture struct {
	svc        *service.OutreachService
	contacts   *repository.ContactRepository
	log        *repository.CampaignLogRepository
	reportsDir string
}

func newOutreachFixture(t *testing.T) *outreachFixture {
	t.Helper()
	dir := t.TempDir()
	reportsDir := filepath.Join(dir, "reports")
	campaignsDir := filepath.Join(dir, "campaigns")
	require.NoError(t, os.MkdirAll(reportsDir, 0o755))
	require.NoError(t, os.MkdirAll(campaignsDir, 0o755))

	contacts := &repository.ContactRepository{Path: filepath.Join(dir, "libraries.csv")}
	log := &repository.CampaignLogRepository{Path: filepath.Join(dir, "campaigns.json")}

	return &outreachFixture{
		svc: &service.OutreachService{
			Contacts:  contacts,
			Log:       log,
			Reports:   &repository.ReportWriter{ReportsDir: reportsDir, CampaignsDir: campaignsDir},
			Templates: service.NewTemplateService(),
			Logger:    logging.Nop(),
		},
		contacts:   contacts,
		log:        log,
		reportsDir: reportsDir,
	}
}

// failingLog satisfies the log interface but refuses every append.
type failingLog struct{}

func (f *failingLog) Append(model.CampaignRecord) error     { return fmt.Errorf("disk full") }
func (f *failingLog) List() ([]model.CampaignRecord, error) { return []model.CampaignRecord{}, nil }
func (f *failingLog) Stats() (*model.CampaignStats, error)  { return &model.CampaignStats{}, nil }

// recordingSender captures prepared messages instead of sending them.
type recordingSender struct {
	sent []string
	body string
}

func (r *recordingSender) Send(to, subject, body string) error {
	r.sent = append(r.sent, to)
	r.body = body
	return nil
}

func TestRunBatchDryRun(t *testing.T) {
	fx := newOutreachFixture(t)

	result, err := fx.svc.RunBatch(service.BatchParams{
		Region:   "Norte America",
		Language: "EN",
		MaxItems: 1,
		DryRun:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, service.BatchStatusSuccess, result.Status)
	assert.Equal(t, 1, result.TotalSent)
	require.NotNil(t, result.Record)
	require.Len(t, result.Record.Results, 1)

	entry := result.Record.Results[0]
	assert.Equal(t, "acquisitions@nypl.org", entry.Email)
	assert.Equal(t, "EN", entry.Language)
	assert.Contains(t, entry.Subject, "New Spanish Author Catalog")
	assert.Equal(t, model.OutcomeSimulated, entry.Status)
	assert.Equal(t, model.ModeSimulation, result.Record.Mode)

	// Dry run never touches the store.
	nypl, err := fx.contacts.GetByEmail("acquisitions@nypl.org")
	require.NoError(t, err)
	require.NotNil(t, nypl)
	assert.False(t, nypl.Contacted)

	// The run is still logged and reported.
	records, err := fx.log.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, result.Record.ID, records[0].ID)
	assert.FileExists(t, result.ReportFile)
}

func TestRunBatchUnfilteredPicksFirstContact(t *testing.T) {
	// A store whose first row is the English-speaking contact.
	dir := t.TempDir()
	path := filepath.Join(dir, "libraries.csv")
	csv := "name,email,city,country,region,kind,preferred_language,contacted,contacted_date,last_response,notes\n" +
		"New York Public Library,acquisitions@nypl.org,New York,USA,Norte America,Public,EN,No,,,\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	fx := newOutreachFixture(t)
	fx.contacts.Path = path

	result, err := fx.svc.RunBatch(service.BatchParams{MaxItems: 1, DryRun: true})
	require.NoError(t, err)

	require.Len(t, result.Record.Results, 1)
	assert.Equal(t, "acquisitions@nypl.org", result.Record.Results[0].Email)
	assert.Equal(t, "EN", result.Record.Results[0].Language)
	assert.Nil(t, result.Record.RegionFilter)
	assert.Nil(t, result.Record.LanguageFilter)
}

func TestRunBatchRealModeMarksContacts(t *testing.T) {
	fx := newOutreachFixture(t)

	result, err := fx.svc.RunBatch(service.BatchParams{
		Region:   "Norte America",
		Language: "EN",
		MaxItems: 2,
		DryRun:   false,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalSent)
	assert.Equal(t, model.ModeReal, result.Record.Mode)
	for _, e := range result.Record.Results {
		assert.Equal(t, model.OutcomeSent, e.Status)
	}

	nypl, err := fx.contacts.GetByEmail("acquisitions@nypl.org")
	require.NoError(t, err)
	require.NotNil(t, nypl)
	assert.True(t, nypl.Contacted)
	assert.Equal(t, "sent", nypl.LastResponse)
	assert.NotEmpty(t, nypl.ContactedDate)

	// A second run skips the contacts just marked.
	again, err := fx.svc.RunBatch(service.BatchParams{
		Region:   "Norte America",
		Language: "EN",
		MaxItems: 10,
		DryRun:   false,
	})
	require.NoError(t, err)
	assert.NotEqual(t, result.Record.ID, again.Record.ID)
	for _, e := range again.Record.Results {
		assert.NotEqual(t, "acquisitions@nypl.org", e.Email)
		assert.NotEqual(t, "collections@lapl.org", e.Email)
	}
}

func TestRunBatchNoEligibleContacts(t *testing.T) {
	fx := newOutreachFixture(t)

	result, err := fx.svc.RunBatch(service.BatchParams{
		Region:   "Nonexistent",
		MaxItems: 10,
		DryRun:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, service.BatchStatusNoContacts, result.Status)
	assert.Zero(t, result.TotalSent)
	assert.Nil(t, result.Record)
	assert.Empty(t, result.ReportFile)

	// Neither a log entry nor a report file is produced.
	records, err := fx.log.List()
	require.NoError(t, err)
	assert.Empty(t, records)

	files, err := os.ReadDir(fx.reportsDir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestRunBatchMaxItemsZero(t *testing.T) {
	fx := newOutreachFixture(t)

	result, err := fx.svc.RunBatch(service.BatchParams{MaxItems: 0, DryRun: true})
	require.NoError(t, err)

	// Zero processed is a success, not "no eligible contacts".
	assert.Equal(t, service.BatchStatusSuccess, result.Status)
	assert.Zero(t, result.TotalSent)
	require.NotNil(t, result.Record)
	assert.Empty(t, result.Record.Results)
	assert.Equal(t, result.Record.TotalSent, len(result.Record.Results))
	assert.FileExists(t, result.ReportFile)

	records, err := fx.log.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// IDs stay unique across runs in the same second.
	again, err := fx.svc.RunBatch(service.BatchParams{MaxItems: 0, DryRun: true})
	require.NoError(t, err)
	assert.NotEqual(t, result.Record.ID, again.Record.ID)
}

func TestRunBatchLanguageOverride(t *testing.T) {
	fx := newOutreachFixture(t)

	result, err := fx.svc.RunBatch(service.BatchParams{
		Region:   "Norte America",
		Language: "ES",
		MaxItems: 1,
		DryRun:   true,
	})
	require.NoError(t, err)

	require.Len(t, result.Record.Results, 1)
	entry := result.Record.Results[0]
	// Miami is the only Spanish-preferring North American contact.
	assert.Equal(t, "acquisitions@mdpls.org", entry.Email)
	assert.Equal(t, "ES", entry.Language)
	assert.Contains(t, entry.Subject, "Nuevo Catálogo")
}

func TestRunBatchTotalSentMatchesResults(t *testing.T) {
	fx := newOutreachFixture(t)

	result, err := fx.svc.RunBatch(service.BatchParams{Region: "Europa", MaxItems: 3, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, result.Record.TotalSent, len(result.Record.Results))
	assert.Equal(t, 3, result.TotalSent)
}

func TestRunBatchLogFailureSurfacesAfterMarking(t *testing.T) {
	fx := newOutreachFixture(t)
	fx.svc.Log = &failingLog{}

	_, err := fx.svc.RunBatch(service.BatchParams{
		Region:   "Norte America",
		Language: "EN",
		MaxItems: 1,
		DryRun:   false,
	})
	require.Error(t, err)

	// The store mutation is not rolled back; the error is the caller's
	// cue to reconcile.
	nypl, err := fx.contacts.GetByEmail("acquisitions@nypl.org")
	require.NoError(t, err)
	require.NotNil(t, nypl)
	assert.True(t, nypl.Contacted)
}

func TestRunBatchHandsMessagesToSender(t *testing.T) {
	fx := newOutreachFixture(t)
	sender := &recordingSender{}
	fx.svc.Sender = sender

	_, err := fx.svc.RunBatch(service.BatchParams{
		Region:   "Norte America",
		Language: "EN",
		MaxItems: 2,
		DryRun:   false,
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "acquisitions@nypl.org", sender.sent[0])
	assert.Contains(t, sender.body, "Dear Los Angeles Public Library,")
}

func TestRunBatchDryRunNeverSends(t *testing.T) {
	fx := newOutreachFixture(t)
	sender := &recordingSender{}
	fx.svc.Sender = sender

	_, err := fx.svc.RunBatch(service.BatchParams{MaxItems: 5, DryRun: true})
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestTrackUnknownEmail(t *testing.T) {
	fx := newOutreachFixture(t)

	ok, err := fx.svc.Track("nobody@example.com", "replied", "asked for catalog")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fx.svc.Track("contact@bne.es", "replied", "asked for catalog")
	require.NoError(t, err)
	assert.True(t, ok)
}
