package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/openclaw/literary-agent/internal/model"
)

// contactHeader is the canonical column order of the contact store.
var contactHeader = []string{
	"name", "email", "city", "country", "region", "kind",
	"preferred_language", "contacted", "contacted_date", "last_response", "notes",
}

// ContactRepositoryInterface defines methods used by service
type ContactRepositoryInterface interface {
	Initialize() error
	Load(filter model.ContactFilter) ([]model.Contact, error)
	GetByEmail(email string) (*model.Contact, error)
	MarkContacted(email, outcome, notes string) (bool, error)
	MarkContactedBatch(emails []string, outcome, notes string) (int, error)
}

// ContactRepository keeps the whole contact list in one CSV file.
// Every mutation rewrites the file; a temp-file rename keeps readers
// from ever seeing a half-written store.
type ContactRepository struct {
	Path string
}

var _ ContactRepositoryInterface = (*ContactRepository)(nil)

// Initialize seeds the store with the starter contact list when the
// file does not exist yet. Existing data is never touched.
func (r *ContactRepository) Initialize() error {
	if _, err := os.Stat(r.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat contact store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.Path), 0o755); err != nil {
		return fmt.Errorf("create contact store dir: %w", err)
	}
	return r.writeAll(SeedContacts())
}

// Load returns the contacts matching every supplied filter, in file
// order.
func (r *ContactRepository) Load(filter model.ContactFilter) ([]model.Contact, error) {
	contacts, err := r.readAll()
	if err != nil {
		return nil, err
	}

	matched := []model.Contact{}
	for _, c := range contacts {
		if filter.Matches(c) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// GetByEmail fetches a single contact by its email key.
func (r *ContactRepository) GetByEmail(email string) (*model.Contact, error) {
	contacts, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].Email == email {
			return &contacts[i], nil
		}
	}
	return nil, nil // not found
}

// MarkContacted flips one contact to contacted and records the
// outcome. Returns false when no contact has that email. Last write
// wins: repeating the call refreshes the date, outcome and notes.
func (r *ContactRepository) MarkContacted(email, outcome, notes string) (bool, error) {
	n, err := r.MarkContactedBatch([]string{email}, outcome, notes)
	return n > 0, err
}

// MarkContactedBatch marks every listed email in a single read-rewrite
// pass and reports how many contacts matched.
func (r *ContactRepository) MarkContactedBatch(emails []string, outcome, notes string) (int, error) {
	if len(emails) == 0 {
		return 0, nil
	}

	wanted := make(map[string]bool, len(emails))
	for _, e := range emails {
		wanted[e] = true
	}

	contacts, err := r.readAll()
	if err != nil {
		return 0, err
	}

	today := time.Now().Format("2006-01-02")
	updated := 0
	for i := range contacts {
		if !wanted[contacts[i].Email] {
			continue
		}
		contacts[i].Contacted = true
		contacts[i].ContactedDate = today
		contacts[i].LastResponse = outcome
		contacts[i].Notes = notes
		updated++
	}

	if updated == 0 {
		return 0, nil
	}
	if err := r.writeAll(contacts); err != nil {
		return 0, err
	}
	return updated, nil
}

// ====================== CSV encoding ======================

func (r *ContactRepository) readAll() ([]model.Contact, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("open contact store: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(contactHeader)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read contact store: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("contact store %s has no header row", r.Path)
	}

	contacts := make([]model.Contact, 0, len(rows)-1)
	for _, row := range rows[1:] {
		contacts = append(contacts, model.Contact{
			Name:              row[0],
			Email:             row[1],
			City:              row[2],
			Country:           row[3],
			Region:            row[4],
			Kind:              row[5],
			PreferredLanguage: row[6],
			Contacted:         row[7] == "Yes",
			ContactedDate:     row[8],
			LastResponse:      row[9],
			Notes:             row[10],
		})
	}
	return contacts, nil
}

func (r *ContactRepository) writeAll(contacts []model.Contact) error {
	tmp := r.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create contact store: %w", err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(contactHeader); err != nil {
		f.Close()
		return err
	}
	for _, c := range contacts {
		contacted := "No"
		if c.Contacted {
			contacted = "Yes"
		}
		row := []string{
			c.Name, c.Email, c.City, c.Country, c.Region, c.Kind,
			c.PreferredLanguage, contacted, c.ContactedDate, c.LastResponse, c.Notes,
		}
		if err := writer.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, r.Path)
}
