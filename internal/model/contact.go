// internal/model/contact.go
package model

type Contact struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	City              string `json:"city"`
	Country           string `json:"country"`
	Region            string `json:"region"`
	Kind              string `json:"kind"`
	PreferredLanguage string `json:"preferred_language"`
	Contacted         bool   `json:"contacted"`
	ContactedDate     string `json:"contacted_date,omitempty"`
	LastResponse      string `json:"last_response,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// ContactFilter narrows a load to exact region/language matches.
// Zero-value fields are ignored.
type ContactFilter struct {
	Region           string
	Language         string
	ExcludeContacted bool
}

func (f ContactFilter) Matches(c Contact) bool {
	if f.Region != "" && c.Region != f.Region {
		return false
	}
	if f.Language != "" && c.PreferredLanguage != f.Language {
		return false
	}
	if f.ExcludeContacted && c.Contacted {
		return false
	}
	return true
}
