// internal/model/social.go
package model

// BookCopy is the marketing copy for one title in one language.
type BookCopy struct {
	Title  string   `yaml:"title" json:"title"`
	Genre  string   `yaml:"genre" json:"genre"`
	Hook   string   `yaml:"hook" json:"hook"`
	Quotes []string `yaml:"quotes" json:"quotes"`
}

// Book is a promotable title. Copy is keyed by language code; Spanish
// is the authoring language and always present.
type Book struct {
	Key      string              `yaml:"key" json:"key"`
	Copy     map[string]BookCopy `yaml:"copy" json:"copy"`
	Audience []string            `yaml:"audience" json:"audience"`
	Mood     []string            `yaml:"mood" json:"mood"`
	GenreTag string              `yaml:"genre_tag" json:"genre_tag"`
}

// Localized returns the copy for lang, falling back to Spanish when
// the title was never translated.
func (b Book) Localized(lang string) BookCopy {
	if c, ok := b.Copy[lang]; ok {
		return c
	}
	return b.Copy["ES"]
}

type DayPlan struct {
	Day       string `json:"day"`
	Book      string `json:"book"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
	TikTok    string `json:"tiktok"`
}
