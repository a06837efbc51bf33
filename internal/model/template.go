// internal/model/template.go
package model

// Template is one language's outreach message. Body may contain a
// {name} placeholder; Generic replaces the recipient name when the
// contact record has none.
type Template struct {
	Language string `yaml:"language" json:"language"`
	Subject  string `yaml:"subject" json:"subject"`
	Body     string `yaml:"body" json:"body"`
	Generic  string `yaml:"generic" json:"generic"`
}
