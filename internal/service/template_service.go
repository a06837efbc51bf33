// internal/service/template_service.go
package service

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/openclaw/literary-agent/internal/model"
)

// TemplateService maps language codes to outreach templates. Unknown
// codes fall back to the default language rather than failing, so a
// campaign can always produce a message.
type TemplateService struct {
	templates map[string]model.Template
	fallback  string
}

func NewTemplateService() *TemplateService {
	return &TemplateService{
		templates: builtinTemplates(),
		fallback:  defaultLanguage,
	}
}

// templateFile is the YAML shape accepted by LoadFile.
type templateFile struct {
	Default   string           `yaml:"default"`
	Templates []model.Template `yaml:"templates"`
}

// LoadFile replaces the built-in template set with one loaded from a
// YAML file. The file must define the default language.
func (s *TemplateService) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read templates: %w", err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	if len(file.Templates) == 0 {
		return fmt.Errorf("templates file %s defines no templates", path)
	}

	loaded := make(map[string]model.Template, len(file.Templates))
	for _, tpl := range file.Templates {
		if tpl.Language == "" || tpl.Subject == "" || tpl.Body == "" {
			return fmt.Errorf("template entries need language, subject and body")
		}
		loaded[tpl.Language] = tpl
	}

	fallback := file.Default
	if fallback == "" {
		fallback = defaultLanguage
	}
	if _, ok := loaded[fallback]; !ok {
		return fmt.Errorf("default language %q has no template", fallback)
	}

	s.templates = loaded
	s.fallback = fallback
	return nil
}

// Resolve returns the template for the given language code, or the
// default language's template when the code is not configured.
func (s *TemplateService) Resolve(language string) model.Template {
	if tpl, ok := s.templates[language]; ok {
		return tpl
	}
	return s.templates[s.fallback]
}

// Render fills the recipient name into the template body. An empty
// name gets the template's generic salutation.
func (s *TemplateService) Render(tpl model.Template, name string) string {
	if name == "" {
		name = tpl.Generic
	}
	return renderTemplate(tpl.Body, map[string]string{"name": name})
}

// Languages lists the configured language codes, sorted.
func (s *TemplateService) Languages() []string {
	codes := make([]string, 0, len(s.templates))
	for code := range s.templates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func renderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}
