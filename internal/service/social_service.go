// internal/service/social_service.go
package service

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	appErrors "github.com/openclaw/literary-agent/internal/errors"
	"github.com/openclaw/literary-agent/internal/metrics"
	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/repository"
)

var weekDays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// SocialService generates promotional copy for the catalog. All
// random picks go through one injected source so output is
// reproducible under test.
type SocialService struct {
	Reports repository.ReportWriterInterface
	Logger  *zap.SugaredLogger

	books []model.Book
	rng   *rand.Rand
}

// NewSocialService builds a service around the built-in catalog. A
// nil rng gets a time-seeded one.
func NewSocialService(reports repository.ReportWriterInterface, logger *zap.SugaredLogger, rng *rand.Rand) *SocialService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SocialService{
		Reports: reports,
		Logger:  logger,
		books:   builtinBooks(),
		rng:     rng,
	}
}

// booksFile is the YAML shape accepted by LoadBooks.
type booksFile struct {
	Books []model.Book `yaml:"books"`
}

// LoadBooks replaces the built-in catalog with one loaded from a YAML
// file. Every entry needs a key and Spanish copy.
func (s *SocialService) LoadBooks(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read books: %w", err)
	}

	var file booksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse books: %w", err)
	}
	if len(file.Books) == 0 {
		return fmt.Errorf("books file %s defines no books", path)
	}
	for _, b := range file.Books {
		if b.Key == "" || b.Copy["ES"].Title == "" {
			return fmt.Errorf("book entries need a key and Spanish copy")
		}
	}

	s.books = file.Books
	return nil
}

// Books lists the promotable catalog.
func (s *SocialService) Books() []model.Book {
	return s.books
}

// Book looks up a catalog entry by key.
func (s *SocialService) Book(key string) (model.Book, error) {
	for _, b := range s.books {
		if b.Key == key {
			return b, nil
		}
	}
	return model.Book{}, appErrors.NewUnknownBook(key)
}

// bookOrDefault resolves a key, falling back to the first catalog
// entry so content generation always has a subject.
func (s *SocialService) bookOrDefault(key string) model.Book {
	if b, err := s.Book(key); err == nil {
		return b
	}
	return s.books[0]
}

// Tweet builds a post for Twitter/X.
func (s *SocialService) Tweet(bookKey, language string) string {
	book := s.bookOrDefault(bookKey)
	lang := normalizeLang(language)
	loc := book.Localized(lang)

	return renderTemplate(tweetScaffold, map[string]string{
		"title":    loc.Title,
		"hook":     loc.Hook,
		"quote":    s.pick(loc.Quotes),
		"cta":      s.pick(ctasFor(lang)),
		"hashtags": tweetHashtags(hashtagsFor(lang), book.GenreTag),
	})
}

// InstagramCaption builds a caption for an Instagram post.
func (s *SocialService) InstagramCaption(bookKey, language string) string {
	book := s.bookOrDefault(bookKey)
	lang := normalizeLang(language)
	loc := book.Localized(lang)

	return renderTemplate(scaffoldFor(instagramScaffolds, lang), map[string]string{
		"title":     loc.Title,
		"hook":      loc.Hook,
		"genre":     loc.Genre,
		"genrehash": strings.ReplaceAll(loc.Genre, " ", ""),
		"mood":      s.pick(book.Mood),
		"audience":  s.pick(book.Audience),
		"cta":       s.pick(ctasFor(lang)),
	})
}

// FacebookPost builds a longer form recommendation post.
func (s *SocialService) FacebookPost(bookKey, language string) string {
	book := s.bookOrDefault(bookKey)
	lang := normalizeLang(language)
	loc := book.Localized(lang)

	return renderTemplate(scaffoldFor(facebookScaffolds, lang), map[string]string{
		"title": loc.Title,
		"hook":  loc.Hook,
		"quote": s.pick(loc.Quotes),
	})
}

// LinkedInPost builds the professional variant.
func (s *SocialService) LinkedInPost(bookKey, language string) string {
	book := s.bookOrDefault(bookKey)
	lang := normalizeLang(language)
	loc := book.Localized(lang)

	return renderTemplate(scaffoldFor(linkedinScaffolds, lang), map[string]string{
		"title": loc.Title,
		"genre": loc.Genre,
	})
}

// TikTokScript builds a shot-by-shot BookTok video outline.
func (s *SocialService) TikTokScript(bookKey, language string) string {
	book := s.bookOrDefault(bookKey)
	lang := normalizeLang(language)
	loc := book.Localized(lang)

	return renderTemplate(scaffoldFor(tiktokScaffolds, lang), map[string]string{
		"title": loc.Title,
		"hook":  loc.Hook,
	})
}

// WeeklyPlan produces seven days of content, rotating through the
// catalog in shuffled order.
func (s *SocialService) WeeklyPlan(language string) []model.DayPlan {
	keys := make([]string, len(s.books))
	for i, b := range s.books {
		keys[i] = b.Key
	}
	s.rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	plan := make([]model.DayPlan, 0, len(weekDays))
	for i, day := range weekDays {
		key := keys[i%len(keys)]
		plan = append(plan, model.DayPlan{
			Day:       day,
			Book:      key,
			Twitter:   s.Tweet(key, language),
			Instagram: s.InstagramCaption(key, language),
			Facebook:  s.FacebookPost(key, language),
			LinkedIn:  s.LinkedInPost(key, language),
			TikTok:    s.TikTokScript(key, language),
		})
	}
	return plan
}

// SaveWeeklyPlan renders the plan and drops it in the campaigns
// directory, returning the file path.
func (s *SocialService) SaveWeeklyPlan(plan []model.DayPlan, language string) (string, error) {
	lang := normalizeLang(language)
	path, err := s.Reports.SocialPlan(lang, FormatWeeklyPlan(plan, lang))
	if err != nil {
		return "", err
	}
	metrics.SocialPlansGenerated.Inc()
	s.Logger.Infow("✅ weekly content plan saved", "language", lang, "report", path)
	return path, nil
}

func (s *SocialService) pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[s.rng.Intn(len(items))]
}

func normalizeLang(language string) string {
	if language == "" {
		return defaultLanguage
	}
	return strings.ToUpper(language)
}

func hashtagsFor(language string) hashtagSet {
	if set, ok := socialHashtags[language]; ok {
		return set
	}
	return socialHashtags[defaultLanguage]
}

func ctasFor(language string) []string {
	if ctas, ok := socialCTAs[language]; ok {
		return ctas
	}
	return socialCTAs[defaultLanguage]
}

func scaffoldFor(scaffolds map[string]string, language string) string {
	if scaffold, ok := scaffolds[language]; ok {
		return scaffold
	}
	return scaffolds[defaultLanguage]
}

func tweetHashtags(set hashtagSet, genreTag string) string {
	tags := make([]string, 0, 6)
	tags = append(tags, take(set.General, 2)...)
	tags = append(tags, take(set.Author, 1)...)
	tags = append(tags, take(set.Genre[genreTag], 2)...)
	tags = append(tags, take(set.Platform, 1)...)
	return strings.Join(tags, " ")
}

func take(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

// FormatWeeklyPlan renders a plan in the banner layout used for the
// saved text files.
func FormatWeeklyPlan(plan []model.DayPlan, language string) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "WEEKLY CONTENT PLAN - %s\n", language)
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04"))
	b.WriteString(rule + "\n")

	for _, day := range plan {
		b.WriteString("\n" + rule + "\n")
		fmt.Fprintf(&b, "%s - %s\n", strings.ToUpper(day.Day), day.Book)
		b.WriteString(rule + "\n")

		sections := []struct {
			label   string
			content string
		}{
			{"🐦 TWITTER", day.Twitter},
			{"📸 INSTAGRAM", day.Instagram},
			{"📘 FACEBOOK", day.Facebook},
			{"💼 LINKEDIN", day.LinkedIn},
			{"🎵 TIKTOK", day.TikTok},
		}
		for _, section := range sections {
			fmt.Fprintf(&b, "\n%s:\n%s\n%s\n", section.label, strings.Repeat("-", 40), section.content)
		}
	}
	return b.String()
}
