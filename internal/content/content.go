package content

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales.yaml
var localesYAML []byte

// Language identifies a display language.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Languages lists the supported languages in toggle order.
var Languages = []Language{English, Chinese}

// ParseLanguage maps a language code to a supported language, defaulting to English.
func ParseLanguage(code string) Language {
	for _, l := range Languages {
		if string(l) == code {
			return l
		}
	}
	return English
}

// Other returns the language the toggle switches to.
func (l Language) Other() Language {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Table holds every string displayed on the site for one language.
type Table struct {
	Label        string       `yaml:"label"`
	Brand        string       `yaml:"brand"`
	Nav          Nav          `yaml:"nav"`
	Hero         Hero         `yaml:"hero"`
	Upload       Upload       `yaml:"upload"`
	Examples     Examples     `yaml:"examples"`
	Features     []Feature    `yaml:"features"`
	HowItWorks   HowItWorks   `yaml:"how_it_works"`
	Testimonials Testimonials `yaml:"testimonials"`
	Pricing      Pricing      `yaml:"pricing"`
	FAQ          FAQ          `yaml:"faq"`
	Footer       Footer       `yaml:"footer"`
}

type Nav struct {
	Features   string `yaml:"features"`
	HowItWorks string `yaml:"how_it_works"`
	Pricing    string `yaml:"pricing"`
	FAQ        string `yaml:"faq"`
}

type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
}

type Upload struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Button      string `yaml:"button"`
	Generating  string `yaml:"generating"`
	Placeholder string `yaml:"placeholder"`
	DropHint    string `yaml:"drop_hint"`
	Browse      string `yaml:"browse"`
	ResultTitle string `yaml:"result_title"`
	Download    string `yaml:"download"`
	TryAnother  string `yaml:"try_another"`
	TryAgain    string `yaml:"try_again"`
	Error       string `yaml:"error"`
	InvalidFile string `yaml:"invalid_file"`
}

type Examples struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Before   string    `yaml:"before"`
	After    string    `yaml:"after"`
	Items    []Example `yaml:"items"`
}

type Example struct {
	Before      string `yaml:"before"`
	After       string `yaml:"after"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type HowItWorks struct {
	Title string `yaml:"title"`
	Steps []Step `yaml:"steps"`
}

type Step struct {
	Step        string `yaml:"step"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Testimonials struct {
	Title string        `yaml:"title"`
	Items []Testimonial `yaml:"items"`
}

type Testimonial struct {
	Image string `yaml:"image"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Quote string `yaml:"quote"`
}

type Pricing struct {
	Title  string `yaml:"title"`
	Choose string `yaml:"choose"`
	Plans  []Plan `yaml:"plans"`
}

type Plan struct {
	Name     string   `yaml:"name"`
	Price    string   `yaml:"price"`
	Period   string   `yaml:"period"`
	Features []string `yaml:"features"`
}

type FAQ struct {
	Title string     `yaml:"title"`
	Items []Question `yaml:"items"`
}

type Question struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Footer struct {
	Rights  string `yaml:"rights"`
	Contact string `yaml:"contact"`
	Owner   string `yaml:"owner"`
	Email   string `yaml:"email"`
}

// Catalog maps each language to its table.
type Catalog struct {
	tables map[Language]Table
}

type document struct {
	Languages map[Language]Table `yaml:"languages"`
}

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Load parses the embedded localization table. The result is cached.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(localesYAML)
	})
	return loaded, loadErr
}

// MustLoad is Load for package initialisation paths where the embedded table
// is known to be valid.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a localization document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse localization table: %w", err)
	}
	c := &Catalog{tables: doc.Languages}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the table for lang, falling back to English.
func (c *Catalog) Get(lang Language) Table {
	if t, ok := c.tables[lang]; ok {
		return t
	}
	return c.tables[English]
}

// Validate checks every language is present and lists the same number of entries.
func (c *Catalog) Validate() error {
	for _, lang := range Languages {
		if _, ok := c.tables[lang]; !ok {
			return fmt.Errorf("missing language %q", lang)
		}
	}

	ref := c.tables[English]
	for _, lang := range Languages {
		t := c.tables[lang]
		if t.Label == "" || t.Hero.Title == "" || t.Upload.Button == "" || t.Upload.Error == "" {
			return fmt.Errorf("language %q is missing required strings", lang)
		}
		counts := []struct {
			name      string
			got, want int
		}{
			{"examples", len(t.Examples.Items), len(ref.Examples.Items)},
			{"features", len(t.Features), len(ref.Features)},
			{"steps", len(t.HowItWorks.Steps), len(ref.HowItWorks.Steps)},
			{"testimonials", len(t.Testimonials.Items), len(ref.Testimonials.Items)},
			{"plans", len(t.Pricing.Plans), len(ref.Pricing.Plans)},
			{"faq", len(t.FAQ.Items), len(ref.FAQ.Items)},
		}
		for _, n := range counts {
			if n.got != n.want {
				return fmt.Errorf("language %q has %d %s, expected %d", lang, n.got, n.name, n.want)
			}
		}
	}
	return nil
}

// Marshal renders the table for lang as YAML.
func (c *Catalog) Marshal(lang Language) ([]byte, error) {
	return yaml.Marshal(c.Get(lang))
}
