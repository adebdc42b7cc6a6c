// Package catalog holds the static, hand-authored content rendered by the
// portfolio page.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/abhiramvad/portfolio/internal/theme"
)

// ErrUnknownCatalog is returned by Builtin for names it does not know.
var ErrUnknownCatalog = errors.New("unknown catalog")

// LinkKind identifies which icon a social link gets.
type LinkKind string

const (
	LinkGitHub   LinkKind = "github"
	LinkLinkedIn LinkKind = "linkedin"
	LinkEmail    LinkKind = "email"
	LinkWebsite  LinkKind = "website"
)

// Link is an external reference. URL is passed through unmodified.
type Link struct {
	Kind  LinkKind `yaml:"kind"`
	URL   string   `yaml:"url"`
	Label string   `yaml:"label,omitempty"`
}

// Profile is the hero section content.
type Profile struct {
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Summary  string `yaml:"summary"` // Markdown
	Photo    string `yaml:"photo"`
	Resume   string `yaml:"resume"`
	Links    []Link `yaml:"links"`
}

type ProjectEntry struct {
	Title       string   `yaml:"title"`
	Subtitle    string   `yaml:"subtitle"`
	Description []string `yaml:"description"`
	Link        string   `yaml:"link"`
	Tags        []string `yaml:"tags"`
}

type ExperienceEntry struct {
	Company      string   `yaml:"company"`
	Role         string   `yaml:"role"`
	Period       string   `yaml:"period"`
	Achievements []string `yaml:"achievements"`
}

// SkillCategory's chip color is derived from Accent and the current theme.
type SkillCategory struct {
	Title  string       `yaml:"title"`
	Skills []string     `yaml:"skills"`
	Accent theme.Accent `yaml:"accent"`
}

// Catalog is everything one portfolio shows. A Catalog is treated as
// immutable once constructed.
type Catalog struct {
	Name        string            `yaml:"name"`
	DefaultDark bool              `yaml:"default_dark"`
	Profile     Profile           `yaml:"profile"`
	Projects    []ProjectEntry    `yaml:"projects"`
	Experience  []ExperienceEntry `yaml:"experience"`
	Skills      []SkillCategory   `yaml:"skills"`
}

// Validate checks the fields the page cannot render without.
func (c *Catalog) Validate() error {
	if c.Profile.Name == "" {
		return fmt.Errorf("catalog %q: profile.name is required", c.Name)
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("catalog %q: projects[%d].title is required", c.Name, i)
		}
	}
	for i, e := range c.Experience {
		if e.Company == "" {
			return fmt.Errorf("catalog %q: experience[%d].company is required", c.Name, i)
		}
	}
	for i, s := range c.Skills {
		if s.Title == "" {
			return fmt.Errorf("catalog %q: skills[%d].title is required", c.Name, i)
		}
		if s.Accent != "" && !s.Accent.Valid() {
			return fmt.Errorf("catalog %q: skills[%d].accent %q must be one of purple, blue, green, orange", c.Name, i, s.Accent)
		}
	}
	return nil
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal encodes c as YAML, in the format Load reads.
func Marshal(c *Catalog) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling catalog %q: %w", c.Name, err)
	}
	return data, nil
}

// Resolve picks the catalog to serve: a file when path is set, otherwise the
// named built-in.
func Resolve(name, path string) (*Catalog, error) {
	if path != "" {
		return Load(path)
	}
	if name == "" {
		name = DefaultName
	}
	return Builtin(name)
}

// Builtin returns a freshly constructed built-in catalog.
func Builtin(name string) (*Catalog, error) {
	ctor, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownCatalog, name, Names())
	}
	return ctor(), nil
}

// Names lists the built-in catalogs in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
