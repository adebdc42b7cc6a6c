// Package view renders the portfolio page. Rendering is a pure function of
// the theme flag, the section visibility map and the catalog.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/yuin/goldmark"

	"github.com/abhiramvad/portfolio/internal/catalog"
	"github.com/abhiramvad/portfolio/internal/theme"
)

// Section ids, in page order.
const (
	SectionProjects   = "projects"
	SectionExperience = "experience"
	SectionSkills     = "skills"
)

// FadeInClass is added to a section while it intersects the viewport.
const FadeInClass = "animate-fadeIn"

// Template names.
const (
	PageTemplate = "page.html"
	AppTemplate  = "app"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/portfolio.js
var script string

var (
	tmplOnce sync.Once
	tmpl     *template.Template

	markdown = goldmark.New()
)

// SectionIDs returns the ids of every observed section.
func SectionIDs() []string {
	return []string{SectionProjects, SectionExperience, SectionSkills}
}

var sectionBase = map[string]string{
	SectionProjects:   "mb-20 opacity-0",
	SectionExperience: "mb-20 opacity-0",
	SectionSkills:     "opacity-0",
}

// SectionClass returns base, plus the fade-in class when visible.
func SectionClass(base string, visible bool) string {
	if visible {
		return base + " " + FadeInClass
	}
	return base
}

// Props is everything a render depends on.
type Props struct {
	Dark    bool
	Visible map[string]bool
	Catalog *catalog.Catalog

	// Live makes the browser script open a live session instead of
	// handling fade-in locally.
	Live bool
	// ToggleHref, when set, is where the theme button navigates when no
	// live session handles the toggle.
	ToggleHref string
}

type Section struct {
	ID    string
	Class string
}

type SkillCard struct {
	Title      string
	Skills     []string
	ColorClass string
}

// Data is the template view model.
type Data struct {
	Mode    string
	Styles  theme.Palette
	Profile catalog.Profile
	Summary template.HTML

	ProjectsSection   Section
	ExperienceSection Section
	SkillsSection     Section

	Projects   []catalog.ProjectEntry
	Experience []catalog.ExperienceEntry
	Skills     []SkillCard

	Live       bool
	ToggleHref string
	Script     template.JS
}

// NewData derives the view model from p.
func NewData(p Props) Data {
	cat := p.Catalog
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	d := Data{
		Mode:       theme.ModeName(p.Dark),
		Styles:     theme.PaletteFor(p.Dark),
		Profile:    cat.Profile,
		Summary:    renderSummary(cat.Profile.Summary),
		Projects:   cat.Projects,
		Experience: cat.Experience,
		Live:       p.Live,
		ToggleHref: p.ToggleHref,
		Script:     template.JS(script),
	}
	d.ProjectsSection = section(SectionProjects, p.Visible)
	d.ExperienceSection = section(SectionExperience, p.Visible)
	d.SkillsSection = section(SectionSkills, p.Visible)

	d.Skills = make([]SkillCard, len(cat.Skills))
	for i, s := range cat.Skills {
		d.Skills[i] = SkillCard{
			Title:      s.Title,
			Skills:     s.Skills,
			ColorClass: theme.AccentClass(s.Accent, p.Dark),
		}
	}
	return d
}

func section(id string, visible map[string]bool) Section {
	return Section{ID: id, Class: SectionClass(sectionBase[id], visible[id])}
}

func renderSummary(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	// goldmark escapes raw HTML unless WithUnsafe is set.
	return template.HTML(buf.String())
}

// Templates returns the parsed page templates. gin renders them through
// SetHTMLTemplate.
func Templates() *template.Template {
	tmplOnce.Do(func() {
		tmpl = template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
	})
	return tmpl
}

// Render writes the full HTML document.
func Render(w io.Writer, p Props) error {
	return Templates().ExecuteTemplate(w, PageTemplate, NewData(p))
}

// RenderApp writes only the tree inside #app, which live sessions swap in.
func RenderApp(w io.Writer, p Props) error {
	return Templates().ExecuteTemplate(w, AppTemplate, NewData(p))
}
