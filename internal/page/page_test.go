package page

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/abhiramvad/portfolio/internal/catalog"
	"github.com/abhiramvad/portfolio/internal/view"
	"github.com/abhiramvad/portfolio/internal/visibility"
)

type stubObserver struct{ disconnected bool }

func (o *stubObserver) Observe(string) error { return nil }
func (o *stubObserver) Disconnect()          { o.disconnected = true }

type stubHost struct {
	cb       visibility.Callback
	observer *stubObserver
	opened   []string
}

func (h *stubHost) Sections() []string { return view.SectionIDs() }

func (h *stubHost) NewObserver(cb visibility.Callback, _ visibility.Options) (visibility.Observer, error) {
	h.cb = cb
	h.observer = &stubObserver{}
	return h.observer, nil
}

func (h *stubHost) Open(url string) error {
	h.opened = append(h.opened, url)
	return nil
}

func report(h *stubHost, id string, on bool) {
	h.cb([]visibility.Entry{{ID: id, IsIntersecting: on}})
}

func mainCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Builtin("main")
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func sectionClass(t *testing.T, p *Page, id string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := p.RenderApp(&buf); err != nil {
		t.Fatalf("RenderApp: %v", err)
	}
	marker := `<section id="` + id + `" class="`
	out := buf.String()
	i := strings.Index(out, marker)
	if i < 0 {
		t.Fatalf("section %q not rendered", id)
	}
	rest := out[i+len(marker):]
	return rest[:strings.IndexByte(rest, '"')]
}

func TestThemeToggleScenario(t *testing.T) {
	p := New(mainCatalog(t), WithDark(false))
	if err := p.Mount(&stubHost{}); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer p.Unmount()

	if got := p.Palette().Background; got != "bg-gray-50" {
		t.Fatalf("light background = %q", got)
	}
	var buf bytes.Buffer
	p.RenderApp(&buf)
	if !strings.Contains(buf.String(), "bg-gray-50") {
		t.Error("light render missing bg-gray-50")
	}

	p.ToggleTheme()
	if got := p.Palette().Background; got != "bg-gray-900" {
		t.Errorf("dark background = %q", got)
	}
	buf.Reset()
	p.RenderApp(&buf)
	if !strings.Contains(buf.String(), "bg-gray-900") {
		t.Error("dark render missing bg-gray-900")
	}
}

func TestDefaultThemeFromCatalog(t *testing.T) {
	main := mainCatalog(t)
	if !New(main).IsDark() {
		t.Error("main catalog should default to dark")
	}
	gh, _ := catalog.Builtin("github-io")
	if New(gh).IsDark() {
		t.Error("github-io catalog should default to light")
	}
	if New(main, WithDark(false)).IsDark() {
		t.Error("WithDark(false) should override the catalog default")
	}
}

func TestVisibilityScenario(t *testing.T) {
	h := &stubHost{}
	p := New(mainCatalog(t))
	if err := p.Mount(h); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer p.Unmount()

	if c := sectionClass(t, p, "projects"); strings.Contains(c, view.FadeInClass) {
		t.Fatalf("projects has fade-in before any report: %q", c)
	}

	report(h, "projects", true)
	if c := sectionClass(t, p, "projects"); !strings.Contains(c, view.FadeInClass) {
		t.Errorf("projects class after intersecting = %q", c)
	}
	if c := sectionClass(t, p, "skills"); strings.Contains(c, view.FadeInClass) {
		t.Errorf("skills never reported but has fade-in: %q", c)
	}

	report(h, "projects", false)
	if c := sectionClass(t, p, "projects"); strings.Contains(c, view.FadeInClass) {
		t.Errorf("projects class after leaving = %q", c)
	}

	// Re-entering replays the animation.
	report(h, "projects", true)
	if c := sectionClass(t, p, "projects"); !strings.Contains(c, view.FadeInClass) {
		t.Errorf("projects class after re-entering = %q", c)
	}
}

func TestOnChangeFiresForThemeAndVisibility(t *testing.T) {
	h := &stubHost{}
	p := New(mainCatalog(t))
	renders := 0
	p.OnChange(func() {
		var buf bytes.Buffer
		if err := p.RenderApp(&buf); err != nil {
			t.Errorf("RenderApp in listener: %v", err)
		}
		renders++
	})
	if err := p.Mount(h); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	p.ToggleTheme()
	report(h, "skills", true)
	if renders != 2 {
		t.Errorf("listener ran %d times, want 2", renders)
	}
	p.Unmount()
}

func TestUnmountStopsUpdates(t *testing.T) {
	h := &stubHost{}
	p := New(mainCatalog(t))
	if err := p.Mount(h); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	report(h, "experience", true)

	p.Unmount()
	if !h.observer.disconnected {
		t.Error("observer not disconnected on Unmount")
	}

	report(h, "experience", false)
	report(h, "skills", true)
	if !p.Visible("experience") || p.Visible("skills") {
		t.Errorf("state changed after Unmount: %v", p.Props().Visible)
	}
	p.Unmount()
}

func TestOpenResume(t *testing.T) {
	cat := mainCatalog(t)
	p := New(cat)
	if err := p.OpenResume(); !errors.Is(err, ErrNotMounted) {
		t.Errorf("OpenResume before Mount = %v, want ErrNotMounted", err)
	}

	h := &stubHost{}
	if err := p.Mount(h); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if err := p.OpenResume(); err != nil {
		t.Fatalf("OpenResume: %v", err)
	}
	if len(h.opened) != 1 || h.opened[0] != cat.Profile.Resume {
		t.Errorf("opened %v, want [%q]", h.opened, cat.Profile.Resume)
	}

	p.Unmount()
	if err := p.OpenResume(); !errors.Is(err, ErrNotMounted) {
		t.Errorf("OpenResume after Unmount = %v, want ErrNotMounted", err)
	}
}

func TestMountTwice(t *testing.T) {
	p := New(mainCatalog(t))
	if err := p.Mount(&stubHost{}); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if err := p.Mount(&stubHost{}); !errors.Is(err, visibility.ErrAlreadyActive) {
		t.Errorf("second Mount = %v, want ErrAlreadyActive", err)
	}
	p.Unmount()
}

func TestToggleLinkFollowsTheme(t *testing.T) {
	link := func(dark bool) string {
		if dark {
			return "to-light"
		}
		return "to-dark"
	}
	p := New(mainCatalog(t), WithDark(false), WithToggleLink(link))
	if got := p.Props().ToggleHref; got != "to-dark" {
		t.Errorf("light page href = %q, want to-dark", got)
	}
	p.ToggleTheme()
	if got := p.Props().ToggleHref; got != "to-light" {
		t.Errorf("dark page href = %q, want to-light", got)
	}

	if got := New(mainCatalog(t)).Props().ToggleHref; got != "" {
		t.Errorf("href without a link func = %q, want empty", got)
	}
}
