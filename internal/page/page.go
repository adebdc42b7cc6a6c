// Package page wires theme state, section visibility and a catalog into one
// portfolio page instance.
package page

import (
	"errors"
	"io"
	"sync"

	"github.com/abhiramvad/portfolio/internal/catalog"
	"github.com/abhiramvad/portfolio/internal/theme"
	"github.com/abhiramvad/portfolio/internal/view"
	"github.com/abhiramvad/portfolio/internal/visibility"
)

// ErrNotMounted is returned by operations that need a host.
var ErrNotMounted = errors.New("page: not mounted")

// Host is the runtime a page is mounted into.
type Host interface {
	visibility.Host
	// Open asks the host to open a resource, like window.open.
	Open(url string) error
}

// Page is one mounted portfolio instance. Theme and visibility are the only
// state that changes after New.
type Page struct {
	catalog *catalog.Catalog
	tracker *visibility.Tracker
	live    bool
	toggle  func(dark bool) string

	mu        sync.Mutex
	theme     *theme.State
	host      Host
	listeners []func()
}

type Option func(*Page)

// WithDark overrides the catalog's default theme.
func WithDark(dark bool) Option {
	return func(p *Page) { p.theme = theme.NewState(dark) }
}

// WithLive marks renders as belonging to a live session.
func WithLive(live bool) Option {
	return func(p *Page) { p.live = live }
}

// WithToggleLink sets where the theme button links to for a given current
// mode, used when no live session handles the toggle.
func WithToggleLink(fn func(dark bool) string) Option {
	return func(p *Page) { p.toggle = fn }
}

// WithTracker replaces the default visibility tracker.
func WithTracker(t *visibility.Tracker) Option {
	return func(p *Page) { p.tracker = t }
}

// New returns an unmounted page for cat.
func New(cat *catalog.Catalog, opts ...Option) *Page {
	p := &Page{
		catalog: cat,
		theme:   theme.NewState(cat.DefaultDark),
	}
	for _, o := range opts {
		o(p)
	}
	if p.tracker == nil {
		p.tracker = visibility.NewTracker()
	}
	p.tracker.OnChange(p.notify)
	return p
}

// Mount attaches the page to host and starts observing sections.
func (p *Page) Mount(host Host) error {
	if err := p.tracker.Activate(host); err != nil {
		return err
	}
	p.mu.Lock()
	p.host = host
	p.mu.Unlock()
	return nil
}

// Unmount releases the observer. It is safe to call more than once.
func (p *Page) Unmount() {
	p.tracker.Deactivate()
	p.mu.Lock()
	p.host = nil
	p.mu.Unlock()
}

// OnChange registers fn to run after every theme or visibility change.
func (p *Page) OnChange(fn func()) {
	p.mu.Lock()
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()
}

// ToggleTheme flips between light and dark.
func (p *Page) ToggleTheme() {
	p.mu.Lock()
	p.theme.Toggle()
	p.mu.Unlock()
	p.notify()
}

// IsDark reports whether the page is in dark mode.
func (p *Page) IsDark() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme.IsDark()
}

// Palette returns the classes for the current theme.
func (p *Page) Palette() theme.Palette {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme.Palette()
}

// Visible reports whether section id is currently intersecting.
func (p *Page) Visible(id string) bool {
	return p.tracker.Visible(id)
}

// OpenResume hands the catalog's resume path to the host unchanged.
func (p *Page) OpenResume() error {
	p.mu.Lock()
	host := p.host
	p.mu.Unlock()
	if host == nil {
		return ErrNotMounted
	}
	return host.Open(p.catalog.Profile.Resume)
}

// Props snapshots the current render inputs.
func (p *Page) Props() view.Props {
	props := view.Props{
		Dark:    p.IsDark(),
		Visible: p.tracker.Snapshot(),
		Catalog: p.catalog,
		Live:    p.live,
	}
	if p.toggle != nil {
		props.ToggleHref = p.toggle(props.Dark)
	}
	return props
}

// Render writes the full document for the current state.
func (p *Page) Render(w io.Writer) error {
	return view.Render(w, p.Props())
}

// RenderApp writes the inner tree for the current state.
func (p *Page) RenderApp(w io.Writer) error {
	return view.RenderApp(w, p.Props())
}

func (p *Page) notify() {
	p.mu.Lock()
	fns := append([]func(){}, p.listeners...)
	p.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
