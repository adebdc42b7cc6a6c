package live

import (
	"bytes"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/abhiramvad/portfolio/internal/catalog"
	"github.com/abhiramvad/portfolio/internal/page"
	"github.com/abhiramvad/portfolio/internal/theme"
	"github.com/abhiramvad/portfolio/internal/view"
	"github.com/abhiramvad/portfolio/internal/visibility"
)

// DefaultHelloTimeout bounds how long a new connection may stay silent.
const DefaultHelloTimeout = 10 * time.Second

// maxMessageSize bounds a single client message. Batches carry at most one
// entry per section.
const maxMessageSize = 4096

var upgrader = websocket.Upgrader{}

// Handler upgrades connections and runs one page per connection.
type Handler struct {
	catalog      *catalog.Catalog
	pageOpts     []page.Option
	helloTimeout time.Duration
	debug        bool

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewHandler returns a handler serving pages for cat. opts apply to every
// session's page.
func NewHandler(cat *catalog.Catalog, debug bool, opts ...page.Option) *Handler {
	return &Handler{
		catalog:      cat,
		pageOpts:     opts,
		helloTimeout: DefaultHelloTimeout,
		debug:        debug,
		sessions:     make(map[string]*Session),
	}
}

// Sessions reports the number of open sessions.
func (h *Handler) Sessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	conn.SetReadDeadline(time.Now().Add(h.helloTimeout))
	var hello ClientMessage
	if err := conn.ReadJSON(&hello); err != nil || hello.Type != MsgHello {
		h.debugf("closing connection without hello: %v", err)
		return
	}
	conn.SetReadDeadline(time.Time{})

	s := newSession(conn, view.SectionIDs(), hello.IntersectionObserver)
	opts := append([]page.Option{}, h.pageOpts...)
	opts = append(opts,
		page.WithLive(true),
		page.WithTracker(visibility.NewTracker(visibility.WithDebug(h.debug))),
	)
	if dark, ok := theme.ParseMode(hello.Theme); ok {
		opts = append(opts, page.WithDark(dark))
	}
	p := page.New(h.catalog, opts...)
	p.OnChange(func() { h.render(s, p) })

	if err := s.send(ServerMessage{Type: MsgReady, Session: s.ID}); err != nil {
		return
	}

	h.track(s)
	defer h.untrack(s)

	if err := p.Mount(s); err != nil {
		log.Printf("live: mounting session %s: %v", s.ID, err)
		return
	}
	defer p.Unmount()
	h.debugf("session %s mounted (observer=%v)", s.ID, hello.IntersectionObserver)

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live: session %s read: %v", s.ID, err)
			}
			return
		}

		switch msg.Type {
		case MsgIntersect:
			s.deliver(msg.Entries)
		case MsgToggle:
			p.ToggleTheme()
		case MsgResume:
			if err := p.OpenResume(); err != nil {
				log.Printf("live: session %s open resume: %v", s.ID, err)
			}
		default:
			if err := s.send(ServerMessage{Type: MsgError, Error: "unknown message type: " + msg.Type}); err != nil {
				return
			}
		}
	}
}

func (h *Handler) render(s *Session, p *page.Page) {
	var buf bytes.Buffer
	if err := p.RenderApp(&buf); err != nil {
		log.Printf("live: session %s render: %v", s.ID, err)
		return
	}
	msg := ServerMessage{
		Type:  MsgRender,
		HTML:  buf.String(),
		Theme: theme.ModeName(p.IsDark()),
	}
	if err := s.send(msg); err != nil {
		h.debugf("session %s write: %v", s.ID, err)
	}
}

func (h *Handler) track(s *Session) {
	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()
}

func (h *Handler) untrack(s *Session) {
	h.mu.Lock()
	delete(h.sessions, s.ID)
	h.mu.Unlock()
}

func (h *Handler) debugf(format string, args ...any) {
	if h.debug {
		log.Printf("live: "+format, args...)
	}
}
