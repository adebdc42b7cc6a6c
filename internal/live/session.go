// Package live drives a mounted page from a browser over a websocket. The
// browser runs the intersection observer and forwards batches; the server
// owns the page state and pushes re-rendered trees back.
package live

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/abhiramvad/portfolio/internal/visibility"
)

var errDisconnected = errors.New("live: observer disconnected")

// Message types.
const (
	MsgHello      = "hello"
	MsgIntersect  = "intersect"
	MsgToggle     = "toggle"
	MsgResume     = "resume"
	MsgReady      = "ready"
	MsgObserve    = "observe"
	MsgDisconnect = "disconnect"
	MsgRender     = "render"
	MsgOpen       = "open"
	MsgError      = "error"
)

// ClientMessage is what the browser sends.
type ClientMessage struct {
	Type                 string             `json:"type"`
	IntersectionObserver bool               `json:"intersectionObserver,omitempty"`
	Theme                string             `json:"theme,omitempty"`
	Entries              []visibility.Entry `json:"entries,omitempty"`
}

// ServerMessage is what the server sends.
type ServerMessage struct {
	Type      string  `json:"type"`
	Session   string  `json:"session,omitempty"`
	ID        string  `json:"id,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	HTML      string  `json:"html,omitempty"`
	Theme     string  `json:"theme,omitempty"`
	URL       string  `json:"url,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// Session is the host side of one browser connection. It implements
// page.Host.
type Session struct {
	ID string

	conn      *websocket.Conn
	sections  []string
	supported bool

	writeMu sync.Mutex

	mu       sync.Mutex
	observer *remoteObserver
}

func newSession(conn *websocket.Conn, sections []string, supported bool) *Session {
	return &Session{
		ID:        uuid.NewString(),
		conn:      conn,
		sections:  sections,
		supported: supported,
	}
}

func (s *Session) Sections() []string { return s.sections }

// NewObserver returns an observer backed by the browser's
// IntersectionObserver, or ErrUnsupported when the browser has none.
func (s *Session) NewObserver(cb visibility.Callback, opts visibility.Options) (visibility.Observer, error) {
	if !s.supported {
		return nil, visibility.ErrUnsupported
	}
	o := &remoteObserver{s: s, cb: cb, threshold: opts.Threshold}
	s.mu.Lock()
	s.observer = o
	s.mu.Unlock()
	return o, nil
}

// Open asks the browser to open url.
func (s *Session) Open(url string) error {
	return s.send(ServerMessage{Type: MsgOpen, URL: url})
}

// deliver hands a batch to the current observer. Batches that arrive with no
// observer attached are dropped.
func (s *Session) deliver(entries []visibility.Entry) {
	s.mu.Lock()
	o := s.observer
	s.mu.Unlock()
	if o != nil {
		o.deliver(entries)
	}
}

func (s *Session) detach(o *remoteObserver) {
	s.mu.Lock()
	if s.observer == o {
		s.observer = nil
	}
	s.mu.Unlock()
}

func (s *Session) send(msg ServerMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(msg)
}

type remoteObserver struct {
	s         *Session
	cb        visibility.Callback
	threshold float64

	mu     sync.Mutex
	closed bool
}

func (o *remoteObserver) Observe(id string) error {
	o.mu.Lock()
	closed := o.closed
	o.mu.Unlock()
	if closed {
		return errDisconnected
	}
	return o.s.send(ServerMessage{Type: MsgObserve, ID: id, Threshold: o.threshold})
}

func (o *remoteObserver) Disconnect() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.mu.Unlock()

	o.s.detach(o)
	// The socket may already be gone at teardown.
	_ = o.s.send(ServerMessage{Type: MsgDisconnect})
}

func (o *remoteObserver) deliver(entries []visibility.Entry) {
	o.mu.Lock()
	closed := o.closed
	o.mu.Unlock()
	if !closed {
		o.cb(entries)
	}
}
