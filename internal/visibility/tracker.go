// Package visibility tracks which page sections are currently inside the
// viewport, as reported by a host-provided intersection observer.
package visibility

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"sync"
)

// DefaultThreshold is the fraction of a section that must be inside the
// viewport for it to count as visible.
const DefaultThreshold = 0.1

var (
	// ErrUnsupported is returned by a Host that cannot observe intersections.
	ErrUnsupported = errors.New("visibility: intersection observation unsupported")
	// ErrAlreadyActive is returned by Activate on an active tracker.
	ErrAlreadyActive = errors.New("visibility: tracker already active")
)

// Entry is one record of an observation batch.
type Entry struct {
	ID             string `json:"id"`
	IsIntersecting bool   `json:"isIntersecting"`
}

// Callback receives observation batches.
type Callback func(entries []Entry)

// Options configures an observer.
type Options struct {
	Threshold float64
}

// Observer is a subscription handle owned by the tracker.
type Observer interface {
	Observe(id string) error
	Disconnect()
}

// Host is the runtime the tracker observes: it enumerates section ids and
// hands out observers.
type Host interface {
	Sections() []string
	NewObserver(cb Callback, opts Options) (Observer, error)
}

// Merge returns a copy of prev with every entry's value written over it.
// Keys not present in entries keep their previous value.
func Merge(prev map[string]bool, entries []Entry) map[string]bool {
	next := make(map[string]bool, len(prev)+len(entries))
	maps.Copy(next, prev)
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		next[e.ID] = e.IsIntersecting
	}
	return next
}

// Tracker holds the per-section visibility map for one page instance.
type Tracker struct {
	mu        sync.Mutex
	visible   map[string]bool
	observer  Observer
	sections  map[string]bool
	active    bool
	gen       uint64
	threshold float64
	onChange  func()
	debug     bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(f float64) Option {
	return func(t *Tracker) { t.threshold = f }
}

// WithDebug logs degradation and dropped batches.
func WithDebug(on bool) Option {
	return func(t *Tracker) { t.debug = on }
}

// NewTracker returns an inactive tracker with an empty map.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		visible:   map[string]bool{},
		threshold: DefaultThreshold,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// OnChange registers fn to run after every applied batch. fn runs without the
// tracker's lock held.
func (t *Tracker) OnChange(fn func()) {
	t.mu.Lock()
	t.onChange = fn
	t.mu.Unlock()
}

// Activate acquires an observer from host and subscribes every section.
// Batches only update the sections host listed at activation.
// A host without observation support, or a failed subscription, leaves the
// tracker active but blind: sections never report visible.
func (t *Tracker) Activate(host Host) error {
	t.mu.Lock()
	if t.active {
		t.mu.Unlock()
		return ErrAlreadyActive
	}
	t.active = true
	t.gen++
	gen := t.gen
	t.visible = map[string]bool{}
	sections := host.Sections()
	t.sections = make(map[string]bool, len(sections))
	for _, id := range sections {
		t.sections[id] = true
	}
	t.mu.Unlock()

	obs, err := host.NewObserver(func(entries []Entry) {
		t.apply(gen, entries)
	}, Options{Threshold: t.threshold})
	if err != nil {
		t.logf("observer unavailable, fade-in disabled: %v", err)
		return nil
	}
	if obs == nil {
		return nil
	}

	for _, id := range sections {
		if err := obs.Observe(id); err != nil {
			obs.Disconnect()
			t.logf("%v", fmt.Errorf("observing section %q: %w", id, err))
			return nil
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active || t.gen != gen {
		// Deactivated while subscribing.
		obs.Disconnect()
		return nil
	}
	t.observer = obs
	return nil
}

// Deactivate disconnects the observer. Batches delivered afterwards are
// dropped. Calling it on an inactive tracker is a no-op.
func (t *Tracker) Deactivate() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	obs := t.observer
	t.observer = nil
	t.active = false
	t.gen++
	t.mu.Unlock()

	if obs != nil {
		obs.Disconnect()
	}
}

// Active reports whether the tracker is between Activate and Deactivate.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Visible reports whether the section was intersecting in the latest batch
// that mentioned it.
func (t *Tracker) Visible(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible[id]
}

// Snapshot returns a copy of the visibility map.
func (t *Tracker) Snapshot() map[string]bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return maps.Clone(t.visible)
}

func (t *Tracker) apply(gen uint64, entries []Entry) {
	t.mu.Lock()
	if !t.active || gen != t.gen {
		t.mu.Unlock()
		t.logf("dropping batch of %d entries from a released observer", len(entries))
		return
	}
	known := entries[:0:0]
	for _, e := range entries {
		if t.sections[e.ID] {
			known = append(known, e)
		}
	}
	if len(known) < len(entries) {
		t.logf("dropping %d entries for unknown sections", len(entries)-len(known))
	}
	next := Merge(t.visible, known)
	changed := !maps.Equal(t.visible, next)
	t.visible = next
	fn := t.onChange
	t.mu.Unlock()

	// Re-observing after a re-render reports the same state again.
	if changed && fn != nil {
		fn()
	}
}

func (t *Tracker) logf(format string, args ...any) {
	if t.debug {
		log.Printf("visibility: "+format, args...)
	}
}
