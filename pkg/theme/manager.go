package theme

import (
	"log/slog"
	"sync"

	"github.com/facet-ui/facet/pkg/dom"
)

// Scheme is the color scheme preference.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
	// SchemeAuto follows the system preference via the SchemeSource.
	SchemeAuto Scheme = "auto"
)

// parseScheme maps stored or authored values to a Scheme; anything
// malformed counts as absent and yields the fallback.
func parseScheme(s string, fallback Scheme) Scheme {
	switch Scheme(s) {
	case SchemeLight, SchemeDark, SchemeAuto:
		return Scheme(s)
	default:
		return fallback
	}
}

// SchemeSource reports the system-level scheme preference and notifies on
// change, abstracting the host's media-feature query subscription.
type SchemeSource interface {
	// Current returns the system preference, light or dark.
	Current() Scheme
	// Subscribe registers fn for preference changes and returns a cancel
	// function.
	Subscribe(fn func(Scheme)) (cancel func())
}

// StaticSource is a SchemeSource whose value is driven by tests or
// environments without a real media query.
type StaticSource struct {
	mu     sync.Mutex
	scheme Scheme
	subs   map[int]func(Scheme)
	nextID int
}

// NewStaticSource creates a source reporting the given scheme.
func NewStaticSource(scheme Scheme) *StaticSource {
	if scheme != SchemeDark {
		scheme = SchemeLight
	}
	return &StaticSource{scheme: scheme, subs: make(map[int]func(Scheme))}
}

// Current implements SchemeSource.
func (s *StaticSource) Current() Scheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheme
}

// Subscribe implements SchemeSource.
func (s *StaticSource) Subscribe(fn func(Scheme)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Flip changes the simulated system preference and notifies subscribers.
func (s *StaticSource) Flip(scheme Scheme) {
	s.mu.Lock()
	s.scheme = scheme
	subs := make([]func(Scheme), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(scheme)
	}
}

// rootAttr is the attribute stamped onto the document element.
const rootAttr = "data-theme"

// DefaultStorageKey is the preference key used when none is configured.
const DefaultStorageKey = "facet.theme"

// Manager is the process-wide theme state. Create one per document; Close
// it to release the source subscription.
type Manager struct {
	mu      sync.Mutex
	doc     *dom.Document
	store   Store
	source  SchemeSource
	key     string
	current Scheme
	subs    map[int]func(Scheme)
	nextID  int
	cancel  func()
	logger  *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithStorageKey overrides the preference key.
func WithStorageKey(key string) ManagerOption {
	return func(m *Manager) { m.key = key }
}

// WithManagerLogger sets the logger.
func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) { m.logger = logger }
}

// NewManager creates the theme state for a document. The persisted
// preference is restored when present and well-formed; otherwise the
// scheme starts at auto. The effective scheme is stamped onto the document
// root immediately.
func NewManager(doc *dom.Document, store Store, source SchemeSource, opts ...ManagerOption) *Manager {
	m := &Manager{
		doc:     doc,
		store:   store,
		source:  source,
		key:     DefaultStorageKey,
		current: SchemeAuto,
		subs:    make(map[int]func(Scheme)),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.store != nil {
		if v, ok := m.store.Get(m.key); ok {
			m.current = parseScheme(v, SchemeAuto)
		}
	}
	if m.source != nil {
		m.cancel = m.source.Subscribe(m.systemChanged)
	}
	m.apply()
	return m
}

// Scheme returns the selected preference (possibly auto).
func (m *Manager) Scheme() Scheme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Effective resolves auto against the system preference.
func (m *Manager) Effective() Scheme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.effectiveLocked()
}

func (m *Manager) effectiveLocked() Scheme {
	if m.current != SchemeAuto {
		return m.current
	}
	if m.source != nil {
		return m.source.Current()
	}
	return SchemeLight
}

// Set selects a scheme, persists it, restamps the document root, and
// broadcasts to subscribers.
func (m *Manager) Set(s Scheme) {
	s = parseScheme(string(s), SchemeAuto)
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.Set(m.key, string(s)); err != nil {
			m.logger.Warn("persisting theme preference failed",
				slog.String("key", m.key), slog.Any("error", err))
		}
	}
	m.apply()
}

// Toggle switches between light and dark. From auto it flips away from the
// current effective scheme.
func (m *Manager) Toggle() {
	if m.Effective() == SchemeDark {
		m.Set(SchemeLight)
	} else {
		m.Set(SchemeDark)
	}
}

// Subscribe registers fn to be called with the effective scheme after every
// change. Returns a cancel function.
func (m *Manager) Subscribe(fn func(Scheme)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Close releases the system preference subscription. Subscribers are kept;
// they simply stop receiving system-driven updates.
func (m *Manager) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// systemChanged reacts to the media-feature subscription. Only relevant
// while the selected preference is auto.
func (m *Manager) systemChanged(Scheme) {
	m.mu.Lock()
	isAuto := m.current == SchemeAuto
	m.mu.Unlock()
	if isAuto {
		m.apply()
	}
}

// apply stamps the effective scheme onto the document root and notifies
// subscribers.
func (m *Manager) apply() {
	m.mu.Lock()
	eff := m.effectiveLocked()
	subs := make([]func(Scheme), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	if m.doc != nil {
		m.doc.Root().SetAttr(rootAttr, string(eff))
	}
	for _, fn := range subs {
		fn(eff)
	}
}
