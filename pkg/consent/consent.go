// Package consent implements the decision flow of the cookie banner: a
// per-session state machine over the consent cookie, with pluggable side
// effect and persistence adapters. A Manager is driven by one user's UI
// events and is not safe for concurrent use.
package consent

import (
	"net/http"
	"time"
)

// State is the position of one session in the banner flow. Decided is
// terminal until an explicit Reset.
type State int

const (
	Uninitialized State = iota
	NoConsent
	BannerVisible
	ModalVisible
	Decided
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case NoConsent:
		return "no_consent"
	case BannerVisible:
		return "banner_visible"
	case ModalVisible:
		return "modal_visible"
	case Decided:
		return "decided"
	default:
		return "unknown"
	}
}

// Standard category names. Required categories (essential) are granted in
// every record the Manager produces.
const (
	CategoryEssential   = "essential"
	CategoryAnalytics   = "analytics"
	CategoryMarketing   = "marketing"
	CategoryPreferences = "preferences"
)

// Record is a saved consent decision. Timestamp is epoch milliseconds at
// decision time; Categories maps category name to granted.
type Record struct {
	Timestamp  int64           `json:"timestamp"`
	Version    string          `json:"version"`
	Categories map[string]bool `json:"categories"`
}

// EventType names the observable moments of the flow.
type EventType string

const (
	EventShown           EventType = "shown"
	EventCustomizeOpened EventType = "customize_opened"
	EventAccepted        EventType = "accepted"
	EventRejected        EventType = "rejected"
	EventSaved           EventType = "saved"
	EventRestored        EventType = "restored"
	EventReset           EventType = "reset"
	EventStoreError      EventType = "store_error"
)

// Event is delivered to every subscribed observer after a transition. Record
// is set for decision events, Err only for store_error.
type Event struct {
	Type   EventType
	State  State
	Record *Record
	Err    error
}

// Manager runs the banner state machine for one end-user session.
type Manager struct {
	opts      Options
	state     State
	record    *Record
	observers []func(Event)
}

// NewManager builds a Manager in the Uninitialized state. Zero-value option
// fields fall back to the package defaults.
func NewManager(opts Options) *Manager {
	opts.applyDefaults()
	return &Manager{opts: opts, state: Uninitialized}
}

// State returns the current position in the flow.
func (m *Manager) State() State {
	return m.state
}

// Record returns the active consent record, or nil before a decision.
func (m *Manager) Record() *Record {
	return m.record
}

// Subscribe registers an observer for transition events. Observers run
// synchronously in registration order.
func (m *Manager) Subscribe(fn func(Event)) {
	m.observers = append(m.observers, fn)
}

// Boot reads the consent cookie from the request and positions the machine:
// a structurally valid record restores Decided and re-applies side effects;
// anything else, including a malformed cookie value, counts as absent
// consent and lands in NoConsent (then BannerVisible when AutoShow is set).
// Boot only acts from Uninitialized; later calls return the current state.
func (m *Manager) Boot(r *http.Request) State {
	if m.state != Uninitialized {
		return m.state
	}

	if record, ok := ReadCookie(r, m.opts.Cookie.Name); ok {
		m.record = record
		m.state = Decided
		m.applySideEffects(record)
		m.emit(EventRestored, record, nil)
		return m.state
	}

	m.state = NoConsent
	if m.opts.AutoShow {
		m.state = BannerVisible
		m.emit(EventShown, nil, nil)
	}
	return m.state
}

// Show surfaces the banner. It only transitions from NoConsent; a decided
// session stays decided.
func (m *Manager) Show() State {
	if m.state == NoConsent {
		m.state = BannerVisible
		m.emit(EventShown, nil, nil)
	}
	return m.state
}

// OpenCustomize moves to the customization modal and returns the toggle
// seeds: the prior record's choices when one exists, else each category's
// required flag. Calling it from Decided returns seeds without leaving
// Decided, so hosts can render a read-only preferences view.
func (m *Manager) OpenCustomize() map[string]bool {
	toggles := m.seedToggles()
	if m.state == NoConsent || m.state == BannerVisible {
		m.state = ModalVisible
		m.emit(EventCustomizeOpened, nil, nil)
	}
	return toggles
}

// AcceptAll records a decision granting every configured category.
func (m *Manager) AcceptAll(w http.ResponseWriter) *Record {
	selections := make(map[string]bool, len(m.opts.Categories))
	for _, category := range m.opts.Categories {
		selections[category.Name] = true
	}
	return m.decide(w, selections, EventAccepted)
}

// RejectAll records a decision granting only the required categories.
func (m *Manager) RejectAll(w http.ResponseWriter) *Record {
	selections := make(map[string]bool, len(m.opts.Categories))
	for _, category := range m.opts.Categories {
		selections[category.Name] = category.Required
	}
	return m.decide(w, selections, EventRejected)
}

// SavePreferences records a custom decision. Only configured categories are
// kept, and required categories are granted regardless of the input.
func (m *Manager) SavePreferences(w http.ResponseWriter, selections map[string]bool) *Record {
	normalized := make(map[string]bool, len(m.opts.Categories))
	for _, category := range m.opts.Categories {
		normalized[category.Name] = category.Required || selections[category.Name]
	}
	return m.decide(w, normalized, EventSaved)
}

// Reset deletes the consent cookie and returns to NoConsent. The banner is
// not re-shown automatically; the host calls Show when it wants it back.
func (m *Manager) Reset(w http.ResponseWriter) State {
	DeleteCookie(w, m.opts.Cookie)
	m.record = nil
	m.state = NoConsent
	if err := m.opts.Store.Clear(); err != nil {
		m.emit(EventStoreError, nil, err)
	}
	m.emit(EventReset, nil, nil)
	return m.state
}

func (m *Manager) decide(w http.ResponseWriter, categories map[string]bool, eventType EventType) *Record {
	record := &Record{
		Timestamp:  time.Now().UnixMilli(),
		Version:    m.opts.Version,
		Categories: categories,
	}
	WriteCookie(w, m.opts.Cookie, *record)
	m.record = record
	m.state = Decided
	m.applySideEffects(record)
	m.emit(eventType, record, nil)
	return record
}

// applySideEffects pushes the grant signals to the configured integrations
// and persists the preferences blob. Store failures surface as store_error
// events, never as errors to the caller.
func (m *Manager) applySideEffects(record *Record) {
	m.opts.Sink.NotifyAnalytics(record.Categories[CategoryAnalytics])
	m.opts.Sink.NotifyMarketing(record.Categories[CategoryMarketing])
	if err := m.opts.Store.Save(*record); err != nil {
		m.emit(EventStoreError, record, err)
	}
}

func (m *Manager) emit(eventType EventType, record *Record, err error) {
	event := Event{Type: eventType, State: m.state, Record: record, Err: err}
	for _, observer := range m.observers {
		observer(event)
	}
}

func (m *Manager) seedToggles() map[string]bool {
	toggles := make(map[string]bool, len(m.opts.Categories))
	for _, category := range m.opts.Categories {
		if m.record != nil {
			if granted, ok := m.record.Categories[category.Name]; ok {
				toggles[category.Name] = granted || category.Required
				continue
			}
		}
		toggles[category.Name] = category.Required
	}
	return toggles
}
