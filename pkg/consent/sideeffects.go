package consent

// SideEffectSink receives the grant signals applied whenever a decision
// lands. Hosts adapt their analytics and marketing tag integrations behind
// this interface; the default sink does nothing.
type SideEffectSink interface {
	NotifyAnalytics(granted bool)
	NotifyMarketing(granted bool)
}

// NoopSink discards every signal.
type NoopSink struct{}

func (NoopSink) NotifyAnalytics(bool) {}
func (NoopSink) NotifyMarketing(bool) {}

// PreferenceStore persists the consent record outside the cookie, for hosts
// that mirror it into their own storage. Failures never interrupt a
// decision; they surface as store_error events.
type PreferenceStore interface {
	Save(record Record) error
	Clear() error
}

// NoopPreferenceStore keeps nothing.
type NoopPreferenceStore struct{}

func (NoopPreferenceStore) Save(Record) error { return nil }
func (NoopPreferenceStore) Clear() error      { return nil }
