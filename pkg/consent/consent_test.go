package consent

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	analytics []bool
	marketing []bool
}

func (s *recordingSink) NotifyAnalytics(granted bool) { s.analytics = append(s.analytics, granted) }
func (s *recordingSink) NotifyMarketing(granted bool) { s.marketing = append(s.marketing, granted) }

type failingStore struct{}

func (failingStore) Save(Record) error { return errors.New("persist failed") }
func (failingStore) Clear() error      { return errors.New("persist failed") }

func TestAcceptAllGrantsEveryCategory(t *testing.T) {
	manager := NewManager(Options{})
	w := httptest.NewRecorder()

	record := manager.AcceptAll(w)

	assert.Equal(t, Decided, manager.State())
	assert.Len(t, record.Categories, len(DefaultCategories()))
	for name, granted := range record.Categories {
		assert.True(t, granted, name)
	}
}

func TestRejectAllGrantsOnlyRequired(t *testing.T) {
	manager := NewManager(Options{})
	w := httptest.NewRecorder()

	record := manager.RejectAll(w)

	assert.Equal(t, Decided, manager.State())
	assert.True(t, record.Categories[CategoryEssential])
	assert.False(t, record.Categories[CategoryAnalytics])
	assert.False(t, record.Categories[CategoryMarketing])
	assert.False(t, record.Categories[CategoryPreferences])
}

func TestSavePreferencesForcesEssentialTrue(t *testing.T) {
	manager := NewManager(Options{})
	w := httptest.NewRecorder()

	record := manager.SavePreferences(w, map[string]bool{
		CategoryEssential: false,
		CategoryAnalytics: true,
	})

	assert.True(t, record.Categories[CategoryEssential])
	assert.True(t, record.Categories[CategoryAnalytics])
	assert.False(t, record.Categories[CategoryMarketing])
}

func TestSavePreferencesDropsUnknownCategories(t *testing.T) {
	manager := NewManager(Options{})
	w := httptest.NewRecorder()

	record := manager.SavePreferences(w, map[string]bool{"tracking": true})

	_, ok := record.Categories["tracking"]
	assert.False(t, ok)
}

func TestBootRestoresDecidedFromValidCookie(t *testing.T) {
	sink := &recordingSink{}
	manager := NewManager(Options{Sink: sink})

	value := EncodeRecord(Record{
		Timestamp:  time.Now().UnixMilli(),
		Version:    "1.0",
		Categories: map[string]bool{CategoryEssential: true, CategoryAnalytics: true},
	})
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: value})

	state := manager.Boot(r)

	assert.Equal(t, Decided, state)
	assert.NotNil(t, manager.Record())
	assert.Equal(t, []bool{true}, sink.analytics)
	assert.Equal(t, []bool{false}, sink.marketing)
}

func TestBootTreatsMalformedCookieAsAbsent(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "invalid json", value: "{broken"},
		{name: "missing categories", value: EncodeRecord(Record{Timestamp: 1700000000000, Version: "1.0"})},
		{name: "empty value", value: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			manager := NewManager(Options{AutoShow: true})
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: tc.value})

			state := manager.Boot(r)

			assert.Equal(t, BannerVisible, state)
			assert.Nil(t, manager.Record())
		})
	}
}

func TestBootWithoutAutoShowStaysDormant(t *testing.T) {
	manager := NewManager(Options{})

	state := manager.Boot(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, NoConsent, state)
	assert.Equal(t, BannerVisible, manager.Show())
}

func TestBootOnlyActsFromUninitialized(t *testing.T) {
	manager := NewManager(Options{})
	w := httptest.NewRecorder()
	manager.AcceptAll(w)

	state := manager.Boot(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, Decided, state)
	assert.NotNil(t, manager.Record())
}

func TestOpenCustomizeSeedsFromRequiredFlags(t *testing.T) {
	manager := NewManager(Options{AutoShow: true})
	manager.Boot(httptest.NewRequest(http.MethodGet, "/", nil))

	toggles := manager.OpenCustomize()

	assert.Equal(t, ModalVisible, manager.State())
	assert.True(t, toggles[CategoryEssential])
	assert.False(t, toggles[CategoryAnalytics])
	assert.False(t, toggles[CategoryMarketing])
	assert.False(t, toggles[CategoryPreferences])
}

func TestOpenCustomizeSeedsFromPriorRecord(t *testing.T) {
	manager := NewManager(Options{})
	w := httptest.NewRecorder()
	manager.SavePreferences(w, map[string]bool{CategoryAnalytics: true})

	toggles := manager.OpenCustomize()

	// A decided session stays decided; the seeds reflect the saved record.
	assert.Equal(t, Decided, manager.State())
	assert.True(t, toggles[CategoryEssential])
	assert.True(t, toggles[CategoryAnalytics])
	assert.False(t, toggles[CategoryMarketing])
}

func TestResetClearsConsentWithoutReshowing(t *testing.T) {
	manager := NewManager(Options{})
	manager.AcceptAll(httptest.NewRecorder())

	w := httptest.NewRecorder()
	state := manager.Reset(w)

	assert.Equal(t, NoConsent, state)
	assert.Nil(t, manager.Record())

	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, DefaultCookieName, cookies[0].Name)
		assert.Negative(t, cookies[0].MaxAge)
	}
}

func TestObserverEventsFirePerTransition(t *testing.T) {
	manager := NewManager(Options{AutoShow: true})
	var types []EventType
	manager.Subscribe(func(event Event) { types = append(types, event.Type) })

	manager.Boot(httptest.NewRequest(http.MethodGet, "/", nil))
	manager.OpenCustomize()
	manager.SavePreferences(httptest.NewRecorder(), map[string]bool{CategoryAnalytics: true})

	assert.Equal(t, []EventType{EventShown, EventCustomizeOpened, EventSaved}, types)
}

func TestStoreFailureSurfacesAsEventNotError(t *testing.T) {
	manager := NewManager(Options{Store: failingStore{}})
	var types []EventType
	manager.Subscribe(func(event Event) { types = append(types, event.Type) })

	record := manager.AcceptAll(httptest.NewRecorder())

	assert.NotNil(t, record)
	assert.Equal(t, Decided, manager.State())
	assert.Equal(t, []EventType{EventStoreError, EventAccepted}, types)
}
