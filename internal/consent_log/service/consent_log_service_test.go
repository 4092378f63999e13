package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ab-solanki/cookie/internal/consent_log/model"
	"github.com/ab-solanki/cookie/internal/system/constants"
	errors2 "github.com/ab-solanki/cookie/internal/system/errors"
	"github.com/ab-solanki/cookie/internal/system/log"
)

// MockConsentLogStore implements store.ConsentLogStoreInterface for testing
type MockConsentLogStore struct {
	mock.Mock
}

func (m *MockConsentLogStore) InsertEntry(entry model.ConsentLogEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockConsentLogStore) AggregateByActionLanguage(filter model.AnalyticsFilter) ([]model.ActionStat, error) {
	args := m.Called(filter)
	return args.Get(0).([]model.ActionStat), args.Error(1)
}

func TestLogConsentStampsServerFields(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockConsentLogStore)
	svc := ConsentLogService{store: mockStore}

	mockStore.
		On("InsertEntry", mock.MatchedBy(func(e model.ConsentLogEntry) bool {
			return e.ID != "" && e.Language == "en"
		})).
		Return(nil)

	result, err := svc.LogConsent(model.ConsentLogEntry{
		Action:   constants.ActionAccept,
		Language: "  EN ",
		ConsentData: model.ConsentData{
			Categories: map[string]bool{"essential": true, "analytics": true},
		},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "en", result.Language)
	assert.Equal(t, constants.ConsentSchemaVersion, result.ConsentData.Version)
	assert.WithinDuration(t, time.Now().UTC(), result.ServerTimestamp, time.Minute)

	mockStore.AssertExpectations(t)
}

func TestLogConsentKeepsClientSessionId(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockConsentLogStore)
	svc := ConsentLogService{store: mockStore}

	mockStore.On("InsertEntry", mock.Anything).Return(nil)

	result, err := svc.LogConsent(model.ConsentLogEntry{
		SessionID: "widget-session",
		Action:    constants.ActionSave,
		Language:  "de",
		ConsentData: model.ConsentData{
			Categories: map[string]bool{"essential": true},
			Version:    "2.0",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "widget-session", result.SessionID)
	assert.Equal(t, "2.0", result.ConsentData.Version)
}

func TestLogConsentDefaultsLanguage(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockConsentLogStore)
	svc := ConsentLogService{store: mockStore}

	mockStore.On("InsertEntry", mock.Anything).Return(nil)

	result, err := svc.LogConsent(model.ConsentLogEntry{
		Action: constants.ActionReject,
		ConsentData: model.ConsentData{
			Categories: map[string]bool{"essential": true},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, constants.DefaultLanguage, result.Language)
}

func TestLogConsentRejectsUnknownAction(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockConsentLogStore)
	svc := ConsentLogService{store: mockStore}

	result, err := svc.LogConsent(model.ConsentLogEntry{
		Action: "maybe",
		ConsentData: model.ConsentData{
			Categories: map[string]bool{"essential": true},
		},
	})

	assert.Nil(t, result)
	clientError, ok := err.(*errors2.ClientError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, clientError.StatusCode)
	assert.Equal(t, errors2.INVALID_CONSENT_ACTION.Code, clientError.Code)

	mockStore.AssertNotCalled(t, "InsertEntry", mock.Anything)
}

func TestLogConsentRejectsEmptyCategories(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockConsentLogStore)
	svc := ConsentLogService{store: mockStore}

	result, err := svc.LogConsent(model.ConsentLogEntry{
		Action: constants.ActionAccept,
	})

	assert.Nil(t, result)
	clientError, ok := err.(*errors2.ClientError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, clientError.StatusCode)
	assert.Equal(t, errors2.BAD_REQUEST.Code, clientError.Code)

	mockStore.AssertNotCalled(t, "InsertEntry", mock.Anything)
}

func TestGetConsentAnalyticsFoldsStatsPerLanguage(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockConsentLogStore)
	svc := ConsentLogService{store: mockStore}

	older := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 1, 12, 17, 30, 0, 0, time.UTC)
	mockStore.On("AggregateByActionLanguage", mock.Anything).Return([]model.ActionStat{
		{Language: "de", Action: constants.ActionReject, Count: 1, LastActivity: older},
		{Language: "en", Action: constants.ActionAccept, Count: 2, LastActivity: newer},
		{Language: "en", Action: constants.ActionSave, Count: 1, LastActivity: older},
	}, nil)

	summaries, err := svc.GetConsentAnalytics(model.AnalyticsFilter{})
	assert.NoError(t, err)
	assert.Len(t, summaries, 2)

	assert.Equal(t, "de", summaries[0].Language)
	assert.Equal(t, int64(1), summaries[0].TotalConsents)
	assert.Equal(t, []model.ActionCount{{Action: constants.ActionReject, Count: 1}}, summaries[0].Actions)
	assert.Equal(t, older, summaries[0].LastActivity)

	assert.Equal(t, "en", summaries[1].Language)
	assert.Equal(t, int64(3), summaries[1].TotalConsents)
	assert.Equal(t, []model.ActionCount{
		{Action: constants.ActionAccept, Count: 2},
		{Action: constants.ActionSave, Count: 1},
	}, summaries[1].Actions)
	assert.Equal(t, newer, summaries[1].LastActivity)
}

func TestGetConsentAnalyticsComplianceBands(t *testing.T) {
	log.Init("DEBUG")

	tests := []struct {
		name     string
		accepted int64
		rejected int64
		status   string
	}{
		{"no rejections", 10, 0, ComplianceCompliant},
		{"five percent boundary", 95, 5, ComplianceCompliant},
		{"ten percent boundary", 90, 10, CompliancePartial},
		{"above ten percent", 80, 20, ComplianceNonCompliant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockConsentLogStore)
			svc := ConsentLogService{store: mockStore}

			mockStore.On("AggregateByActionLanguage", mock.Anything).Return([]model.ActionStat{
				{Language: "en", Action: constants.ActionAccept, Count: tt.accepted},
				{Language: "en", Action: constants.ActionReject, Count: tt.rejected},
			}, nil)

			summaries, err := svc.GetConsentAnalytics(model.AnalyticsFilter{})
			assert.NoError(t, err)
			assert.Len(t, summaries, 1)
			assert.Equal(t, tt.status, summaries[0].ComplianceStatus)
		})
	}
}

func TestGetConsentAnalyticsRejectsInvertedRange(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockConsentLogStore)
	svc := ConsentLogService{store: mockStore}

	summaries, err := svc.GetConsentAnalytics(model.AnalyticsFilter{
		From: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, summaries)
	clientError, ok := err.(*errors2.ClientError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, clientError.StatusCode)

	mockStore.AssertNotCalled(t, "AggregateByActionLanguage", mock.Anything)
}

func TestGetConsentAnalyticsNormalizesLanguageFilter(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockConsentLogStore)
	svc := ConsentLogService{store: mockStore}

	mockStore.
		On("AggregateByActionLanguage", mock.MatchedBy(func(f model.AnalyticsFilter) bool {
			return f.Language == "en"
		})).
		Return([]model.ActionStat(nil), nil)

	_, err := svc.GetConsentAnalytics(model.AnalyticsFilter{Language: "  EN "})
	assert.NoError(t, err)

	mockStore.AssertExpectations(t)
}

func TestGetConsentAnalyticsEmptyLog(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockConsentLogStore)
	svc := ConsentLogService{store: mockStore}

	mockStore.On("AggregateByActionLanguage", mock.Anything).Return([]model.ActionStat(nil), nil)

	summaries, err := svc.GetConsentAnalytics(model.AnalyticsFilter{})
	assert.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}
