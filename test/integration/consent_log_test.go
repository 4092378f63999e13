/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	model "github.com/ab-solanki/cookie/internal/consent_log/model"
	"github.com/ab-solanki/cookie/internal/consent_log/service"
	"github.com/ab-solanki/cookie/internal/system/constants"
)

func consentEntry(language, action string, analytics bool) model.ConsentLogEntry {
	return model.ConsentLogEntry{
		Language: language,
		Action:   action,
		ConsentData: model.ConsentData{
			Categories: map[string]bool{
				"essential": true,
				"analytics": analytics,
			},
			Timestamp: time.Now().UnixMilli(),
		},
		Metadata: model.RequestMetadata{
			IPAddress: "203.0.113.7",
			UserAgent: "integration-test",
		},
	}
}

func Test_ConsentLog(t *testing.T) {
	svc := service.GetConsentLogService()

	t.Run("Log_consent_events", func(t *testing.T) {
		for _, entry := range []model.ConsentLogEntry{
			consentEntry("en", constants.ActionAccept, true),
			consentEntry("en", constants.ActionAccept, true),
			consentEntry("de", constants.ActionReject, false),
		} {
			logged, err := svc.LogConsent(entry)
			require.NoError(t, err, "Failed to log consent event")
			require.NotEmpty(t, logged.ID)
			require.NotEmpty(t, logged.SessionID)
			require.False(t, logged.ServerTimestamp.IsZero())
		}
	})

	t.Run("Analytics_folds_per_language", func(t *testing.T) {
		summaries, err := svc.GetConsentAnalytics(model.AnalyticsFilter{})
		require.NoError(t, err, "Failed to aggregate consent log")
		require.Len(t, summaries, 2, "Expected one summary per language")

		require.Equal(t, "de", summaries[0].Language)
		require.Equal(t, int64(1), summaries[0].TotalConsents)
		require.Equal(t, service.ComplianceNonCompliant, summaries[0].ComplianceStatus)

		require.Equal(t, "en", summaries[1].Language)
		require.Equal(t, int64(2), summaries[1].TotalConsents)
		require.Equal(t, service.ComplianceCompliant, summaries[1].ComplianceStatus)
		require.False(t, summaries[1].LastActivity.IsZero())
	})

	t.Run("Analytics_filters_by_language", func(t *testing.T) {
		summaries, err := svc.GetConsentAnalytics(model.AnalyticsFilter{Language: "en"})
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		require.Equal(t, "en", summaries[0].Language)
	})

	t.Run("Analytics_filters_by_window", func(t *testing.T) {
		summaries, err := svc.GetConsentAnalytics(model.AnalyticsFilter{
			From: time.Now().UTC().Add(time.Hour),
		})
		require.NoError(t, err)
		require.Empty(t, summaries, "Expected no activity in a future window")
	})
}
