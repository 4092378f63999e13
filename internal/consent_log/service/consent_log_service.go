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

package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ab-solanki/cookie/internal/consent_log/model"
	"github.com/ab-solanki/cookie/internal/consent_log/store"
	"github.com/ab-solanki/cookie/internal/system/constants"
	errors2 "github.com/ab-solanki/cookie/internal/system/errors"
)

// Compliance status bands derived from the per-language rejection rate.
// The thresholds are a placeholder policy, not a legal judgement.
const (
	ComplianceCompliant    = "compliant"
	CompliancePartial      = "partial"
	ComplianceNonCompliant = "non-compliant"

	complianceCompliantMax = 0.05
	compliancePartialMax   = 0.10
)

// ConsentLogServiceInterface defines the service interface.
type ConsentLogServiceInterface interface {
	LogConsent(entry model.ConsentLogEntry) (*model.ConsentLogEntry, error)
	GetConsentAnalytics(filter model.AnalyticsFilter) ([]model.LanguageSummary, error)
}

// ConsentLogService is the default implementation of ConsentLogServiceInterface.
type ConsentLogService struct {
	store store.ConsentLogStoreInterface
}

// GetConsentLogService returns a concrete service with store injected
func GetConsentLogService() ConsentLogServiceInterface {
	return &ConsentLogService{
		store: store.GetConsentLogStore(),
	}
}

// LogConsent validates and appends one consent event, generating the entry
// identifier and a session identifier when the widget did not send one.
func (s *ConsentLogService) LogConsent(entry model.ConsentLogEntry) (*model.ConsentLogEntry, error) {

	if !constants.AllowedConsentActions[entry.Action] {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_CONSENT_ACTION.Code,
			Message:     errors2.INVALID_CONSENT_ACTION.Message,
			Description: errors2.INVALID_CONSENT_ACTION.Description,
		}, http.StatusBadRequest)
	}
	if len(entry.ConsentData.Categories) == 0 {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "consentData.categories must be a non-empty object.",
		}, http.StatusBadRequest)
	}

	entry.ID = uuid.New().String()
	if entry.SessionID == "" {
		entry.SessionID = uuid.New().String()
	}
	entry.Language = strings.ToLower(strings.TrimSpace(entry.Language))
	if entry.Language == "" {
		entry.Language = constants.DefaultLanguage
	}
	if entry.ConsentData.Version == "" {
		entry.ConsentData.Version = constants.ConsentSchemaVersion
	}
	entry.ServerTimestamp = time.Now().UTC()

	if err := s.store.InsertEntry(entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetConsentAnalytics folds the stage one (language, action) rows into
// per-language summaries with action breakdowns, a total and a compliance
// status. Rows arrive sorted by language, so summaries are too.
func (s *ConsentLogService) GetConsentAnalytics(filter model.AnalyticsFilter) ([]model.LanguageSummary, error) {

	filter.Language = strings.ToLower(strings.TrimSpace(filter.Language))
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Filter start must not be after filter end.",
		}, http.StatusBadRequest)
	}

	stats, err := s.store.AggregateByActionLanguage(filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.LanguageSummary, 0)
	index := make(map[string]int)
	for _, stat := range stats {
		i, ok := index[stat.Language]
		if !ok {
			i = len(summaries)
			index[stat.Language] = i
			summaries = append(summaries, model.LanguageSummary{Language: stat.Language})
		}
		summaries[i].Actions = append(summaries[i].Actions, model.ActionCount{
			Action: stat.Action,
			Count:  stat.Count,
		})
		summaries[i].TotalConsents += stat.Count
		if stat.LastActivity.After(summaries[i].LastActivity) {
			summaries[i].LastActivity = stat.LastActivity
		}
	}
	for i := range summaries {
		summaries[i].ComplianceStatus = complianceStatus(summaries[i])
	}
	return summaries, nil
}

// complianceStatus maps the rejection rate of one language to a status band.
func complianceStatus(summary model.LanguageSummary) string {
	if summary.TotalConsents == 0 {
		return ComplianceCompliant
	}

	var rejected int64
	for _, action := range summary.Actions {
		if action.Action == constants.ActionReject {
			rejected += action.Count
		}
	}
	rate := float64(rejected) / float64(summary.TotalConsents)
	switch {
	case rate <= complianceCompliantMax:
		return ComplianceCompliant
	case rate <= compliancePartialMax:
		return CompliancePartial
	default:
		return ComplianceNonCompliant
	}
}
