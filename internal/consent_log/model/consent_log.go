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

package model

import "time"

// ConsentData is the category snapshot the widget captured when the user
// decided. Timestamp is epoch milliseconds from the client clock.
type ConsentData struct {
	Categories map[string]bool `json:"categories" bson:"categories"`
	Timestamp  int64           `json:"timestamp" bson:"timestamp"`
	Version    string          `json:"version" bson:"version"`
}

// RequestMetadata is stamped server side from the incoming request.
type RequestMetadata struct {
	IPAddress string `json:"ipAddress" bson:"ip_address"`
	UserAgent string `json:"userAgent" bson:"user_agent"`
	Referrer  string `json:"referrer" bson:"referrer"`
}

// ConsentLogEntry is one append-only consent event. Entries are never
// updated or deleted; analytics reads them through aggregation only.
type ConsentLogEntry struct {
	ID              string          `json:"id" bson:"id"`
	SessionID       string          `json:"sessionId" bson:"session_id"`
	Language        string          `json:"language" bson:"language"`
	Action          string          `json:"action" bson:"action"`
	ConsentData     ConsentData     `json:"consentData" bson:"consent_data"`
	Metadata        RequestMetadata `json:"metadata" bson:"metadata"`
	ServerTimestamp time.Time       `json:"serverTimestamp" bson:"server_timestamp"`
}

// ConsentLogRequest is the widget-submitted payload. Identifier, metadata
// and server timestamp are never accepted from the client.
type ConsentLogRequest struct {
	SessionID   string      `json:"sessionId"`
	Language    string      `json:"language"`
	Action      string      `json:"action"`
	ConsentData ConsentData `json:"consentData"`
}

// AnalyticsFilter narrows aggregation to a time range and language before
// grouping, never after.
type AnalyticsFilter struct {
	From     time.Time
	To       time.Time
	Language string
}

// ActionStat is one stage one aggregation row: the count and most recent
// activity of one (language, action) pair.
type ActionStat struct {
	Language     string    `json:"language"`
	Action       string    `json:"action"`
	Count        int64     `json:"count"`
	LastActivity time.Time `json:"lastActivity"`
}

// ActionCount is one per-action breakdown inside a language summary.
type ActionCount struct {
	Action string `json:"action"`
	Count  int64  `json:"count"`
}

// LanguageSummary is the stage two output for one language.
type LanguageSummary struct {
	Language         string        `json:"language"`
	TotalConsents    int64         `json:"totalConsents"`
	Actions          []ActionCount `json:"actions"`
	LastActivity     time.Time     `json:"lastActivity"`
	ComplianceStatus string        `json:"complianceStatus"`
}
