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

// CookieConfig is the per-language cookie banner configuration document.
// Documents are keyed by the lowercase language code; GetEnabledConfig only
// serves documents with Enabled set.
type CookieConfig struct {
	Language   string         `json:"language" bson:"language"`
	Country    string         `json:"country,omitempty" bson:"country,omitempty"`
	Region     string         `json:"region,omitempty" bson:"region,omitempty"`
	Enabled    bool           `json:"enabled" bson:"enabled"`
	Version    string         `json:"version" bson:"version"`
	Texts      BannerTexts    `json:"texts" bson:"texts"`
	Categories []Category     `json:"categories" bson:"categories"`
	UI         UISettings     `json:"ui" bson:"ui"`
	Cookie     CookieSettings `json:"cookie" bson:"cookie"`
	UpdatedAt  string         `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
	UpdatedBy  string         `json:"updatedBy,omitempty" bson:"updated_by,omitempty"`
}

// BannerTexts holds every user-facing string of the banner and the
// customization modal.
type BannerTexts struct {
	Title            string `json:"title" bson:"title"`
	Message          string `json:"message" bson:"message"`
	AcceptAll        string `json:"acceptAll" bson:"accept_all"`
	RejectAll        string `json:"rejectAll" bson:"reject_all"`
	Customize        string `json:"customize" bson:"customize"`
	SavePreferences  string `json:"savePreferences" bson:"save_preferences"`
	ModalTitle       string `json:"modalTitle" bson:"modal_title"`
	ModalDescription string `json:"modalDescription" bson:"modal_description"`
	PrivacyPolicyURL string `json:"privacyPolicyUrl" bson:"privacy_policy_url"`
}

// Category describes one consent category. Name is the stable identifier
// (essential, analytics, marketing, preferences); Cookies lists the cookie
// names the category covers.
type Category struct {
	Name         string   `json:"name" bson:"name"`
	Description  string   `json:"description" bson:"description"`
	Required     bool     `json:"required" bson:"required"`
	Cookies      []string `json:"cookies" bson:"cookies"`
	DisplayOrder int      `json:"displayOrder" bson:"display_order"`
	Enabled      bool     `json:"enabled" bson:"enabled"`
}

type UISettings struct {
	PrimaryColor    string `json:"primaryColor" bson:"primary_color"`
	SecondaryColor  string `json:"secondaryColor" bson:"secondary_color"`
	BackgroundColor string `json:"backgroundColor" bson:"background_color"`
	TextColor       string `json:"textColor" bson:"text_color"`
	FontFamily      string `json:"fontFamily" bson:"font_family"`
	Position        string `json:"position" bson:"position"`
}

type CookieSettings struct {
	Name       string `json:"name" bson:"name"`
	ExpiryDays int    `json:"expiryDays" bson:"expiry_days"`
	Path       string `json:"path" bson:"path"`
	Domain     string `json:"domain,omitempty" bson:"domain,omitempty"`
	Secure     bool   `json:"secure" bson:"secure"`
	SameSite   string `json:"sameSite" bson:"same_site"`
}

// LanguageInfo is one row of the available-languages listing.
type LanguageInfo struct {
	Language string `json:"language" bson:"language"`
	Country  string `json:"country,omitempty" bson:"country,omitempty"`
	Region   string `json:"region,omitempty" bson:"region,omitempty"`
}
