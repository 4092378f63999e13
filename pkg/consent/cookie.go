package consent

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// EncodeRecord serializes a record to the cookie value: JSON, URL-escaped.
func EncodeRecord(record Record) string {
	data, err := json.Marshal(record)
	if err != nil {
		return ""
	}
	return url.QueryEscape(string(data))
}

// DecodeRecord parses a cookie value back into a record. A structurally
// valid record has a positive timestamp, a version string and a category
// map; anything less counts as absent consent, never an error.
func DecodeRecord(value string) (*Record, bool) {
	raw, err := url.QueryUnescape(value)
	if err != nil {
		return nil, false
	}

	var record Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, false
	}
	if record.Timestamp <= 0 || record.Version == "" || record.Categories == nil {
		return nil, false
	}
	return &record, true
}

// ReadCookie extracts and decodes the consent cookie from a request.
func ReadCookie(r *http.Request, name string) (*Record, bool) {
	cookie, err := r.Cookie(name)
	if err != nil {
		return nil, false
	}
	return DecodeRecord(cookie.Value)
}

// WriteCookie sets the consent cookie on the response.
func WriteCookie(w http.ResponseWriter, opts CookieOptions, record Record) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    EncodeRecord(record),
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   opts.ExpiryDays * 24 * 60 * 60,
		Expires:  time.Now().Add(time.Duration(opts.ExpiryDays) * 24 * time.Hour),
		Secure:   opts.Secure,
		SameSite: parseSameSite(opts.SameSite),
	})
}

// DeleteCookie expires the consent cookie on the response.
func DeleteCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:    opts.Name,
		Value:   "",
		Path:    opts.Path,
		Domain:  opts.Domain,
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
