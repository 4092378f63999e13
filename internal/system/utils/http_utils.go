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

package utils

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	customerrors "github.com/ab-solanki/cookie/internal/system/errors"
	"github.com/ab-solanki/cookie/internal/system/log"
)

// Response is the envelope every endpoint answers with. Timestamp is stamped
// by WriteJSONResponse; Language and Source are set by configuration reads,
// RetryAfter only on rate-limited responses.
type Response struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data,omitempty"`
	Code        string      `json:"code,omitempty"`
	Error       string      `json:"error,omitempty"`
	Description string      `json:"description,omitempty"`
	Details     []string    `json:"details,omitempty"`
	RetryAfter  int         `json:"retryAfter,omitempty"`
	Timestamp   string      `json:"timestamp"`
	Language    string      `json:"language,omitempty"`
	Source      string      `json:"source,omitempty"`
}

// WriteJSONResponse writes the envelope with the current UTC timestamp.
func WriteJSONResponse(w http.ResponseWriter, status int, resp Response) {
	resp.Timestamp = time.Now().UTC().Format(time.RFC3339)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteSuccessResponse writes a success envelope carrying data.
func WriteSuccessResponse(w http.ResponseWriter, status int, data interface{}) {
	WriteJSONResponse(w, status, Response{
		Success: true,
		Data:    data,
	})
}

// HandleError sends an HTTP error response based on the provided error.
// Client errors surface their code and message; anything else logs the
// detail and answers with the generic 500 shape.
func HandleError(w http.ResponseWriter, err error) {
	var clientError *customerrors.ClientError
	if ok := errors.As(err, &clientError); ok {
		WriteJSONResponse(w, clientError.StatusCode, Response{
			Success:     false,
			Code:        clientError.Code,
			Error:       clientError.Message,
			Description: clientError.Description,
			Details:     clientError.Details,
		})
		return
	}

	logger := log.GetLogger()
	logger.Error(err.Error())
	WriteJSONResponse(w, http.StatusInternalServerError, Response{
		Success: false,
		Error:   "Internal server error",
	})
}

// WriteRateLimitedResponse sets the Retry-After header and writes the 429
// envelope with the same interval in seconds.
func WriteRateLimitedResponse(w http.ResponseWriter, retryAfter int) {
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	WriteJSONResponse(w, http.StatusTooManyRequests, Response{
		Success:     false,
		Code:        customerrors.RATE_LIMITED.Code,
		Error:       customerrors.RATE_LIMITED.Message,
		Description: customerrors.RATE_LIMITED.Description,
		RetryAfter:  retryAfter,
	})
}

// ClientIP resolves the requester address, preferring proxy headers over the
// transport peer.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
