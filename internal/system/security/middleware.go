/*
 * Copyright (c) 2025-2026, WSO2 LLC. (http://www.wso2.com).
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

package security

import (
	"net/http"
	"strings"

	"github.com/ab-solanki/cookie/internal/system/authn"
	"github.com/ab-solanki/cookie/internal/system/authz"
	ccscontext "github.com/ab-solanki/cookie/internal/system/context"
	"github.com/ab-solanki/cookie/internal/system/errors"
	"github.com/ab-solanki/cookie/internal/system/log"
	"github.com/ab-solanki/cookie/internal/system/ratelimit"
	"github.com/ab-solanki/cookie/internal/system/utils"
)

// AuthnAndAuthz performs authentication and authorization for the given HTTP
// request and operation, returning the authenticated principal so handlers
// can attribute writes to the token subject.
func AuthnAndAuthz(r *http.Request, operation string) (*authn.Principal, error) {

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") || authHeader == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
		return nil, clientError
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")

	//  Validate token
	principal, err := authn.ValidateAuthenticationAndReturnPrincipal(token)
	if err != nil {
		logAuthFailure(r, log.ActionAuthenticationFailure)
		return nil, err
	}

	//  Validate authorization
	if !authz.ValidatePermission(principal.Role, operation) {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.FORBIDDEN.Code,
			Message:     errors.FORBIDDEN.Message,
			Description: "Do not have permission to perform this operation",
		}, http.StatusForbidden)
		return principal, clientError
	}

	return principal, nil
}

func logAuthFailure(r *http.Request, actionID string) {
	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorID:   utils.ClientIP(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetType:    "admin-api",
		TargetID:      r.URL.Path,
		ActionID:      actionID,
		TraceID:       ccscontext.GetTraceID(r.Context()),
	})
}

// TraceContext stamps a per-request trace ID into the context so audit
// entries from the same request correlate.
func TraceContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := ccscontext.GetOrGenerateTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ccscontext.WithTraceID(r.Context(), traceID)))
	})
}

// RateLimit wraps next with per-client fixed-window limiting. Paths in
// exempt bypass the limiter. A nil limiter disables limiting entirely.
func RateLimit(limiter *ratelimit.Limiter, exempt map[string]bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter == nil || exempt[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		allowed, retryAfter := limiter.Allow(utils.ClientIP(r))
		if !allowed {
			utils.WriteRateLimitedResponse(w, retryAfter)
			return
		}

		next.ServeHTTP(w, r)
	})
}
