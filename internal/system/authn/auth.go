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

package authn

import (
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ab-solanki/cookie/internal/system/config"
	errors2 "github.com/ab-solanki/cookie/internal/system/errors"
	"github.com/ab-solanki/cookie/internal/system/log"
)

// Principal is the authenticated identity carried by a bearer token.
type Principal struct {
	Subject string
	Role    string
}

// ValidateAuthenticationAndReturnPrincipal verifies the bearer token
// signature against the configured secret and returns the token subject and
// role. Tokens must be HMAC-signed and carry an expiration.
func ValidateAuthenticationAndReturnPrincipal(token string) (*Principal, error) {

	logger := log.GetLogger()

	secret := config.GetCCSRuntime().Config.Auth.JWTSecret
	if secret == "" {
		logger.Debug("No JWT secret configured; rejecting bearer token.")
		return nil, unauthorizedError()
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		logger.Debug("Bearer token failed validation.", log.Error(err))
		return nil, unauthorizedError()
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		logger.Debug("Token does not have a subject claim.")
		return nil, unauthorizedError()
	}

	// Role may be absent; authorization rejects unknown roles downstream.
	role, _ := claims["role"].(string)

	return &Principal{
		Subject: subject,
		Role:    role,
	}, nil
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UN_AUTHORIZED.Code,
		Message:     errors2.UN_AUTHORIZED.Message,
		Description: errors2.UN_AUTHORIZED.Description,
	}, http.StatusUnauthorized)
}
