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

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type envelope struct {
	Success     bool            `json:"success"`
	Data        json.RawMessage `json:"data"`
	Error       string          `json:"error"`
	Description string          `json:"description"`
	Details     []string        `json:"details"`
}

// doRequest performs one API call and returns the envelope data. Envelope
// failures are rendered with their description and details so validation
// errors stay actionable from the terminal.
func doRequest(method, requestURL, token string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequest(method, requestURL, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: unexpected response: %w", resp.Status, err)
	}
	if !env.Success {
		message := env.Error
		if env.Description != "" {
			message = fmt.Sprintf("%s: %s", message, env.Description)
		}
		if len(env.Details) > 0 {
			message = fmt.Sprintf("%s (%s)", message, strings.Join(env.Details, "; "))
		}
		return nil, fmt.Errorf("%s: %s", resp.Status, message)
	}
	return env.Data, nil
}

func printJSON(out io.Writer, data json.RawMessage) error {
	var value interface{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
