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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type decodePayload struct {
	Title      string `json:"title"`
	ExpiryDays int    `json:"expiryDays"`
}

func decodeErr(t *testing.T, body string, strict bool) error {
	t.Helper()

	decoder := json.NewDecoder(strings.NewReader(body))
	if strict {
		decoder.DisallowUnknownFields()
	}
	var payload decodePayload
	return decoder.Decode(&payload)
}

func TestHandleDecodeErrorNil(t *testing.T) {
	assert.Empty(t, HandleDecodeError(nil, "cookie configuration"))
}

func TestHandleDecodeErrorEmptyBody(t *testing.T) {
	err := decodeErr(t, "", false)

	assert.Equal(t, "Request body for cookie configuration is empty.",
		HandleDecodeError(err, "cookie configuration"))
}

func TestHandleDecodeErrorMalformedJSON(t *testing.T) {
	err := decodeErr(t, "{not json", false)

	assert.Equal(t, "Malformed JSON in cookie configuration request body.",
		HandleDecodeError(err, "cookie configuration"))
}

func TestHandleDecodeErrorTopLevelArray(t *testing.T) {
	err := decodeErr(t, `[1, 2]`, false)

	assert.Equal(t, "Request body for cookie configuration must be a JSON object.",
		HandleDecodeError(err, "cookie configuration"))
}

func TestHandleDecodeErrorFieldTypeMismatch(t *testing.T) {
	err := decodeErr(t, `{"expiryDays": "ten"}`, false)

	assert.Equal(t, "Invalid type for field 'expiryDays' in cookie configuration request body.",
		HandleDecodeError(err, "cookie configuration"))
}

func TestHandleDecodeErrorUnknownField(t *testing.T) {
	err := decodeErr(t, `{"bogus": true}`, true)

	assert.Equal(t, `Unknown field "bogus" in consent event request body.`,
		HandleDecodeError(err, "consent event"))
}
