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

package errors

const errorPrefix = "CCS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize database client.",
	}

	GET_COOKIE_CONFIG = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching cookie configuration.",
	}

	UPSERT_COOKIE_CONFIG = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while saving cookie configuration.",
	}

	DELETE_COOKIE_CONFIG = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while deleting cookie configuration.",
	}

	LIST_COOKIE_CONFIGS = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while listing cookie configurations.",
	}

	RECORD_CONSENT = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while recording consent event.",
	}

	AGGREGATE_CONSENT = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while aggregating consent analytics.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while marshalling JSON.",
	}

	UNMARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while un-marshalling JSON.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Parsing token failed.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid body format.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unauthorized",
		Description: "Authorization failure. Authorization information was invalid or missing from your request.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Forbidden",
		Description: "You do not have permission to access this resource.",
	}

	COOKIE_CONFIG_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "Cookie configuration not found.",
		Description: "No cookie configuration exists for the requested language.",
	}

	COOKIE_CONFIG_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Cookie configuration validation failed.",
	}

	INVALID_LANGUAGE = ErrorMessage{
		Code:        errorPrefix + "11006",
		Message:     "Invalid language code.",
		Description: "Language codes must be two lowercase letters with an optional region suffix, for example en or pt-br.",
	}

	INVALID_CONSENT_ACTION = ErrorMessage{
		Code:        errorPrefix + "11007",
		Message:     "Invalid consent action.",
		Description: "Action must be one of accept, reject, customize, save or withdraw.",
	}

	RATE_LIMITED = ErrorMessage{
		Code:        errorPrefix + "11008",
		Message:     "Too many requests.",
		Description: "Request rate limit exceeded. Retry after the indicated interval.",
	}
)
