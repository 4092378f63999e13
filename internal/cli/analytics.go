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
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/ab-solanki/cookie/internal/system/constants"
)

type analyticsClient struct {
	serverURL *string
	token     *string
	language  string
	from      string
	to        string
}

func newAnalyticsCmd(serverURL, token *string) *cobra.Command {
	a := &analyticsClient{serverURL: serverURL, token: token}

	cmd := &cobra.Command{Use: "analytics", Short: "Show per-language consent summaries", RunE: a.run}
	cmd.Flags().StringVar(&a.language, "language", "", "Filter by language")
	cmd.Flags().StringVar(&a.from, "from", "", "Window start (RFC3339)")
	cmd.Flags().StringVar(&a.to, "to", "", "Window end (RFC3339)")
	return cmd
}

func (a *analyticsClient) run(cmd *cobra.Command, args []string) error {
	query := url.Values{}
	if a.language != "" {
		query.Set("language", a.language)
	}
	if a.from != "" {
		query.Set("from", a.from)
	}
	if a.to != "" {
		query.Set("to", a.to)
	}

	requestURL := *a.serverURL + constants.ConsentAnalyticsApiPath
	if encoded := query.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	data, err := doRequest(http.MethodGet, requestURL, *a.token, nil)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), data)
}
