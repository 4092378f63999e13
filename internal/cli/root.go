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

// Package cli implements the consentctl admin command tree: a thin HTTP
// client over the admin API that decodes the response envelope.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the consentctl command tree. The server and token flags
// fall back to the CONSENTCTL_SERVER and CONSENTCTL_TOKEN environment
// variables.
func NewRootCmd() *cobra.Command {
	var serverURL string
	var token string

	root := &cobra.Command{
		Use:   "consentctl",
		Short: "Admin CLI for the cookie consent service",
	}
	root.PersistentFlags().StringVar(&serverURL, "server",
		envOr("CONSENTCTL_SERVER", "http://localhost:8090"), "Service base URL")
	root.PersistentFlags().StringVar(&token, "token",
		os.Getenv("CONSENTCTL_TOKEN"), "Admin bearer token")

	root.AddCommand(newConfigCmd(&serverURL, &token))
	root.AddCommand(newAnalyticsCmd(&serverURL, &token))
	return root
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
