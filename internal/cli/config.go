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
	"bytes"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/ab-solanki/cookie/internal/system/constants"
)

type configClient struct {
	serverURL *string
	token     *string
	file      string
}

func newConfigCmd(serverURL, token *string) *cobra.Command {
	c := &configClient{serverURL: serverURL, token: token}

	cmd := &cobra.Command{Use: "config", Short: "Manage cookie banner configurations"}
	cmd.AddCommand(&cobra.Command{Use: "list", Short: "List all configurations, including disabled ones", RunE: c.list})
	cmd.AddCommand(&cobra.Command{Use: "get", Short: "Get the served configuration for a language", Args: cobra.ExactArgs(1), RunE: c.get})

	put := &cobra.Command{Use: "put", Short: "Create or replace the configuration for a language", Args: cobra.ExactArgs(1), RunE: c.put}
	put.Flags().StringVarP(&c.file, "file", "f", "", "Path to the configuration JSON document")
	_ = put.MarkFlagRequired("file")
	cmd.AddCommand(put)

	cmd.AddCommand(&cobra.Command{Use: "delete", Short: "Delete the configuration for a language", Args: cobra.ExactArgs(1), RunE: c.delete})
	return cmd
}

func (c *configClient) list(cmd *cobra.Command, args []string) error {
	data, err := doRequest(http.MethodGet, *c.serverURL+constants.AdminCookieConfigApiPath, *c.token, nil)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), data)
}

func (c *configClient) get(cmd *cobra.Command, args []string) error {
	data, err := doRequest(http.MethodGet, *c.serverURL+constants.CookieConfigApiPath+"/"+args[0], *c.token, nil)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), data)
}

func (c *configClient) put(cmd *cobra.Command, args []string) error {
	document, err := os.ReadFile(c.file)
	if err != nil {
		return err
	}

	requestURL := *c.serverURL + constants.AdminCookieConfigApiPath + "/" + args[0]
	data, err := doRequest(http.MethodPut, requestURL, *c.token, bytes.NewReader(document))
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), data)
}

func (c *configClient) delete(cmd *cobra.Command, args []string) error {
	requestURL := *c.serverURL + constants.AdminCookieConfigApiPath + "/" + args[0]
	if _, err := doRequest(http.MethodDelete, requestURL, *c.token, nil); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
	return nil
}
