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

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ab-solanki/cookie/internal/system/log"
)

func TestSetAndGet(t *testing.T) {
	log.Init("DEBUG")

	c := NewCache(time.Minute)
	c.Set("en", "banner")

	value, found := c.Get("en")
	assert.True(t, found)
	assert.Equal(t, "banner", value)

	_, found = c.Get("de")
	assert.False(t, found)
}

func TestGetSkipsExpiredEntry(t *testing.T) {
	log.Init("DEBUG")

	c := NewCache(20 * time.Millisecond)
	c.Set("en", "banner")

	time.Sleep(30 * time.Millisecond)

	_, found := c.Get("en")
	assert.False(t, found)
}

func TestDeleteRemovesEntry(t *testing.T) {
	log.Init("DEBUG")

	c := NewCache(time.Minute)
	c.Set("en", "banner")
	c.Delete("en")

	_, found := c.Get("en")
	assert.False(t, found)
}

func TestPurgeRemovesOnlyExpiredEntries(t *testing.T) {
	log.Init("DEBUG")

	c := NewCache(20 * time.Millisecond)
	c.Set("en", "banner")

	time.Sleep(30 * time.Millisecond)
	c.Set("de", "banner")

	assert.Equal(t, 1, c.Purge())

	_, found := c.Get("de")
	assert.True(t, found)
	assert.Equal(t, 0, c.Purge())
}
