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

package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ab-solanki/cookie/internal/system/log"
)

func TestAllowWithinBudget(t *testing.T) {
	log.Init("DEBUG")

	limiter := NewLimiter(time.Minute, 100)

	for i := 0; i < 100; i++ {
		allowed, retryAfter := limiter.Allow("203.0.113.7")
		assert.True(t, allowed)
		assert.Equal(t, 0, retryAfter)
	}

	allowed, retryAfter := limiter.Allow("203.0.113.7")
	assert.False(t, allowed)
	assert.GreaterOrEqual(t, retryAfter, 1)
	assert.LessOrEqual(t, retryAfter, 60)
}

func TestBudgetIsPerClient(t *testing.T) {
	log.Init("DEBUG")

	limiter := NewLimiter(time.Minute, 1)

	allowed, _ := limiter.Allow("203.0.113.7")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("203.0.113.7")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("203.0.113.8")
	assert.True(t, allowed)
}

func TestWindowResets(t *testing.T) {
	log.Init("DEBUG")

	limiter := NewLimiter(30*time.Millisecond, 1)

	allowed, _ := limiter.Allow("203.0.113.7")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("203.0.113.7")
	assert.False(t, allowed)

	time.Sleep(40 * time.Millisecond)

	allowed, _ = limiter.Allow("203.0.113.7")
	assert.True(t, allowed)
}

func TestSweepRemovesExpiredWindows(t *testing.T) {
	log.Init("DEBUG")

	limiter := NewLimiter(10*time.Millisecond, 5)
	limiter.Allow("203.0.113.7")
	limiter.Allow("203.0.113.8")

	time.Sleep(20 * time.Millisecond)
	limiter.Allow("203.0.113.9")

	assert.Equal(t, 2, limiter.Sweep())
	assert.Equal(t, 0, limiter.Sweep())
}
