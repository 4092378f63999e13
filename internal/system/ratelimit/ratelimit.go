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
	"fmt"
	"sync"
	"time"

	"github.com/ab-solanki/cookie/internal/system/log"
)

type window struct {
	count   int
	resetAt time.Time
}

// Limiter tracks request counts per client over a fixed window. The first
// request from a client opens its window; once maxRequests have been counted
// the client is refused until the window resets.
type Limiter struct {
	windows     map[string]*window
	mutex       sync.Mutex
	window      time.Duration
	maxRequests int
}

func NewLimiter(windowSize time.Duration, maxRequests int) *Limiter {
	return &Limiter{
		windows:     make(map[string]*window),
		window:      windowSize,
		maxRequests: maxRequests,
	}
}

// Allow records a request from the client and reports whether it fits the
// window budget. When refused, the second return value is the number of
// seconds until the client's window resets, rounded up and at least 1.
func (l *Limiter) Allow(clientIP string) (bool, int) {

	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := time.Now()
	w, found := l.windows[clientIP]
	if !found || !now.Before(w.resetAt) {
		l.windows[clientIP] = &window{
			count:   1,
			resetAt: now.Add(l.window),
		}
		return true, 0
	}

	if w.count >= l.maxRequests {
		logger := log.GetLogger()
		logger.Debug(fmt.Sprint("Rate limit exceeded for client: ", clientIP))
		retryAfter := int((w.resetAt.Sub(now) + time.Second - 1) / time.Second)
		if retryAfter < 1 {
			retryAfter = 1
		}
		return false, retryAfter
	}

	w.count++
	return true, 0
}

// Sweep removes expired windows and returns how many were removed.
func (l *Limiter) Sweep() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := time.Now()
	removed := 0
	for clientIP, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, clientIP)
			removed++
		}
	}
	return removed
}
