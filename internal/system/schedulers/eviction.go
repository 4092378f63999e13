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

package schedulers

import (
	"fmt"
	"time"

	"github.com/ab-solanki/cookie/internal/system/cache"
	"github.com/ab-solanki/cookie/internal/system/log"
	"github.com/ab-solanki/cookie/internal/system/ratelimit"
)

// StartEvictionScheduler starts the periodic eviction job for expired rate
// limit windows and configuration cache entries. The returned function stops
// the job.
func StartEvictionScheduler(limiter *ratelimit.Limiter, configCache *cache.Cache, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	stop := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				evictExpired(limiter, configCache)
			case <-stop:
				return
			}
		}
	}()

	return func() { close(stop) }
}

// evictExpired sweeps both stores; either may be nil when disabled.
func evictExpired(limiter *ratelimit.Limiter, configCache *cache.Cache) {
	logger := log.GetLogger()

	if limiter != nil {
		if removed := limiter.Sweep(); removed > 0 {
			logger.Debug(fmt.Sprint("Evicted expired rate limit windows: ", removed))
		}
	}
	if configCache != nil {
		if removed := configCache.Purge(); removed > 0 {
			logger.Debug(fmt.Sprint("Evicted expired config cache entries: ", removed))
		}
	}
}
