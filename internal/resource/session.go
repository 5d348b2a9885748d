/**
# Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

package resource

import (
	"github.com/NVIDIA/wgpu/internal/logger"
)

// WithManager initializes the manager, calls f and shuts the manager down.
//
// Shutdown is called exactly once on every path, including a failed Init and a
// panic in f. A failed Init is returned as an *InitError and f is not called.
func WithManager(m Manager, log logger.Interface, f func(Manager) error) error {
	if log == nil {
		log = logger.ToKlog
	}

	initialized := false
	defer func() {
		err := m.Shutdown()
		switch {
		case err == nil:
			log.Infof("Shut down device-management layer")
		case initialized:
			log.Warningf("Failed to shut down device-management layer: %v", err)
		default:
			// Shutting down a layer that never came up is expected to fail.
			log.Debugf("Shutdown after failed init: %v", err)
		}
	}()

	if err := m.Init(); err != nil {
		return &InitError{Err: err}
	}
	initialized = true

	return f(m)
}
