/**
# Copyright (c) 2022, NVIDIA CORPORATION.  All rights reserved.
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
	"fmt"
)

type unavailable struct {
	reason error
}

var _ Manager = (*unavailable)(nil)

// NewUnavailableManager returns a manager for hosts where no device-management
// layer can be reached. Init always fails with the specified reason; Shutdown is a no-op.
func NewUnavailableManager(reason error) Manager {
	if reason == nil {
		reason = fmt.Errorf("no device-management library found")
	}
	return &unavailable{reason: reason}
}

// Init returns the reason the manager is unavailable
func (l *unavailable) Init() error {
	return l.reason
}

// Shutdown is a no-op for the unavailable manager
func (l *unavailable) Shutdown() error {
	return nil
}

// GetDeviceCount is not supported
func (l *unavailable) GetDeviceCount() (int, error) {
	return 0, l.reason
}

// GetDeviceByIndex is not supported
func (l *unavailable) GetDeviceByIndex(int) (Device, error) {
	return nil, l.reason
}
