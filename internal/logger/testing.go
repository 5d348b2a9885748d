/**
# Copyright 2024 NVIDIA CORPORATION
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

package logger

import (
	"fmt"
	"sync"
)

// Recorder is a logger that keeps every formatted message. It is intended for tests.
type Recorder struct {
	sync.Mutex
	Infos    []string
	Warnings []string
	Debugs   []string
}

var _ Interface = (*Recorder)(nil)

// Infof records an info message.
func (r *Recorder) Infof(format string, args ...interface{}) {
	r.Lock()
	defer r.Unlock()
	r.Infos = append(r.Infos, fmt.Sprintf(format, args...))
}

// Warningf records a warning.
func (r *Recorder) Warningf(format string, args ...interface{}) {
	r.Lock()
	defer r.Unlock()
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Debugf records a debug message.
func (r *Recorder) Debugf(format string, args ...interface{}) {
	r.Lock()
	defer r.Unlock()
	r.Debugs = append(r.Debugs, fmt.Sprintf(format, args...))
}
