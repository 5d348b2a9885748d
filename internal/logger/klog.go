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

import "k8s.io/klog/v2"

// Interface defines the logging calls made by the internal packages.
type Interface interface {
	Infof(string, ...interface{})
	Warningf(string, ...interface{})
	Debugf(string, ...interface{})
}

type toKlog struct{}

var _ Interface = (*toKlog)(nil)

// ToKlog allows the klog logger to be passed to functions where this is needed.
var ToKlog = &toKlog{}

// Infof forwards the arguments to klog at verbosity 2.
func (l toKlog) Infof(format string, args ...interface{}) {
	klog.V(2).Infof(format, args...)
}

// Warningf forwards the arguments to the klog.Warningf function.
func (l toKlog) Warningf(format string, args ...interface{}) {
	klog.Warningf(format, args...)
}

// Debugf forwards the arguments to klog at verbosity 4.
func (l toKlog) Debugf(format string, args ...interface{}) {
	klog.V(4).Infof(format, args...)
}
