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

package attribution

import (
	"fmt"
	"os/user"

	"github.com/prometheus/procfs"

	"github.com/NVIDIA/wgpu/internal/logger"
	"github.com/NVIDIA/wgpu/internal/telemetry"
)

// UIDLookup returns the effective user id owning the process with the specified pid.
type UIDLookup func(pid int) (string, error)

// UserLookup returns the account name for the specified user id.
type UserLookup func(uid string) (string, error)

// Resolver attaches owning users to the processes of collected devices.
type Resolver struct {
	procRoot   string
	uidLookup  UIDLookup
	userLookup UserLookup
	logger     logger.Interface
}

// Option is a function that configures a Resolver.
type Option func(*Resolver)

// WithProcRoot sets the mount point of the proc filesystem. The default is /proc.
func WithProcRoot(root string) Option {
	return func(r *Resolver) {
		r.procRoot = root
	}
}

// WithUIDLookup overrides how process owners are read.
func WithUIDLookup(lookup UIDLookup) Option {
	return func(r *Resolver) {
		r.uidLookup = lookup
	}
}

// WithUserLookup overrides how user ids are mapped to account names.
func WithUserLookup(lookup UserLookup) Option {
	return func(r *Resolver) {
		r.userLookup = lookup
	}
}

// WithLogger sets the logger for the resolver.
func WithLogger(log logger.Interface) Option {
	return func(r *Resolver) {
		r.logger = log
	}
}

// NewResolver creates a resolver backed by the host process table.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		procRoot: procfs.DefaultMountPoint,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.ToKlog
	}
	if r.uidLookup == nil {
		r.uidLookup = newProcfsLookup(r.procRoot)
	}
	if r.userLookup == nil {
		r.userLookup = lookupUsername
	}
	return r
}

// Resolve sets the User of every process of the specified devices.
// Processes that have exited or whose owner cannot be read are left without a user.
func (r *Resolver) Resolve(devices []telemetry.DeviceRecord) {
	names := make(map[string]string)
	for i := range devices {
		for j := range devices[i].Processes {
			p := &devices[i].Processes[j]
			name, err := r.resolve(p.PID, names)
			if err != nil {
				r.logger.Debugf("Unable to resolve user of process %d on GPU %d: %v", p.PID, devices[i].ID, err)
				p.User = nil
				continue
			}
			p.User = &name
		}
	}
}

func (r *Resolver) resolve(pid int, names map[string]string) (string, error) {
	uid, err := r.uidLookup(pid)
	if err != nil {
		return "", fmt.Errorf("error reading owner: %w", err)
	}
	if name, ok := names[uid]; ok {
		return name, nil
	}
	name, err := r.userLookup(uid)
	if err != nil {
		return "", fmt.Errorf("error looking up uid %v: %w", uid, err)
	}
	names[uid] = name
	return name, nil
}

// newProcfsLookup returns a UIDLookup that reads /proc/<pid>/status below root.
func newProcfsLookup(root string) UIDLookup {
	fs, err := procfs.NewFS(root)
	if err != nil {
		return func(int) (string, error) {
			return "", fmt.Errorf("error opening proc filesystem: %w", err)
		}
	}
	return func(pid int) (string, error) {
		proc, err := fs.Proc(pid)
		if err != nil {
			return "", err
		}
		status, err := proc.NewStatus()
		if err != nil {
			return "", err
		}
		// Real, effective, saved and filesystem ids; the effective id owns the process.
		return fmt.Sprint(status.UIDs[1]), nil
	}
}

func lookupUsername(uid string) (string, error) {
	u, err := user.LookupId(uid)
	if err != nil {
		return "", err
	}
	return u.Username, nil
}
