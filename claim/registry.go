// Copyright (c) 2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

// Package claim coordinates index-range claims made by concurrent workers.
package claim

import (
	"io"
	"log/slog"
	"sync"

	"github.com/richardwilkes/claimset/container/intervalset"
	"github.com/richardwilkes/toolbox/errs"
)

// Registry records the index ranges that have been claimed. It is safe for
// concurrent use.
type Registry struct {
	logger   *slog.Logger
	name     string
	set      intervalset.Set // protected by lock
	accepted int             // protected by lock
	rejected int             // protected by lock
	invalid  int             // protected by lock
	lock     sync.Mutex
}

// New creates a new, empty registry.
func New(options ...func(*Registry) error) (*Registry, error) {
	r := &Registry{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		name:   "claims",
	}
	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}
	r.logger = r.logger.With("registry", r.name)
	return r, nil
}

// Name returns the registry's name.
func (r *Registry) Name() string {
	return r.name
}

// Logger returns the registry's logger.
func (r *Registry) Logger() *slog.Logger {
	return r.logger
}

// Claim the closed range [lo, hi]. Returns true if any part of the range had
// not been claimed before, or false if an earlier claim already covered all of
// it. A range with lo > hi is rejected with an error and nothing is recorded.
func (r *Registry) Claim(lo, hi int) (bool, error) {
	iv := intervalset.Interval{Lo: lo, Hi: hi}
	r.lock.Lock()
	defer r.lock.Unlock()
	added, err := r.set.Insert(iv)
	if err != nil {
		r.invalid++
		return false, errs.NewWithCause("unable to claim "+iv.String(), err)
	}
	if added {
		r.accepted++
	} else {
		r.rejected++
	}
	r.logger.Debug("claim", "range", iv.String(), "added", added, "fragments", r.set.Len())
	return added, nil
}

// Reset discards all claims and counters.
func (r *Registry) Reset() {
	r.lock.Lock()
	r.set.Reset()
	r.accepted = 0
	r.rejected = 0
	r.invalid = 0
	r.lock.Unlock()
	r.logger.Debug("reset")
}

// Claimed returns the coalesced claimed ranges, in ascending order.
func (r *Registry) Claimed() []intervalset.Interval {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.set.Intervals()
}

// Status returns a snapshot of the registry's counters.
func (r *Registry) Status() Status {
	r.lock.Lock()
	defer r.lock.Unlock()
	return Status{
		Accepted:  r.accepted,
		Rejected:  r.rejected,
		Invalid:   r.invalid,
		Fragments: r.set.Len(),
		Covered:   r.set.Covered(),
	}
}
