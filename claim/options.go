// Copyright (c) 2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package claim

import (
	"log/slog"

	"github.com/richardwilkes/toolbox/errs"
)

// LogTo sets the logger the registry should use. Default discards logs.
func LogTo(logger *slog.Logger) func(*Registry) error {
	return func(r *Registry) error {
		if logger == nil {
			return errs.New("logger may not be nil")
		}
		r.logger = logger
		return nil
	}
}

// Name sets the name reported in the registry's log output. Default is
// "claims".
func Name(name string) func(*Registry) error {
	return func(r *Registry) error {
		if name == "" {
			return errs.New("Name may not be empty")
		}
		r.name = name
		return nil
	}
}
