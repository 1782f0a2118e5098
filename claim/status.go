// Copyright (c) 2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package claim

import "fmt"

// Status holds the counters for a registry.
type Status struct {
	Accepted  int
	Rejected  int
	Invalid   int
	Fragments int
	Covered   int
}

func (s Status) String() string {
	return fmt.Sprintf("Claims: %d accepted - %d rejected - %d invalid - %d indexes in %d ranges",
		s.Accepted,
		s.Rejected,
		s.Invalid,
		s.Covered,
		s.Fragments)
}
