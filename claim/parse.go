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
	"strconv"
	"strings"

	"github.com/richardwilkes/claimset/container/intervalset"
	"github.com/richardwilkes/toolbox/errs"
)

// ParseInterval parses a range in the form "lo:hi". A single number "n" is
// treated as the range "n:n".
func ParseInterval(text string) (intervalset.Interval, error) {
	var iv intervalset.Interval
	loText, hiText, found := strings.Cut(strings.TrimSpace(text), ":")
	lo, err := strconv.Atoi(strings.TrimSpace(loText))
	if err != nil {
		return iv, errs.NewWithCause("bad range start in "+strconv.Quote(text), err)
	}
	hi := lo
	if found {
		if hi, err = strconv.Atoi(strings.TrimSpace(hiText)); err != nil {
			return iv, errs.NewWithCause("bad range end in "+strconv.Quote(text), err)
		}
	}
	iv.Lo = lo
	iv.Hi = hi
	if !iv.Valid() {
		return iv, errs.NewWithCause("unable to parse "+strconv.Quote(text), &intervalset.InvalidIntervalError{Interval: iv})
	}
	return iv, nil
}
