// Copyright (c) 2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package intervalset

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInterval is matched by errors.Is for any *InvalidIntervalError.
var ErrInvalidInterval = errors.New("invalid interval")

// Interval holds a closed range of integers. Lo must not exceed Hi.
type Interval struct {
	Lo int
	Hi int
}

// Valid returns true if Lo <= Hi.
func (iv Interval) Valid() bool {
	return iv.Lo <= iv.Hi
}

// Len returns the number of integers covered by the interval, saturating at
// math.MaxInt for intervals wider than that.
func (iv Interval) Len() int {
	if d := uint64(iv.Hi) - uint64(iv.Lo); d < math.MaxInt {
		return int(d) + 1
	}
	return math.MaxInt
}

// Contains returns true if other lies entirely within this interval.
func (iv Interval) Contains(other Interval) bool {
	return iv.Lo <= other.Lo && other.Hi <= iv.Hi
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d]", iv.Lo, iv.Hi)
}

// Compare orders a before b (-1) when a ends before b starts, after b (1) when
// b ends before a starts, and reports 0 when the two overlap or touch. This is
// only a consistent ordering among intervals that are disjoint and do not
// touch, which the Set guarantees for what it stores. Two stored intervals
// compare as 0 exactly when Insert has to coalesce them.
func Compare(a, b Interval) int {
	switch {
	case a.Hi < b.Lo:
		return -1
	case b.Hi < a.Lo:
		return 1
	default:
		return 0
	}
}

// byLo orders the stored intervals. They never overlap, so this agrees with
// Compare for everything in the tree.
func byLo(a, b Interval) bool {
	return a.Lo < b.Lo
}

// InvalidIntervalError is returned when an interval with Lo > Hi is supplied.
type InvalidIntervalError struct {
	Interval Interval
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval %s: lo exceeds hi", e.Interval)
}

// Is allows errors.Is(err, ErrInvalidInterval) to succeed.
func (e *InvalidIntervalError) Is(target error) bool {
	return target == ErrInvalidInterval
}
