// Copyright (c) 2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

// Package intervalset provides a set of disjoint closed integer intervals that
// coalesces overlapping or touching intervals as they are inserted.
package intervalset

import (
	"math"

	"github.com/google/btree"
)

const degree = 16

// Set holds a collection of closed intervals, none of which overlap or touch.
// The zero value is an empty set ready for use. A Set is not safe for
// concurrent use.
type Set struct {
	tree *btree.BTreeG[Interval]
}

// New creates a new, empty set.
func New() *Set {
	return &Set{}
}

func (s *Set) init() {
	if s.tree == nil {
		s.tree = btree.NewG(degree, byLo)
	}
}

// Reset discards all stored intervals.
func (s *Set) Reset() {
	if s.tree != nil {
		s.tree.Clear(true)
	}
}

// Len returns the number of stored intervals.
func (s *Set) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Covered returns the total count of integers covered by the set, saturating
// at math.MaxInt.
func (s *Set) Covered() int {
	total := 0
	if s.tree != nil {
		s.tree.Ascend(func(iv Interval) bool {
			n := iv.Len()
			if total > math.MaxInt-n {
				total = math.MaxInt
				return false
			}
			total += n
			return true
		})
	}
	return total
}

// Intervals returns a copy of the stored intervals, in ascending order.
func (s *Set) Intervals() []Interval {
	list := make([]Interval, 0, s.Len())
	if s.tree != nil {
		s.tree.Ascend(func(iv Interval) bool {
			list = append(list, iv)
			return true
		})
	}
	return list
}

// Insert an interval into the set, merging it with every stored interval it
// overlaps or touches. Returns true if the interval added coverage that was
// not already present, or false if a single stored interval already contained
// it. An interval with Lo > Hi results in an *InvalidIntervalError and the set
// is left untouched.
func (s *Set) Insert(iv Interval) (bool, error) {
	if !iv.Valid() {
		return false, &InvalidIntervalError{Interval: iv}
	}
	s.init()
	if s.tree.Len() == 0 {
		s.tree.ReplaceOrInsert(iv)
		return true, nil
	}
	run := s.overlapping(iv)
	if len(run) == 0 {
		s.tree.ReplaceOrInsert(iv)
		return true, nil
	}
	added := true
	merged := iv
	for _, one := range run {
		if one.Contains(iv) {
			added = false
		}
		merged.Lo = min(merged.Lo, one.Lo)
		merged.Hi = max(merged.Hi, one.Hi)
	}
	for _, one := range run {
		s.tree.Delete(one)
	}
	s.tree.ReplaceOrInsert(merged)
	return added, nil
}

// overlapping returns the contiguous run of stored intervals that overlap or
// touch iv. Only the stored interval with the greatest Lo not exceeding iv.Lo
// can start before iv and still reach it.
func (s *Set) overlapping(iv Interval) []Interval {
	start := Interval{Lo: iv.Lo, Hi: iv.Lo}
	s.tree.DescendLessOrEqual(start, func(pred Interval) bool {
		if pred.Hi >= iv.Lo {
			start = pred
		}
		return false
	})
	var run []Interval
	s.tree.AscendGreaterOrEqual(start, func(one Interval) bool {
		if one.Lo > iv.Hi {
			return false
		}
		run = append(run, one)
		return true
	})
	return run
}
