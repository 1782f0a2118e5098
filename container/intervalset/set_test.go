// Copyright (c) 2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package intervalset_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/richardwilkes/claimset/container/intervalset"
	"github.com/richardwilkes/toolbox/check"
)

type iv = intervalset.Interval

func insert(t *testing.T, s *intervalset.Set, lo, hi int) bool {
	t.Helper()
	added, err := s.Insert(iv{Lo: lo, Hi: hi})
	check.NoError(t, err)
	return added
}

// checkInvariant verifies the stored intervals are ordered, neither overlap
// nor touch, and cover exactly the indexes marked in 'covered'.
func checkInvariant(t *testing.T, s *intervalset.Set, covered []bool) {
	t.Helper()
	list := s.Intervals()
	check.Equal(t, s.Len(), len(list))
	for i, one := range list {
		check.True(t, one.Valid())
		if i > 0 {
			check.True(t, list[i-1].Hi < one.Lo)
		}
		for j := one.Lo; j <= one.Hi; j++ {
			check.True(t, j >= 0 && j < len(covered) && covered[j])
		}
	}
	count := 0
	for _, c := range covered {
		if c {
			count++
		}
	}
	check.Equal(t, count, s.Covered())
}

func TestScenario(t *testing.T) {
	var s intervalset.Set

	check.True(t, insert(t, &s, 1, 3))
	check.Equal(t, []iv{{1, 3}}, s.Intervals())

	check.True(t, insert(t, &s, 5, 8))
	check.Equal(t, []iv{{1, 3}, {5, 8}}, s.Intervals())

	// Touches both
	check.True(t, insert(t, &s, 3, 5))
	check.Equal(t, []iv{{1, 8}}, s.Intervals())

	// Fully contained
	check.False(t, insert(t, &s, 2, 4))
	check.Equal(t, []iv{{1, 8}}, s.Intervals())

	// Gap between 0 and 1, so no merge
	check.True(t, insert(t, &s, -1, 0))
	check.Equal(t, []iv{{-1, 0}, {1, 8}}, s.Intervals())
	check.Equal(t, 10, s.Covered())
}

func TestInvalid(t *testing.T) {
	s := intervalset.New()
	insert(t, s, 0, 10)
	added, err := s.Insert(iv{Lo: 5, Hi: 2})
	check.False(t, added)
	check.Error(t, err)
	check.True(t, errors.Is(err, intervalset.ErrInvalidInterval))
	var ive *intervalset.InvalidIntervalError
	check.True(t, errors.As(err, &ive))
	check.Equal(t, iv{Lo: 5, Hi: 2}, ive.Interval)
	check.Equal(t, []iv{{0, 10}}, s.Intervals())

	var empty intervalset.Set
	_, err = empty.Insert(iv{Lo: 1, Hi: 0})
	check.True(t, errors.Is(err, intervalset.ErrInvalidInterval))
	check.Equal(t, 0, empty.Len())
}

func TestTouching(t *testing.T) {
	s := intervalset.New()
	check.True(t, insert(t, s, 10, 20))
	check.True(t, insert(t, s, 20, 30))
	check.Equal(t, []iv{{10, 30}}, s.Intervals())
	check.True(t, insert(t, s, 0, 10))
	check.Equal(t, []iv{{0, 30}}, s.Intervals())

	// Adjacent integers with no shared endpoint stay apart
	check.True(t, insert(t, s, 31, 40))
	check.Equal(t, []iv{{0, 30}, {31, 40}}, s.Intervals())
}

func TestOverlapping(t *testing.T) {
	s := intervalset.New()
	check.True(t, insert(t, s, 0, 10))
	check.True(t, insert(t, s, 5, 15))
	check.Equal(t, []iv{{0, 15}}, s.Intervals())
	check.True(t, insert(t, s, -5, 2))
	check.Equal(t, []iv{{-5, 15}}, s.Intervals())
}

func TestMergeRun(t *testing.T) {
	s := intervalset.New()
	for _, one := range []iv{{0, 1}, {10, 11}, {20, 21}, {30, 31}, {40, 41}} {
		check.True(t, insert(t, s, one.Lo, one.Hi))
	}
	// Spans the middle three, partially covering the outer ones
	check.True(t, insert(t, s, 11, 30))
	check.Equal(t, []iv{{0, 1}, {10, 31}, {40, 41}}, s.Intervals())

	// Swallows everything
	check.True(t, insert(t, s, -100, 100))
	check.Equal(t, []iv{{-100, 100}}, s.Intervals())
}

func TestMergeKeepsLeadingFragment(t *testing.T) {
	s := intervalset.New()
	insert(t, s, 0, 5)
	insert(t, s, 10, 15)
	check.True(t, insert(t, s, 5, 10))
	check.Equal(t, []iv{{0, 15}}, s.Intervals())
	check.False(t, insert(t, s, 1, 2))
	check.Equal(t, []iv{{0, 15}}, s.Intervals())
	check.Equal(t, 16, s.Covered())
}

func TestMergeRunAgainstModel(t *testing.T) {
	s := intervalset.New()
	covered := make([]bool, 50)
	add := func(lo, hi int) bool {
		for i := lo; i <= hi; i++ {
			covered[i] = true
		}
		added := insert(t, s, lo, hi)
		checkInvariant(t, s, covered)
		return added
	}
	for _, one := range []iv{{0, 1}, {10, 11}, {20, 21}, {30, 31}, {40, 41}} {
		check.True(t, add(one.Lo, one.Hi))
	}
	check.True(t, add(11, 30))
	check.Equal(t, []iv{{0, 1}, {10, 31}, {40, 41}}, s.Intervals())
	check.True(t, add(1, 40))
	check.Equal(t, []iv{{0, 41}}, s.Intervals())
	check.False(t, add(0, 41))
}

func TestExtremeBounds(t *testing.T) {
	whole := iv{Lo: math.MinInt, Hi: math.MaxInt}
	check.Equal(t, math.MaxInt, whole.Len())
	check.Equal(t, 1, iv{Lo: math.MaxInt, Hi: math.MaxInt}.Len())
	check.Equal(t, math.MaxInt, iv{Lo: 0, Hi: math.MaxInt}.Len())

	s := intervalset.New()
	check.True(t, insert(t, s, math.MinInt, -1))
	check.True(t, insert(t, s, 1, math.MaxInt))
	check.Equal(t, math.MaxInt, s.Covered())
	check.True(t, insert(t, s, -1, 1))
	check.Equal(t, []iv{whole}, s.Intervals())
	check.False(t, insert(t, s, 0, 0))
}

func TestContainedAcrossFragments(t *testing.T) {
	s := intervalset.New()
	insert(t, s, 0, 5)
	insert(t, s, 7, 10)
	// Covered by no single fragment, so it still adds coverage
	check.True(t, insert(t, s, 3, 8))
	check.Equal(t, []iv{{0, 10}}, s.Intervals())
}

func TestIdempotent(t *testing.T) {
	s := intervalset.New()
	check.True(t, insert(t, s, 3, 9))
	check.False(t, insert(t, s, 3, 9))
	check.Equal(t, []iv{{3, 9}}, s.Intervals())

	check.False(t, insert(t, s, 4, 4))
	check.True(t, insert(t, s, 12, 12))
	check.False(t, insert(t, s, 12, 12))
	check.Equal(t, []iv{{3, 9}, {12, 12}}, s.Intervals())
}

func TestReset(t *testing.T) {
	s := intervalset.New()
	insert(t, s, 1, 2)
	insert(t, s, 5, 6)
	check.Equal(t, 2, s.Len())
	s.Reset()
	check.Equal(t, 0, s.Len())
	check.Equal(t, 0, s.Covered())
	check.Equal(t, []iv{}, s.Intervals())
	check.True(t, insert(t, s, 1, 2))

	var zero intervalset.Set
	zero.Reset()
	check.Equal(t, 0, zero.Len())
}

func TestCompare(t *testing.T) {
	check.Equal(t, -1, intervalset.Compare(iv{0, 1}, iv{2, 3}))
	check.Equal(t, 1, intervalset.Compare(iv{2, 3}, iv{0, 1}))
	check.Equal(t, 0, intervalset.Compare(iv{0, 2}, iv{2, 3}))
	check.Equal(t, 0, intervalset.Compare(iv{2, 3}, iv{0, 2}))
	check.Equal(t, 0, intervalset.Compare(iv{0, 10}, iv{3, 4}))
	check.Equal(t, "[-1, 7]", iv{-1, 7}.String())
}

func TestOrderIndependence(t *testing.T) {
	want := []iv{{-50, -40}, {-30, -30}, {0, 3}, {5, 9}, {11, 20}, {100, 200}}
	rnd := rand.New(rand.NewSource(1))
	for range 50 {
		list := append([]iv(nil), want...)
		rnd.Shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
		s := intervalset.New()
		for _, one := range list {
			check.True(t, insert(t, s, one.Lo, one.Hi))
		}
		check.Equal(t, want, s.Intervals())
	}
}

func TestRandomAgainstBitmap(t *testing.T) {
	const span = 500
	rnd := rand.New(rand.NewSource(42))
	for range 20 {
		s := intervalset.New()
		covered := make([]bool, span)
		for range 200 {
			lo := rnd.Intn(span)
			hi := lo + rnd.Intn(min(span-lo, 25))
			already := true
			for i := lo; i <= hi; i++ {
				if !covered[i] {
					already = false
				}
				covered[i] = true
			}
			wasContained := false
			for _, one := range s.Intervals() {
				if one.Contains(iv{Lo: lo, Hi: hi}) {
					wasContained = true
				}
			}
			added := insert(t, s, lo, hi)
			check.Equal(t, !wasContained, added)
			if !already {
				check.True(t, added)
			}
			checkInvariant(t, s, covered)
		}
	}
}

func BenchmarkInsert(b *testing.B) {
	rnd := rand.New(rand.NewSource(0))
	b.ReportAllocs()
	s := intervalset.New()
	for i := 0; i < b.N; i++ {
		lo := rnd.Intn(8 * 1_000_000)
		_, _ = s.Insert(iv{Lo: lo, Hi: lo + rnd.Intn(64)})
	}
}
