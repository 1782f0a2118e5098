// Copyright (c) 2017-2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package bits

import mbits "math/bits"

// Bits holds a fixed-size collection of bits, one per index.
type Bits struct {
	data []byte
	size int
}

// New creates a new set of bits, all unset.
func New(numberOfBits int) *Bits {
	if numberOfBits < 0 {
		numberOfBits = 0
	}
	return &Bits{
		data: make([]byte, (numberOfBits+7)/8),
		size: numberOfBits,
	}
}

// Length returns the number of bits contained.
func (b *Bits) Length() int {
	return b.size
}

// IsSet returns true if the specified index is set.
func (b *Bits) IsSet(index int) bool {
	if index < 0 || index >= b.size {
		return false
	}
	return b.data[index/8]&mask(index) != 0
}

// Set the specified index. Returns true if it was previously unset.
func (b *Bits) Set(index int) bool {
	if index < 0 || index >= b.size {
		return false
	}
	m := mask(index)
	if b.data[index/8]&m != 0 {
		return false
	}
	b.data[index/8] |= m
	return true
}

// SetRange sets every index from lo through hi, inclusive, clipped to the
// available bits. Returns the number of those indexes that were already set.
func (b *Bits) SetRange(lo, hi int) int {
	lo = max(lo, 0)
	hi = min(hi, b.size-1)
	already := 0
	for i := lo; i <= hi; i++ {
		if !b.Set(i) {
			already++
		}
	}
	return already
}

// Count returns the number of set bits.
func (b *Bits) Count() int {
	count := 0
	for _, one := range b.data {
		count += mbits.OnesCount8(one)
	}
	return count
}

// NextUnset returns the index of the next unset bit, starting at 'from'.
// Returns -1 if no bits are unset from 'from' through the end of the bits.
func (b *Bits) NextUnset(from int) int {
	if from < 0 || from >= b.size {
		return -1
	}
	for i := from / 8; i < len(b.data); i++ {
		if b.data[i] == 0xFF {
			continue
		}
		start := max(i*8, from)
		for j := start; j < (i+1)*8 && j < b.size; j++ {
			if b.data[j/8]&mask(j) == 0 {
				return j
			}
		}
	}
	return -1
}

func mask(index int) byte {
	return 1 << uint(7-(index%8))
}
