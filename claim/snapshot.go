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
	"io"
	"math"
	"os"

	"github.com/richardwilkes/claimset/container/intervalset"
	"github.com/richardwilkes/toolbox/errs"
	"github.com/richardwilkes/toolbox/xio"
	"github.com/zeebo/bencode"
)

const snapshotVersion = 1

type snapshot struct {
	Intervals []snapshotInterval `bencode:"intervals"`
	Version   int                `bencode:"version"`
}

type snapshotInterval struct {
	Lo int64 `bencode:"lo"`
	Hi int64 `bencode:"hi"`
}

// Save writes the claimed ranges to w in bencode form.
func (r *Registry) Save(w io.Writer) error {
	claimed := r.Claimed()
	snap := snapshot{
		Version:   snapshotVersion,
		Intervals: make([]snapshotInterval, len(claimed)),
	}
	for i, iv := range claimed {
		snap.Intervals[i] = snapshotInterval{Lo: int64(iv.Lo), Hi: int64(iv.Hi)}
	}
	if err := bencode.NewEncoder(w).Encode(&snap); err != nil {
		return errs.Wrap(err)
	}
	return nil
}

// Load reads ranges previously written by Save and claims each of them. Any
// existing claims are retained. If the data is malformed, no ranges are
// claimed.
func (r *Registry) Load(rd io.Reader) error {
	var snap snapshot
	if err := bencode.NewDecoder(rd).Decode(&snap); err != nil {
		return errs.Wrap(err)
	}
	if snap.Version != snapshotVersion {
		return errs.Newf("unsupported snapshot version %d", snap.Version)
	}
	for _, one := range snap.Intervals {
		if !fitsInt(one.Lo) || !fitsInt(one.Hi) {
			return errs.Newf("snapshot range [%d, %d] exceeds the platform's int range", one.Lo, one.Hi)
		}
		if one.Lo > one.Hi {
			return errs.NewWithCause("snapshot contains a bad range",
				&intervalset.InvalidIntervalError{Interval: intervalset.Interval{Lo: int(one.Lo), Hi: int(one.Hi)}})
		}
	}
	for _, one := range snap.Intervals {
		if _, err := r.Claim(int(one.Lo), int(one.Hi)); err != nil {
			return err
		}
	}
	r.logger.Debug("loaded snapshot", "ranges", len(snap.Intervals))
	return nil
}

// SaveFile writes the claimed ranges to the file at path.
func (r *Registry) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(err)
	}
	if err = r.Save(f); err != nil {
		xio.CloseIgnoringErrors(f)
		return err
	}
	return errs.Wrap(f.Close())
}

// LoadFile reads ranges from the file at path and claims them.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.Wrap(err)
	}
	defer xio.CloseIgnoringErrors(f)
	return r.Load(f)
}

func fitsInt(v int64) bool {
	return v >= math.MinInt && v <= math.MaxInt
}
