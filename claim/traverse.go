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
	"context"
	"sync"

	"github.com/richardwilkes/claimset/container/bits"
	"github.com/richardwilkes/claimset/container/intervalset"
	"github.com/richardwilkes/toolbox/errs"
	"golang.org/x/sync/errgroup"
)

// VisitFunc processes a claimed range of indexes.
type VisitFunc func(ctx context.Context, iv intervalset.Interval) error

// Traverse partitions the indexes [0, size-1] into ranges of at most 'chunk'
// indexes and processes them with 'workers' goroutines. Every worker walks
// the full list of ranges starting at its own offset and claims each range
// in the registry before visiting it; a range some other worker has already
// claimed is skipped. The first error returned by 'visit' cancels the
// remaining work. The returned bits record which indexes were visited.
//
// A range is only skipped when a single earlier claim covers all of it. A
// range that partially overlaps an earlier claim, such as one made before
// Traverse was called, is claimed and visited in full, including the indexes
// that were already claimed.
func Traverse(ctx context.Context, r *Registry, size, chunk, workers int, visit VisitFunc) (*bits.Bits, error) {
	if r == nil {
		return nil, errs.New("registry may not be nil")
	}
	if size < 1 {
		return nil, errs.New("size must be at least 1")
	}
	if chunk < 1 {
		return nil, errs.New("chunk must be at least 1")
	}
	if workers < 1 {
		return nil, errs.New("workers must be at least 1")
	}
	ranges := partition(size, chunk)
	visited := bits.New(size)
	var visitedLock sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		offset := w * len(ranges) / workers
		g.Go(func() error {
			logger := r.Logger().With("worker", w)
			for i := range ranges {
				if err := gctx.Err(); err != nil {
					return errs.Wrap(err)
				}
				iv := ranges[(offset+i)%len(ranges)]
				added, err := r.Claim(iv.Lo, iv.Hi)
				if err != nil {
					return err
				}
				if !added {
					logger.Debug("skipping claimed range", "range", iv.String())
					continue
				}
				if visit != nil {
					if err = visit(gctx, iv); err != nil {
						return errs.NewWithCause("visit failed for "+iv.String(), err)
					}
				}
				visitedLock.Lock()
				already := visited.SetRange(iv.Lo, iv.Hi)
				visitedLock.Unlock()
				if already != 0 {
					return errs.Newf("%d indexes in %s were visited more than once", already, iv)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return visited, err
	}
	r.Logger().Info("traversal complete", "size", size, "ranges", len(ranges), "workers", workers)
	return visited, nil
}

func partition(size, chunk int) []intervalset.Interval {
	ranges := make([]intervalset.Interval, 0, (size+chunk-1)/chunk)
	for lo := 0; lo < size; lo += chunk {
		ranges = append(ranges, intervalset.Interval{Lo: lo, Hi: min(lo+chunk, size) - 1})
	}
	return ranges
}
