/*
 * Copyright (c) 2025-present unTill Pro, Ltd.
 */

package coreutils

import (
	"golang.org/x/sync/errgroup"
)

// SettleAll concurrently maps every element of the source slice and waits for all mappers to finish.
//
//   - limit             – max number of mappers running at once (≤ 0 means unlimited).
//   - mapper(i, IN)     – called once per element, i is the element index.
//
// outs[i] and errs[i] always belong to source[i], one failed mapper does not affect the others.
func SettleAll[IN any, OUT any](source []IN, limit int, mapper func(i int, in IN) (OUT, error)) (outs []OUT, errs []error) {
	outs = make([]OUT, len(source))
	errs = make([]error, len(source))

	g := errgroup.Group{}
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, src := range source {
		g.Go(func() error {
			outs[i], errs[i] = mapper(i, src)
			return nil // errors are collected per slot, never fail the group
		})
	}
	_ = g.Wait()
	return outs, errs
}

// FirstError concurrently maps every element of the source slice and returns as soon as any mapper fails.
// Mappers that are already started or still queued keep running to completion, their results are discarded.
// If no mapper fails, outs[i] is the result for source[i].
func FirstError[IN any, OUT any](source []IN, limit int, mapper func(i int, in IN) (OUT, error)) (outs []OUT, err error) {
	res := make([]OUT, len(source))
	failed := make(chan error, 1)
	done := make(chan error, 1)

	g := errgroup.Group{}
	if limit > 0 {
		g.SetLimit(limit)
	}

	// g.Go blocks when the limit is reached, so the feeding happens in its own goroutine
	// to be able to report the first failure right away
	go func() {
		for i, src := range source {
			g.Go(func() error {
				out, err := mapper(i, src)
				if err != nil {
					select {
					case failed <- err:
					default:
					}
					return err
				}
				res[i] = out
				return nil
			})
		}
		done <- g.Wait()
	}()

	select {
	case err = <-failed:
		return nil, err
	case err = <-done:
		if err != nil {
			return nil, err
		}
		return res, nil
	}
}
