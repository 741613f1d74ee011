// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain

import (
	"context"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

type options[T any] struct {
	cmp      func(a, b T) int
	logger   *slog.Logger
	callback func(a, b *Node[T])
}

// Option represents the options that can be passed to New and NewOrdered.
type Option[T any] func(*options[T])

// WithComparator sets the comparator used by Sort when it is called
// with a nil comparator.
func WithComparator[T any](fn func(a, b T) int) Option[T] {
	return func(o *options[T]) {
		o.cmp = fn
	}
}

// WithLogger sets the logger used to record ignored removals, rejected
// swaps and completed sorts, all at slog.LevelDebug. The default discards
// all output.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = l
	}
}

// WithSwapCallback provides a callback function that is called after
// every swap, including those performed by Sort, with the two nodes
// that exchanged positions.
func WithSwapCallback[T any](fn func(a, b *Node[T])) Option[T] {
	return func(o *options[T]) {
		o.callback = fn
	}
}

func (l *List[T]) log() *slog.Logger {
	if l.opts.logger == nil {
		return ctxlog.Logger(context.Background())
	}
	return l.opts.logger
}
