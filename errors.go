// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidArgument is returned when a nil node is supplied to
	// Remove or Swap, or when Sort is called without a comparator on a
	// list that has no default.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotMember is returned by Swap when a node was not created by
	// the list or has since been removed from it.
	ErrNotMember = errors.New("node is not a member of this list")

	// ErrCorrupt is matched by every violation reported by Validate.
	ErrCorrupt = errors.New("list structure is corrupt")
)

func invalidArg(op, arg string) error {
	return errors.Annotate(op+": "+arg, ErrInvalidArgument)
}

func notMember(op, arg string) error {
	return errors.Annotate(op+": "+arg, ErrNotMember)
}

func corrupt(format string, args ...any) error {
	return errors.Annotate(fmt.Sprintf(format, args...), ErrCorrupt)
}
