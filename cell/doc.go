/*
Package cell provides shared, mutable value cells with explicit holder
bookkeeping.

A cell may be referenced by any number of holders at the same time. Every
holder may change the cell's content in place, and the change is visible
through every other handle immediately; there is no copying and no snapshot.
A cell counts its holders. It is released as soon as the last holder lets go
of it, and not a moment earlier.

Cells are the element type of choice for package celltree, where a tree is
just one holder among others:

	v := cell.New(4)
	root := celltree.New(v)   // root takes its own hold, v.RefCount() == 2
	v.Set(45)                 // root.Get().Get() == 45

Access to a cell's content is synchronized, so cells may be shared between
goroutines. Note that this does not make a tree of cells safe for concurrent
structural modification.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package cell

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'celltree'
func tracer() tracing.Trace {
	return tracing.Select("celltree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
