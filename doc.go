/*
Package celltree offers an ordered binary tree over shared, mutable elements.

Cell Trees

A cell tree keeps its elements in binary-search-tree order at the time they are
inserted. Unlike most containers, the tree does not own its elements. Elements
are handles (usually *cell.Cell values) which are shared between the tree and
any number of other holders, and every holder may change an element's content
in place. The tree does own its shape, though: every node is owned by exactly
one parent slot, and there is exactly one path from the root to any node.

	root := celltree.New(cell.New(4))
	root.Insert(cell.New(3))
	root.Insert(cell.New(5))
	root.Insert(cell.New(1))
	//      4
	//     / \
	//    3   5
	//   /
	//  1

Ordering is always evaluated against the current content of elements. The tree
never revisits positions after an element has been changed out-of-band, thus a
holder changing the root's content from 4 to 45 leaves the tree with 5 to
the right of 45. Check will report this; nothing repairs it.

Element Lifetime

If an element type implements Holder, a tree takes a hold on every element it
stores and gives it up when a subtree is cut off by RemoveChildrenOf. An
element stays alive for as long as anybody, the tree or someone else, holds
it.

Non-Goals

Trees are not balanced, there is no removal of single nodes, and there is no
public iteration.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package celltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'celltree'.
func tracer() tracing.Trace {
	return tracing.Select("celltree")
}

// TreeError is an error type for the celltree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrOrderViolation is flagged by Check whenever an element is no longer
// positioned in accordance with its current content.
const ErrOrderViolation = TreeError("element out of order")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
