package celltree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Element is the constraint for tree elements. Compare returns a negative
// number, zero or a positive number as the receiver is less than, equal to
// or greater than other. Comparisons are expected to be evaluated against the
// current content of shared elements.
type Element[T any] interface {
	Compare(other T) int
}

// Holder is implemented by elements which keep track of their holders, such as
// *cell.Cell. A tree retains every Holder element it stores and releases it
// when the node carrying it is cut off.
type Holder interface {
	Retain()
	Release()
}

func hold[T any](v T) {
	if h, ok := any(v).(Holder); ok {
		h.Retain()
	}
}

func unhold[T any](v T) {
	if h, ok := any(v).(Holder); ok {
		h.Release()
	}
}

// Node is a node of an unbalanced binary tree. It holds one element and two
// child slots. A node returned by New is the root of a tree.
//
// Node methods are not safe for concurrent use. Concurrent mutation of
// elements during a tree operation will make comparisons observe changing
// content; callers sharing elements between goroutines have to synchronize
// tree operations with element updates themselves.
type Node[T Element[T]] struct {
	elm   T
	left  Slot[T]
	right Slot[T]
}

// New creates a single node holding value, with both child slots empty.
func New[T Element[T]](value T) *Node[T] {
	hold(value)
	return &Node[T]{elm: value}
}

// IsEmpty reports whether n has no children, i.e. is a leaf.
// A node always holds an element.
func (n *Node[T]) IsEmpty() bool {
	return n.left.IsEmpty() && n.right.IsEmpty()
}

// Get returns the element handle of n. Changing the element's content through
// the handle bypasses the tree.
func (n *Node[T]) Get() T {
	return n.elm
}

// Left returns a read-only view of the left child slot of n.
func (n *Node[T]) Left() Slot[T] {
	return n.left
}

// Right returns a read-only view of the right child slot of n.
func (n *Node[T]) Right() Slot[T] {
	return n.right
}

// Insert attaches value as a new leaf below n. Starting at n, it descends to
// the right if value compares greater than or equal to the current node's
// element, and to the left otherwise, until it finds an empty slot.
// Equal values therefore pile up on right-leaning chains.
//
// Insert always succeeds.
func (n *Node[T]) Insert(value T) {
	hold(value)
	node := n
	for depth := 1; ; depth++ {
		if value.Compare(node.elm) >= 0 {
			if node.right.IsEmpty() {
				node.right = occupied(&Node[T]{elm: value})
				tracer().Debugf("insert %v right of %v at depth %d", value, node.elm, depth)
				return
			}
			node = node.right.node
			continue
		}
		if node.left.IsEmpty() {
			node.left = occupied(&Node[T]{elm: value})
			tracer().Debugf("insert %v left of %v at depth %d", value, node.elm, depth)
			return
		}
		node = node.left.node
	}
}

// RemoveChildrenOf searches for a node whose element equals value and cuts off
// both of its subtrees. It returns true if such a node has been found.
//
// The search is constrained: at a node not matching value, the search may
// only go on if the node has a left child, whatever the comparison says. If
// value is greater than the node's element, the node must have a right child
// as well, and the right child is visited before the left one. Missing a
// required child ends the search unsuccessfully. A node with just a right
// child is thus a dead end, even if the match sits right below it.
//
// Elements of the cut off subtrees are released by the tree.
func (n *Node[T]) RemoveChildrenOf(value T) bool {
	queue := []*Node[T]{n}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		c := value.Compare(node.elm)
		if c == 0 {
			tracer().Debugf("removing children of %v", node.elm)
			node.cutChildren()
			return true
		}
		if c > 0 {
			if node.right.IsEmpty() {
				tracer().Debugf("%v not found: %v has no right child", value, node.elm)
				return false
			}
			queue = append(queue, node.right.node)
		}
		if node.left.IsEmpty() {
			tracer().Debugf("%v not found: %v has no left child", value, node.elm)
			return false
		}
		queue = append(queue, node.left.node)
	}
	assert(false, "RemoveChildrenOf ran out of nodes")
	return false
}

// cutChildren empties both child slots of n and releases every element below n.
func (n *Node[T]) cutChildren() {
	var stack []*Node[T]
	if !n.left.IsEmpty() {
		stack = append(stack, n.left.node)
	}
	if !n.right.IsEmpty() {
		stack = append(stack, n.right.node)
	}
	n.left, n.right = Slot[T]{}, Slot[T]{}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !node.left.IsEmpty() {
			stack = append(stack, node.left.node)
		}
		if !node.right.IsEmpty() {
			stack = append(stack, node.right.node)
		}
		node.left, node.right = Slot[T]{}, Slot[T]{}
		unhold(node.elm)
	}
}
