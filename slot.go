package celltree

// Slot is the placeholder for a child of a node. It either is empty or owns
// exactly one child node.
//
// Slots handed out by Node.Left and Node.Right are read-only views; the shape
// of a tree may only be changed by the methods of Node.
type Slot[T Element[T]] struct {
	node *Node[T]
}

// IsEmpty reports whether the slot holds no child.
func (s Slot[T]) IsEmpty() bool {
	return s.node == nil
}

// Get returns the element of the child node, if present.
func (s Slot[T]) Get() (T, bool) {
	if s.node == nil {
		var zero T
		return zero, false
	}
	return s.node.elm, true
}

// Left returns the left slot of the child node. For an empty slot it returns
// an empty slot.
func (s Slot[T]) Left() Slot[T] {
	if s.node == nil {
		return Slot[T]{}
	}
	return s.node.left
}

// Right returns the right slot of the child node. For an empty slot it returns
// an empty slot.
func (s Slot[T]) Right() Slot[T] {
	if s.node == nil {
		return Slot[T]{}
	}
	return s.node.right
}

func occupied[T Element[T]](node *Node[T]) Slot[T] {
	assert(node != nil, "occupied slot requires a node")
	return Slot[T]{node: node}
}
