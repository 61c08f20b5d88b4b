package celltree

import "fmt"

// Len returns the number of nodes in the subtree of n, including n.
func (n *Node[T]) Len() int {
	cnt := 0
	n.each(func(position[T]) bool {
		cnt++
		return true
	})
	return cnt
}

// Height returns the height of the subtree of n, where a leaf has height 1.
func (n *Node[T]) Height() int {
	height := 0
	n.each(func(pos position[T]) bool {
		height = max(height, pos.depth)
		return true
	})
	return height
}

// Check validates the ordering of the subtree of n against the current content
// of its elements: every element in the left subtree of a node has to compare
// less than the node's element, every element in the right subtree greater
// than or equal to it.
//
// Elements changed in place after insertion may break the ordering. Check
// reports the first violation it finds, wrapping ErrOrderViolation; it does
// not repair anything.
func (n *Node[T]) Check() error {
	var err error
	n.each(func(pos position[T]) bool {
		elm := pos.node.elm
		if pos.lower != nil && elm.Compare(pos.lower.elm) < 0 {
			err = fmt.Errorf("%w: %v is right of %v, but less", ErrOrderViolation,
				elm, pos.lower.elm)
			return false
		}
		if pos.upper != nil && elm.Compare(pos.upper.elm) >= 0 {
			err = fmt.Errorf("%w: %v is left of %v, but not less", ErrOrderViolation,
				elm, pos.upper.elm)
			return false
		}
		return true
	})
	if err != nil {
		tracer().Infof("tree check: %s", err.Error())
	}
	return err
}
