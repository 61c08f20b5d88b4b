package celltree

// position describes a node as met during a walk: its depth (1 for the start
// node) and the nearest ancestors bounding it from below and from above.
// Nodes in the left subtree of a node A are bounded above by A, nodes in the
// right subtree are bounded below by A.
type position[T Element[T]] struct {
	node   *Node[T]
	parent *Node[T]
	depth  int
	lower  *Node[T]
	upper  *Node[T]
}

// each walks the subtree of n in pre-order, left before right. The walk stops
// early if f returns false.
func (n *Node[T]) each(f func(pos position[T]) bool) {
	stack := []position[T]{{node: n, depth: 1}}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(pos) {
			return
		}
		node := pos.node
		if !node.right.IsEmpty() {
			stack = append(stack, position[T]{
				node:   node.right.node,
				parent: node,
				depth:  pos.depth + 1,
				lower:  node,
				upper:  pos.upper,
			})
		}
		if !node.left.IsEmpty() {
			stack = append(stack, position[T]{
				node:   node.left.node,
				parent: node,
				depth:  pos.depth + 1,
				lower:  pos.lower,
				upper:  node,
			})
		}
	}
}
