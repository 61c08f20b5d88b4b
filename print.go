package celltree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// String renders the subtree of n as an indented tree, left children before
// right children. Children are prefixed with "L" or "R".
func (n *Node[T]) String() string {
	root := treeprint.NewWithRoot(fmt.Sprint(n.elm))
	branches := map[*Node[T]]treeprint.Tree{n: root}
	n.each(func(pos position[T]) bool {
		if pos.parent == nil {
			return true
		}
		side := "R"
		if pos.parent.left.node == pos.node {
			side = "L"
		}
		label := fmt.Sprintf("%s: %v", side, pos.node.elm)
		parent := branches[pos.parent]
		if pos.node.IsEmpty() {
			parent.AddNode(label)
		} else {
			branches[pos.node] = parent.AddBranch(label)
		}
		return true
	})
	return root.String()
}
