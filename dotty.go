package celltree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T Element[T]] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T Element[T]]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the structure of the subtree of n in Graphviz DOT format
// (for debugging purposes). Empty slots of inner nodes are drawn as small
// circles.
func (n *Node[T]) ToDot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	nilid := 10000
	n.each(func(pos position[T]) bool {
		node := pos.node
		ID := ids.alloc(node)
		label := strings.ReplaceAll(fmt.Sprint(node.elm), "\"", "\\\"")
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node.IsEmpty()))
		if node.IsEmpty() {
			return true
		}
		for _, slot := range [2]Slot[T]{node.left, node.right} {
			if slot.IsEmpty() {
				nilid++
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(slot.node))
			}
		}
		return true
	})
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
