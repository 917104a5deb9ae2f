package bintree

import (
	"fmt"
	"io"
)

type nodeIDs[N comparable] struct {
	table map[N]int
	max   int
}

func newIDTable[N comparable]() nodeIDs[N] {
	return nodeIDs[N]{
		table: make(map[N]int),
		max:   1,
	}
}

func (ids nodeIDs[N]) find(node N) int {
	return ids.table[node]
}

func (ids *nodeIDs[N]) alloc(node N) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.table[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the structure of the subtree rooted at root in Graphviz DOT
// format (for debugging purposes). Payloads are rendered with %v.
//
// The value type cannot be inferred from root alone, so call sites name it
// explicitly: bintree.Dot[int](root, w).
func Dot[T any, N Node[N, T]](root N, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var none N
	if root == none {
		io.WriteString(w, "}\n")
		return
	}
	ids := newIDTable[N]()
	nodelist, edgelist := "", ""
	stack := []N{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := ids.alloc(node)
		left, right := node.Left(), node.Right()
		isLeaf := left == none && right == none
		label := fmt.Sprintf("%v", node.Value())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, dotNodeStyles(isLeaf))
		if !isLeaf {
			for _, child := range []N{left, right} {
				if child == none {
					nilID := id + 10000
					nodelist += fmt.Sprintf("\"%d\" %s;\n", nilID, dotEmptyNode())
					edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, nilID)
					continue
				}
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, ids.alloc(child))
				stack = append(stack, child)
			}
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotEmptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func dotNodeStyles(isLeaf bool) string {
	s := ",style=filled"
	if isLeaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}
