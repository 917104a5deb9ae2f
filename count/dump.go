package count

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump prints a sideways rendering of the tree to w, mainly useful for
// debugging. The rightmost element appears in the top line, the leftmost in
// the bottom line, and each level of the tree is indented one step further.
// Inner nodes carry their subtree size in brackets.
//
// width is the line width available for the rendering; values of 0 or less
// make Dump ask the terminal for its width, falling back to 65 for
// non-interactive output. Nodes whose depth exceeds the width are cut off
// with an ellipsis.
func (t *Tree[T]) Dump(w io.Writer, width int) {
	if width <= 0 {
		width = widthFromTerminal()
	}
	if t.IsEmpty() {
		fmt.Fprintln(w, "<empty>")
		return
	}
	inner := color.New(color.FgBlue)
	leaf := color.New(color.FgGreen)
	dumpNode(t.root, w, 0, width, inner, leaf)
}

func dumpNode[T any](n *Node[T], w io.Writer, depth, width int, inner, leaf *color.Color) {
	if n == nil {
		return
	}
	if depth*3 >= width {
		fmt.Fprintf(w, "%s…\n", strings.Repeat("   ", depth))
		return
	}
	dumpNode(n.right, w, depth+1, width, inner, leaf)
	indent := strings.Repeat("   ", depth)
	if n.left == nil && n.right == nil {
		fmt.Fprintf(w, "%s%s\n", indent, leaf.Sprintf("%v", n.val))
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, inner.Sprintf("%v [%d]", n.val, n.count))
	}
	dumpNode(n.left, w, depth+1, width, inner, leaf)
}

// widthFromTerminal checks whether stdout is a terminal and if so reads its
// width, leaving some margin.
func widthFromTerminal() int {
	if !term.IsTerminal(0) {
		return 65
	}
	w, _, err := term.GetSize(0)
	if err != nil || w > 65 {
		return 65
	}
	if w < 10 {
		return 10
	}
	return w
}
