package Trees

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// The layout follows the avl printer of github.com/bitmark-inc/bitmarkd
// (ISC license, Copyright (c) 2014-2019 Bitmark Inc.).

// to control the print routine
type branch byte

const (
	brRoot branch = iota
	brLeft
	brRight
)

// Print writes an ASCII graphic of the tree to w, the right subtree above
// its parent and the left subtree below. With showHeight each node also
// shows its cached height and balance. Returns the depth of the deepest
// node, which equals Height() on a tree that isn't Corrupt. Recursive.
func (u *BSTree[T, S]) Print(w io.Writer, showHeight bool) S {
	return printTree(w, u.root, "", brRoot, showHeight)
}

func printTree[T any, S constraints.Unsigned](w io.Writer, n *node[T, S], prefix string, br branch, showHeight bool) S {
	if n == nil {
		return 0
	}
	var rd, ld S
	if n.r != nil {
		t := "       "
		if br == brLeft {
			t = "|      "
		}
		rd = printTree(w, n.r, prefix+t, brRight, showHeight)
	}
	switch br {
	case brRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case brLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case brRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if showHeight {
		fmt.Fprintf(w, "%v h=%d %+d\n", n.v, n.h, n.balance())
	} else {
		fmt.Fprintf(w, "%v\n", n.v)
	}
	if n.l != nil {
		t := "       "
		if br == brRight {
			t = "|      "
		}
		ld = printTree(w, n.l, prefix+t, brLeft, showHeight)
	}
	return 1 + max(rd, ld)
}

func (u *BSTree[T, S]) String() string {
	sb := strings.Builder{}
	u.Print(&sb, false)
	return sb.String()
}
