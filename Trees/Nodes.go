package Trees

import "golang.org/x/exp/constraints"

// A node in the BSTree.
// h is the cached height of the subtree rooting at the node; a leaf has h=1.
// v is never changed after the node is created, only h is.
type node[T any, S constraints.Unsigned] struct {
	v    T
	l, r *node[T, S]
	h    S
}

// height of the subtree rooting at n, 0 when n is nil.
func (n *node[T, S]) height() S {
	if n == nil {
		return 0
	}
	return n.h
}

// updateHeight recomputes n.h from the cached heights of its children.
// Time: O(1); Space: O(1)
func (n *node[T, S]) updateHeight() {
	n.h = 1 + max(n.l.height(), n.r.height())
}

// balance is height(l)-height(r) using cached heights. 0 when n is nil.
func (n *node[T, S]) balance() int {
	if n == nil {
		return 0
	}
	return int(n.l.height()) - int(n.r.height())
}
