package Trees

import "golang.org/x/exp/constraints"

func sumDepths[T any, S constraints.Unsigned](c *node[T, S], cd uint) uint {
	if c == nil {
		return 0
	}
	return cd + sumDepths(c.l, cd+1) + sumDepths(c.r, cd+1)
}

// SumDepths [Tree.SumDepths]. Recursive.
// Returns 0 for an empty tree.
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) SumDepths() uint {
	return sumDepths(u.root, 1)
}

func findSkew2L[T any, S constraints.Unsigned](c *node[T, S], dst []T) []T {
	if c == nil {
		return dst
	}
	if c.balance() == 2 {
		dst = append(dst, c.v)
	}
	dst = findSkew2L(c.l, dst)
	return findSkew2L(c.r, dst)
}

// FindSkew2L [Tree.FindSkew2L]. Recursive.
// Only an exact balance of +2 counts, nodes leaning further left are skipped.
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) FindSkew2L() []T {
	return findSkew2L(u.root, nil)
}

// isBST checks the subtree rooting at c against the open interval (lo, hi).
// A nil bound is unbounded on that side.
func (u *BSTree[T, S]) isBST(c *node[T, S], lo, hi *T) bool {
	if c == nil {
		return true
	}
	if lo != nil && u.cmp(c.v, *lo) <= 0 {
		return false
	}
	if hi != nil && u.cmp(c.v, *hi) >= 0 {
		return false
	}
	return u.isBST(c.l, lo, &c.v) && u.isBST(c.r, &c.v, hi)
}

// IsBST [Tree.IsBST]. Recursive.
// An empty tree is a valid BST.
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) IsBST() bool {
	return u.isBST(u.root, nil, nil)
}

func balanced[T any, S constraints.Unsigned](c *node[T, S]) bool {
	if c == nil {
		return true
	}
	if b := c.balance(); b > 1 || b < -1 {
		return false
	}
	return balanced(c.l) && balanced(c.r)
}

// IsAVL [Tree.IsAVL]. Recursive.
// The balance uses the cached heights, which Add keeps exact.
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) IsAVL() bool {
	return u.IsBST() && balanced(u.root)
}

// count the nodes of the subtree rooting at c, or ok=false at the first
// node whose cached height isn't 1+max(height(l), height(r)).
func count[T any, S constraints.Unsigned](c *node[T, S]) (n S, ok bool) {
	if c == nil {
		return 0, true
	}
	ln, lok := count(c.l)
	if !lok {
		return 0, false
	}
	rn, rok := count(c.r)
	if !rok || c.h != 1+max(c.l.height(), c.r.height()) {
		return 0, false
	}
	return ln + rn + 1, true
}

// Corrupt [Tree.Corrupt]. Recursive.
// Checks every cached height and the size counter. The BST ordering is
// checked by IsBST instead.
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) Corrupt() bool {
	n, ok := count(u.root)
	return !ok || n != u.sz
}
