package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. It never
// rotates, so the shape only depends on the order of insertion and the
// height can degrade to O(n). Every node caches the height of the subtree
// rooting at it, which is kept up to date on the path of each insertion.
// T is the type of values it will hold, S is the type of the variables
// used for storing the heights of subtrees and the size of the tree.
// Generally, you should let S be a wide upperbound for the size of the
// tree, since a degenerate tree has a height equal to its size.
// A BSTree is not safe for concurrent use; readers may share it only
// while no Add or Clear is running.
type BSTree[T any, S constraints.Unsigned] struct {
	root *node[T, S]
	cmp  func(a, b T) int
	sz   S
}

// Comparable is implemented by element types that define their own total order.
// a.CompareTo(b) is negative when a<b, 0 when a==b, and positive when a>b.
type Comparable[T any] interface {
	CompareTo(T) int
}

// New returns an empty BSTree ordered by cmp.Compare.
func New[T cmp.Ordered, S constraints.Unsigned]() *BSTree[T, S] {
	return &BSTree[T, S]{cmp: cmp.Compare[T]}
}

// NewFunc returns an empty BSTree ordered by c. c must be a total order
// and is called as c(a, b) with the same sign convention as cmp.Compare.
func NewFunc[T any, S constraints.Unsigned](c func(a, b T) int) *BSTree[T, S] {
	return &BSTree[T, S]{cmp: c}
}

// NewComparable returns an empty BSTree ordered by T.CompareTo.
func NewComparable[T Comparable[T], S constraints.Unsigned]() *BSTree[T, S] {
	return &BSTree[T, S]{cmp: func(a, b T) int { return a.CompareTo(b) }}
}

// Build a BSTree by adding vs one by one in the given order. Unlike a
// balanced builder, the resulting shape is exactly the one repeated calls
// to Add would produce.
// Time: O(n*D)
func Build[T cmp.Ordered, S constraints.Unsigned](vs ...T) *BSTree[T, S] {
	u := New[T, S]()
	for _, v := range vs {
		u.insert(&u.root, v)
	}
	return u
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case it returns false
// and no height on the path is touched.
func (u *BSTree[T, S]) insert(curPtr **node[T, S], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T, S]{v: v, h: 1}
		u.sz++
		return true
	}
	inserted := false
	if c := u.cmp(v, cur.v); c < 0 {
		inserted = u.insert(&cur.l, v)
	} else if c > 0 {
		inserted = u.insert(&cur.r, v)
	} else {
		return false
	}
	if inserted {
		cur.updateHeight()
	}
	return inserted
}

// Add [Tree.Add]. Recursive.
// Returns an *InvalidArgumentError if v is absent, in which case u is unchanged.
// Time: O(D)
func (u *BSTree[T, S]) Add(v T) error {
	if absent(v) {
		return &InvalidArgumentError{Op: "Add", Index: -1}
	}
	u.insert(&u.root, v)
	return nil
}

// AddAll adds vs in order. If any of vs is absent, nothing is added and
// the error carries the index of the first absent value.
// Time: O(n*D)
func (u *BSTree[T, S]) AddAll(vs ...T) error {
	for i, v := range vs {
		if absent(v) {
			return &InvalidArgumentError{Op: "AddAll", Index: i}
		}
	}
	for _, v := range vs {
		u.insert(&u.root, v)
	}
	return nil
}

// find the node holding v, nil if there is none.
func (u *BSTree[T, S]) find(v T) *node[T, S] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Has(v T) bool {
	return u.find(v) != nil
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[T, S]) Size() S {
	return u.sz
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u *BSTree[T, S]) Height() S {
	return u.root.height()
}

// HeightOf returns the cached height of the node holding v.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) HeightOf(v T) (S, bool) {
	if n := u.find(v); n != nil {
		return n.h, true
	}
	return 0, false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Clear the tree. The comparator is kept.
// Time: O(1)
func (u *BSTree[T, S]) Clear() {
	u.root, u.sz = nil, 0
}
