package Trees

import (
	"github.com/g-m-twostay/go-bst/Queues"
)

// InOrder [Tree.InOrder]
// Uses a stack instead of morris traversal so nodes are never modified,
// which lets concurrent readers iterate at the same time.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[T, S]) InOrder() func() (T, bool) {
	st := make([]*node[T, S], 0, u.Height())
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for next := cur.r; next != nil; next = next.l {
			st = append(st, next)
		}
		return cur.v, true
	}
}

// Values of the tree in ascending order.
// Time: O(n); Space: O(n)
func (u *BSTree[T, S]) Values() []T {
	vs := make([]T, 0, u.sz)
	f := u.InOrder()
	for v, ok := f(); ok; v, ok = f() {
		vs = append(vs, v)
	}
	return vs
}

// LevelOrder [Tree.LevelOrder]
// Time: f(): O(1) at each call to the returned function. Space: O(width)
func (u *BSTree[T, S]) LevelOrder() func() (T, bool) {
	q := Queues.MakeArrayQueue[*node[T, S]](uint(u.Height()) + 1)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (r T, has bool) {
		cur, e := q.Pop()
		if e != nil {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
		return cur.v, true
	}
}
