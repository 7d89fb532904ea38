package Trees

import "golang.org/x/exp/constraints"

// Tree represents an ordered tree like structure implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// S is the unsigned type used for heights and sizes.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
type Tree[T any, S constraints.Unsigned] interface {
	//Add v to the Tree. Adding a value that is already in the tree
	//changes nothing. Returns an error only when v is rejected.
	Add(v T) error
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() S
	//Height of the tree, 0 when empty.
	Height() S
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in ascending order.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//LevelOrder is like InOrder, but gives values level by level from
	//the root, left to right within a level.
	LevelOrder() func() (T, bool)
	//SumDepths is the sum of the depths of all nodes, the root has depth 1.
	SumDepths() uint
	//FindSkew2L lists the values of nodes whose balance is exactly +2, in pre-order.
	FindSkew2L() []T
	//IsBST checks that every left subtree holds strictly smaller values
	//and every right subtree strictly greater ones.
	IsBST() bool
	//IsAVL is IsBST plus every node having a balance in [-1, 1].
	IsAVL() bool
	//Corrupt returns whether the tree has corrupt structures, when the cached
	//bookkeeping at some node doesn't match the actual tree.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var _ Tree[int, uint] = (*BSTree[int, uint])(nil)
