package harness

import (
	"github.com/g-m-twostay/go-bst/Trees"
	log "github.com/sirupsen/logrus"
)

// NodeHeight is the cached height of the node holding Value. Found is false
// when no node holds it.
type NodeHeight struct {
	Value  int
	Height uint
	Found  bool
}

// FollowUp is the state of the tree right after one of Scenario.Then was added.
type FollowUp struct {
	Value  int
	IsAVL  bool
	Skew2L []int
}

// Report collects every query on a scenario's tree.
type Report struct {
	Name       string
	InOrder    []int
	LevelOrder []int
	Size       uint
	Height     uint
	Heights    []NodeHeight
	SumDepths  uint
	Skew2L     []int
	IsBST      bool
	IsAVL      bool
	FollowUps  []FollowUp
}

func drain(f func() (int, bool)) []int {
	var r []int
	for v, ok := f(); ok; v, ok = f() {
		r = append(r, v)
	}
	return r
}

func add(tree *Trees.BSTree[int, uint], v int, logger log.FieldLogger) {
	before := tree.Size()
	// ints are never absent, so Add can't fail here.
	_ = tree.Add(v)
	entry := logger.WithField("value", v)
	if tree.Size() == before {
		entry.Debug("duplicate ignored")
	} else {
		h, _ := tree.HeightOf(v)
		entry.WithField("height", tree.Height()).Debugf("inserted as a leaf, node height %d", h)
	}
}

// Run builds the scenario's tree and reports on it. The tree is returned in
// the state after every follow-up insertion.
func Run(s Scenario, logger log.FieldLogger) (*Report, *Trees.BSTree[int, uint]) {
	logger = logger.WithField("scenario", s.Name)
	tree := Trees.New[int, uint]()
	for _, v := range s.Values {
		add(tree, v, logger)
	}
	r := &Report{
		Name:       s.Name,
		InOrder:    tree.Values(),
		LevelOrder: drain(tree.LevelOrder()),
		Size:       tree.Size(),
		Height:     tree.Height(),
		SumDepths:  tree.SumDepths(),
		Skew2L:     tree.FindSkew2L(),
		IsBST:      tree.IsBST(),
		IsAVL:      tree.IsAVL(),
	}
	for _, v := range s.Heights {
		h, ok := tree.HeightOf(v)
		r.Heights = append(r.Heights, NodeHeight{Value: v, Height: h, Found: ok})
	}
	for _, v := range s.Then {
		add(tree, v, logger)
		r.FollowUps = append(r.FollowUps, FollowUp{Value: v, IsAVL: tree.IsAVL(), Skew2L: tree.FindSkew2L()})
	}
	if tree.Corrupt() {
		logger.Warn("tree bookkeeping is inconsistent")
	}
	return r, tree
}
