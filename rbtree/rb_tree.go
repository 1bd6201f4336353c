package rbtree

import (
	"cmp"
	"reflect"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type nodeColor uint8

const (
	red   nodeColor = 0
	black nodeColor = 1
)

// sentinel is the arena slot shared by every absent child and by the
// root's parent. It is always black.
const sentinel = 0

// ErrNilElement is returned by Insert for a nil pointer, interface, map,
// slice, func or chan element. The tree is left untouched.
var ErrNilElement = errors.New("rbtree: element is nil")

type node[E any] struct {
	elem   E
	color  nodeColor
	left   int
	right  int
	parent int
}

// Tree is an ordered set of distinct elements. The zero value is not usable;
// construct one with New or NewFunc.
type Tree[E any] struct {
	nodes   []node[E]
	root    int
	compare func(a, b E) int
}

// New constructs an empty tree ordered by the natural order of E. Floating
// point NaNs sort before every other value and equal to each other.
func New[E constraints.Ordered]() *Tree[E] {
	return NewFunc(cmp.Compare[E])
}

// NewFunc constructs an empty tree ordered by compare, which must return a
// negative number, zero or a positive number when a sorts before, equal to
// or after b.
func NewFunc[E any](compare func(a, b E) int) *Tree[E] {
	return &Tree[E]{
		nodes:   []node[E]{{color: black}},
		root:    sentinel,
		compare: compare,
	}
}

// IsEmpty reports whether no element has been inserted yet.
func (t *Tree[E]) IsEmpty() bool { return t.root == sentinel }

// Len returns the number of stored elements.
func (t *Tree[E]) Len() int { return len(t.nodes) - 1 }

// Contains reports whether an element comparing equal to elem is stored.
func (t *Tree[E]) Contains(elem E) bool {
	n := t.root
	for n != sentinel {
		c := t.compare(elem, t.nodes[n].elem)
		if c < 0 {
			n = t.nodes[n].left
		} else if c > 0 {
			n = t.nodes[n].right
		} else {
			return true
		}
	}
	return false
}

// Insert adds elem to the tree. It reports false without touching the tree
// when an equal element is already stored, and fails with ErrNilElement
// when elem is a nil reference.
func (t *Tree[E]) Insert(elem E) (bool, error) {
	if isNil(elem) {
		return false, ErrNilElement
	}
	if t.Contains(elem) {
		return false, nil
	}

	if t.root == sentinel {
		t.root = t.alloc(elem, black, sentinel)
		return true, nil
	}

	parent := sentinel
	cur := t.root
	for cur != sentinel {
		parent = cur
		if t.compare(elem, t.nodes[cur].elem) < 0 {
			cur = t.nodes[cur].left
		} else {
			cur = t.nodes[cur].right
		}
	}

	z := t.alloc(elem, red, parent)
	if t.compare(elem, t.nodes[parent].elem) < 0 {
		t.nodes[parent].left = z
	} else {
		t.nodes[parent].right = z
	}

	for t.isDoubleRed(z) {
		gp := t.nodes[t.nodes[z].parent].parent
		ggp := t.nodes[gp].parent
		sub := t.rebalance(z)
		t.replaceChild(ggp, gp, sub)
		z = sub
	}

	t.nodes[t.root].color = black
	return true, nil
}

/******************** Internal helpers ********************/

func (t *Tree[E]) alloc(elem E, c nodeColor, parent int) int {
	t.nodes = append(t.nodes, node[E]{
		elem:   elem,
		color:  c,
		left:   sentinel,
		right:  sentinel,
		parent: parent,
	})
	return len(t.nodes) - 1
}

func (t *Tree[E]) isDoubleRed(n int) bool {
	p := t.nodes[n].parent
	return p != sentinel && t.nodes[n].color == red && t.nodes[p].color == red
}

func (t *Tree[E]) uncle(n int) int {
	p := t.nodes[n].parent
	gp := t.nodes[p].parent
	if t.nodes[gp].left == p {
		return t.nodes[gp].right
	}
	return t.nodes[gp].left
}

// rebalance repairs the double-red at n and returns the root of the
// repaired local subtree. When the uncle is red the returned node is the
// recolored grandparent, which may itself now be in violation.
func (t *Tree[E]) rebalance(n int) int {
	p := t.nodes[n].parent
	gp := t.nodes[p].parent
	u := t.uncle(n)

	if t.nodes[u].color == red {
		t.nodes[p].color = black
		t.nodes[u].color = black
		t.nodes[gp].color = red
		return gp
	}

	nodeLeft := t.nodes[p].left == n
	parentLeft := t.nodes[gp].left == p

	t.nodes[gp].color = red
	if nodeLeft == parentLeft {
		// zig-zig
		t.nodes[p].color = black
		if parentLeft {
			return t.rotateWithLeftChild(gp)
		}
		return t.rotateWithRightChild(gp)
	}

	// zig-zag
	t.nodes[n].color = black
	if parentLeft {
		return t.doubleLeftRight(gp)
	}
	return t.doubleRightLeft(gp)
}

// replaceChild points whatever held old (p's child slot, or the root
// reference when p is the sentinel) at sub.
func (t *Tree[E]) replaceChild(p, old, sub int) {
	switch {
	case p == sentinel:
		t.root = sub
	case t.nodes[p].left == old:
		t.nodes[p].left = sub
	default:
		t.nodes[p].right = sub
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
