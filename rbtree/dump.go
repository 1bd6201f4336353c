package rbtree

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// EmptyTree is what String renders for a tree with no elements.
const EmptyTree = "Empty tree"

// redMarker prefixes red elements in String output.
const redMarker = '*'

// String renders the tree in pre-order. Every element is followed by a
// single space and red elements carry a leading '*'.
func (t *Tree[E]) String() string {
	if t.IsEmpty() {
		return EmptyTree
	}

	var b strings.Builder
	stack := []int{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &t.nodes[n]
		if nd.color == red {
			b.WriteByte(redMarker)
		}
		fmt.Fprint(&b, nd.elem)
		b.WriteByte(' ')

		if nd.right != sentinel {
			stack = append(stack, nd.right)
		}
		if nd.left != sentinel {
			stack = append(stack, nd.left)
		}
	}
	return b.String()
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[E]) Height() int {
	return t.height(t.root)
}

func (t *Tree[E]) height(n int) int {
	if n == sentinel {
		return 0
	}
	return 1 + max(t.height(t.nodes[n].left), t.height(t.nodes[n].right))
}

/******************** Integrity ********************/

// Verify walks the whole tree and reports the first broken invariant:
// search order, duplicate elements, parent links, root color, red-red
// edges or unequal black heights.
func (t *Tree[E]) Verify() error {
	if t.root == sentinel {
		if t.Len() != 0 {
			return errors.Errorf("empty root but %d nodes allocated", t.Len())
		}
		return nil
	}
	if t.nodes[t.root].parent != sentinel {
		return errors.New("root has a parent")
	}
	if t.nodes[t.root].color != black {
		return errors.New("root is red")
	}

	seen := 0
	if _, err := t.verify(t.root, nil, nil, &seen); err != nil {
		return err
	}
	if seen != t.Len() {
		return errors.Errorf("%d nodes reachable, %d allocated", seen, t.Len())
	}
	return nil
}

// verify returns the black height of the subtree at n. lo and hi are the
// exclusive bounds inherited from ancestors.
func (t *Tree[E]) verify(n int, lo, hi *E, seen *int) (int, error) {
	if n == sentinel {
		return 1, nil
	}
	*seen++
	nd := &t.nodes[n]

	if lo != nil && t.compare(nd.elem, *lo) <= 0 {
		return 0, errors.Errorf("element %v not greater than ancestor %v", nd.elem, *lo)
	}
	if hi != nil && t.compare(nd.elem, *hi) >= 0 {
		return 0, errors.Errorf("element %v not less than ancestor %v", nd.elem, *hi)
	}

	for _, c := range [2]int{nd.left, nd.right} {
		if c == sentinel {
			continue
		}
		if t.nodes[c].parent != n {
			return 0, errors.Errorf("child %v of %v has a stale parent link", t.nodes[c].elem, nd.elem)
		}
		if nd.color == red && t.nodes[c].color == red {
			return 0, errors.Errorf("red node %v has red child %v", nd.elem, t.nodes[c].elem)
		}
	}

	lh, err := t.verify(nd.left, lo, &nd.elem, seen)
	if err != nil {
		return 0, err
	}
	rh, err := t.verify(nd.right, &nd.elem, hi, seen)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.Errorf("black height mismatch under %v: left %d, right %d", nd.elem, lh, rh)
	}
	if nd.color == black {
		lh++
	}
	return lh, nil
}
