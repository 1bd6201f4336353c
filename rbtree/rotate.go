package rbtree

// The rotations below only re-link nodes. Colors are set by the caller
// before rotating, and the caller links the returned subtree root into the
// old root's parent.

// rotateWithLeftChild lifts k2's left child into k2's place.
func (t *Tree[E]) rotateWithLeftChild(k2 int) int {
	k1 := t.nodes[k2].left
	moved := t.nodes[k1].right

	t.nodes[k2].left = moved
	if moved != sentinel {
		t.nodes[moved].parent = k2
	}
	t.nodes[k1].right = k2
	t.nodes[k1].parent = t.nodes[k2].parent
	t.nodes[k2].parent = k1
	return k1
}

// rotateWithRightChild lifts k1's right child into k1's place.
func (t *Tree[E]) rotateWithRightChild(k1 int) int {
	k2 := t.nodes[k1].right
	moved := t.nodes[k2].left

	t.nodes[k1].right = moved
	if moved != sentinel {
		t.nodes[moved].parent = k1
	}
	t.nodes[k2].left = k1
	t.nodes[k2].parent = t.nodes[k1].parent
	t.nodes[k1].parent = k2
	return k2
}

// doubleLeftRight handles a right child hanging off k3's left child.
func (t *Tree[E]) doubleLeftRight(k3 int) int {
	t.nodes[k3].left = t.rotateWithRightChild(t.nodes[k3].left)
	return t.rotateWithLeftChild(k3)
}

// doubleRightLeft handles a left child hanging off k1's right child.
func (t *Tree[E]) doubleRightLeft(k1 int) int {
	t.nodes[k1].right = t.rotateWithLeftChild(t.nodes[k1].right)
	return t.rotateWithRightChild(k1)
}
