package binarytree

import "github.com/Nigel2392/avltree/src/logger"

// An AVL tree: a binary search tree which rebalances itself after every
// mutation so that sibling subtree heights never differ by more than one.
//
// Duplicate keys are ignored.
type AVL[K Ordered] struct {
	root   *AVLNode[K]
	length int
	logger logger.Logger
}

// Initialize a new AVL tree holding the given keys.
func NewAVL[K Ordered](keys ...K) *AVL[K] {
	var t = &AVL[K]{}
	for _, k := range keys {
		t.Add(k)
	}
	return t
}

// SetLogger makes the tree log its rotations at debug level.
func (t *AVL[K]) SetLogger(l logger.Logger) {
	t.logger = l
}

// Return the root node, or nil if the tree is empty.
func (t *AVL[K]) Root() *AVLNode[K] {
	return t.root
}

// Add a key to the tree, rebalancing on the way back up.
//
// Reports false without touching the tree if the key is already present.
func (t *AVL[K]) Add(key K) bool {
	if t.root == nil {
		t.root = &AVLNode[K]{Key: key}
		t.length++
		return true
	}

	var parent *AVLNode[K]
	for n := t.root; n != nil; {
		parent = n
		switch {
		case key < n.Key:
			n = n.Left
		case key == n.Key:
			return false
		default:
			n = n.Right
		}
	}

	var node = &AVLNode[K]{Key: key, Parent: parent}
	if key < parent.Key {
		parent.Left = node
	} else {
		parent.Right = node
	}
	t.length++

	t.rebalanceFrom(parent)
	return true
}

// Remove a key from the tree, rebalancing from the lowest node whose
// subtree changed up to the root.
func (t *AVL[K]) Remove(key K) bool {
	var node, parent, found = locate(t.root, key)
	if !found {
		return false
	}

	var lowest *AVLNode[K]
	switch countChildren[K](node) {
	case 0:
		t.replaceChild(parent, node, nil)
		lowest = parent
	case 1:
		var child = node.Left
		if child == nil {
			child = node.Right
		}
		t.replaceChild(parent, node, child)
		lowest = parent
	default:
		lowest = t.removeTwoSubtrees(parent, node)
	}

	node.Left, node.Right, node.Parent = nil, nil, nil
	t.length--

	if t.logger != nil {
		t.logger.Debugf("removed %v, rebalancing from %v\n", key, lowest)
	}
	t.rebalanceFrom(lowest)
	return true
}

// The in-order successor takes the place of node. Returns the lowest
// node whose subtree lost a node: the successor's old parent, or the
// successor itself when it was node's right child.
func (t *AVL[K]) removeTwoSubtrees(parent, node *AVLNode[K]) *AVLNode[K] {
	var s, ps = successorAndParent[K](node)
	var lowest = s

	s.Left = node.Left
	node.Left.Parent = s
	if s != node.Right {
		lowest = ps
		ps.Left = s.Right
		if s.Right != nil {
			s.Right.Parent = ps
		}
		s.Right = node.Right
		node.Right.Parent = s
	}

	t.replaceChild(parent, node, s)
	return lowest
}

// Points the slot of parent that holds old at repl and fixes repl's
// back-link. A nil parent means old is the root.
func (t *AVL[K]) replaceChild(parent, old, repl *AVLNode[K]) {
	switch {
	case parent == nil:
		t.root = repl
	case parent.Left == old:
		parent.Left = repl
	default:
		parent.Right = repl
	}
	if repl != nil {
		repl.Parent = parent
	}
}

// Rebalances n and every ancestor of it.
func (t *AVL[K]) rebalanceFrom(n *AVLNode[K]) {
	for n != nil {
		n = t.rebalance(n).Parent
	}
}

func (t *AVL[K]) Contains(key K) bool {
	return contains(t.root, key)
}

func (t *AVL[K]) FindMin() (K, bool) {
	return minNode[K](t.root)
}

func (t *AVL[K]) FindMax() (K, bool) {
	return maxNode[K](t.root)
}

func (t *AVL[K]) InOrder() []K {
	return keysInOrder[K](t.root, t.length)
}

func (t *AVL[K]) PreOrder() []K {
	return keysPreOrder[K](t.root, t.length)
}

func (t *AVL[K]) Traverse(f func(K)) {
	walkInOrder[K](t.root, func(n *AVLNode[K]) {
		f(n.Key)
	})
}

func (t *AVL[K]) Len() int {
	return t.length
}

func (t *AVL[K]) Height() int {
	return height(t.root)
}

func (t *AVL[K]) IsEmpty() bool {
	return t.root == nil
}

func (t *AVL[K]) Clear() {
	t.root = nil
	t.length = 0
}

func (t *AVL[K]) PreOrderString() string {
	return preOrderString("AVL", t.PreOrder())
}

func (t *AVL[K]) String() string {
	return render[K](t.root, t.Height())
}
