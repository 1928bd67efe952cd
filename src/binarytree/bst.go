package binarytree

import "github.com/Nigel2392/go-datastructures/stack"

// A binary search tree without any balancing.
//
// Duplicate keys are allowed, they are stored in the right subtree of
// the equal key.
type BST[K Ordered] struct {
	root   *BSTNode[K]
	length int
}

// Initialize a new binary search tree holding the given keys.
func NewBST[K Ordered](keys ...K) *BST[K] {
	var t = &BST[K]{}
	for _, k := range keys {
		t.Add(k)
	}
	return t
}

// Return the root node, or nil if the tree is empty.
func (t *BST[K]) Root() *BSTNode[K] {
	return t.root
}

// Add a key to the tree. Always reports true.
func (t *BST[K]) Add(key K) bool {
	var node = &BSTNode[K]{Key: key}
	t.length++
	if t.root == nil {
		t.root = node
		return true
	}

	var parent *BSTNode[K]
	for n := t.root; n != nil; {
		parent = n
		if key < n.Key {
			n = n.Left
		} else {
			n = n.Right
		}
	}

	if key < parent.Key {
		parent.Left = node
	} else {
		parent.Right = node
	}
	return true
}

// Remove the first node found holding key.
func (t *BST[K]) Remove(key K) bool {
	var node, parent, found = locate(t.root, key)
	if !found {
		return false
	}

	switch countChildren[K](node) {
	case 0:
		t.replaceChild(parent, node, nil)
	case 1:
		var child = node.Left
		if child == nil {
			child = node.Right
		}
		t.replaceChild(parent, node, child)
	default:
		t.removeTwoSubtrees(parent, node)
	}

	node.Left, node.Right = nil, nil
	t.length--
	return true
}

// The in-order successor takes the place of node.
func (t *BST[K]) removeTwoSubtrees(parent, node *BSTNode[K]) {
	var s, ps = successorAndParent[K](node)
	s.Left = node.Left
	if s != node.Right {
		ps.Left = s.Right
		s.Right = node.Right
	}
	t.replaceChild(parent, node, s)
}

// Points the slot of parent that holds old at repl.
func (t *BST[K]) replaceChild(parent, old, repl *BSTNode[K]) {
	switch {
	case parent == nil:
		t.root = repl
	case parent.Left == old:
		parent.Left = repl
	default:
		parent.Right = repl
	}
}

func (t *BST[K]) Contains(key K) bool {
	return contains(t.root, key)
}

func (t *BST[K]) FindMin() (K, bool) {
	return minNode[K](t.root)
}

func (t *BST[K]) FindMax() (K, bool) {
	return maxNode[K](t.root)
}

func (t *BST[K]) InOrder() []K {
	return keysInOrder[K](t.root, t.length)
}

func (t *BST[K]) PreOrder() []K {
	return keysPreOrder[K](t.root, t.length)
}

// Traverse the binary search tree in-order.
func (t *BST[K]) Traverse(f func(K)) {
	walkInOrder[K](t.root, func(n *BSTNode[K]) {
		f(n.Key)
	})
}

// Return the number of keys in the binary search tree.
func (t *BST[K]) Len() int {
	return t.length
}

// Return the height of the binary search tree.
func (t *BST[K]) Height() int {
	return t.root.height()
}

func (n *BSTNode[K]) height() int {
	if n == nil {
		return -1
	}

	var l, r = n.Left.height(), n.Right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}

func (t *BST[K]) IsEmpty() bool {
	return t.root == nil
}

// Clear the binary search tree.
func (t *BST[K]) Clear() {
	t.root = nil
	t.length = 0
}

// A node together with the half-open key range [lo, hi) its subtree
// must fall in. An unset bound is open.
type bstBound[K Ordered] struct {
	node         *BSTNode[K]
	lo, hi       K
	hasLo, hasHi bool
}

// Validate checks that every key in a left subtree is smaller than the
// subtree's parent and every key in a right subtree is not.
func (t *BST[K]) Validate() error {
	if t.root == nil {
		return nil
	}

	var errs []error
	var s = &stack.Stack[bstBound[K]]{}
	s.Push(bstBound[K]{node: t.root})
	for {
		var b, ok = s.PopOK()
		if !ok {
			break
		}
		var n = b.node
		if (b.hasLo && n.Key < b.lo) || (b.hasHi && n.Key >= b.hi) {
			errs = append(errs, violation(n.Key, ErrOrder))
		}
		if n.Right != nil {
			s.Push(bstBound[K]{node: n.Right, lo: n.Key, hasLo: true, hi: b.hi, hasHi: b.hasHi})
		}
		if n.Left != nil {
			s.Push(bstBound[K]{node: n.Left, lo: b.lo, hasLo: b.hasLo, hi: n.Key, hasHi: true})
		}
	}
	return NewIntegrityError(errs)
}

func (t *BST[K]) IsValid() bool {
	return t.Validate() == nil
}

func (t *BST[K]) PreOrderString() string {
	return preOrderString("BST", t.PreOrder())
}

// Return the binary search tree as a string.
func (t *BST[K]) String() string {
	return render[K](t.root, t.Height())
}
