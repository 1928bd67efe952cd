package binarytree

import "github.com/Nigel2392/go-datastructures/stack"

// Returns the first node holding key, and its parent.
//
// The parent is the zero node when the match is the root.
func locate[K Ordered, N linkedNode[K, N]](root N, key K) (node, parent N, found bool) {
	var zero N
	node = root
	for node != zero {
		if node.key() == key {
			return node, parent, true
		}
		parent = node
		if key < node.key() {
			node = node.left()
		} else {
			node = node.right()
		}
	}
	return zero, zero, false
}

// Returns the in-order successor of n inside n's right subtree, and the
// successor's parent. Both are zero when n has no right child.
func successorAndParent[K Ordered, N linkedNode[K, N]](n N) (succ, parent N) {
	var zero N
	succ = n.right()
	if succ == zero {
		return zero, zero
	}
	parent = n
	for succ.left() != zero {
		parent = succ
		succ = succ.left()
	}
	return succ, parent
}

func countChildren[K Ordered, N linkedNode[K, N]](n N) int {
	var zero N
	var count int
	if n.left() != zero {
		count++
	}
	if n.right() != zero {
		count++
	}
	return count
}

func minNode[K Ordered, N linkedNode[K, N]](root N) (k K, ok bool) {
	var zero N
	if root == zero {
		return k, false
	}
	var n = root
	for n.left() != zero {
		n = n.left()
	}
	return n.key(), true
}

func maxNode[K Ordered, N linkedNode[K, N]](root N) (k K, ok bool) {
	var zero N
	if root == zero {
		return k, false
	}
	var n = root
	for n.right() != zero {
		n = n.right()
	}
	return n.key(), true
}

func contains[K Ordered, N linkedNode[K, N]](root N, key K) bool {
	var _, _, found = locate(root, key)
	return found
}

// Visits every node in key order.
func walkInOrder[K Ordered, N linkedNode[K, N]](root N, visit func(N)) {
	var zero N
	var s = &stack.Stack[N]{}
	var n = root
	for {
		if n != zero {
			s.Push(n)
			n = n.left()
			continue
		}
		var top, ok = s.PopOK()
		if !ok {
			return
		}
		visit(top)
		n = top.right()
	}
}

// Visits every node parent-first, left subtree before right.
func walkPreOrder[K Ordered, N linkedNode[K, N]](root N, visit func(N)) {
	var zero N
	if root == zero {
		return
	}
	var s = &stack.Stack[N]{}
	s.Push(root)
	for {
		var n, ok = s.PopOK()
		if !ok {
			return
		}
		visit(n)
		if n.right() != zero {
			s.Push(n.right())
		}
		if n.left() != zero {
			s.Push(n.left())
		}
	}
}

func keysInOrder[K Ordered, N linkedNode[K, N]](root N, size int) []K {
	var keys = make([]K, 0, size)
	walkInOrder[K](root, func(n N) {
		keys = append(keys, n.key())
	})
	return keys
}

func keysPreOrder[K Ordered, N linkedNode[K, N]](root N, size int) []K {
	var keys = make([]K, 0, size)
	walkPreOrder[K](root, func(n N) {
		keys = append(keys, n.key())
	})
	return keys
}
