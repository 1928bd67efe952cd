package binarytree

import "fmt"

// Restores the balance of node with at most one single or double
// rotation and refreshes its height. Returns the root of the subtree
// that now sits where node was.
func (t *AVL[K]) rebalance(node *AVLNode[K]) *AVLNode[K] {
	var bf = balanceFactor(node)
	switch {
	case bf < -1:
		if balanceFactor(node.Left) > 0 {
			if t.logger != nil {
				t.logger.Debugf("rotating %v left before right rotation at %v\n", node.Left.Key, node.Key)
			}
			node.Left = rotateLeft(node.Left)
		}
		if t.logger != nil {
			t.logger.Debugf("rotating %v right (balance %d)\n", node.Key, bf)
		}
		var parent = node.Parent
		var newRoot = rotateRight(node)
		t.replaceChild(parent, node, newRoot)
		return newRoot
	case bf > 1:
		if balanceFactor(node.Right) < 0 {
			if t.logger != nil {
				t.logger.Debugf("rotating %v right before left rotation at %v\n", node.Right.Key, node.Key)
			}
			node.Right = rotateRight(node.Right)
		}
		if t.logger != nil {
			t.logger.Debugf("rotating %v left (balance %d)\n", node.Key, bf)
		}
		var parent = node.Parent
		var newRoot = rotateLeft(node)
		t.replaceChild(parent, node, newRoot)
		return newRoot
	}
	updateHeight(node)
	return node
}

// node's right child c becomes the subtree root and inherits node's
// parent link; node adopts c's left subtree. The caller relinks the
// parent's child slot.
func rotateLeft[K Ordered](node *AVLNode[K]) *AVLNode[K] {
	var c = node.Right
	if c == nil {
		panic(fmt.Sprintf("binarytree: left rotation at %v without a right child", node.Key))
	}

	node.Right = c.Left
	if node.Right != nil {
		node.Right.Parent = node
	}
	c.Left = node
	c.Parent = node.Parent
	node.Parent = c

	// node is now below c
	updateHeight(node)
	updateHeight(c)
	return c
}

// Mirror of rotateLeft.
func rotateRight[K Ordered](node *AVLNode[K]) *AVLNode[K] {
	var c = node.Left
	if c == nil {
		panic(fmt.Sprintf("binarytree: right rotation at %v without a left child", node.Key))
	}

	node.Left = c.Right
	if node.Left != nil {
		node.Left.Parent = node
	}
	c.Right = node
	c.Parent = node.Parent
	node.Parent = c

	updateHeight(node)
	updateHeight(c)
	return c
}
