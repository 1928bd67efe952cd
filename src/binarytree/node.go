package binarytree

import "fmt"

// Ordered is satisfied by every key type whose < operator is a total order.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// linkedNode lets the search helpers walk either node type.
type linkedNode[K Ordered, N any] interface {
	comparable
	key() K
	left() N
	right() N
}

// A node of a plain binary search tree.
type BSTNode[K Ordered] struct {
	Key   K
	Left  *BSTNode[K]
	Right *BSTNode[K]
}

func (n *BSTNode[K]) key() K             { return n.Key }
func (n *BSTNode[K]) left() *BSTNode[K]  { return n.Left }
func (n *BSTNode[K]) right() *BSTNode[K] { return n.Right }

func (n *BSTNode[K]) String() string {
	return fmt.Sprintf("BST Node: %v", n.Key)
}

// A node of an AVL tree.
//
// Parent is a back-link used for walking upwards, the node is owned by
// whichever node (or tree) holds it in Left, Right or the root slot.
//
// Height is 0 for a leaf.
type AVLNode[K Ordered] struct {
	Key    K
	Left   *AVLNode[K]
	Right  *AVLNode[K]
	Parent *AVLNode[K]
	Height int
}

func (n *AVLNode[K]) key() K             { return n.Key }
func (n *AVLNode[K]) left() *AVLNode[K]  { return n.Left }
func (n *AVLNode[K]) right() *AVLNode[K] { return n.Right }

func (n *AVLNode[K]) String() string {
	return fmt.Sprintf("AVL Node: %v", n.Key)
}

// height of an absent child is -1.
func height[K Ordered](n *AVLNode[K]) int {
	if n == nil {
		return -1
	}
	return n.Height
}

func balanceFactor[K Ordered](n *AVLNode[K]) int {
	return height(n.Right) - height(n.Left)
}

func updateHeight[K Ordered](n *AVLNode[K]) {
	var l, r = height(n.Left), height(n.Right)
	if l > r {
		n.Height = l + 1
	} else {
		n.Height = r + 1
	}
}
