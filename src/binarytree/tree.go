package binarytree

func init() {
	// here to make sure both trees implement the tree interface
	var _ Tree[int] = &BST[int]{}
	var _ Tree[int] = &AVL[int]{}
}

// Tree is the surface shared by the plain and the balanced search tree.
//
// None of the methods are safe for concurrent use while a mutation is running.
type Tree[K Ordered] interface {
	// Add a key. Reports whether the tree changed.
	Add(key K) bool
	// Remove the first node holding key.
	Remove(key K) bool
	Contains(key K) bool
	FindMin() (K, bool)
	FindMax() (K, bool)
	// InOrder returns the keys in ascending order.
	InOrder() []K
	// PreOrder returns the keys parent-first.
	PreOrder() []K
	// Traverse calls f for every key in ascending order.
	Traverse(f func(K))
	Len() int
	// Height of the root; a single node has height 0, an empty tree -1.
	Height() int
	IsEmpty() bool
	Clear()
	// Validate walks the whole tree and reports every broken invariant.
	Validate() error
	IsValid() bool
	PreOrderString() string
	String() string
}
