package binarytree

// Walks the tree in order and reports every key that breaks the strict
// ordering. An equal neighbour is reported as a duplicate.
func checkOrder[K Ordered, N linkedNode[K, N]](root N) []error {
	var (
		errs  []error
		prev  K
		first = true
	)
	walkInOrder[K](root, func(n N) {
		var k = n.key()
		switch {
		case first:
			first = false
		case k < prev:
			errs = append(errs, violation(k, ErrOrder))
		case k == prev:
			errs = append(errs, violation(k, ErrDuplicate))
		}
		prev = k
	})
	return errs
}

// Validate checks every node for a correct cached height, a balance
// factor within [-1, 1], a parent link that agrees with the parent's
// child link, and strictly increasing in-order keys.
func (t *AVL[K]) Validate() error {
	var errs []error
	walkPreOrder[K](t.root, func(n *AVLNode[K]) {
		var l, r = height(n.Left), height(n.Right)
		if n.Height != 1+max(l, r) {
			errs = append(errs, violation(n.Key, ErrHeight))
		}
		if r-l < -1 || r-l > 1 {
			errs = append(errs, violation(n.Key, ErrBalance))
		}

		if n.Parent == nil {
			// only the root may be unparented
			if n != t.root {
				errs = append(errs, violation(n.Key, ErrParent))
			}
			return
		}

		var check = n.Parent.Right
		if n.Key < n.Parent.Key {
			check = n.Parent.Left
		}
		if check != n || n == t.root {
			errs = append(errs, violation(n.Key, ErrParent))
		}
	})
	errs = append(errs, checkOrder[K](t.root)...)
	return NewIntegrityError(errs)
}

func (t *AVL[K]) IsValid() bool {
	return t.Validate() == nil
}
