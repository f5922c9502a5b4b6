package unionfind

// Find returns the root of n's tree, compressing the path walked so that
// every node visited becomes a direct child of the root. Compression
// keeps Children in sync (nodes removed from their old parent's Children
// are appended to the root's), so callers that traverse a cluster's
// interior via Children see a tree consistent with the latest Find.
//
// Successive calls to Find on the same node are idempotent once the path
// has been fully compressed: the second call returns immediately.
func Find(n *ClusterNode) *ClusterNode {
	if n.Parent == nil {
		return n
	}

	root := n
	for root.Parent != nil {
		root = root.Parent
	}

	cur := n
	for cur != root {
		next := cur.Parent
		if cur.Parent != root {
			removeChild(next, cur)
			cur.Parent = root
			addChild(root, cur)
		}
		cur = next
	}

	return root
}

// Union merges the clusters rooted at a and b. Both arguments must
// already be roots (IsRoot() == true); callers resolve with Find first.
// The lighter cluster (by Size) is attached under the heavier one; ties
// are broken deterministically by lower VertexIdx becoming the parent.
// CheckVertices from the absorbed root are merged into the surviving
// root and cleared from the loser. Union does not touch BoundaryVertices
// — callers must call MergeBoundaries themselves, since boundary
// maintenance is a distinct phase of the decoder's growth loop.
//
// Union is a no-op (returns a) if a and b are already the same root.
func Union(a, b *ClusterNode) *ClusterNode {
	if a == b {
		return a
	}

	winner, loser := a, b
	switch {
	case b.Size > a.Size:
		winner, loser = b, a
	case a.Size == b.Size && b.VertexIdx < a.VertexIdx:
		winner, loser = b, a
	}

	loser.Parent = winner
	winner.Children = append(winner.Children, loser)
	winner.Size += loser.Size

	for cv := range loser.CheckVertices {
		winner.CheckVertices[cv] = struct{}{}
	}
	loser.CheckVertices = make(map[int]struct{})

	return winner
}

// MergeBoundaries moves every id from loser's BoundaryVertices into
// winner's, then clears loser's set. The caller must invoke this once
// for every successful Union.
func MergeBoundaries(winner, loser *ClusterNode) {
	for v := range loser.BoundaryVertices {
		winner.BoundaryVertices[v] = struct{}{}
	}
	loser.BoundaryVertices = make(map[int]struct{})
}

// removeChild deletes child from parent's Children slice in place.
func removeChild(parent, child *ClusterNode) {
	for i, c := range parent.Children {
		if c == child {
			last := len(parent.Children) - 1
			parent.Children[i] = parent.Children[last]
			parent.Children = parent.Children[:last]
			return
		}
	}
}

// addChild appends child to parent's Children slice.
func addChild(parent, child *ClusterNode) {
	parent.Children = append(parent.Children, child)
}
