// This file implements path reconstruction from came-from back-pointers.
package astar

// reconstruct walks parent pointers from the goal record back to a seed,
// then reverses the sequence into start→goal order. The slice is freshly
// allocated: results stay valid after the pooled state is cleared.
//
// Complexity: O(path length).
func (r *runner[N]) reconstruct(goalRec *record[N]) []N {
	path := make([]N, 0, 8)
	cur := goalRec
	path = append(path, cur.node)
	for cur.hasParent {
		cur = r.st.frontier[cur.parent]
		path = append(path, cur.node)
	}

	// Reverse in place to get start→goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
