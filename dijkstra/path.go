package dijkstra

// PathTo reconstructs the path from the run's source to target as words,
// source first.
//
// The result is empty (non-nil, length 0) when target is unknown, when the
// predecessor chain breaks before reaching the source, or when target is
// the source itself: a single-vertex path counts as no path.
func (r *Result) PathTo(target string) []string {
	idx, err := r.g.Index(target)
	if err != nil {
		return []string{}
	}

	return r.PathToIndex(idx)
}

// PathToIndex is PathTo keyed by arena index.
func (r *Result) PathToIndex(target int) []string {
	if target < 0 || target >= len(r.Prev) || target == r.Source {
		return []string{}
	}

	// Walk back from target, collecting indices until the source or a break.
	rev := make([]int, 0, 8)
	cur := target
	for cur != r.Source && cur != NoPredecessor {
		rev = append(rev, cur)
		cur = r.Prev[cur]
	}
	if cur != r.Source {
		return []string{}
	}
	rev = append(rev, r.Source)

	path := make([]string, len(rev))
	for i, j := 0, len(rev)-1; j >= 0; i, j = i+1, j-1 {
		path[i] = r.g.Word(rev[j])
	}

	return path
}
