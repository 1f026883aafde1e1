package words

// IsAdjacent reports whether a and b are one character edit apart.
//
// Decision by relative length:
//
//   - |len(a) - len(b)| > 1: never adjacent.
//   - equal length: adjacent iff at most one position differs. Identical
//     words differ in zero positions and are therefore reported adjacent;
//     use IsLadderStep when identical words must be rejected.
//   - one longer: the longer word is aligned against the shorter one by a
//     single backward scan (see alignOneLonger); adjacent iff at most one
//     character of the longer word is left unmatched.
//
// Lengths are measured in runes. The result is symmetric in a and b.
func IsAdjacent(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	switch diff := len(ra) - len(rb); {
	case diff > 1 || diff < -1:
		return false
	case diff == 1:
		return alignOneLonger(ra, rb) <= 1
	case diff == -1:
		return alignOneLonger(rb, ra) <= 1
	default:
		return mismatches(ra, rb) <= 1
	}
}

// IsLadderStep reports whether a and b are distinct words one edit apart.
// This is the predicate used to decide graph edges.
func IsLadderStep(a, b string) bool {
	return a != b && IsAdjacent(a, b)
}

// mismatches counts positions where equal-length a and b differ.
func mismatches(a, b []rune) int {
	n := 0
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			n++
		}
	}

	return n
}

// alignOneLonger runs the greedy backward alignment of long (len n+1)
// against short (len n) and returns how many characters of long remain
// unmatched.
//
// Scanning i from n-1 down to 0 over a working copy of long: if short[i]
// equals rest[i] that character is consumed, else if short[i] equals
// rest[i+1] that one is consumed. Consumed characters are spliced out of
// the working copy, so later comparisons see the shifted remainder.
// This is not a general edit-distance test; inputs with repeated runs can
// align differently than a full DP would.
func alignOneLonger(long, short []rune) int {
	rest := make([]rune, len(long))
	copy(rest, long)

	for i := len(short) - 1; i >= 0; i-- {
		switch {
		case short[i] == rest[i]:
			rest = append(rest[:i], rest[i+1:]...)
		case short[i] == rest[i+1]:
			rest = append(rest[:i+1], rest[i+2:]...)
		}
	}

	return len(rest)
}
