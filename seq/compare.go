package seq

import "cmp"

// Compare orders a and b lexicographically, returning -1, 0, or +1.
// Elements are compared pairwise up to the shorter length; the first
// mismatch decides. If one sequence is a prefix of the other, the shorter
// one orders first. Elements are ordered by cmp.Compare, so for
// floating-point types NaN orders before all other values and the result
// is a total order.
func Compare[E cmp.Ordered](a, b []E) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether a and b have the same length and elements.
func Equal[E cmp.Ordered](a, b []E) bool {
	return Compare(a, b) == 0
}
