package text

// Compare orders a and b by raw bytes, returning -1, 0, or +1. Bytes are
// compared pairwise up to the shorter length; the first mismatch decides,
// and a true prefix orders before the longer string. No locale or
// normalization awareness is applied.
func Compare(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
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

// Equal reports whether a and b are byte-for-byte identical.
func Equal(a, b string) bool {
	return Compare(a, b) == 0
}
