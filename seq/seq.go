package seq

import "github.com/dshills/sliceview/bounds"

// Index returns the element at offset i.
// Fails with bounds.ErrOutOfRange unless 0 <= i < len(s).
func Index[E any](s []E, i int) (E, error) {
	if err := bounds.CheckIndex(i, len(s)); err != nil {
		var zero E
		return zero, err
	}
	return s[i], nil
}

// MustIndex is Index, panicking on failure.
func MustIndex[E any](s []E, i int) E {
	v, err := Index(s, i)
	if err != nil {
		panic(err)
	}
	return v
}

// TryIndex is Index, reporting failure as ok == false.
func TryIndex[E any](s []E, i int) (E, bool) {
	v, err := Index(s, i)
	return v, err == nil
}

// Slice returns the subslice of s covered by r.
// The result shares s's backing array.
func Slice[E any](s []E, r bounds.Range) ([]E, error) {
	start, end, err := r.Resolve(len(s))
	if err != nil {
		return nil, err
	}
	return s[start:end], nil
}

// MustSlice is Slice, panicking on failure.
func MustSlice[E any](s []E, r bounds.Range) []E {
	v, err := Slice(s, r)
	if err != nil {
		panic(err)
	}
	return v
}

// TrySlice is Slice, reporting failure as ok == false.
func TrySlice[E any](s []E, r bounds.Range) ([]E, bool) {
	v, err := Slice(s, r)
	return v, err == nil
}

// SplitAt splits s into s[:i] and s[i:].
// Fails with bounds.ErrOutOfRange unless 0 <= i <= len(s); i == len(s) is
// legal and yields an empty right side.
func SplitAt[E any](s []E, i int) (left, right []E, err error) {
	if err := bounds.CheckSplit(i, len(s)); err != nil {
		return nil, nil, err
	}
	return s[:i], s[i:], nil
}

// MustSplitAt is SplitAt, panicking on failure.
func MustSplitAt[E any](s []E, i int) (left, right []E) {
	left, right, err := SplitAt(s, i)
	if err != nil {
		panic(err)
	}
	return left, right
}

// TrySplitAt is SplitAt, reporting failure as ok == false.
func TrySplitAt[E any](s []E, i int) (left, right []E, ok bool) {
	left, right, err := SplitAt(s, i)
	return left, right, err == nil
}
