package text

import (
	"errors"

	"github.com/dshills/sliceview/bounds"
)

// ErrSplitsCodepoint indicates a byte range that is within bounds but has a
// boundary inside a multi-byte UTF-8 sequence.
var ErrSplitsCodepoint = errors.New("slice splits utf-8 codepoint")

// isContinuation reports whether b is a UTF-8 continuation byte, i.e. its
// top two bits are 10.
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// checkBoundaries rejects a resolved byte range whose start or end falls
// inside a multi-byte codepoint. Both offsets are already known to satisfy
// 0 <= start <= end <= len(s).
func checkBoundaries(s string, start, end int) error {
	if start < len(s) && isContinuation(s[start]) {
		return ErrSplitsCodepoint
	}
	if end < len(s) && isContinuation(s[end]) {
		return ErrSplitsCodepoint
	}
	return nil
}

// Slice returns the substring of s covered by r. The result shares s's
// storage. Beyond the bounds checks, slicing fails with ErrSplitsCodepoint
// if either boundary of the resolved byte range lands inside a multi-byte
// codepoint.
func Slice(s string, r bounds.Range) (string, error) {
	start, end, err := r.Resolve(len(s))
	if err != nil {
		return "", err
	}
	if err := checkBoundaries(s, start, end); err != nil {
		return "", err
	}
	return s[start:end], nil
}

// MustSlice is Slice, panicking on failure.
func MustSlice(s string, r bounds.Range) string {
	v, err := Slice(s, r)
	if err != nil {
		panic(err)
	}
	return v
}

// TrySlice is Slice, reporting failure as ok == false.
func TrySlice(s string, r bounds.Range) (string, bool) {
	v, err := Slice(s, r)
	return v, err == nil
}

// SplitAt splits s into s[:i] and s[i:]. Fails with bounds.ErrOutOfRange
// unless 0 <= i <= len(s), and with ErrSplitsCodepoint when i falls inside
// a multi-byte codepoint.
func SplitAt(s string, i int) (left, right string, err error) {
	if err := bounds.CheckSplit(i, len(s)); err != nil {
		return "", "", err
	}
	if i < len(s) && isContinuation(s[i]) {
		return "", "", ErrSplitsCodepoint
	}
	return s[:i], s[i:], nil
}

// MustSplitAt is SplitAt, panicking on failure.
func MustSplitAt(s string, i int) (left, right string) {
	left, right, err := SplitAt(s, i)
	if err != nil {
		panic(err)
	}
	return left, right
}

// TrySplitAt is SplitAt, reporting failure as ok == false.
func TrySplitAt(s string, i int) (left, right string, ok bool) {
	left, right, err := SplitAt(s, i)
	return left, right, err == nil
}
