package bounds

import "fmt"

type rangeKind uint8

const (
	kindSpan rangeKind = iota
	kindClosedSpan
	kindFrom
	kindTo
	kindToClosed
	kindFull
)

// Range is a requested range in one of the six supported forms.
// The zero value is the empty half-open range [0, 0).
type Range struct {
	kind  rangeKind
	start int
	end   int
}

// Span returns the half-open range [start, end).
func Span(start, end int) Range {
	return Range{kind: kindSpan, start: start, end: end}
}

// ClosedSpan returns the inclusive range [start, end].
func ClosedSpan(start, end int) Range {
	return Range{kind: kindClosedSpan, start: start, end: end}
}

// From returns the range [start, len), where len is supplied at resolution.
func From(start int) Range {
	return Range{kind: kindFrom, start: start}
}

// To returns the range [0, end).
func To(end int) Range {
	return Range{kind: kindTo, end: end}
}

// ToClosed returns the range [0, end].
func ToClosed(end int) Range {
	return Range{kind: kindToClosed, end: end}
}

// Full returns the range covering the whole source.
func Full() Range {
	return Range{kind: kindFull}
}

// String returns the range in expression notation, e.g. "2..5" or "..=3".
func (r Range) String() string {
	switch r.kind {
	case kindClosedSpan:
		return fmt.Sprintf("%d..=%d", r.start, r.end)
	case kindFrom:
		return fmt.Sprintf("%d..", r.start)
	case kindTo:
		return fmt.Sprintf("..%d", r.end)
	case kindToClosed:
		return fmt.Sprintf("..=%d", r.end)
	case kindFull:
		return ".."
	default:
		return fmt.Sprintf("%d..%d", r.start, r.end)
	}
}

// Resolve validates the range against a source of length n and returns the
// normalized exclusive-end pair, with 0 <= start <= end <= n. Inclusive
// forms resolve with end one past their last covered offset.
func (r Range) Resolve(n int) (start, end int, err error) {
	switch r.kind {
	case kindFull:
		return 0, n, nil
	case kindFrom:
		return resolveSpan(r.start, n, n)
	case kindTo:
		return resolveSpan(0, r.end, n)
	case kindToClosed:
		return resolveClosedSpan(0, r.end, n)
	case kindClosedSpan:
		return resolveClosedSpan(r.start, r.end, n)
	default:
		return resolveSpan(r.start, r.end, n)
	}
}

func resolveSpan(start, end, n int) (int, int, error) {
	if start < 0 || end < 0 {
		return 0, 0, ErrOutOfRange
	}
	if start > end {
		return 0, 0, ErrStartAfterEnd
	}
	if end > n {
		return 0, 0, ErrOutOfRange
	}
	return start, end, nil
}

func resolveClosedSpan(start, end, n int) (int, int, error) {
	if start < 0 || end < 0 {
		return 0, 0, ErrOutOfRange
	}
	if start > end {
		return 0, 0, ErrStartAfterEnd
	}
	if end >= n {
		return 0, 0, ErrOutOfRange
	}
	return start, end + 1, nil
}

// CheckIndex validates a single-element index: 0 <= i < n.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}
	return nil
}

// CheckSplit validates a split point: 0 <= i <= n. Unlike CheckIndex,
// splitting exactly at the end is legal and yields an empty right side.
func CheckSplit(i, n int) error {
	if i < 0 || i > n {
		return ErrOutOfRange
	}
	return nil
}
