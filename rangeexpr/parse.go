package rangeexpr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/sliceview/bounds"
)

// ErrBadExpr indicates a malformed range or index expression.
var ErrBadExpr = errors.New("malformed range expression")

// Parse converts a range expression into a bounds.Range.
func Parse(expr string) (bounds.Range, error) {
	trimmed := strings.TrimSpace(expr)

	lo, rest, found := strings.Cut(trimmed, "..")
	if !found {
		return bounds.Range{}, badExpr(expr)
	}

	closed := strings.HasPrefix(rest, "=")
	hi := rest
	if closed {
		hi = rest[1:]
	}
	lo = strings.TrimSpace(lo)
	hi = strings.TrimSpace(hi)

	switch {
	case lo == "" && hi == "":
		// ".." is the full range; "..=" has no end to include.
		if closed {
			return bounds.Range{}, badExpr(expr)
		}
		return bounds.Full(), nil

	case lo == "":
		end, err := parseOffset(hi, expr)
		if err != nil {
			return bounds.Range{}, err
		}
		if closed {
			return bounds.ToClosed(end), nil
		}
		return bounds.To(end), nil

	case hi == "":
		// "2..=" is not a range form.
		if closed {
			return bounds.Range{}, badExpr(expr)
		}
		start, err := parseOffset(lo, expr)
		if err != nil {
			return bounds.Range{}, err
		}
		return bounds.From(start), nil

	default:
		start, err := parseOffset(lo, expr)
		if err != nil {
			return bounds.Range{}, err
		}
		end, err := parseOffset(hi, expr)
		if err != nil {
			return bounds.Range{}, err
		}
		if closed {
			return bounds.ClosedSpan(start, end), nil
		}
		return bounds.Span(start, end), nil
	}
}

// ParseIndex converts a single-offset expression into an int.
func ParseIndex(expr string) (int, error) {
	return parseOffset(strings.TrimSpace(expr), expr)
}

func parseOffset(s, expr string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, badExpr(expr)
	}
	return n, nil
}

func badExpr(expr string) error {
	return fmt.Errorf("%w: %q", ErrBadExpr, expr)
}
