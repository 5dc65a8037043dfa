package seq

import "cmp"

// HasPrefix reports whether s begins with prefix.
func HasPrefix[E cmp.Ordered](s, prefix []E) bool {
	_, ok := StripPrefix(s, prefix)
	return ok
}

// HasSuffix reports whether s ends with suffix.
func HasSuffix[E cmp.Ordered](s, suffix []E) bool {
	_, ok := StripSuffix(s, suffix)
	return ok
}

// StripPrefix returns s without its leading prefix. It reports ok == false
// when s is shorter than prefix or does not begin with it.
func StripPrefix[E cmp.Ordered](s, prefix []E) ([]E, bool) {
	if len(s) < len(prefix) {
		return nil, false
	}
	head, rest, err := SplitAt(s, len(prefix))
	if err != nil || !Equal(head, prefix) {
		return nil, false
	}
	return rest, true
}

// StripSuffix returns s without its trailing suffix. It reports ok == false
// when s is shorter than suffix or does not end with it.
func StripSuffix[E cmp.Ordered](s, suffix []E) ([]E, bool) {
	if len(s) < len(suffix) {
		return nil, false
	}
	rest, tail, err := SplitAt(s, len(s)-len(suffix))
	if err != nil || !Equal(tail, suffix) {
		return nil, false
	}
	return rest, true
}

// MustStripPrefix is StripPrefix, panicking when the prefix does not match.
func MustStripPrefix[E cmp.Ordered](s, prefix []E) []E {
	rest, ok := StripPrefix(s, prefix)
	if !ok {
		panic("seq: sequence does not have the given prefix")
	}
	return rest
}

// MustStripSuffix is StripSuffix, panicking when the suffix does not match.
func MustStripSuffix[E cmp.Ordered](s, suffix []E) []E {
	rest, ok := StripSuffix(s, suffix)
	if !ok {
		panic("seq: sequence does not have the given suffix")
	}
	return rest
}
