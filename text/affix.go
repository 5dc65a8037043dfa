package text

// HasPrefix reports whether s begins with prefix.
func HasPrefix(s, prefix string) bool {
	_, ok := StripPrefix(s, prefix)
	return ok
}

// HasSuffix reports whether s ends with suffix.
func HasSuffix(s, suffix string) bool {
	_, ok := StripSuffix(s, suffix)
	return ok
}

// StripPrefix returns s without its leading prefix. It reports ok == false
// when s is shorter than prefix or does not begin with it. A matching
// prefix of valid UTF-8 always ends on a codepoint boundary, so the
// remainder is valid text.
func StripPrefix(s, prefix string) (string, bool) {
	if len(s) < len(prefix) {
		return "", false
	}
	head, rest, err := SplitAt(s, len(prefix))
	if err != nil || !Equal(head, prefix) {
		return "", false
	}
	return rest, true
}

// StripSuffix returns s without its trailing suffix. It reports ok == false
// when s is shorter than suffix or does not end with it.
func StripSuffix(s, suffix string) (string, bool) {
	if len(s) < len(suffix) {
		return "", false
	}
	rest, tail, err := SplitAt(s, len(s)-len(suffix))
	if err != nil || !Equal(tail, suffix) {
		return "", false
	}
	return rest, true
}

// MustStripPrefix is StripPrefix, panicking when the prefix does not match.
func MustStripPrefix(s, prefix string) string {
	rest, ok := StripPrefix(s, prefix)
	if !ok {
		panic("text: string does not have the given prefix")
	}
	return rest
}

// MustStripSuffix is StripSuffix, panicking when the suffix does not match.
func MustStripSuffix(s, suffix string) string {
	rest, ok := StripSuffix(s, suffix)
	if !ok {
		panic("text: string does not have the given suffix")
	}
	return rest
}
