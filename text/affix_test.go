package text

import "testing"

func TestStripPrefix(t *testing.T) {
	rest, ok := StripPrefix("abcde", "abc")
	if !ok || rest != "de" {
		t.Errorf("StripPrefix(abcde, abc) = (%q, %v), want (de, true)", rest, ok)
	}

	if _, ok := StripPrefix("abcde", "ace"); ok {
		t.Error("StripPrefix(abcde, ace) reported ok")
	}
	if _, ok := StripPrefix("ab", "abcde"); ok {
		t.Error("StripPrefix with affix longer than source reported ok")
	}

	rest, ok = StripPrefix("abcde", "")
	if !ok || rest != "abcde" {
		t.Errorf("StripPrefix(abcde, empty) = (%q, %v)", rest, ok)
	}

	// Multi-byte prefix ends on a codepoint boundary and strips cleanly.
	rest, ok = StripPrefix(sparkleHeart, "✨")
	if !ok || rest != "\U0001F496" {
		t.Errorf("StripPrefix(sparkle) = (%q, %v)", rest, ok)
	}

	// A byte-level fragment of a codepoint never matches.
	if _, ok := StripPrefix(sparkleHeart, sparkleHeart[:2]); ok {
		t.Error("StripPrefix with a codepoint fragment reported ok")
	}
}

func TestStripSuffix(t *testing.T) {
	rest, ok := StripSuffix("abcde", "de")
	if !ok || rest != "abc" {
		t.Errorf("StripSuffix(abcde, de) = (%q, %v), want (abc, true)", rest, ok)
	}

	if _, ok := StripSuffix("abcde", "ce"); ok {
		t.Error("StripSuffix(abcde, ce) reported ok")
	}

	rest, ok = StripSuffix(sparkleHeart, "\U0001F496")
	if !ok || rest != "✨" {
		t.Errorf("StripSuffix(heart) = (%q, %v)", rest, ok)
	}

	// A suffix starting inside a codepoint byte-matches but is rejected by
	// the split boundary check.
	if _, ok := StripSuffix(sparkleHeart, sparkleHeart[2:]); ok {
		t.Error("StripSuffix starting inside a codepoint reported ok")
	}
}

func TestStripRoundTrip(t *testing.T) {
	s := "naïve café"

	for i := 0; i <= len(s); i++ {
		prefix, _, err := SplitAt(s, i)
		if err != nil {
			continue
		}
		rest, ok := StripPrefix(s, prefix)
		if !ok {
			t.Fatalf("true prefix %q did not strip", prefix)
		}
		if prefix+rest != s {
			t.Errorf("prefix %q + rest %q does not reconstruct %q", prefix, rest, s)
		}
	}
}

func TestHasPrefixHasSuffix(t *testing.T) {
	if !HasPrefix("hello world", "hello") {
		t.Error(`HasPrefix("hello world", "hello") = false`)
	}
	if HasPrefix("hello world", "world") {
		t.Error(`HasPrefix("hello world", "world") = true`)
	}
	if !HasSuffix("hello world", "world") {
		t.Error(`HasSuffix("hello world", "world") = false`)
	}
	if HasSuffix("hello world", "hello") {
		t.Error(`HasSuffix("hello world", "hello") = true`)
	}
	if !HasPrefix("anything", "") {
		t.Error("empty prefix did not match")
	}
}

func TestMustStrip(t *testing.T) {
	if got := MustStripPrefix("abcde", "ab"); got != "cde" {
		t.Errorf("MustStripPrefix = %q, want cde", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustStripSuffix with a non-suffix did not panic")
		}
	}()
	MustStripSuffix("abcde", "xyz")
}
