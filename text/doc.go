// Package text provides the seq operation family for UTF-8 strings, with
// one extra guarantee: no operation ever produces a string that starts or
// ends inside a multi-byte codepoint.
//
// Offsets and ranges are byte offsets into the string, exactly as with
// native string slicing. A range whose boundary lands on a UTF-8
// continuation byte fails with ErrSplitsCodepoint; bounds violations are
// reported first, and the codepoint check runs only once bounds are known
// to be valid. Given valid UTF-8 input, every successful result is
// therefore valid UTF-8 end to end.
//
// There is deliberately no single-byte Index operation: one byte of a
// multi-byte codepoint is not text. Callers who need byte-level access can
// operate on []byte(s) through the seq package.
package text
