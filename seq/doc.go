// Package seq provides safe view operations over element sequences:
// single-index lookup, range slicing, two-way splitting, lexicographic
// comparison, and prefix/suffix stripping.
//
// All operations are zero-copy: derived slices share the source's backing
// array and must not outlive it. Nothing is ever mutated.
//
// Every fallible operation comes in three forms. The base form returns an
// error, the Must form panics on failure, and the Try form reports failure
// as a false ok value:
//
//	part, err := seq.Slice(data, bounds.Span(1, 4))
//	part := seq.MustSlice(data, bounds.Span(1, 4))
//	part, ok := seq.TrySlice(data, bounds.Span(1, 4))
//
// Slicing and splitting accept any element type. Comparison and the
// prefix/suffix operations require an ordered element type, since they are
// defined in terms of elementwise ordering.
package seq
