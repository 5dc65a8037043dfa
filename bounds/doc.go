// Package bounds provides the range forms and bounds arithmetic shared by
// the seq and text packages.
//
// A Range describes one of six requested shapes over a sequence whose length
// is not known until resolution time:
//
//   - Span(start, end)       half-open [start, end)
//   - ClosedSpan(start, end) inclusive [start, end]
//   - From(start)            [start, len)
//   - To(end)                [0, end)
//   - ToClosed(end)          [0, end]
//   - Full()                 [0, len)
//
// Resolve validates a Range against a concrete length and normalizes it to
// an exclusive-end (start, end) pair. Validation is the only job of this
// package; it never touches element data.
//
// Note the inclusive-form asymmetry: a ClosedSpan always covers at least one
// element, so there is no way to express an empty inclusive range. This
// mirrors the asymmetry of inclusive ranges in most range notations and is
// deliberate.
package bounds
