// Package rangeexpr parses textual range expressions into bounds.Range
// values. It exists so tools can accept ranges on the command line or in
// configuration with the same notation the library uses internally:
//
//	"2..5"   half-open [2, 5)
//	"2..=5"  inclusive [2, 5]
//	"2.."    from offset 2 to the end
//	"..5"    from the start, end exclusive
//	"..=5"   from the start, end inclusive
//	".."     the full source
//
// Offsets are non-negative decimal integers. Surrounding whitespace is
// ignored; anything else is a parse error.
package rangeexpr
