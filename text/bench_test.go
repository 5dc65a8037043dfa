package text

import (
	"strings"
	"testing"

	"github.com/dshills/sliceview/bounds"
)

func BenchmarkSlice(b *testing.B) {
	s := strings.Repeat("const slice ✨", 1000)
	r := bounds.Span(15, len(s)-15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Slice(s, r); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare(b *testing.B) {
	x := strings.Repeat("abc", 10000)
	y := x[:len(x)-1] + "d"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if Compare(x, y) != -1 {
			b.Fatal("unexpected ordering")
		}
	}
}

func BenchmarkStripPrefix(b *testing.B) {
	s := strings.Repeat("x", 4096) + "tail"
	prefix := s[:4096]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := StripPrefix(s, prefix); !ok {
			b.Fatal("prefix did not strip")
		}
	}
}
