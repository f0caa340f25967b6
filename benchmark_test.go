package inline

import (
	"strings"
	"testing"
)

var benchSample = strings.Repeat("Some *italic*, some **bold**, ***both*** and `code` in [a *group*] with \\* escapes.\n", 64)

func BenchmarkTokenize(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchSample)))
	for i := 0; i < b.N; i++ {
		if _, err := Tokenize(benchSample); err != nil {
			b.Fatalf("tokenize: %v", err)
		}
	}
}

func BenchmarkTokenizeAsteriskRuns(b *testing.B) {
	src := strings.Repeat("****** a ***b** *c***", 128)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Tokenize(src); err != nil {
			b.Fatalf("tokenize: %v", err)
		}
	}
}

func BenchmarkTokenizeNestedGroups(b *testing.B) {
	src := strings.Repeat("[", 64) + "deep *text*" + strings.Repeat("]", 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Tokenize(src); err != nil {
			b.Fatalf("tokenize: %v", err)
		}
	}
}
