//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"bytes"
	"testing"

	fuzzy "github.com/toiletbril/go-flags/internal/fuzzy"
	intern "github.com/toiletbril/go-flags/internal/intern"
	pool "github.com/toiletbril/go-flags/internal/pool"
	flagsio "github.com/toiletbril/go-flags/io"
)

// Category: intern

func BenchmarkInternByte(b *testing.B) {
	testBytes := []byte{'a', 'h', 'v', 'c', 'p', 'd'}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = intern.Byte(testBytes[i%len(testBytes)])
	}
}

// Category: pool

func BenchmarkPool_GetPut(b *testing.B) {
	p := pool.New(func() *[]string {
		s := make([]string, 0, 8)
		return &s
	})

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			obj := p.Get()
			*obj = append((*obj)[:0], "prog", "-a")
			p.Put(obj)
		}
	})
}

// Category: fuzzy

func BenchmarkMatcher_Best(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	candidates := []string{
		"help", "version", "verbose", "config", "output", "input",
		"force", "debug", "port", "host", "timeout", "retry",
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Best("verbos", candidates)
	}
}

// Category: io

func BenchmarkLogger_Debug(b *testing.B) {
	buf := &bytes.Buffer{}
	log := flagsio.NewLogger(flagsio.New().WithOut(buf).NoColor()).WithLevel(flagsio.LevelDebug)
	b.Run("Enabled", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			log.Debug("args[%d] %q: positional", i, "pos")
			buf.Reset()
		}
	})
	b.Run("Disabled", func(b *testing.B) {
		quiet := flagsio.NewLogger(flagsio.New().WithOut(buf).NoColor())
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if quiet.Enabled(flagsio.LevelDebug) {
				quiet.Debug("args[%d] %q: positional", i, "pos")
			}
		}
	})
}
