//nolint:testpackage // using package name 'flags' to access unexported fields for testing
package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// exampleTable is the table of the basic example program. "second" is a
// prefix of "seconded" on purpose.
func exampleTable() Table {
	return Table{
		Bool().WithShort('a').WithLong("first"),
		String().WithShort('b').WithLong("seconded"),
		Bool().WithShort('c').WithLong("third"),
		String().WithShort('d').WithLong("second"),
		Bool().WithShort('e').WithLong("something"),
	}
}

const (
	idxFirst = iota
	idxSeconded
	idxThird
	idxSecond
	idxSomething
)

func TestTable_Match(t *testing.T) {
	table := exampleTable()

	tests := []struct {
		name      string
		token     string
		long      bool
		index     int
		remainder string
		ok        bool
	}{
		{"short exact", "a", false, idxFirst, "", true},
		{"short with rest", "abc", false, idxFirst, "bc", true},
		{"short glued value", "dvalue", false, idxSecond, "value", true},
		{"short unknown", "x", false, -1, "", false},
		{"short ignores long names", "first", false, -1, "", false},
		{"long exact", "first", true, idxFirst, "", true},
		{"long with separator", "seconded=x", true, idxSeconded, "=x", true},
		{"long shorter of two prefixes", "second=x", true, idxSecond, "=x", true},
		{"long glued", "secondedx", true, idxSeconded, "x", true},
		{"long trailing text", "firstly", true, idxFirst, "ly", true},
		{"long incomplete", "secon", true, -1, "", false},
		{"long unknown", "unknown", true, -1, "", false},
		{"long ignores short names", "a", true, -1, "", false},
		{"empty short", "", false, -1, "", false},
		{"empty long", "", true, -1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, remainder, ok := table.Match(tt.token, tt.long)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.index, index)
			require.Equal(t, tt.remainder, remainder)
		})
	}
}

func TestTable_MatchLongestWins(t *testing.T) {
	t.Run("later longer candidate overrides", func(t *testing.T) {
		table := Table{
			Bool().WithLong("a"),
			Bool().WithLong("abc"),
			Bool().WithLong("ab"),
		}
		index, remainder, ok := table.Match("abcd", true)
		require.True(t, ok)
		require.Equal(t, 1, index)
		require.Equal(t, "d", remainder)
	})

	t.Run("equal length keeps first", func(t *testing.T) {
		table := Table{
			Bool().WithLong("x"),
			Bool().WithLong("ab"),
			String().WithLong("ab"),
		}
		index, remainder, ok := table.Match("ab=1", true)
		require.True(t, ok)
		require.Equal(t, 1, index)
		require.Equal(t, "=1", remainder)
	})

	t.Run("empty long name never matches", func(t *testing.T) {
		table := Table{Bool().WithShort('q').WithLong("")}
		_, _, ok := table.Match("anything", true)
		require.False(t, ok)
	})
}

func TestTable_MatchShortFirstWins(t *testing.T) {
	table := Table{
		Bool().WithLong("only-long"),
		Bool().WithShort('x'),
		String().WithShort('x'),
	}
	index, remainder, ok := table.Match("xyz", false)
	require.True(t, ok)
	require.Equal(t, 1, index)
	require.Equal(t, "yz", remainder)
}

func TestTable_MatchZeroAlloc(t *testing.T) {
	table := exampleTable()
	allocs := testing.AllocsPerRun(1000, func() {
		_, _, _ = table.Match("seconded=value", true)
		_, _, _ = table.Match("acb", false)
	})
	require.Zero(t, allocs)
}
