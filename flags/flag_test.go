//nolint:testpackage // using package name 'flags' to access unexported fields for testing
package flags

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlag_Names(t *testing.T) {
	f := Bool().WithShort('a').WithLong("first").WithDescription("first flag")

	short, ok := f.ShortName()
	require.True(t, ok)
	require.Equal(t, byte('a'), short)

	long, ok := f.LongName()
	require.True(t, ok)
	require.Equal(t, "first", long)
	require.Equal(t, "first", f.Name())
	require.Equal(t, "first flag", f.Description)

	shortOnly := String().WithShort('k')
	_, ok = shortOnly.LongName()
	require.False(t, ok)
	require.Equal(t, "k", shortOnly.Name())

	longOnly := Bool().WithLong("fifth")
	_, ok = longOnly.ShortName()
	require.False(t, ok)
	require.Equal(t, "fifth", longOnly.Name())
}

func TestFlag_Describe(t *testing.T) {
	require.Equal(t, "-a, --first", Bool().WithShort('a').WithLong("first").Describe())
	require.Equal(t, "-b, --seconded=<...>", String().WithShort('b').WithLong("seconded").Describe())
	require.Equal(t, "-f=<...>", String().WithShort('f').Describe())
	require.Equal(t, "--fifth", Bool().WithLong("fifth").Describe())
}

func TestFlagType_String(t *testing.T) {
	require.Equal(t, "bool", FlagTypeBool.String())
	require.Equal(t, "string", FlagTypeString.String())
	require.Equal(t, "unknown", FlagType(7).String())
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		errType ErrorType
		cause   string
	}{
		{
			name:  "valid",
			table: exampleTable(),
		},
		{
			name:    "empty",
			table:   Table{},
			errType: ErrorTypeInvalidConfig,
			cause:   "table",
		},
		{
			name:    "no names",
			table:   Table{Bool().WithShort('a'), Bool()},
			errType: ErrorTypeInvalidConfig,
			cause:   "flag #1",
		},
		{
			name:    "dash as short name",
			table:   Table{Bool().WithShort('-')},
			errType: ErrorTypeInvalidConfig,
			cause:   "flag #0",
		},
		{
			name:    "separator in long name",
			table:   Table{String().WithLong("key=value")},
			errType: ErrorTypeInvalidConfig,
			cause:   "key=value",
		},
		{
			name:    "duplicate short",
			table:   Table{Bool().WithShort('a').WithLong("first"), String().WithShort('a').WithLong("again")},
			errType: ErrorTypeDuplicateFlag,
			cause:   "a",
		},
		{
			name:    "duplicate long",
			table:   Table{Bool().WithShort('a').WithLong("first"), String().WithShort('b').WithLong("first")},
			errType: ErrorTypeDuplicateFlag,
			cause:   "first",
		},
		{
			name:  "long prefixes are not duplicates",
			table: Table{String().WithLong("second"), String().WithLong("seconded")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.errType == "" {
				require.NoError(t, err)
				return
			}
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tt.errType, pe.Type)
			require.Equal(t, tt.cause, pe.Cause)
		})
	}
}

func TestTable_Lookup(t *testing.T) {
	table := exampleTable()
	require.Equal(t, idxSeconded, table.Lookup("seconded"))
	require.Equal(t, idxSecond, table.Lookup("d"))
	require.Equal(t, -1, table.Lookup("secon"))
	require.Equal(t, -1, table.Lookup(""))

	// a one-letter long name is preferred over a short name
	mixed := Table{Bool().WithShort('x'), Bool().WithLong("x")}
	require.Equal(t, 1, mixed.Lookup("x"))
}
