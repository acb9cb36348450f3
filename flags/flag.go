package flags

import (
	"strconv"
	"strings"

	"github.com/toiletbril/go-flags/internal/intern"
)

// FlagType represents the kind of value a flag carries
type FlagType int

const (
	// FlagTypeBool flags take no value; their presence sets them to true.
	// Several of them can be combined in one short token, e.g -vAsn.
	FlagTypeBool FlagType = iota
	// FlagTypeString flags take a value. For short name 'k' and long name
	// "key" the value can be given as --key value, --key=value, -k value,
	// -k=value or -kvalue.
	FlagTypeString
)

// String returns the string representation of the flag type
func (t FlagType) String() string {
	switch t {
	case FlagTypeBool:
		return "bool"
	case FlagTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Flag describes one recognized flag. Short and long names are both
// optional, but a flag must have at least one of them.
//
// Flags are plain values: build them with Bool or String and the With*
// methods, then put them in a Table.
type Flag struct {
	Type        FlagType
	Description string

	short    byte
	long     string
	hasShort bool
	hasLong  bool
}

// Bool returns a boolean flag with no names set
func Bool() Flag { return Flag{Type: FlagTypeBool} }

// String returns a string-valued flag with no names set
func String() Flag { return Flag{Type: FlagTypeString} }

// WithShort sets the single-character name matched after one dash
func (f Flag) WithShort(c byte) Flag {
	f.short = c
	f.hasShort = true
	return f
}

// WithLong sets the name matched after two dashes
func (f Flag) WithLong(name string) Flag {
	f.long = name
	f.hasLong = true
	return f
}

// WithDescription sets the help text shown by Describe callers
func (f Flag) WithDescription(description string) Flag {
	f.Description = description
	return f
}

// ShortName returns the short name and whether the flag has one
func (f Flag) ShortName() (byte, bool) { return f.short, f.hasShort }

// LongName returns the long name and whether the flag has one
func (f Flag) LongName() (string, bool) { return f.long, f.hasLong && f.long != "" }

// Name returns the long name if present, otherwise the short name
func (f Flag) Name() string {
	if f.hasLong && f.long != "" {
		return f.long
	}
	if f.hasShort {
		return intern.Byte(f.short)
	}
	return ""
}

// Describe renders the flag the way usage lines list it, e.g "-b, --seconded=<...>"
func (f Flag) Describe() string {
	var b strings.Builder
	if f.hasShort {
		b.WriteByte(introducer)
		b.WriteByte(f.short)
	}
	if long, ok := f.LongName(); ok {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString("--")
		b.WriteString(long)
	}
	if f.Type == FlagTypeString {
		b.WriteString("=<...>")
	}
	return b.String()
}

// Table is the ordered set of flags a parser recognizes. Order only matters
// when names collide: the first short match wins, and among equally long
// long-name prefixes the first one wins.
type Table []Flag

// Validate reports configuration mistakes that would make some flag
// unreachable or resolution ambiguous: an empty table, a flag without names,
// names that collide with the syntax, and duplicated short or long names.
func (t Table) Validate() error {
	if err := t.validate(true); err != nil {
		return err
	}
	return nil
}

// validate checks the table; duplicate names are only rejected when
// checkDuplicates is set
func (t Table) validate(checkDuplicates bool) *ParseError {
	if len(t) == 0 {
		return newParseError(ErrorTypeInvalidConfig, "table", "no flags defined", -1)
	}

	for i := range t {
		f := &t[i]
		_, hasLong := f.LongName()
		if !f.hasShort && !hasLong {
			return newParseError(ErrorTypeInvalidConfig, "flag #"+strconv.Itoa(i),
				"flag has neither a short nor a long name", -1)
		}
		if f.hasShort && (f.short == introducer || f.short == 0) {
			return newParseError(ErrorTypeInvalidConfig, "flag #"+strconv.Itoa(i),
				"invalid short name", -1)
		}
		if hasLong && strings.IndexByte(f.long, separator) >= 0 {
			return newParseError(ErrorTypeInvalidConfig, f.long,
				"long name must not contain '='", -1)
		}

		if !checkDuplicates {
			continue
		}
		for j := 0; j < i; j++ {
			prev := &t[j]
			if f.hasShort && prev.hasShort && f.short == prev.short {
				return newParseError(ErrorTypeDuplicateFlag, intern.Byte(f.short), "duplicate short flag", -1)
			}
			if long, ok := prev.LongName(); ok && hasLong && long == f.long {
				err := newParseError(ErrorTypeDuplicateFlag, f.long, "duplicate long flag", -1)
				err.Long = true
				return err
			}
		}
	}

	return nil
}

// Lookup finds a flag by long name, or by short name when name is a single
// character that no long name claims. Returns -1 when nothing matches.
func (t Table) Lookup(name string) int {
	if name == "" {
		return -1
	}
	for i := range t {
		if long, ok := t[i].LongName(); ok && long == name {
			return i
		}
	}
	if len(name) == 1 {
		for i := range t {
			if t[i].hasShort && t[i].short == name[0] {
				return i
			}
		}
	}
	return -1
}

// longNames returns every long name in table order (used for suggestions)
func (t Table) longNames() []string {
	names := make([]string, 0, len(t))
	for i := range t {
		if long, ok := t[i].LongName(); ok {
			names = append(names, long)
		}
	}
	return names
}
