package flags

import (
	"strings"

	"github.com/toiletbril/go-flags/internal/intern"
	flagsio "github.com/toiletbril/go-flags/io"
)

const (
	introducer = '-'
	separator  = '='
)

// scanState carries the parser state machine across one pass over args
type scanState struct {
	prev        int  // table index of the last matched flag
	prevArg     int  // argument index it was matched at
	prevLong    bool // it was matched in long form
	expectValue bool // the next argument is prev's value
	ignoreRest  bool // "--" was seen
}

// scan walks args[start:] once, left to right, recording flag values and
// positional indexes in res. It stops at the first error.
func scan(table Table, args []string, start int, res *Result, log *flagsio.Logger) *ParseError {
	st := scanState{prev: -1, prevArg: -1}
	trace := log != nil && log.Enabled(flagsio.LevelDebug)

	for i := start; i < len(args); i++ {
		arg := args[i]
		if st.expectValue {
			st.expectValue = false
			res.setString(st.prev, arg)
			if trace {
				log.Debug("args[%d] %q: value of %s", i, arg, table[st.prev].Name())
			}
			continue
		}

		if st.ignoreRest || len(arg) == 0 || arg[0] != introducer {
			res.mask.set(i)
			if trace {
				log.Debug("args[%d] %q: positional", i, arg)
			}
			continue
		}

		long := len(arg) > 1 && arg[1] == introducer
		text := arg[1:]
		if long {
			text = arg[2:]
		}

		if text == "" {
			if long {
				// "--": everything after it is positional
				st.ignoreRest = true
			} else {
				// "-" is an argument, usually meaning stdin
				res.mask.set(i)
			}
			if trace {
				log.Debug("args[%d] %q: positional or terminator", i, arg)
			}
			continue
		}

		if err := scanFlag(table, i, text, long, res, &st); err != nil {
			return err
		}
		if trace {
			log.Debug("args[%d] %q: flag %s", i, arg, table[st.prev].Name())
		}
	}

	if st.expectValue {
		err := newParseError(ErrorTypeMissingValue, "", msgNoValue, st.prevArg)
		f := &table[st.prev]
		if st.prevLong {
			err.Cause = f.long
			err.Long = true
		} else {
			err.Cause = intern.Byte(f.short)
		}
		return err
	}

	return nil
}

// scanFlag resolves one flag token. Short tokens may hold several boolean
// flags, and may end in a string flag whose value is the rest of the token.
func scanFlag(table Table, i int, text string, long bool, res *Result, st *scanState) *ParseError {
	for {
		idx, rem, ok := table.Match(text, long)
		if !ok {
			return unknownFlag(i, text, long)
		}

		st.prev = idx
		st.prevArg = i
		st.prevLong = long

		switch table[idx].Type {
		case FlagTypeBool:
			res.setBool(idx)
			if !long && rem != "" {
				text = rem
				continue
			}
		case FlagTypeString:
			switch {
			case rem == "":
				st.expectValue = true
			case rem[0] == separator:
				res.setString(idx, rem[1:])
			case long:
				// long flags need "=" before a value in the same token
				return unknownFlag(i, text, long)
			default:
				res.setString(idx, rem)
			}
		}
		return nil
	}
}

func unknownFlag(i int, text string, long bool) *ParseError {
	err := newParseError(ErrorTypeUnknownFlag, "", msgUnknownFlag, i)
	if long {
		if eq := strings.IndexByte(text, separator); eq >= 0 {
			text = text[:eq]
		}
		err.Cause = text
		err.Long = true
	} else {
		err.Cause = intern.Byte(text[0])
	}
	return err
}
