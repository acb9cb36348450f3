package flags

import (
	"github.com/toiletbril/go-flags/internal/fuzzy"
	"github.com/toiletbril/go-flags/internal/pool"
	flagsio "github.com/toiletbril/go-flags/io"
)

// Parser parses argument vectors against one Table. Once warmed up, a
// successful Parse with a fixed mask does not allocate: the result, its
// mask and its value slots are reused, and values point into args.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	table Table

	dynamic         bool
	skipProgram     bool
	allowDuplicates bool
	suggest         bool
	maxDistance     int
	onError         ErrorCallback
	log             *flagsio.Logger

	checked  bool
	tableErr *ParseError

	result Result
}

// NewParser creates a parser for table. The table must not be modified
// while the parser is in use.
func NewParser(table Table) *Parser {
	p := &Parser{
		table:       table,
		maxDistance: 2,
	}
	p.result.reset(table, 0, false)
	return p
}

// DynamicMask lets the mask grow past MaskBits arguments. Parsing more than
// MaskBits arguments then allocates, once, for the wider mask.
func (p *Parser) DynamicMask(enabled bool) *Parser {
	p.dynamic = enabled
	return p
}

// SkipProgramName leaves args[0] out of the scan: it is neither a flag nor
// a positional argument, and its bit is never set.
func (p *Parser) SkipProgramName(enabled bool) *Parser {
	p.skipProgram = enabled
	return p
}

// AllowDuplicates disables the duplicate name check. A duplicated short or
// long name then resolves to the first flag in table order that has it.
func (p *Parser) AllowDuplicates(enabled bool) *Parser {
	p.allowDuplicates = enabled
	p.checked = false
	return p
}

// SuggestFlags enables "did you mean" suggestions on unknown long flags
func (p *Parser) SuggestFlags(enabled bool) *Parser {
	p.suggest = enabled
	return p
}

// MaxDistance sets the maximum edit distance for suggestions
func (p *Parser) MaxDistance(distance int) *Parser {
	p.maxDistance = distance
	return p
}

// OnError registers a callback invoked with the cause and message of every
// failed parse
func (p *Parser) OnError(callback ErrorCallback) *Parser {
	p.onError = callback
	return p
}

// Logger traces how every argument is classified, at debug level
func (p *Parser) Logger(log *flagsio.Logger) *Parser {
	p.log = log
	return p
}

// Table returns the table the parser was built with
func (p *Parser) Table() Table { return p.table }

// Parse classifies args. args usually is os.Args, program name included;
// index 0 is scanned like any other argument unless SkipProgramName is set.
//
// On success the returned Result is owned by the parser and is overwritten
// by the next call. On failure the result is nil and the error is a
// *ParseError.
func (p *Parser) Parse(args []string) (*Result, error) {
	if err := checkInput(p.table, len(args), p.dynamic); err != nil {
		return nil, p.fail(err)
	}

	if !p.checked {
		p.tableErr = p.table.validate(!p.allowDuplicates)
		p.checked = true
	}
	if p.tableErr != nil {
		return nil, p.fail(p.tableErr)
	}

	p.result.reset(p.table, len(args), p.dynamic)
	start := 0
	if p.skipProgram {
		start = 1
	}
	if err := scan(p.table, args, start, &p.result, p.log); err != nil {
		return nil, p.fail(err)
	}

	return &p.result, nil
}

// fail decorates err and reports it to the callback
func (p *Parser) fail(err *ParseError) error {
	if p.suggest && err.Type == ErrorTypeUnknownFlag && err.Long {
		err.Suggestion = fuzzy.Suggest(err.Cause, p.table.longNames(), p.maxDistance)
	}
	if p.log != nil {
		p.log.Debug("parse failed: %s", err)
	}
	if p.onError != nil {
		p.onError(err.Cause, err.Message)
	}
	return err
}

// checkInput rejects inputs the scan cannot handle. Capacity is checked
// before emptiness.
func checkInput(table Table, argc int, dynamic bool) *ParseError {
	if !dynamic && argc > MaskBits {
		return newParseError(ErrorTypeTooManyArgs, "argc", msgTooManyArgs, -1)
	}
	if len(table) == 0 || argc == 0 {
		return newParseError(ErrorTypeInvalidConfig, "Parse()", msgInvalidInput, -1)
	}
	return nil
}

var resultPool = pool.New(func() *Result {
	return &Result{pooled: true}
})

// Parse parses args against table with default settings: fixed mask,
// duplicate names rejected. The result comes from a pool; call Release when
// done with it. Safe for concurrent use.
func Parse(table Table, args []string) (*Result, error) {
	if err := checkInput(table, len(args), false); err != nil {
		return nil, err
	}
	if err := table.validate(true); err != nil {
		return nil, err
	}

	res := resultPool.Get()
	res.reset(table, len(args), false)
	if err := scan(table, args, 0, res, nil); err != nil {
		res.Release()
		return nil, err
	}
	return res, nil
}
