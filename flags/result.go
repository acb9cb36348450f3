package flags

// Result holds the outcome of a successful parse: the positional mask and
// the value of every flag, indexed like the Table it was parsed with.
//
// String values are substrings of the parsed arguments, never copies. A
// Result returned by (*Parser).Parse is reused by the next call on that
// parser; copy out what you need before parsing again.
type Result struct {
	table  Table
	mask   Mask
	set    []bool
	values []string
	words  []uint64

	pooled bool
}

// reset prepares the result for a parse of argc arguments against table
func (r *Result) reset(table Table, argc int, dynamic bool) {
	r.table = table

	if cap(r.set) < len(table) {
		r.set = make([]bool, len(table))
		r.values = make([]string, len(table))
	} else {
		r.set = r.set[:len(table)]
		r.values = r.values[:len(table)]
		clear(r.set)
		clear(r.values)
	}

	n := 1
	if dynamic && argc > MaskBits {
		n = (argc + 63) / 64
	}
	if cap(r.words) < n {
		r.words = make([]uint64, n)
	} else {
		r.words = r.words[:n]
		clear(r.words)
	}
	r.mask = Mask{words: r.words}
}

func (r *Result) setBool(i int) {
	r.set[i] = true
}

func (r *Result) setString(i int, value string) {
	r.set[i] = true
	r.values[i] = value
}

// Mask returns the positional argument mask
func (r *Result) Mask() Mask { return r.mask }

// ArgCount returns the number of positional arguments
func (r *Result) ArgCount() int { return r.mask.ArgCount() }

// IsArg reports whether args[i] is a positional argument
func (r *Result) IsArg(i int) bool { return r.mask.IsArg(i) }

// Args returns the positional arguments of args, in order
func (r *Result) Args(args []string) []string {
	return r.mask.AppendArgs(make([]string, 0, r.mask.ArgCount()), args)
}

// IsSet reports whether the flag at table index i appeared
func (r *Result) IsSet(i int) bool {
	return i >= 0 && i < len(r.set) && r.set[i]
}

// Bool returns the value of the boolean flag at table index i
func (r *Result) Bool(i int) bool {
	return r.IsSet(i)
}

// Value returns the value of the string flag at table index i and whether
// it was given. A flag given several times keeps its last value.
func (r *Result) Value(i int) (string, bool) {
	if !r.IsSet(i) {
		return "", false
	}
	return r.values[i], true
}

// GetBool retrieves a boolean flag by long name, or by short name. The
// second result reports whether the name is a known boolean flag.
func (r *Result) GetBool(name string) (bool, bool) {
	i := r.table.Lookup(name)
	if i < 0 || r.table[i].Type != FlagTypeBool {
		return false, false
	}
	return r.set[i], true
}

// GetString retrieves a string flag by long name, or by short name. The
// second result reports whether the flag was given.
func (r *Result) GetString(name string) (string, bool) {
	i := r.table.Lookup(name)
	if i < 0 || r.table[i].Type != FlagTypeString {
		return "", false
	}
	return r.Value(i)
}

// MustGetBool retrieves a boolean flag or returns the default
func (r *Result) MustGetBool(name string, defaultValue bool) bool {
	if v, ok := r.GetBool(name); ok && v {
		return v
	}
	return defaultValue
}

// MustGetString retrieves a string flag or returns the default
func (r *Result) MustGetString(name, defaultValue string) string {
	if v, ok := r.GetString(name); ok {
		return v
	}
	return defaultValue
}

// Release hands a result obtained from the package-level Parse back for
// reuse. The result must not be used afterwards. Results owned by a Parser
// ignore Release.
func (r *Result) Release() {
	if r == nil || !r.pooled {
		return
	}
	r.table = nil
	clear(r.values)
	resultPool.Put(r)
}
