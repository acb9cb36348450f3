// Package flags is a command-line flag parser that does not allocate on the
// hot path.
//
// The caller describes the recognized flags in a Table. Parsing walks the
// argument vector once and classifies every argument as a flag, a flag's
// value, or a positional argument. Positional arguments are reported as a
// bit mask over argument indexes rather than a new slice, and string values
// are substrings of the arguments rather than copies.
//
//	table := flags.Table{
//		flags.Bool().WithShort('a').WithLong("first"),
//		flags.String().WithShort('b').WithLong("seconded"),
//	}
//	res, err := flags.NewParser(table).Parse(os.Args)
//	if err != nil {
//		fmt.Println(err)
//		os.Exit(flags.ExitCode(err))
//	}
//	first := res.Bool(0)
//	seconded, _ := res.GetString("seconded")
//	for i := range os.Args {
//		if res.IsArg(i) {
//			fmt.Println(os.Args[i])
//		}
//	}
//
// Recognized syntax:
//
//	-x                   boolean flag x
//	-xyz                 boolean flags x, y and z
//	-kVALUE              string flag k, value glued to the name
//	-k=VALUE, -k VALUE   string flag k
//	--key=VALUE          string flag key
//	--key VALUE          string flag key
//	--                   every following argument is positional
//	-                    a positional argument
//
// Long names match by prefix and the longest matching name wins, so a table
// with "second" and "seconded" resolves --seconded=x to "seconded". A value
// glued to a long name without "=" is an unknown flag.
//
// By default at most MaskBits arguments are accepted; see
// (*Parser).DynamicMask for longer argument vectors.
package flags
