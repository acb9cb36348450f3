package flags

import "strings"

// Match resolves the text after the dashes of a flag token to a flag.
//
// For a short scan (long == false) the first flag whose short name equals
// token[0] wins and the remainder is everything after that byte.
//
// For a long scan, every flag whose long name is a prefix of token is a
// candidate and the longest name wins, so "--seconded=x" picks "seconded"
// over "second". Among names of equal length the first in table order wins.
// The remainder is what follows the chosen name, e.g "=x".
//
// Match does not allocate and does not modify the table.
func (t Table) Match(token string, long bool) (index int, remainder string, ok bool) {
	if token == "" {
		return -1, "", false
	}

	if !long {
		c := token[0]
		for i := range t {
			if t[i].hasShort && t[i].short == c {
				return i, token[1:], true
			}
		}
		return -1, "", false
	}

	index = -1
	longest := 0
	for i := range t {
		name, hasLong := t[i].LongName()
		if !hasLong || len(name) <= longest {
			continue
		}
		if strings.HasPrefix(token, name) {
			index = i
			longest = len(name)
		}
	}
	if index < 0 {
		return -1, "", false
	}
	return index, token[longest:], true
}
