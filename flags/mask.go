package flags

import (
	"math/bits"
	"strings"
)

// MaskBits is the width of a fixed mask, and so the maximum number of
// arguments a parser accepts unless DynamicMask is enabled.
const MaskBits = 64

// Mask records which argument indexes are positional arguments: bit i is set
// when args[i] is neither a flag nor a flag's value.
//
// A Mask shares its words with the Result it came from and must be treated
// as read-only.
type Mask struct {
	words []uint64
}

// MaskOf builds a fixed-width mask from raw bits, for callers that kept the
// value from Uint64.
func MaskOf(raw uint64) Mask {
	return Mask{words: []uint64{raw}}
}

func (m Mask) set(i int) {
	m.words[i/64] |= 1 << (uint(i) % 64)
}

// IsArg reports whether args[i] is a positional argument. Indexes outside
// the mask are never arguments.
func (m Mask) IsArg(i int) bool {
	if i < 0 || i >= m.Width() {
		return false
	}
	return m.words[i/64]&(1<<(uint(i)%64)) != 0
}

// ArgCount returns the number of positional arguments
func (m Mask) ArgCount() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Width returns the number of indexes the mask can represent
func (m Mask) Width() int {
	return len(m.words) * 64
}

// Empty reports whether no argument is positional
func (m Mask) Empty() bool {
	for _, w := range m.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Uint64 returns the bits for indexes 0 to 63
func (m Mask) Uint64() uint64 {
	if len(m.words) == 0 {
		return 0
	}
	return m.words[0]
}

// AppendArgs appends every positional element of args to dst
func (m Mask) AppendArgs(dst, args []string) []string {
	for i, arg := range args {
		if m.IsArg(i) {
			dst = append(dst, arg)
		}
	}
	return dst
}

// String prints one character per index, index 0 first
func (m Mask) String() string {
	var b strings.Builder
	b.Grow(m.Width())
	for i := 0; i < m.Width(); i++ {
		if m.IsArg(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// IsArg reports whether args[i] is a positional argument in m
func IsArg(m Mask, i int) bool { return m.IsArg(i) }

// ArgCount returns the number of positional arguments in m
func ArgCount(m Mask) int { return m.ArgCount() }
