package worldmask

import (
	"fmt"
	"math/bits"
)

const wordBits = 64

// Mask is a fixed-width bitset over 0..Width worlds, backed by packed
// 64-bit words. The zero value is not usable; construct with NewMask.
type Mask struct {
	width int
	words []uint64
}

// NewMask returns a Mask of the given width with every bit clear.
// Panics if width is negative.
func NewMask(width int) Mask {
	if width < 0 {
		panic(fmt.Sprintf("worldmask: negative width %d", width))
	}

	return Mask{
		width: width,
		words: make([]uint64, numWords(width)),
	}
}

// Full returns a Mask of the given width with every bit set.
func Full(width int) Mask {
	m := NewMask(width)
	for i := range m.words {
		m.words[i] = ^uint64(0)
	}
	m.clearTrailing()

	return m
}

func numWords(width int) int {
	return (width + wordBits - 1) / wordBits
}

// Width returns the number of worlds this mask covers.
func (m Mask) Width() int { return m.width }

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	out := Mask{width: m.width, words: make([]uint64, len(m.words))}
	copy(out.words, m.words)

	return out
}

// Test reports whether bit i (world i) is set.
// Panics if i is out of range.
func (m Mask) Test(i int) bool {
	m.mustInRange(i)

	return m.words[i/wordBits]&(uint64(1)<<(uint(i)%wordBits)) != 0
}

// Set sets bit i (world i) to v.
// Panics if i is out of range.
func (m Mask) Set(i int, v bool) {
	m.mustInRange(i)
	word := i / wordBits
	bit := uint64(1) << (uint(i) % wordBits)
	if v {
		m.words[word] |= bit
	} else {
		m.words[word] &^= bit
	}
}

// And returns the bitwise AND of m and other.
// Panics if the widths differ.
func (m Mask) And(other Mask) Mask {
	m.mustSameWidth(other)
	out := NewMask(m.width)
	for i := range out.words {
		out.words[i] = m.words[i] & other.words[i]
	}

	return out
}

// Or returns the bitwise OR of m and other.
// Panics if the widths differ.
func (m Mask) Or(other Mask) Mask {
	m.mustSameWidth(other)
	out := NewMask(m.width)
	for i := range out.words {
		out.words[i] = m.words[i] | other.words[i]
	}

	return out
}

// OrInPlace sets m to the bitwise OR of m and other.
// Panics if the widths differ.
func (m *Mask) OrInPlace(other Mask) {
	m.mustSameWidth(other)
	for i := range m.words {
		m.words[i] |= other.words[i]
	}
}

// IsZero reports whether every bit is clear.
func (m Mask) IsZero() bool {
	for _, w := range m.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// AllSet reports whether every bit in [0, Width) is set.
func (m Mask) AllSet() bool {
	full := Full(m.width)
	for i := range m.words {
		if m.words[i] != full.words[i] {
			return false
		}
	}

	return true
}

// PopCount returns the number of set bits.
func (m Mask) PopCount() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Equal reports whether m and other have the same width and bits.
func (m Mask) Equal(other Mask) bool {
	if m.width != other.width {
		return false
	}
	for i := range m.words {
		if m.words[i] != other.words[i] {
			return false
		}
	}

	return true
}

func (m Mask) clearTrailing() {
	if m.width%wordBits == 0 {
		return
	}
	last := len(m.words) - 1
	if last < 0 {
		return
	}
	validBits := uint(m.width % wordBits)
	m.words[last] &= (uint64(1) << validBits) - 1
}

func (m Mask) mustInRange(i int) {
	if i < 0 || i >= m.width {
		panic(fmt.Sprintf("worldmask: bit index %d out of range [0,%d)", i, m.width))
	}
}

func (m Mask) mustSameWidth(other Mask) {
	if m.width != other.width {
		panic(fmt.Sprintf("worldmask: width mismatch %d vs %d", m.width, other.width))
	}
}
