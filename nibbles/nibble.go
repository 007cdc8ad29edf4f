package nibbles

import "strings"

// Nibble is a 4-bit value stored least significant bit first.
type Nibble [4]Bit

const Size = 16

func ToNibble(n int) Nibble {
	m := n % Size
	if m < 0 {
		m += Size
	}
	return Nibble{
		Bit(m & 1),
		Bit(m >> 1 & 1),
		Bit(m >> 2 & 1),
		Bit(m >> 3 & 1),
	}
}

func ToInt(n Nibble) int {
	return int(n[0]) | int(n[1])<<1 | int(n[2])<<2 | int(n[3])<<3
}

func (n Nibble) Int() int {
	return ToInt(n)
}

// AddBits adds modulo 16. Overflow is dropped silently; carries are detected by
// comparing successive values.
func AddBits(a, b Nibble) Nibble {
	return ToNibble(ToInt(a) + ToInt(b))
}

func Add(a Nibble, n int) Nibble {
	return ToNibble(ToInt(a) + n)
}

func TwosComplement(n Nibble) Nibble {
	return ToNibble(ToInt(n)^15 + 1)
}

func (n Nibble) Not() Nibble {
	return ToNibble(ToInt(n) ^ 15)
}

// Shift pushes b in at the 1-bit position and drops the 8-bit.
func (n Nibble) Shift(b Bit) Nibble {
	return Nibble{b, n[0], n[1], n[2]}
}

// Bits renders the nibble in storage order, 1-bit first.
func (n Nibble) Bits() string {
	var b strings.Builder
	for _, bit := range n {
		b.WriteString(bit.String())
	}
	return b.String()
}
