package nibbles

import (
	"errors"
	"fmt"
)

var ErrInvalidDigit = errors.New("invalid digit")

// BitIndex is the positional weight of a bit in a nibble.
type BitIndex int

var Weights = []BitIndex{1, 2, 4, 8}

func (i BitIndex) Valid() bool {
	switch i {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

func (i BitIndex) position() int {
	switch i {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	}
	return -1
}

func CheckIndex(index BitIndex) error {
	if !index.Valid() {
		return fmt.Errorf("%d is not a legal digit: %w", index, ErrInvalidDigit)
	}
	return nil
}

func Digit(n Nibble, index BitIndex) (Bit, error) {
	if err := CheckIndex(index); err != nil {
		return 0, err
	}
	return n[index.position()], nil
}

func MustDigit(n Nibble, index BitIndex) Bit {
	bit, err := Digit(n, index)
	if err != nil {
		panic(err)
	}
	return bit
}
