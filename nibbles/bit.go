package nibbles

type Bit uint8

const (
	Off Bit = 0
	On  Bit = 1
)

func ToBit(b bool) Bit {
	if b {
		return On
	}
	return Off
}

func (b Bit) Bool() bool {
	return b == On
}

func (b Bit) Not() Bit {
	return b ^ 1
}

func (b Bit) String() string {
	if b == On {
		return "1"
	}
	return "0"
}
