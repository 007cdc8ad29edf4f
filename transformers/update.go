package transformers

// Update is a computed next nibble. Description is diagnostic only.
type Update struct {
	Value       Nibble
	Description string
}

type BitUpdate struct {
	Value       Bit
	Description string
}
