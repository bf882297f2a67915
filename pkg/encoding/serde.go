package encoding

// Encoder reads user-provided text, and turns it into keypad tokens.
type Encoder interface {
	Encode([]byte) ([]byte, error)
}

// Decoder reads keypad tokens, and turns them back into readable text.
type Decoder interface {
	Decode([]byte) ([]byte, error)
}
