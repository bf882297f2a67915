package keypad

import "github.com/birdayz/flip/pkg/encoding"

var (
	_ encoding.Encoder = (*Codec)(nil)
	_ encoding.Decoder = (*Codec)(nil)
)

// Settings selects separators and policies for a Codec. Empty separators
// fall back to the package defaults, except WordSeparator where empty means
// the encoded text is decoded as a single word.
type Settings struct {
	CharSeparator   string
	WordSeparator   string
	InputSeparator  string
	OutputSeparator string
	SkipUnencodable bool
	Lenient         bool
}

// Codec applies a fixed set of Settings to Encode and Decode.
type Codec struct {
	settings Settings
	enc      []EncodeOption
	dec      []DecodeOption
}

// NewCodec returns a Codec for s.
func NewCodec(s Settings) *Codec {
	if s.CharSeparator == "" {
		s.CharSeparator = DefaultCharSeparator
	}
	if s.InputSeparator == "" {
		s.InputSeparator = DefaultInputSeparator
	}
	if s.OutputSeparator == "" {
		s.OutputSeparator = DefaultOutputSeparator
	}

	c := &Codec{settings: s}
	c.enc = append(c.enc, WithInputSeparator(s.InputSeparator), WithOutputSeparator(s.OutputSeparator))
	if s.SkipUnencodable {
		c.enc = append(c.enc, SkipUnencodable())
	}
	c.dec = append(c.dec, WithCharSeparator(s.CharSeparator))
	if s.WordSeparator != "" {
		c.dec = append(c.dec, WithWordSeparator(s.WordSeparator))
	}
	if s.Lenient {
		c.dec = append(c.dec, Lenient())
	}
	return c
}

// Settings returns the settings with defaults applied.
func (c *Codec) Settings() Settings {
	return c.settings
}

func (c *Codec) EncodeString(phrase string) (string, error) {
	return Encode(phrase, c.enc...)
}

func (c *Codec) DecodeString(encoded string) (string, error) {
	return Decode(encoded, c.dec...)
}

// Encode implements encoding.Encoder.
func (c *Codec) Encode(in []byte) ([]byte, error) {
	out, err := c.EncodeString(string(in))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Decode implements encoding.Decoder.
func (c *Codec) Decode(in []byte) ([]byte, error) {
	out, err := c.DecodeString(string(in))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
