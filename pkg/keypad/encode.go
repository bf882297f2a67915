package keypad

import (
	"fmt"
	"strings"
)

const (
	// DefaultInputSeparator separates the words of a phrase to encode.
	DefaultInputSeparator = " "
	// DefaultOutputSeparator joins encoded words.
	DefaultOutputSeparator = "-"
)

type encodeOptions struct {
	inputSep  string
	outputSep string
	skip      bool
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

// WithInputSeparator sets the string between the words of the phrase.
func WithInputSeparator(sep string) EncodeOption {
	return func(o *encodeOptions) {
		o.inputSep = sep
	}
}

// WithOutputSeparator sets the string placed between encoded words.
func WithOutputSeparator(sep string) EncodeOption {
	return func(o *encodeOptions) {
		o.outputSep = sep
	}
}

// SkipUnencodable drops characters that have no keypad letter instead of
// failing.
func SkipUnencodable() EncodeOption {
	return func(o *encodeOptions) {
		o.skip = true
	}
}

// Encode turns a phrase of letters into keypad tokens. Tokens within a word
// are joined with a single space, words with the output separator.
//
//	Encode("I AM") // "444-2 6"
func Encode(phrase string, opts ...EncodeOption) (string, error) {
	o := encodeOptions{
		inputSep:  DefaultInputSeparator,
		outputSep: DefaultOutputSeparator,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.inputSep == "" {
		return "", fmt.Errorf("input separator: %w", ErrEmptySeparator)
	}

	words := strings.Split(phrase, o.inputSep)
	encoded := make([]string, 0, len(words))
	offset := 0
	for _, word := range words {
		tokens := make([]string, 0, len(word))
		for i, r := range word {
			s, ok := lookup(r)
			if !ok {
				if o.skip {
					continue
				}
				return "", &CharacterError{Char: r, Offset: offset + i, Err: ErrUnencodableCharacter}
			}
			tokens = append(tokens, s.token)
		}
		encoded = append(encoded, strings.Join(tokens, " "))
		offset += len(word) + len(o.inputSep)
	}
	return strings.Join(encoded, o.outputSep), nil
}

// EncodeLetter returns the token for a single letter, e.g. "777" for 'r'.
func EncodeLetter(r rune) (string, error) {
	s, ok := lookup(r)
	if !ok {
		return "", &CharacterError{Char: r, Err: ErrUnencodableCharacter}
	}
	return s.token, nil
}
