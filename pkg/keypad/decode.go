package keypad

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultCharSeparator separates the tokens of a word.
const DefaultCharSeparator = " "

type decodeOptions struct {
	charSep    string
	wordSep    string
	hasWordSep bool
	lenient    bool
}

// DecodeOption configures Decode.
type DecodeOption func(*decodeOptions)

// WithCharSeparator sets the string between the tokens of a word.
func WithCharSeparator(sep string) DecodeOption {
	return func(o *decodeOptions) {
		o.charSep = sep
	}
}

// WithWordSeparator sets the string between encoded words. Without it the
// whole input is decoded as a single word.
func WithWordSeparator(sep string) DecodeOption {
	return func(o *decodeOptions) {
		o.wordSep = sep
		o.hasWordSep = true
	}
}

// Lenient decodes a token from its first character and its length without
// checking that every character is the same digit.
func Lenient() DecodeOption {
	return func(o *decodeOptions) {
		o.lenient = true
	}
}

// Decode turns keypad tokens back into upper case letters. Decoded words
// are joined with a single space. Empty tokens, as left by repeated
// separators, are skipped.
//
//	Decode("444 2 6")                            // "IAM"
//	Decode("444-2 6", WithWordSeparator("-"))    // "I AM"
func Decode(encoded string, opts ...DecodeOption) (string, error) {
	o := decodeOptions{charSep: DefaultCharSeparator}
	for _, opt := range opts {
		opt(&o)
	}
	if o.charSep == "" {
		return "", fmt.Errorf("character separator: %w", ErrEmptySeparator)
	}

	words := []string{encoded}
	if o.hasWordSep {
		if o.wordSep == "" {
			return "", fmt.Errorf("word separator: %w", ErrEmptySeparator)
		}
		words = strings.Split(encoded, o.wordSep)
	}

	decoded := make([]string, 0, len(words))
	var b strings.Builder
	for wi, word := range words {
		b.Reset()
		for ti, token := range strings.Split(word, o.charSep) {
			if token == "" {
				continue
			}
			r, err := decodeToken(token, o.lenient)
			if err != nil {
				return "", &TokenError{Token: token, Word: wi, Index: ti, Err: err}
			}
			b.WriteRune(r)
		}
		decoded = append(decoded, b.String())
	}
	return strings.Join(decoded, " "), nil
}

// DecodeToken decodes a single token such as "777" (R). The token must be
// one digit repeated.
func DecodeToken(token string) (rune, error) {
	if token == "" {
		return 0, &TokenError{Token: token, Word: -1, Index: -1, Err: ErrInvalidPosition}
	}
	r, err := decodeToken(token, false)
	if err != nil {
		return 0, &TokenError{Token: token, Word: -1, Index: -1, Err: err}
	}
	return r, nil
}

func decodeToken(token string, lenient bool) (rune, error) {
	digit := token[0]
	letters, ok := lettersFor(digit)
	if !ok {
		return 0, ErrInvalidDigit
	}

	n := len(token)
	if lenient {
		n = utf8.RuneCountInString(token)
	} else {
		for i := 1; i < len(token); i++ {
			if token[i] != digit {
				return 0, ErrMixedToken
			}
		}
	}

	if n > len(letters) {
		return 0, ErrInvalidPosition
	}
	return letters[n-1], nil
}
