package keypad

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit is returned when a token starts with a character that
	// is not a lettered button ('2'..'9').
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrInvalidPosition is returned when a token is empty or longer than
	// the number of letters on its button.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrMixedToken is returned in strict mode when a token mixes digits.
	ErrMixedToken = errors.New("token mixes digits")
	// ErrUnencodableCharacter is returned when a character has no keypad letter.
	ErrUnencodableCharacter = errors.New("unencodable character")
	ErrEmptySeparator       = errors.New("empty separator")
)

// TokenError describes a token that could not be decoded.
type TokenError struct {
	Token string
	// Word and Index locate the token in the input. Both are -1 when the
	// token was decoded on its own.
	Word  int
	Index int
	Err   error
}

func (e *TokenError) Error() string {
	if e.Word < 0 {
		return fmt.Sprintf("%v: token %q", e.Err, e.Token)
	}
	return fmt.Sprintf("%v: token %q (word %d, token %d)", e.Err, e.Token, e.Word, e.Index)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// CharacterError describes a character that could not be encoded.
type CharacterError struct {
	Char rune
	// Offset is the byte offset of Char in the input phrase.
	Offset int
	Err    error
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", e.Err, e.Char, e.Offset)
}

func (e *CharacterError) Unwrap() error {
	return e.Err
}
