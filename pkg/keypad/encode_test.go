package keypad

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		opts   []EncodeOption
		want   string
	}{
		{name: "two words", phrase: "I AM", want: "444-2 6"},
		{name: "lower case", phrase: "i am", want: "444-2 6"},
		{name: "positions on seven", phrase: "P Q R S", want: "7-77-777-7777"},
		{
			name:   "newline output separator",
			phrase: "YOU ARE",
			opts:   []EncodeOption{WithOutputSeparator("\n")},
			want:   "999 666 88\n2 777 33",
		},
		{
			name:   "custom input separator",
			phrase: "AS_BLACK",
			opts:   []EncodeOption{WithInputSeparator("_")},
			want:   "2 7777-22 555 2 222 55",
		},
		{name: "empty phrase", phrase: "", want: ""},
		{name: "double space keeps empty word", phrase: "I  AM", want: "444--2 6"},
		{
			name:   "skip drops unencodable characters",
			phrase: "A1B",
			opts:   []EncodeOption{SkipUnencodable()},
			want:   "2 22",
		},
		{
			name:   "skip with punctuation",
			phrase: "HI, YOU!",
			opts:   []EncodeOption{SkipUnencodable()},
			want:   "44 444-999 666 88",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.phrase, tt.opts...)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeUnencodable(t *testing.T) {
	tests := []struct {
		phrase string
		char   rune
		offset int
	}{
		{phrase: "A1B", char: '1', offset: 1},
		{phrase: "I AM!", char: '!', offset: 4},
		{phrase: "CAFÉ", char: 'É', offset: 3},
		{phrase: "HI\tYOU", char: '\t', offset: 2},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, err := Encode(tt.phrase)
			require.ErrorIs(t, err, ErrUnencodableCharacter)
			require.Empty(t, got)

			var charErr *CharacterError
			require.True(t, errors.As(err, &charErr))
			require.Equal(t, tt.char, charErr.Char)
			require.Equal(t, tt.offset, charErr.Offset)
		})
	}
}

func TestEncodeEmptyInputSeparator(t *testing.T) {
	_, err := Encode("I AM", WithInputSeparator(""))
	require.ErrorIs(t, err, ErrEmptySeparator)
}

func TestEncodeCaseInsensitive(t *testing.T) {
	for _, s := range []string{"hello", "Flip Phone", "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"} {
		want, err := Encode(s)
		require.NoError(t, err)

		upper, err := Encode(strings.ToUpper(s))
		require.NoError(t, err)
		lower, err := Encode(strings.ToLower(s))
		require.NoError(t, err)

		require.Equal(t, want, upper)
		require.Equal(t, want, lower)
	}
}

func TestRoundTrip(t *testing.T) {
	phrases := []string{
		"I AM",
		"as black as night",
		"You are an absolute poohead",
		"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
		"Z",
	}

	for _, p := range phrases {
		t.Run(p, func(t *testing.T) {
			encoded, err := Encode(p, WithInputSeparator(" "), WithOutputSeparator("-"))
			require.NoError(t, err)

			decoded, err := Decode(encoded, WithWordSeparator("-"))
			require.NoError(t, err)
			require.Equal(t, strings.ToUpper(p), decoded)
		})
	}
}

func TestEncodeLetter(t *testing.T) {
	token, err := EncodeLetter('s')
	require.NoError(t, err)
	require.Equal(t, "7777", token)

	_, err = EncodeLetter('7')
	require.ErrorIs(t, err, ErrUnencodableCharacter)
}
