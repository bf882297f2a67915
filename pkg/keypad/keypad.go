// Package keypad converts text to and from the multi-press letter encoding
// of a classic 12-key phone keypad.
package keypad

import "unicode"

// The layout is indexed by button. Buttons 0 and 1 carry no letters.
// A letter's position on its button is the number of presses needed to
// produce it.
var layout = [10][]rune{
	2: {'A', 'B', 'C'},
	3: {'D', 'E', 'F'},
	4: {'G', 'H', 'I'},
	5: {'J', 'K', 'L'},
	6: {'M', 'N', 'O'},
	7: {'P', 'Q', 'R', 'S'},
	8: {'T', 'U', 'V'},
	9: {'W', 'X', 'Y', 'Z'},
}

type slot struct {
	digit    byte
	position int
	token    string
}

// reverse maps 'A'..'Z' to the button and press count that produce it.
var reverse = buildReverse()

func buildReverse() [26]slot {
	var r [26]slot
	for d, letters := range layout {
		digit := byte('0' + d)
		for i, l := range letters {
			token := make([]byte, i+1)
			for j := range token {
				token[j] = digit
			}
			r[l-'A'] = slot{digit: digit, position: i + 1, token: string(token)}
		}
	}
	return r
}

// Key is one lettered button of the keypad.
type Key struct {
	Digit   byte
	Letters []rune
}

// Keys returns the lettered buttons in order, '2' through '9'.
func Keys() []Key {
	keys := make([]Key, 0, 8)
	for d, letters := range layout {
		if len(letters) == 0 {
			continue
		}
		keys = append(keys, Key{
			Digit:   byte('0' + d),
			Letters: append([]rune(nil), letters...),
		})
	}
	return keys
}

func lettersFor(digit byte) ([]rune, bool) {
	if digit < '0' || digit > '9' {
		return nil, false
	}
	letters := layout[digit-'0']
	return letters, len(letters) > 0
}

// Letter returns the letter produced by pressing digit position times.
func Letter(digit byte, position int) (rune, error) {
	letters, ok := lettersFor(digit)
	if !ok {
		return 0, ErrInvalidDigit
	}
	if position < 1 || position > len(letters) {
		return 0, ErrInvalidPosition
	}
	return letters[position-1], nil
}

// Position reports the button and press count for r. Lower case letters
// are folded to upper case first.
func Position(r rune) (digit byte, position int, ok bool) {
	s, ok := lookup(r)
	if !ok {
		return 0, 0, false
	}
	return s.digit, s.position, true
}

func lookup(r rune) (slot, bool) {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return slot{}, false
	}
	return reverse[r-'A'], true
}
