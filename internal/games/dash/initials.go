package dash

import "strings"

const initialsLen = 3

// Initials collects up to three letters for the leaderboard.
type Initials struct {
	letters []rune
}

// Type appends an ASCII letter, uppercased. Anything else, or a fourth
// letter, is ignored. Returns whether the input was accepted.
func (in *Initials) Type(r rune) bool {
	if len(in.letters) >= initialsLen {
		return false
	}
	switch {
	case r >= 'a' && r <= 'z':
		r -= 'a' - 'A'
	case r >= 'A' && r <= 'Z':
	default:
		return false
	}
	in.letters = append(in.letters, r)
	return true
}

// Backspace removes the last letter.
func (in *Initials) Backspace() {
	if len(in.letters) > 0 {
		in.letters = in.letters[:len(in.letters)-1]
	}
}

// Clear drops everything typed so far.
func (in *Initials) Clear() {
	in.letters = in.letters[:0]
}

// Typed returns the letters entered so far.
func (in Initials) Typed() string {
	return string(in.letters)
}

// Name returns the submitted name: padded with 'A' to three letters,
// "AAA" when nothing was typed.
func (in Initials) Name() string {
	name := string(in.letters)
	return name + strings.Repeat("A", initialsLen-len(in.letters))
}
