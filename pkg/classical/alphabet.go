package classical

// Alphabet is the fixed upper-case cipher alphabet.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AlphabetSize is the modulus for every substitution cipher in this module.
const AlphabetSize = 26

// IsLetter reports whether r is an ASCII letter. Characters outside A-Z and
// a-z are structurally inert for every cipher here.
func IsLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// LetterIndex returns the zero-based alphabet index of r, case-insensitive.
// The result is undefined for non-letters; callers check IsLetter first.
func LetterIndex(r rune) int {
	if r >= 'a' && r <= 'z' {
		return int(r - 'a')
	}
	return int(r - 'A')
}

// ShiftRune shifts a single letter by shift positions, wrapping mod 26 and
// preserving case. Negative shifts and shifts beyond 26 are normalized.
// Non-letters are returned unchanged.
func ShiftRune(r rune, shift int) rune {
	if !IsLetter(r) {
		return r
	}
	base := rune('A')
	if r >= 'a' {
		base = 'a'
	}
	offset := (int(r-base) + shift) % AlphabetSize
	if offset < 0 {
		offset += AlphabetSize
	}
	return base + rune(offset)
}

// ToCase maps an upper-case alphabet letter onto the case of model. It is
// used to re-case transform output onto the original text's case pattern.
func ToCase(letter, model rune) rune {
	if model >= 'a' && model <= 'z' {
		return letter - 'A' + 'a'
	}
	return letter
}
