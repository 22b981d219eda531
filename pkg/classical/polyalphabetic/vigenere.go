package polyalphabetic

import (
	"strings"

	"github.com/krypteia/krypteia-go/pkg/classical"
)

// VigenereEncrypt shifts each letter of text forward by the next letter of
// the cycled keyword, mod 26, preserving case. Non-letters in the keyword
// are skipped; non-letters in the text pass through without consuming key
// material. A keyword with no letters leaves the text unchanged.
func VigenereEncrypt(text, keyword string) string {
	return vigenereTransform(text, keyword, 1)
}

// VigenereDecrypt reverses VigenereEncrypt by shifting backward.
func VigenereDecrypt(text, keyword string) string {
	return vigenereTransform(text, keyword, -1)
}

func vigenereTransform(text, keyword string, direction int) string {
	key := keyLetters(keyword)
	if len(key) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	ki := 0
	for _, r := range text {
		if !classical.IsLetter(r) {
			b.WriteRune(r)
			continue
		}
		shift := direction * classical.LetterIndex(key[ki%len(key)])
		b.WriteRune(classical.ShiftRune(r, shift))
		ki++
	}
	return b.String()
}

// keyLetters projects a keyword onto its upper-case letters.
func keyLetters(keyword string) []rune {
	out := make([]rune, 0, len(keyword))
	for _, r := range keyword {
		if classical.IsLetter(r) {
			out = append(out, rune('A'+classical.LetterIndex(r)))
		}
	}
	return out
}
