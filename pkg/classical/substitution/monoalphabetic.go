package substitution

import (
	"strings"

	"github.com/krypteia/krypteia-go/pkg/classical"
)

// MonoalphabeticEncrypt substitutes each letter through a 26-letter
// permutation key: the i-th alphabet letter maps to the i-th key letter.
// The key is validated as an exact permutation (case-insensitive) before any
// character is transformed; otherwise ErrMalformedKey is returned.
func MonoalphabeticEncrypt(text, key string) (string, error) {
	table, ok := permutationTable(key)
	if !ok {
		return "", classical.NewError("monoalphabetic.Encrypt", classical.ErrMalformedKey)
	}
	return substituteText(text, table), nil
}

// MonoalphabeticDecrypt applies the exact inverse of the permutation built
// by MonoalphabeticEncrypt, subject to the same key validation.
func MonoalphabeticDecrypt(text, key string) (string, error) {
	table, ok := permutationTable(key)
	if !ok {
		return "", classical.NewError("monoalphabetic.Decrypt", classical.ErrMalformedKey)
	}
	var inverse [classical.AlphabetSize]rune
	for i, r := range table {
		inverse[classical.LetterIndex(r)] = rune('A' + i)
	}
	return substituteText(text, inverse), nil
}

// permutationTable builds the alphabet-index -> key-letter table, reporting
// false unless the key is exactly 26 letters with each letter appearing once.
func permutationTable(key string) ([classical.AlphabetSize]rune, bool) {
	var table [classical.AlphabetSize]rune
	var seen [classical.AlphabetSize]bool

	runes := []rune(key)
	if len(runes) != classical.AlphabetSize {
		return table, false
	}
	for i, r := range runes {
		if !classical.IsLetter(r) {
			return table, false
		}
		idx := classical.LetterIndex(r)
		if seen[idx] {
			return table, false
		}
		seen[idx] = true
		table[i] = rune('A' + idx)
	}
	return table, true
}

func substituteText(text string, table [classical.AlphabetSize]rune) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !classical.IsLetter(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(classical.ToCase(table[classical.LetterIndex(r)], r))
	}
	return b.String()
}
