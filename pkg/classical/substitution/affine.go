package substitution

import (
	"strings"

	"github.com/krypteia/krypteia-go/pkg/classical"
)

// AffineEncrypt maps each letter index x to (a*x + b) mod 26, preserving
// case. Encryption accepts any pair; decryption additionally needs a to be
// coprime with 26.
func AffineEncrypt(text string, a, b int) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if !classical.IsLetter(r) {
			sb.WriteRune(r)
			continue
		}
		x := classical.LetterIndex(r)
		y := (a*x + b) % classical.AlphabetSize
		if y < 0 {
			y += classical.AlphabetSize
		}
		sb.WriteRune(classical.ToCase(rune('A'+y), r))
	}
	return sb.String()
}

// AffineDecrypt computes x = a⁻¹*(y - b) mod 26 per letter. It fails with
// ErrKeyNotInvertible when a has no inverse mod 26.
func AffineDecrypt(text string, a, b int) (string, error) {
	inv, ok := classical.ModInverse(a, classical.AlphabetSize)
	if !ok {
		return "", classical.NewError("affine.Decrypt", classical.ErrKeyNotInvertible)
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if !classical.IsLetter(r) {
			sb.WriteRune(r)
			continue
		}
		y := classical.LetterIndex(r)
		x := (inv * (y - b)) % classical.AlphabetSize
		if x < 0 {
			x += classical.AlphabetSize
		}
		sb.WriteRune(classical.ToCase(rune('A'+x), r))
	}
	return sb.String(), nil
}
