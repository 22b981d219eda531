package substitution

import (
	"strings"

	"github.com/krypteia/krypteia-go/pkg/classical"
)

// MultiplicativeEncrypt maps each letter's alphabet index x to key*x mod 26,
// preserving case. Encryption accepts any key; a key that is not coprime with
// 26 still encrypts but cannot be decrypted.
func MultiplicativeEncrypt(text string, key int) string {
	return multiplyText(text, key)
}

// MultiplicativeDecrypt inverts MultiplicativeEncrypt. It fails with
// ErrKeyNotInvertible when the key has no inverse mod 26, before touching
// the text.
func MultiplicativeDecrypt(text string, key int) (string, error) {
	inv, ok := classical.ModInverse(key, classical.AlphabetSize)
	if !ok {
		return "", classical.NewError("multiplicative.Decrypt", classical.ErrKeyNotInvertible)
	}
	return multiplyText(text, inv), nil
}

func multiplyText(text string, factor int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !classical.IsLetter(r) {
			b.WriteRune(r)
			continue
		}
		x := classical.LetterIndex(r)
		y := (x * factor) % classical.AlphabetSize
		if y < 0 {
			y += classical.AlphabetSize
		}
		b.WriteRune(classical.ToCase(rune('A'+y), r))
	}
	return b.String()
}
