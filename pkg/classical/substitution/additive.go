package substitution

import (
	"strings"

	"github.com/krypteia/krypteia-go/pkg/classical"
)

// AdditiveEncrypt shifts each letter forward by key positions mod 26,
// preserving case. Any integer key is valid; it is normalized by modulo.
func AdditiveEncrypt(text string, key int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(classical.ShiftRune(r, key))
	}
	return b.String()
}

// AdditiveDecrypt reverses AdditiveEncrypt by shifting backward.
func AdditiveDecrypt(text string, key int) string {
	return AdditiveEncrypt(text, -key)
}
