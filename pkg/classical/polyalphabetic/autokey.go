package polyalphabetic

import (
	"strings"

	"github.com/krypteia/krypteia-go/pkg/classical"
)

// AutokeyEncrypt shifts each letter of text by the next letter of the key
// stream, which is the keyword's letters followed by the plaintext's own
// letters. Case is preserved and non-letters pass through without consuming
// key material. A keyword with no letters leaves the text unchanged.
func AutokeyEncrypt(text, keyword string) string {
	stream := keyLetters(keyword)
	if len(stream) == 0 {
		return text
	}
	for _, r := range text {
		if classical.IsLetter(r) {
			stream = append(stream, rune('A'+classical.LetterIndex(r)))
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	ki := 0
	for _, r := range text {
		if !classical.IsLetter(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(classical.ShiftRune(r, classical.LetterIndex(stream[ki])))
		ki++
	}
	return b.String()
}

// AutokeyDecrypt reverses AutokeyEncrypt. Later key letters depend on
// earlier decrypted output, so the key stream is extended strictly in
// processing order: each newly decrypted letter is appended before the next
// ciphertext letter is consumed.
func AutokeyDecrypt(text, keyword string) string {
	stream := keyLetters(keyword)
	if len(stream) == 0 {
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
		plain := classical.ShiftRune(r, -classical.LetterIndex(stream[ki]))
		b.WriteRune(plain)
		stream = append(stream, rune('A'+classical.LetterIndex(plain)))
		ki++
	}
	return b.String()
}
