// Package substitution implements the monoalphabetic substitution family:
// additive (Caesar), multiplicative, affine, and arbitrary 26-letter
// permutation ciphers.
//
// Each cipher is a stateless per-character mapping built from its key. Case
// is preserved and non-alphabetic characters pass through in place.
//
// # Usage
//
//	out := substitution.AdditiveEncrypt("Attack at dawn", 3)
//	// "Dwwdfn dw gdzq"
//
//	plain, err := substitution.AffineDecrypt(out, 5, 8)
//	if errors.Is(err, classical.ErrKeyNotInvertible) {
//	    // multiplier shares a factor with 26
//	}
//
// Multiplicative and affine decryption require the multiplier to be coprime
// with 26; the missing inverse is reported as ErrKeyNotInvertible before any
// character is transformed. The monoalphabetic key must be a 26-letter
// permutation of the alphabet and is rejected with ErrMalformedKey otherwise.
package substitution
