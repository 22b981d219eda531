// Package classical provides shared primitives for the krypteia classical
// cipher toolkit: the fixed 26-letter alphabet, case-preserving character
// shifts, modular arithmetic, and the error types used across the cipher
// subpackages.
//
// The cipher families live in focused subpackages:
//
//   - substitution: additive (Caesar), multiplicative, affine, and
//     monoalphabetic permutation ciphers
//   - polyalphabetic: Vigenère and autokey ciphers
//   - playfair: the 5x5 digraph cipher
//   - transposition: rail-fence, keyed columnar, and their compositions
//
// Every transform is a pure function of its inputs. Alphabetic characters
// carry the semantic content; non-alphabetic characters pass through
// untouched wherever a cipher's design permits positional preservation.
//
// # Error Handling
//
// Key validation failures are reported as sentinel errors wrapped in
// *classical.Error, never as partial output:
//
//	out, err := substitution.MultiplicativeDecrypt(text, 4)
//	if errors.Is(err, classical.ErrKeyNotInvertible) {
//	    // 4 shares a factor with 26; ask for a coprime key
//	}
//
// # Security Considerations
//
// These are historical ciphers reproduced with their known weaknesses. They
// offer no resistance to cryptanalysis and must not be used to protect real
// secrets.
package classical
