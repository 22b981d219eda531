package main

import (
	"fmt"

	"github.com/krypteia/krypteia-go/pkg/classical/playfair"
	"github.com/krypteia/krypteia-go/pkg/classical/polyalphabetic"
	"github.com/krypteia/krypteia-go/pkg/classical/substitution"
	"github.com/krypteia/krypteia-go/pkg/classical/transposition"
)

// transformOpts carries every parameter a cipher may need. The has* flags
// distinguish an omitted numeric option from a zero value.
type transformOpts struct {
	text  string
	key   string
	key2  string
	shift int
	a     int
	b     int
	depth int

	hasShift bool
	hasA     bool
	hasB     bool
	hasDepth bool
}

// runTransform routes to exactly one core transform. Every branch is a
// straight call into the cipher packages; no cipher logic lives here.
func runTransform(cipher, mode string, opts transformOpts) (string, error) {
	encrypt := mode == "encrypt"

	switch cipher {
	case "additive":
		if !opts.hasShift {
			return "", fmt.Errorf("additive cipher requires --shift")
		}
		if encrypt {
			return substitution.AdditiveEncrypt(opts.text, opts.shift), nil
		}
		return substitution.AdditiveDecrypt(opts.text, opts.shift), nil

	case "multiplicative":
		if !opts.hasShift {
			return "", fmt.Errorf("multiplicative cipher requires --shift")
		}
		if encrypt {
			return substitution.MultiplicativeEncrypt(opts.text, opts.shift), nil
		}
		return substitution.MultiplicativeDecrypt(opts.text, opts.shift)

	case "affine":
		if !opts.hasA || !opts.hasB {
			return "", fmt.Errorf("affine cipher requires --a and --b")
		}
		if encrypt {
			return substitution.AffineEncrypt(opts.text, opts.a, opts.b), nil
		}
		return substitution.AffineDecrypt(opts.text, opts.a, opts.b)

	case "monoalphabetic":
		if encrypt {
			return substitution.MonoalphabeticEncrypt(opts.text, opts.key)
		}
		return substitution.MonoalphabeticDecrypt(opts.text, opts.key)

	case "autokey":
		if encrypt {
			return polyalphabetic.AutokeyEncrypt(opts.text, opts.key), nil
		}
		return polyalphabetic.AutokeyDecrypt(opts.text, opts.key), nil

	case "vigenere":
		if encrypt {
			return polyalphabetic.VigenereEncrypt(opts.text, opts.key), nil
		}
		return polyalphabetic.VigenereDecrypt(opts.text, opts.key), nil

	case "playfair":
		if encrypt {
			return playfair.Encrypt(opts.text, opts.key), nil
		}
		return playfair.Decrypt(opts.text, opts.key), nil

	case "railfence":
		depth := 3
		if opts.hasDepth {
			depth = opts.depth
		}
		if encrypt {
			return transposition.RailFenceEncrypt(opts.text, depth), nil
		}
		return transposition.RailFenceDecrypt(opts.text, depth), nil

	case "columnar":
		if encrypt {
			return transposition.ColumnarEncrypt(opts.text, opts.key)
		}
		return transposition.ColumnarDecrypt(opts.text, opts.key)

	case "combination":
		if encrypt {
			return transposition.CombinationEncrypt(opts.text, opts.key)
		}
		return transposition.CombinationDecrypt(opts.text, opts.key)

	case "double":
		if encrypt {
			return transposition.DoubleColumnarEncrypt(opts.text, opts.key, opts.key2)
		}
		return transposition.DoubleColumnarDecrypt(opts.text, opts.key, opts.key2)
	}

	return "", fmt.Errorf("unknown cipher %q", cipher)
}
