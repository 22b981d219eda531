package substitution_test

import (
	"errors"
	"testing"

	"github.com/krypteia/krypteia-go/pkg/classical"
	"github.com/krypteia/krypteia-go/pkg/classical/substitution"
)

func TestAffineEncrypt(t *testing.T) {
	// Standard textbook vector: a=5, b=8 maps AFFINECIPHER -> IHHWVCSWFRCP
	if got := substitution.AffineEncrypt("AFFINECIPHER", 5, 8); got != "IHHWVCSWFRCP" {
		t.Fatalf("AffineEncrypt(AFFINECIPHER, 5, 8) = %q, want IHHWVCSWFRCP", got)
	}
	if got := substitution.AffineEncrypt("affine cipher!", 5, 8); got != "ihhwvc swfrcp!" {
		t.Fatalf("AffineEncrypt lower = %q, want \"ihhwvc swfrcp!\"", got)
	}
}

func TestAffineRoundTrip(t *testing.T) {
	pairs := []struct{ a, b int }{
		{1, 0}, {3, 7}, {5, 8}, {7, 2}, {11, 15}, {25, 25}, {5, -3}, {21, 100},
	}
	texts := []string{"DEFENDTHEEASTWALL", "Defend the east wall, 9pm!", ""}

	for _, p := range pairs {
		for _, text := range texts {
			enc := substitution.AffineEncrypt(text, p.a, p.b)
			dec, err := substitution.AffineDecrypt(enc, p.a, p.b)
			if err != nil {
				t.Fatalf("decrypt with a=%d b=%d: %v", p.a, p.b, err)
			}
			if dec != text {
				t.Fatalf("round trip failed for a=%d b=%d: got %q, want %q", p.a, p.b, dec, text)
			}
		}
	}
}

func TestAffineDecryptNonInvertibleMultiplier(t *testing.T) {
	// 13 shares factor 13 with 26
	out, err := substitution.AffineDecrypt("SOMETEXT", 13, 5)
	if !errors.Is(err, classical.ErrKeyNotInvertible) {
		t.Fatalf("err = %v, want ErrKeyNotInvertible", err)
	}
	if out != "" {
		t.Fatalf("expected empty output on invalid key, got %q", out)
	}

	if _, err := substitution.AffineDecrypt("SOMETEXT", 2, 0); !errors.Is(err, classical.ErrKeyNotInvertible) {
		t.Fatalf("a=2: err = %v, want ErrKeyNotInvertible", err)
	}
}
