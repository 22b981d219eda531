package substitution_test

import (
	"errors"
	"testing"

	"github.com/krypteia/krypteia-go/pkg/classical"
	"github.com/krypteia/krypteia-go/pkg/classical/substitution"
)

func TestMultiplicativeEncrypt(t *testing.T) {
	// With key 3: A(0)->A, B(1)->D, C(2)->G
	if got := substitution.MultiplicativeEncrypt("ABC", 3); got != "ADG" {
		t.Fatalf("MultiplicativeEncrypt(ABC, 3) = %q, want ADG", got)
	}
	// Case and punctuation preserved
	if got := substitution.MultiplicativeEncrypt("abc, ABC!", 3); got != "adg, ADG!" {
		t.Fatalf("MultiplicativeEncrypt mixed = %q, want \"adg, ADG!\"", got)
	}
}

func TestMultiplicativeRoundTrip(t *testing.T) {
	coprime := []int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25}
	texts := []string{"THEQUICKBROWNFOX", "Mixed Case, with 7 digits!", ""}

	for _, key := range coprime {
		for _, text := range texts {
			enc := substitution.MultiplicativeEncrypt(text, key)
			dec, err := substitution.MultiplicativeDecrypt(enc, key)
			if err != nil {
				t.Fatalf("decrypt with key %d: %v", key, err)
			}
			if dec != text {
				t.Fatalf("round trip failed for key %d: got %q, want %q", key, dec, text)
			}
		}
	}
}

func TestMultiplicativeDecryptNonInvertibleKey(t *testing.T) {
	// Encryption with a non-coprime key succeeds...
	enc := substitution.MultiplicativeEncrypt("HELLO", 4)
	if enc == "" {
		t.Fatal("encryption with key 4 should still produce output")
	}

	// ...but decryption reports the missing inverse instead of garbling.
	for _, key := range []int{0, 2, 4, 13, 26, -2} {
		out, err := substitution.MultiplicativeDecrypt("HELLO", key)
		if !errors.Is(err, classical.ErrKeyNotInvertible) {
			t.Fatalf("key %d: err = %v, want ErrKeyNotInvertible", key, err)
		}
		if out != "" {
			t.Fatalf("key %d: expected empty output on invalid key, got %q", key, out)
		}
	}
}
