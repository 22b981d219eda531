package substitution_test

import (
	"testing"

	"github.com/krypteia/krypteia-go/pkg/classical/substitution"
)

func TestAdditiveEncrypt(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  int
		want string
	}{
		{"classic shift", "ATTACKATDAWN", 3, "DWWDFNDWGDZQ"},
		{"mixed case", "Attack at dawn!", 3, "Dwwdfn dw gdzq!"},
		{"wraps alphabet", "xyz", 3, "abc"},
		{"negative key", "DWWDFN", -3, "ATTACK"},
		{"key beyond 26", "ABC", 27, "BCD"},
		{"zero key", "Hello, World.", 0, "Hello, World."},
		{"non-alpha only", "123 !?", 9, "123 !?"},
		{"empty", "", 5, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := substitution.AdditiveEncrypt(tc.text, tc.key); got != tc.want {
				t.Fatalf("AdditiveEncrypt(%q, %d) = %q, want %q", tc.text, tc.key, got, tc.want)
			}
		})
	}
}

func TestAdditiveRoundTrip(t *testing.T) {
	texts := []string{"HELLO", "Hello, World! 42", "zzz ZZZ", ""}
	keys := []int{0, 1, 3, 13, 25, 26, -7, 100}

	for _, text := range texts {
		for _, key := range keys {
			enc := substitution.AdditiveEncrypt(text, key)
			dec := substitution.AdditiveDecrypt(enc, key)
			if dec != text {
				t.Fatalf("round trip failed for text %q key %d: got %q", text, key, dec)
			}
		}
	}
}
