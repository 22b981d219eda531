package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/krypteia/krypteia-go/pkg/classical"
)

func TestRunTransformRoutes(t *testing.T) {
	tests := []struct {
		name   string
		cipher string
		mode   string
		opts   transformOpts
		want   string
	}{
		{
			name:   "additive encrypt",
			cipher: "additive",
			mode:   "encrypt",
			opts:   transformOpts{text: "ABC", shift: 3, hasShift: true},
			want:   "DEF",
		},
		{
			name:   "vigenere encrypt",
			cipher: "vigenere",
			mode:   "encrypt",
			opts:   transformOpts{text: "ATTACKATDAWN", key: "LEMON"},
			want:   "LXFOPVEFRNHR",
		},
		{
			name:   "vigenere decrypt",
			cipher: "vigenere",
			mode:   "decrypt",
			opts:   transformOpts{text: "LXFOPVEFRNHR", key: "LEMON"},
			want:   "ATTACKATDAWN",
		},
		{
			name:   "railfence default depth",
			cipher: "railfence",
			mode:   "encrypt",
			opts:   transformOpts{text: "WEAREDISCOVERED"},
			want:   "WECRERDSOEEAIVD",
		},
		{
			name:   "playfair encrypt",
			cipher: "playfair",
			mode:   "encrypt",
			opts:   transformOpts{text: "HELLO", key: "MONARCHY"},
			want:   "CFSUPM",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runTransform(tt.cipher, tt.mode, tt.opts)
			if err != nil {
				t.Fatalf("runTransform(%q, %q) error: %v", tt.cipher, tt.mode, err)
			}
			if got != tt.want {
				t.Fatalf("runTransform(%q, %q) = %q, want %q", tt.cipher, tt.mode, got, tt.want)
			}
		})
	}
}

func TestRunTransformMissingNumericOption(t *testing.T) {
	_, err := runTransform("additive", "encrypt", transformOpts{text: "ABC"})
	if err == nil {
		t.Fatal("expected error for missing shift")
	}
	if !strings.Contains(err.Error(), "--shift") {
		t.Fatalf("error %q does not name the missing flag", err)
	}
}

func TestRunTransformUnknownCipher(t *testing.T) {
	_, err := runTransform("enigma", "encrypt", transformOpts{text: "ABC"})
	if err == nil {
		t.Fatal("expected error for unknown cipher")
	}
}

func TestRunTransformPropagatesKeyErrors(t *testing.T) {
	_, err := runTransform("multiplicative", "decrypt", transformOpts{text: "ABC", shift: 4, hasShift: true})
	if !errors.Is(err, classical.ErrKeyNotInvertible) {
		t.Fatalf("expected ErrKeyNotInvertible, got %v", err)
	}
}
