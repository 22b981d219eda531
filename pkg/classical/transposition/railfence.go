package transposition

import "strings"

// RailFenceEncrypt writes every character of text (non-alphabetic included)
// into a zig-zag across depth rails, reversing direction at the top and
// bottom rail, then concatenates the rails top to bottom. A depth of 1 or
// less is the identity transform.
func RailFenceEncrypt(text string, depth int) string {
	if depth <= 1 {
		return text
	}
	rails := make([][]rune, depth)
	rail, dir := 0, 1
	for _, r := range text {
		rails[rail] = append(rails[rail], r)
		rail += dir
		if rail == depth-1 {
			dir = -1
		} else if rail == 0 {
			dir = 1
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, row := range rails {
		b.WriteString(string(row))
	}
	return b.String()
}

// RailFenceDecrypt recomputes the zig-zag pattern for the ciphertext's
// length, slices the ciphertext into per-rail segments, then replays the
// pattern popping the next unused character from each indicated rail.
func RailFenceDecrypt(text string, depth int) string {
	if depth <= 1 {
		return text
	}
	runes := []rune(text)
	pattern := railPattern(len(runes), depth)

	counts := make([]int, depth)
	for _, r := range pattern {
		counts[r]++
	}

	segments := make([][]rune, depth)
	idx := 0
	for rail, n := range counts {
		segments[rail] = runes[idx : idx+n]
		idx += n
	}

	out := make([]rune, 0, len(runes))
	offsets := make([]int, depth)
	for _, rail := range pattern {
		out = append(out, segments[rail][offsets[rail]])
		offsets[rail]++
	}
	return string(out)
}

// railPattern returns the rail index visited at each position of a zig-zag
// walk of length n.
func railPattern(n, depth int) []int {
	pattern := make([]int, n)
	rail, dir := 0, 1
	for i := 0; i < n; i++ {
		pattern[i] = rail
		rail += dir
		if rail == depth-1 {
			dir = -1
		} else if rail == 0 {
			dir = 1
		}
	}
	return pattern
}
