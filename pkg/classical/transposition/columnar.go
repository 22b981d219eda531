package transposition

import (
	"sort"

	"github.com/krypteia/krypteia-go/pkg/classical"
)

// columnOrder derives each original column's read rank from the key: columns
// are ranked by letter value with ties broken by original left-to-right
// position. Non-letters in the key are ignored. Returns nil when the key has
// no letters.
func columnOrder(key string) []int {
	letters := make([]rune, 0, len(key))
	for _, r := range key {
		if classical.IsLetter(r) {
			letters = append(letters, rune('A'+classical.LetterIndex(r)))
		}
	}
	if len(letters) == 0 {
		return nil
	}

	indices := make([]int, len(letters))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return letters[indices[a]] < letters[indices[b]]
	})

	order := make([]int, len(letters))
	for rank, orig := range indices {
		order[orig] = rank
	}
	return order
}

// ColumnarEncrypt lays every character of text row-major into a grid with
// one column per key letter, then reads the columns in key rank order,
// skipping empty trailing cells. The key must contain at least one letter;
// otherwise ErrMalformedKey is reported.
func ColumnarEncrypt(text, key string) (string, error) {
	order := columnOrder(key)
	if order == nil {
		return "", classical.NewError("columnar.Encrypt", classical.ErrMalformedKey)
	}

	runes := []rune(text)
	n := len(runes)
	cols := len(order)

	// rankToCol[rank] is the original column read at that rank.
	rankToCol := make([]int, cols)
	for col, rank := range order {
		rankToCol[rank] = col
	}

	out := make([]rune, 0, n)
	for _, col := range rankToCol {
		for i := col; i < n; i += cols {
			out = append(out, runes[i])
		}
	}
	return string(out), nil
}

// ColumnarDecrypt computes how many cells each original column holds (the
// first len%cols columns get one extra), slices the ciphertext into column
// segments in rank order, then reassembles the text row-major.
func ColumnarDecrypt(text, key string) (string, error) {
	order := columnOrder(key)
	if order == nil {
		return "", classical.NewError("columnar.Decrypt", classical.ErrMalformedKey)
	}

	runes := []rune(text)
	n := len(runes)
	cols := len(order)
	base, extra := n/cols, n%cols

	rankToCol := make([]int, cols)
	for col, rank := range order {
		rankToCol[rank] = col
	}

	segments := make([][]rune, cols)
	idx := 0
	for _, col := range rankToCol {
		count := base
		if col < extra {
			count++
		}
		segments[col] = runes[idx : idx+count]
		idx += count
	}

	out := make([]rune, 0, n)
	offsets := make([]int, cols)
	for row := 0; row*cols < n; row++ {
		for col := 0; col < cols; col++ {
			if offsets[col] < len(segments[col]) {
				out = append(out, segments[col][offsets[col]])
				offsets[col]++
			}
		}
	}
	return string(out), nil
}
