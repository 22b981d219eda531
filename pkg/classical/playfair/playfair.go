package playfair

import (
	"strings"

	"github.com/krypteia/krypteia-go/pkg/classical"
)

const (
	squareSize = 5
	filler     = 'X'
)

// keySquare is the 5x5 Playfair grid plus each letter's position.
type keySquare struct {
	grid [squareSize][squareSize]rune
	pos  [classical.AlphabetSize]position
}

type position struct {
	row, col int
}

// newKeySquare builds the grid from the keyword: letters only, first-seen
// dedup, J folded to I, then the remaining alphabet in order.
func newKeySquare(keyword string) *keySquare {
	var used [classical.AlphabetSize]bool
	cells := make([]rune, 0, squareSize*squareSize)

	place := func(r rune) {
		if r == 'J' {
			r = 'I'
		}
		idx := classical.LetterIndex(r)
		if used[idx] {
			return
		}
		used[idx] = true
		cells = append(cells, r)
	}

	for _, r := range keyword {
		if classical.IsLetter(r) {
			place(rune('A' + classical.LetterIndex(r)))
		}
	}
	for _, r := range classical.Alphabet {
		place(r)
	}

	ks := &keySquare{}
	for i, r := range cells {
		row, col := i/squareSize, i%squareSize
		ks.grid[row][col] = r
		ks.pos[classical.LetterIndex(r)] = position{row, col}
	}
	// J shares I's cell.
	ks.pos[classical.LetterIndex('J')] = ks.pos[classical.LetterIndex('I')]
	return ks
}

// mapDigraph applies the row/column/rectangle rule to one digraph.
// dir is +1 for encryption and -1 for decryption; the rectangle case is
// self-inverse and ignores dir.
func (ks *keySquare) mapDigraph(a, b rune, dir int) (rune, rune) {
	pa := ks.pos[classical.LetterIndex(a)]
	pb := ks.pos[classical.LetterIndex(b)]

	switch {
	case pa.row == pb.row:
		return ks.grid[pa.row][wrap(pa.col+dir)], ks.grid[pb.row][wrap(pb.col+dir)]
	case pa.col == pb.col:
		return ks.grid[wrap(pa.row+dir)][pa.col], ks.grid[wrap(pb.row+dir)][pb.col]
	default:
		return ks.grid[pa.row][pb.col], ks.grid[pb.row][pa.col]
	}
}

func wrap(i int) int {
	return ((i % squareSize) + squareSize) % squareSize
}

// prepare projects text onto upper-case letters with J folded to I, inserts
// the filler between doubled digraph letters, and pads a trailing odd letter.
func prepare(text string) []rune {
	letters := make([]rune, 0, len(text))
	for _, r := range text {
		if !classical.IsLetter(r) {
			continue
		}
		u := rune('A' + classical.LetterIndex(r))
		if u == 'J' {
			u = 'I'
		}
		letters = append(letters, u)
	}

	out := make([]rune, 0, len(letters)+2)
	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 == len(letters) {
			out = append(out, a)
			i++
			continue
		}
		if b := letters[i+1]; a == b {
			out = append(out, a, filler)
			i++
		} else {
			out = append(out, a, b)
			i += 2
		}
	}
	if len(out)%2 == 1 {
		out = append(out, filler)
	}
	return out
}

// Encrypt applies the Playfair cipher with the given keyword. The cipher
// stream is mapped back onto the original text's positions and case;
// filler-driven overflow letters are appended in upper case so decryption
// can recover the full digraph stream.
func Encrypt(text, keyword string) string {
	ks := newKeySquare(keyword)
	prepared := prepare(text)

	stream := make([]rune, 0, len(prepared))
	for i := 0; i+1 < len(prepared); i += 2 {
		a, b := ks.mapDigraph(prepared[i], prepared[i+1], 1)
		stream = append(stream, a, b)
	}
	return realign(text, stream)
}

// Decrypt reverses Encrypt. An odd letters-only stream is padded with the
// filler to complete the final digraph rather than failing.
func Decrypt(text, keyword string) string {
	ks := newKeySquare(keyword)

	letters := make([]rune, 0, len(text))
	for _, r := range text {
		if !classical.IsLetter(r) {
			continue
		}
		u := rune('A' + classical.LetterIndex(r))
		if u == 'J' {
			u = 'I'
		}
		letters = append(letters, u)
	}
	if len(letters)%2 == 1 {
		letters = append(letters, filler)
	}

	stream := make([]rune, 0, len(letters))
	for i := 0; i+1 < len(letters); i += 2 {
		a, b := ks.mapDigraph(letters[i], letters[i+1], -1)
		stream = append(stream, a, b)
	}
	return realign(text, stream)
}

// realign maps the transformed letter stream onto the original text: letters
// take the next stream letter in the original position's case, non-letters
// stay in place, and any stream letters beyond the original letter count are
// appended in upper case.
func realign(text string, stream []rune) string {
	var b strings.Builder
	b.Grow(len(text) + len(stream))
	next := 0
	for _, r := range text {
		if classical.IsLetter(r) && next < len(stream) {
			b.WriteRune(classical.ToCase(stream[next], r))
			next++
			continue
		}
		b.WriteRune(r)
	}
	for ; next < len(stream); next++ {
		b.WriteRune(stream[next])
	}
	return b.String()
}
