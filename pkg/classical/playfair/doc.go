// Package playfair implements the classic 5x5 Playfair digraph cipher.
//
// The key square is built from the keyword's letters, deduplicated in
// first-seen order with J folded into I, then completed with the remaining
// alphabet. Text is prepared into digraphs: letters only, J folded to I, a
// filler X inserted between doubled letters, and a trailing odd letter
// padded with the filler.
//
// Each digraph maps through the square's row, column, or rectangle rule.
// Output letters are re-aligned onto the original text's positions and case;
// filler-driven letters beyond the original letter count are appended in
// upper case, so the cipher stream survives a round trip:
//
//	enc := playfair.Encrypt("HELLO", "MONARCHY") // "CFSUPM"
//	playfair.Decrypt(enc, "MONARCHY")            // "HELXLO", filler retained
//
// Decryption never strips fillers; recovering "HELLO" from "HELXLO" is left
// to the reader, as the historical cipher demands.
package playfair
