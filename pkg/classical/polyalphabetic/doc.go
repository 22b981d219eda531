// Package polyalphabetic implements the Vigenère and autokey ciphers.
//
// Both ciphers consume a key stream aligned only to alphabetic positions:
// each letter of the text consumes exactly one key-stream letter, while
// non-alphabetic characters pass through without consuming any. Non-letters
// inside the keyword are ignored when building key material.
//
// Vigenère cycles the keyword's letters indefinitely. Autokey follows the
// keyword with the message itself: the plaintext's letters during
// encryption, and each newly decrypted letter during decryption. That makes
// autokey decryption inherently sequential; the key stream is extended one
// letter at a time as output is produced.
//
// A keyword containing no letters yields the identity transform in both
// directions.
package polyalphabetic
