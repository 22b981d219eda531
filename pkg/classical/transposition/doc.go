// Package transposition implements the transposition cipher family:
// keyless rail-fence, keyed columnar, and their compositions.
//
// Unlike the substitution families, these ciphers legitimately rearrange
// every character of the text, non-alphabetic ones included; nothing is
// filtered or re-cased.
//
//   - RailFenceEncrypt walks the text in a zig-zag across depth rails and
//     concatenates the rails top to bottom. Depth <= 1 is the identity.
//   - ColumnarEncrypt lays the text row-major into a grid and reads columns
//     in the rank order derived from the key's letters (ties broken by the
//     letter's original position).
//   - CombinationEncrypt chains columnar then rail-fence at depth 3;
//     CombinationDecrypt composes the two inverses in reverse order.
//   - DoubleColumnarEncrypt chains columnar with two keys; decryption
//     reverses the key order.
//
// Columnar keys must contain at least one alphabetic character; otherwise
// ErrMalformedKey is reported before any work is done.
package transposition
