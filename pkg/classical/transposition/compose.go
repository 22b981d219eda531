package transposition

// combinationDepth is the fixed rail-fence depth of the combination cipher.
const combinationDepth = 3

// CombinationEncrypt applies keyed columnar transposition, then rail-fence
// at depth 3.
func CombinationEncrypt(text, key string) (string, error) {
	first, err := ColumnarEncrypt(text, key)
	if err != nil {
		return "", err
	}
	return RailFenceEncrypt(first, combinationDepth), nil
}

// CombinationDecrypt inverts CombinationEncrypt by composing the two base
// inverses in reverse order: rail-fence decrypt at depth 3, then columnar
// decrypt with the same key.
func CombinationDecrypt(text, key string) (string, error) {
	first := RailFenceDecrypt(text, combinationDepth)
	return ColumnarDecrypt(first, key)
}

// DoubleColumnarEncrypt applies keyed columnar transposition twice, with
// key1 then key2.
func DoubleColumnarEncrypt(text, key1, key2 string) (string, error) {
	first, err := ColumnarEncrypt(text, key1)
	if err != nil {
		return "", err
	}
	return ColumnarEncrypt(first, key2)
}

// DoubleColumnarDecrypt reverses DoubleColumnarEncrypt, decrypting with
// key2 first and key1 second.
func DoubleColumnarDecrypt(text, key1, key2 string) (string, error) {
	first, err := ColumnarDecrypt(text, key2)
	if err != nil {
		return "", err
	}
	return ColumnarDecrypt(first, key1)
}
