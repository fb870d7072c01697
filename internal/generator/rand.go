package generator

import (
	"crypto/rand"
	"math/big"
)

// randBelow returns a uniform random integer in [0, n) using crypto/rand.
func randBelow(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// randRune picks a random rune from alphabet using crypto/rand. Alphabets
// are indexed by rune, not byte, so custom sets may contain any code point.
func randRune(alphabet []rune) (rune, error) {
	i, err := randBelow(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []rune) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := randBelow(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

// sampleWithoutReplacement returns k distinct elements of items in random
// order. It shuffles index positions rather than the caller's slice.
func sampleWithoutReplacement(items []string, k int) ([]string, error) {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: only the first k positions need to be drawn.
	for i := 0; i < k; i++ {
		j, err := randBelow(len(idx) - i)
		if err != nil {
			return nil, err
		}
		idx[i], idx[i+j] = idx[i+j], idx[i]
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = items[idx[i]]
	}
	return out, nil
}
