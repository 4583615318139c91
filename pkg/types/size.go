package types

import "fmt"

// Size is an ordered item-size code. Larger sizes contribute more load
// to the bin that holds them.
type Size string

// Recognized size codes, smallest to largest.
const (
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
	SizeExtra  Size = "X"
)

// sizeWeights maps each size to its load weight. The exact values matter
// less than the strict ordering S < M < L < X.
var sizeWeights = map[Size]int{
	SizeSmall:  2,
	SizeMedium: 3,
	SizeLarge:  4,
	SizeExtra:  6,
}

// ParseSize converts a size code string to a Size.
// Returns ErrInvalidSize for anything outside [SMLX].
func ParseSize(s string) (Size, error) {
	size := Size(s)
	if _, ok := sizeWeights[size]; !ok {
		return "", fmt.Errorf("size %q is not one of S, M, L, X: %w", s, ErrInvalidSize)
	}
	return size, nil
}

// Valid reports whether the size is a recognized code.
func (s Size) Valid() bool {
	_, ok := sizeWeights[s]
	return ok
}

// Weight returns the load weight of the size. Unrecognized sizes weigh zero.
func (s Size) Weight() int {
	return sizeWeights[s]
}
