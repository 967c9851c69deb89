package palette

import (
	"fmt"
	"math/rand/v2"

	"nathanbeddoewebdev/quotebox/internal/domain"
)

// Pick returns a uniformly random element of items, drawing an index in
// [0, len(items)). A nil r uses the package-level generator.
func Pick[T any](r *rand.Rand, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("palette: cannot pick from an empty list: %w", domain.ErrInvalidInput)
	}
	if r == nil {
		return items[rand.IntN(len(items))], nil
	}
	return items[r.IntN(len(items))], nil
}

// RandomColor returns a random entry of colors.
func RandomColor(colors []string) (string, error) {
	return Pick(nil, colors)
}
