package palette

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"nathanbeddoewebdev/quotebox/internal/domain"
)

//go:embed fallback.json
var fallbackJSON []byte

// FallbackQuotes is the offline quote list used when the remote source is
// unavailable or returns an unusable payload. It is never empty.
var FallbackQuotes = mustLoadFallbacks(fallbackJSON)

// loadFallbacks decodes and checks an embedded fallback list.
func loadFallbacks(data []byte) ([]domain.Quote, error) {
	var quotes []domain.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("palette: failed to parse fallback quotes: %w", err)
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("palette: fallback quote list is empty")
	}
	for i, q := range quotes {
		if !q.IsComplete() {
			return nil, fmt.Errorf("palette: fallback quote %d is missing text or author", i)
		}
	}
	return quotes, nil
}

func mustLoadFallbacks(data []byte) []domain.Quote {
	quotes, err := loadFallbacks(data)
	if err != nil {
		panic(err)
	}
	return quotes
}
