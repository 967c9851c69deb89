package quotestore

// FallbackMessage is shown whenever a fetch settles on offline data.
const FallbackMessage = "Using offline quote due to network error"

// State is a point-in-time copy of what the view renders.
type State struct {
	QuoteText       string
	QuoteAuthor     string
	BackgroundColor string
	Loading         bool

	// ErrorMessage is empty when the last settled fetch came from the
	// remote source, and FallbackMessage when it fell back.
	ErrorMessage string
}

// HasError reports whether an error notice should be shown.
func (s State) HasError() bool {
	return s.ErrorMessage != ""
}
