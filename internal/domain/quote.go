package domain

// Quote is a single quote body paired with its attributed author.
type Quote struct {
	Text   string `json:"quote" validate:"required"`
	Author string `json:"author" validate:"required"`
}

// IsComplete reports whether both the text and the author are present.
func (q Quote) IsComplete() bool {
	return q.Text != "" && q.Author != ""
}
