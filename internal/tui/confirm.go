package tui

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted by user")

// ConfirmPrune asks before deleting history entries older than the given
// human-readable age.
func ConfirmPrune(olderThan string) (bool, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	confirm := false
	confirmField := huh.NewConfirm().
		Title("Delete quote history older than " + olderThan + "?").
		Description("Removed entries cannot be recovered.").
		Affirmative("Yes, delete").
		Negative("Cancel").
		Value(&confirm)

	if err := runForm(accessible, huh.NewGroup(confirmField)); err != nil {
		return false, err
	}
	return confirm, nil
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
