package share

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Opener opens a URL in an external handler.
type Opener interface {
	OpenURL(url string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the OS clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("share: no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("share: failed to copy to clipboard: %w", err)
	}
	return nil
}

// SystemBrowser opens URLs with the platform's default browser.
type SystemBrowser struct{}

// OpenURL opens u in the default browser. Output from the launcher is
// discarded so it cannot draw over the terminal UI.
func (SystemBrowser) OpenURL(u string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	if err := browser.OpenURL(u); err != nil {
		return fmt.Errorf("share: failed to open browser: %w", err)
	}
	return nil
}
