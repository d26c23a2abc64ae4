package adapter

import (
	"fmt"

	"github.com/atotto/clipboard"
)

type systemClipboard struct{}

// NewSystemClipboard returns a [Clipboard] backed by github.com/atotto/clipboard.
func NewSystemClipboard() Clipboard {
	return &systemClipboard{}
}

func (c *systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
