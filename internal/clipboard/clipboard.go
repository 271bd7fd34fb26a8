// Package clipboard provides text writing to the system clipboard, used for
// copying the conversation transcript.
package clipboard

import (
	"golang.design/x/clipboard"

	perrors "github.com/parleyhq/parley/internal/errors"
	"github.com/parleyhq/parley/internal/logger"
)

// initialized tracks whether the clipboard has been initialized
var initialized bool

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	if initialized {
		return nil
	}

	if err := clipboard.Init(); err != nil {
		logger.Log("Clipboard: Failed to initialize: %v", err)
		return perrors.ClipboardUnavailable(err)
	}

	initialized = true
	logger.Log("Clipboard: Initialized successfully")
	return nil
}

// WriteText writes text to the system clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Log("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}
