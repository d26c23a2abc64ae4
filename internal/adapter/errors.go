package adapter

import "errors"

// ErrClipboardUnavailable is returned when no clipboard utility is present
// (for example, on a headless Linux host without xclip, xsel or wl-copy).
var ErrClipboardUnavailable = errors.New("clipboard is not available")
