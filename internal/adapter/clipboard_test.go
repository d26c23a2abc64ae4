package adapter

import (
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystemClipboard(t *testing.T) {
	c := NewSystemClipboard()
	require.NotNil(t, c)
	assert.Implements(t, (*Clipboard)(nil), c)
}

// TestSystemClipboard_UnsupportedHost verifies the sentinel on hosts without
// a clipboard utility. On hosts with one it checks the round trip instead.
func TestSystemClipboard_UnsupportedHost(t *testing.T) {
	c := NewSystemClipboard()

	if clipboard.Unsupported {
		assert.ErrorIs(t, c.WriteAll("abc"), ErrClipboardUnavailable)
		return
	}

	if err := c.WriteAll("abc123\ndef456"); err != nil {
		t.Skipf("clipboard utility present but not usable: %v", err)
	}
	got, err := clipboard.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "abc123\ndef456", got)
}
