// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides abstractions over system facilities the
// application talks to but does not own.
//
// The only adapter today is [Clipboard]. The system implementation
// ([NewSystemClipboard]) delegates to the OS clipboard utilities; tests use
// the generated mock.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

// Clipboard writes text to the user's clipboard.
type Clipboard interface {
	// WriteAll replaces the clipboard content with text.
	WriteAll(text string) error
}
