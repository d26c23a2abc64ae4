// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// PasswordSeparator delimits passwords in a stored list.
const PasswordSeparator = "\n"

// PasswordList is an ordered list of generated passwords. Order is
// generation order and survives storage and retrieval.
type PasswordList []string

// Join returns the passwords joined by [PasswordSeparator], without a
// trailing separator.
func (l PasswordList) Join() string {
	return strings.Join(l, PasswordSeparator)
}

// ParsePasswordList splits stored content into a [PasswordList]. Empty
// content yields an empty list. A trailing "\r" is dropped from every entry
// so that files saved with CRLF line endings read back unchanged.
func ParsePasswordList(content string) PasswordList {
	if content == "" {
		return PasswordList{}
	}
	list := strings.Split(content, PasswordSeparator)
	for i, p := range list {
		list[i] = strings.TrimSuffix(p, "\r")
	}
	return list
}

// WriteType selects how a save treats an already existing store file.
type WriteType string

const (
	// WriteOverwrite replaces the whole store content.
	WriteOverwrite WriteType = "w"

	// WriteAppend adds the new list after the existing content.
	WriteAppend WriteType = "a"
)

// SaveResult is the outcome of a save attempt.
type SaveResult int

const (
	// Saved means the list was written to the store.
	Saved SaveResult = iota

	// Declined means the user refused a destructive overwrite and nothing
	// was written.
	Declined
)

// String returns a readable name of the result.
func (r SaveResult) String() string {
	if r == Saved {
		return "saved"
	}
	return "declined"
}
