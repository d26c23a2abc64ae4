// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing strings of passgen.
//
// All Msg* constants are printed to standard output by the services and the
// client application. Constants containing %s verbs take the store or key
// path. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgPasswordsGenerated precedes freshly generated passwords.
	MsgPasswordsGenerated = "Passwords Generated:"

	// MsgPasswordsIn precedes the stored passwords in view mode.
	MsgPasswordsIn = "Passwords in %s:"

	// MsgNoStore is printed in view mode when there is no store file.
	MsgNoStore = "There is no passwords file at %s."

	// MsgStoreSaved is printed after a new store file was created.
	MsgStoreSaved = "Your passwords have been saved in the '%s' file."

	// MsgStoreExists is printed before asking to overwrite or append.
	MsgStoreExists = "There is already a passwords file at %s."

	// MsgStoreEncryptedSave is printed when a save went into an already
	// encrypted store and was sealed with the existing key.
	MsgStoreEncryptedSave = "The passwords file is encrypted; your passwords were encrypted with the existing key."

	// MsgKeyCreated is printed once, when a new key file was created.
	MsgKeyCreated = "A new key has been created as '%s'. Keep this safe!"

	// MsgStoreEncrypted is printed after a successful encryption.
	MsgStoreEncrypted = "Your passwords file has been encrypted."

	// MsgCopied is printed after passwords were copied to the clipboard.
	MsgCopied = "Passwords copied to the clipboard."

	// MsgCopyFailed is printed when the clipboard copy failed; the run goes on.
	MsgCopyFailed = "Could not copy to the clipboard: %s"

	// MsgInvalidTemplate precedes the list of offending template tokens.
	MsgInvalidTemplate = "Your expression is not valid. The invalid characters are:"

	// MsgEmptyTemplate is printed when an empty template is not allowed.
	MsgEmptyTemplate = "Your expression is empty."
)

// Prompt questions. Each ends with the accepted tokens and a trailing space.
const (
	PromptSave          = "Would you like to save your generated passwords? [Y] or [N]: "
	PromptEncrypt       = "Would you like to encrypt your saved passwords? [Y] or [N]: "
	PromptWriteType     = "Would you like to overwrite the file or append to this file? [W] or [A]: "
	PromptConfirmWipe   = "This will overwrite your existing password file resulting in the current passwords being lost, are you sure? [Y] or [N]: "
	PromptTemplate      = "Please input a compatible expression: "
	PromptTemplateRetry = "Please try to input another expression: "
)
