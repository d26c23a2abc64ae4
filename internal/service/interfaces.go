// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-gen/internal/generator"
	"github.com/MKhiriev/go-pass-gen/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PasswordService turns run options into passwords.
type PasswordService interface {
	// ResolvePlan validates opts and builds the generation plan. In template
	// mode it asks for a template first via PromptTemplate.
	ResolvePlan(ctx context.Context, opts models.RunOptions) (generator.Plan, error)

	// PromptTemplate prints the token help and asks for a template until a
	// valid one is entered. Invalid tokens are listed and re-prompted.
	PromptTemplate(ctx context.Context) (models.GenerationTemplate, error)

	// Generate produces count passwords from plan and prints them framed.
	Generate(ctx context.Context, plan generator.Plan, count int) (models.PasswordList, error)

	// Copy puts the newline-joined list on the clipboard.
	Copy(ctx context.Context, list models.PasswordList) error
}

// StoreService persists generated lists with overwrite/append semantics.
type StoreService interface {
	// Save writes list to the store. A new store is created directly; an
	// existing one is overwritten or appended to per the user's choice.
	// Declined means the user refused a destructive overwrite and the store
	// is untouched. force skips the overwrite confirmation.
	//
	// Append separates the new list from the existing content with a single
	// newline. An existing but empty store gets no leading newline, so the
	// first stored entry is never blank.
	Save(ctx context.Context, list models.PasswordList, force bool) (models.SaveResult, error)

	// Path returns the store location.
	Path() string
}

// VaultService owns the encrypted state of the store.
type VaultService interface {
	// EncryptStore encrypts the store in place, creating the key first when
	// there is none. keyCreated reports whether a new key was written.
	EncryptStore(ctx context.Context) (keyCreated bool, err error)

	// Rewrite replaces the content of an encrypted store with list, sealed
	// under the existing key.
	Rewrite(ctx context.Context, list models.PasswordList) error

	// Retrieve returns the stored list, decrypting it when the store is
	// encrypted.
	Retrieve(ctx context.Context) (models.PasswordList, error)

	// IsEncrypted reports whether the store is treated as encrypted.
	IsEncrypted() (bool, error)
}
