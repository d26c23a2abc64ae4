package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/prompt"
	"github.com/MKhiriev/go-pass-gen/internal/store"
	"github.com/MKhiriev/go-pass-gen/models"
)

type storeService struct {
	storage  store.PasswordStorage
	vault    VaultService
	prompter prompt.Prompter
	out      io.Writer
}

// NewStoreService builds a [StoreService]. Writes into a store that vault
// reports as encrypted are sealed with the existing key.
func NewStoreService(storage store.PasswordStorage, vault VaultService, prompter prompt.Prompter, out io.Writer) StoreService {
	return &storeService{
		storage:  storage,
		vault:    vault,
		prompter: prompter,
		out:      out,
	}
}

func (s *storeService) Path() string {
	return s.storage.Path()
}

func (s *storeService) Save(ctx context.Context, list models.PasswordList, force bool) (models.SaveResult, error) {
	exists, err := s.storage.Exists()
	if err != nil {
		return models.Declined, fmt.Errorf("%w: %w", ErrSavingPasswords, err)
	}

	if !exists {
		if err := s.write(ctx, models.WriteOverwrite, list); err != nil {
			return models.Declined, err
		}
		fmt.Fprintf(s.out, app.MsgStoreSaved+"\n", s.storage.Path())
		return models.Saved, nil
	}

	fmt.Fprintf(s.out, app.MsgStoreExists+"\n", s.storage.Path())
	choice, err := s.prompter.Choose(ctx, app.PromptWriteType, prompt.Overwrite, prompt.Append)
	if err != nil {
		return models.Declined, err
	}
	writeType := models.WriteType(choice)

	if writeType == models.WriteOverwrite && !force {
		confirmed, err := s.prompter.Confirm(ctx, app.PromptConfirmWipe)
		if err != nil {
			return models.Declined, err
		}
		if !confirmed {
			logger.FromContext(ctx).Info().Msg("overwrite declined")
			return models.Declined, nil
		}
	}

	if err := s.write(ctx, writeType, list); err != nil {
		return models.Declined, err
	}
	return models.Saved, nil
}

// write applies writeType. An encrypted store is rewritten through the
// vault; a plaintext one is written directly, without a trailing separator.
func (s *storeService) write(ctx context.Context, writeType models.WriteType, list models.PasswordList) error {
	encrypted, err := s.vault.IsEncrypted()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSavingPasswords, err)
	}

	if encrypted {
		if writeType == models.WriteAppend {
			existing, err := s.vault.Retrieve(ctx)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrSavingPasswords, err)
			}
			list = append(existing, list...)
		}
		if err := s.vault.Rewrite(ctx, list); err != nil {
			return fmt.Errorf("%w: %w", ErrSavingPasswords, err)
		}
		logger.FromContext(ctx).Info().Str("write_type", string(writeType)).Int("count", len(list)).Msg("encrypted store rewritten")
		return nil
	}

	joined := list.Join()
	switch writeType {
	case models.WriteAppend:
		current, err := s.storage.Read()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSavingPasswords, err)
		}
		if len(current) > 0 {
			err = s.storage.Append([]byte(models.PasswordSeparator + joined))
		} else {
			err = s.storage.Overwrite([]byte(joined))
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSavingPasswords, err)
		}
	default:
		if err := s.storage.Overwrite([]byte(joined)); err != nil {
			return fmt.Errorf("%w: %w", ErrSavingPasswords, err)
		}
	}

	logger.FromContext(ctx).Info().Str("write_type", string(writeType)).Int("count", len(list)).Msg("passwords saved")
	return nil
}
