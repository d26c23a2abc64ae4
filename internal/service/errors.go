package service

import "errors"

var (
	ErrGeneratingPasswords = errors.New("error generating passwords")
	ErrSavingPasswords     = errors.New("error saving passwords")
	ErrEncryptingStore     = errors.New("error encrypting password store")
	ErrRetrievingPasswords = errors.New("error retrieving passwords")
	ErrStoreNotEncrypted   = errors.New("password store is not encrypted")
)
