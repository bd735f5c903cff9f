package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/passkeep/internal/vault/store"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")

	// ErrNotFoundOrForbidden covers both a missing resource and one owned
	// by another account. Callers must not be able to tell them apart.
	ErrNotFoundOrForbidden = errors.New("not found or forbidden")

	ErrAuth      = errors.New("authentication failed")
	ErrForbidden = errors.New("forbidden")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// mapStoreErr translates storage sentinels into service sentinels; what
// describes the resource for the conflict message.
func mapStoreErr(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFoundOrForbidden
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %s already exists", ErrConflict, what)
	default:
		return err
	}
}
