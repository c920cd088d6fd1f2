package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalanced indicates that a journal entry's debit and credit sums differ.
var ErrUnbalanced = errors.New("journal entry is unbalanced")

// ErrInvalidLine indicates that a journal entry line is unusable: the account
// is missing, inactive, belongs to another tenant, or the entry has too few lines.
var ErrInvalidLine = errors.New("invalid journal entry line")

// ErrAlreadyVoided indicates an attempt to void an entry that is not posted.
var ErrAlreadyVoided = errors.New("journal entry already voided")

// ErrReferencedByLedger indicates a delete was blocked because ledger rows
// still reference the resource.
var ErrReferencedByLedger = errors.New("referenced by ledger entries")

// ErrLedgerInconsistency indicates that a computed report failed one of its
// cross-check invariants. This is a data-integrity alarm: it must be surfaced
// to the caller, never retried or swallowed.
var ErrLedgerInconsistency = errors.New("ledger inconsistency detected")

// ErrConflict indicates the operation is not valid for the resource's
// current state, e.g. posting an entry that is not a draft.
var ErrConflict = errors.New("conflicting resource state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside a message and the
// underlying cause. Repositories use it to wrap low-level database failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that also matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
