package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")
)

// ValidationError reports a malformed input field. Nothing is written when it
// is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports that an operation targeted a record that does not
// exist where existence is required.
type NotFoundError struct {
	Entity string
	Key    string
}

func NewNotFoundError(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist: %s", e.Entity, e.Key)
}

// TransactionError reports a failed atomic commit. The caller must treat it
// as "no durable change occurred".
type TransactionError struct {
	Err error
}

func NewTransactionError(err error) error {
	return &TransactionError{Err: err}
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction failed: %s", e.Err.Error())
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}
