package sdkerrors

import (
	"fmt"
)

// EncodingError is returned when a destination-chain call cannot be encoded because an address or
// amount has the wrong shape.
type EncodingError struct {
	Field string
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: invalid %s: %v", e.Field, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

func NewEncodingError(field string, err error) *EncodingError {
	return &EncodingError{Field: field, Err: err}
}

// SerializationError is returned when a GMP envelope cannot be serialized or parsed.
type SerializationError struct {
	Field string
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: invalid %s: %v", e.Field, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func NewSerializationError(field string, err error) *SerializationError {
	return &SerializationError{Field: field, Err: err}
}

// ValidationError is returned when a transaction field fails validation. It is always raised
// before the network is contacted.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// NetworkError wraps a failure talking to the ledger. Op names the ledger operation
// (connect, autofill, submit, wait, disconnect). Network errors are never retried.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// EngineResultError is returned when the ledger refuses a transaction at submission with a result
// that guarantees it will never be included.
type EngineResultError struct {
	EngineResult string
	Message      string
}

func (e *EngineResultError) Error() string {
	return fmt.Sprintf("transaction rejected at submission: %s: %s", e.EngineResult, e.Message)
}

func NewEngineResultError(engineResult, message string) *EngineResultError {
	return &EngineResultError{EngineResult: engineResult, Message: message}
}

// ExpiredError is returned when the validated ledger moved past the transaction's
// LastLedgerSequence without including it.
type ExpiredError struct {
	Hash               string
	LastLedgerSequence uint32
	LatestLedger       uint32
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf(
		"transaction %s not included: latest validated ledger %d is past LastLedgerSequence %d",
		e.Hash, e.LatestLedger, e.LastLedgerSequence,
	)
}

func NewExpiredError(hash string, lastLedgerSequence, latestLedger uint32) *ExpiredError {
	return &ExpiredError{Hash: hash, LastLedgerSequence: lastLedgerSequence, LatestLedger: latestLedger}
}
