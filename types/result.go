package types

import (
	"encoding/json"
)

// ResultSuccess is the terminal result code of a transaction that fully succeeded.
const ResultSuccess = "tesSUCCESS"

// Status is the classified outcome of a submission.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// LedgerOutcome is what the ledger reported for a validated transaction.
type LedgerOutcome struct {
	Hash              string
	LedgerIndex       uint32
	Validated         bool
	TransactionResult string

	// Raw is the full result object returned by the ledger.
	Raw json.RawMessage
}

// SubmissionResult is the terminal, classified result of a bridging operation.
type SubmissionResult struct {
	Status      Status          `json:"status"`
	Code        string          `json:"code"`
	Hash        string          `json:"hash"`
	LedgerIndex uint32          `json:"ledgerIndex"`
	Raw         json.RawMessage `json:"result,omitempty"`
}

// Succeeded reports whether the payment landed and its message is eligible for relay.
func (r SubmissionResult) Succeeded() bool {
	return r.Status == StatusSuccess
}
