package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/xrpl-gmp/bridge/types"
)

// ErrReported is returned by the command once a non-success outcome has been written to stderr.
var ErrReported = errors.New("bridge operation did not succeed")

const (
	statusError    = "error"
	statusPrepared = "prepared"
)

type record struct {
	Status      string             `json:"status"`
	Code        string             `json:"code,omitempty"`
	Stage       string             `json:"stage,omitempty"`
	Error       string             `json:"error,omitempty"`
	Hash        string             `json:"hash,omitempty"`
	LedgerIndex uint32             `json:"ledgerIndex,omitempty"`
	Result      json.RawMessage    `json:"result,omitempty"`
	Transaction *types.Transaction `json:"transaction,omitempty"`
}

// reporter writes exactly one JSON record per run.
type reporter struct {
	stdout io.Writer
	stderr io.Writer
}

func newReporter(stdout, stderr io.Writer) *reporter {
	return &reporter{stdout: stdout, stderr: stderr}
}

func (r *reporter) result(result types.SubmissionResult) error {
	rec := record{
		Status:      string(result.Status),
		Code:        result.Code,
		Hash:        result.Hash,
		LedgerIndex: result.LedgerIndex,
		Result:      result.Raw,
	}

	if result.Succeeded() {
		return write(r.stdout, rec)
	}
	if err := write(r.stderr, rec); err != nil {
		return err
	}

	return fmt.Errorf("%w: %s", ErrReported, result.Code)
}

// prepared prints the unsigned payment. The MPT amount value is scaled down by the asset precision
// and is not the raw unit count; re-serializing it with other XRPL tooling would move 10^precision
// times fewer units than the bridge signs.
func (r *reporter) prepared(tx types.Transaction) error {
	return write(r.stdout, record{Status: statusPrepared, Transaction: &tx})
}

func (r *reporter) fail(stage string, err error) error {
	if writeErr := write(r.stderr, record{Status: statusError, Stage: stage, Error: err.Error()}); writeErr != nil {
		return writeErr
	}

	return fmt.Errorf("%w: %s failed", ErrReported, stage)
}

func write(w io.Writer, rec record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}
