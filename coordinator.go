package bridge

import (
	"context"

	"github.com/xrpl-gmp/bridge/sdk"
	"github.com/xrpl-gmp/bridge/types"
)

// Coordinator drives a single built payment through autofill, signing, submission and
// confirmation. A Coordinator owns its ledger connection for the duration of Submit and is not
// safe for concurrent use.
type Coordinator struct {
	client sdk.LedgerClient
	signer sdk.Signer

	stage types.Stage
	used  bool
}

// NewCoordinator creates a new Coordinator.
func NewCoordinator(client sdk.LedgerClient, signer sdk.Signer) *Coordinator {
	return &Coordinator{
		client: client,
		signer: signer,
		stage:  types.StageBuilt,
	}
}

// Stage returns the state the coordinator has reached.
func (c *Coordinator) Stage() types.Stage {
	return c.stage
}

// Submit runs Built -> Autofilled -> Signed -> Submitted -> Confirmed. Any failure moves the
// coordinator to Errored and is returned as a *StageError; a confirmed transaction is returned
// as a classified result, failed ledger outcomes included. The connection is released exactly
// once before Submit returns, whichever step failed. Cancelling ctx stops the operation up to
// submission; once the transaction is submitted only its LastLedgerSequence bounds the wait.
func (c *Coordinator) Submit(ctx context.Context, tx types.Transaction) (types.SubmissionResult, error) {
	if c.used {
		return types.SubmissionResult{}, ErrCoordinatorUsed
	}
	c.used = true

	lggr := sdk.LoggerFrom(ctx)

	defer func() {
		if err := c.client.Disconnect(); err != nil {
			lggr.Infof("Failed to disconnect from ledger: %v", err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return c.fail(StepConnect, err)
	}
	if err := c.client.Connect(ctx); err != nil {
		return c.fail(StepConnect, err)
	}

	if err := ctx.Err(); err != nil {
		return c.fail(StepAutofill, err)
	}
	filled, err := c.client.Autofill(ctx, tx)
	if err != nil {
		return c.fail(StepAutofill, err)
	}
	c.transition(lggr, types.StageAutofilled)

	signed, err := c.signer.Sign(filled)
	if err != nil {
		return c.fail(StepSign, err)
	}
	c.transition(lggr, types.StageSigned)

	// last point at which cancellation leaves nothing on the ledger
	if err := ctx.Err(); err != nil {
		return c.fail(StepSubmit, err)
	}

	c.transition(lggr, types.StageSubmitted)
	lggr.Infof("Submitting %s from %s to %s", signed.Hash, signed.Transaction.Account, signed.Transaction.Destination)

	outcome, err := c.client.SubmitAndWait(ctx, signed)
	if err != nil {
		return c.fail(StepSubmit, err)
	}

	result := Classify(outcome)
	if result.Hash == "" {
		result.Hash = signed.Hash
	}
	c.transition(lggr, types.StageConfirmed)
	lggr.Infof("Transaction %s confirmed in ledger %d: %s", result.Hash, result.LedgerIndex, result.Code)

	return result, nil
}

func (c *Coordinator) transition(lggr sdk.Logger, stage types.Stage) {
	lggr.Debugf("Bridge transaction %s -> %s", c.stage, stage)
	c.stage = stage
}

func (c *Coordinator) fail(step Step, err error) (types.SubmissionResult, error) {
	c.stage = types.StageErrored
	return types.SubmissionResult{}, NewStageError(step, err)
}

// Classify maps a ledger outcome to a terminal result. Only a validated tesSUCCESS is a
// success; every other code is a failure and is preserved as is.
func Classify(outcome types.LedgerOutcome) types.SubmissionResult {
	status := types.StatusFailed
	if outcome.Validated && outcome.TransactionResult == types.ResultSuccess {
		status = types.StatusSuccess
	}

	return types.SubmissionResult{
		Status:      status,
		Code:        outcome.TransactionResult,
		Hash:        outcome.Hash,
		LedgerIndex: outcome.LedgerIndex,
		Raw:         outcome.Raw,
	}
}
