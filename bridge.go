// Package bridge relays token transfers from the XRP Ledger to an EVM sidechain. A transfer is a
// single MPT payment to a gateway account whose memo carries a general message passing (GMP)
// envelope with the destination-chain mint call.
package bridge

import (
	"context"

	"github.com/xrpl-gmp/bridge/sdk"
	"github.com/xrpl-gmp/bridge/sdk/evm"
	"github.com/xrpl-gmp/bridge/types"
)

// Bridge prepares and executes bridging operations for one deployment.
type Bridge struct {
	deployment types.Deployment
}

// New returns a Bridge for a validated deployment.
func New(deployment types.Deployment) (*Bridge, error) {
	if err := validateStruct(deployment); err != nil {
		return nil, err
	}

	return &Bridge{deployment: deployment}, nil
}

// Deployment returns the deployment the bridge routes through.
func (b *Bridge) Deployment() types.Deployment {
	return b.deployment
}

// Prepare builds the unsigned payment for req sent from account. It is pure: encoding and
// validation failures are returned before any network access.
func (b *Bridge) Prepare(account string, req types.BridgeRequest) (types.Transaction, error) {
	payload, err := evm.EncodeMintCall(req.DestinationAddress, req.Amount)
	if err != nil {
		return types.Transaction{}, err
	}

	envelope, err := NewEnvelope(b.deployment, req.DestinationContract, payload)
	if err != nil {
		return types.Transaction{}, err
	}

	tx, err := NewTransactionBuilder(b.deployment).
		SetAccount(account).
		SetIssuance(req.MPTIssuanceID, req.IssuerAddress).
		SetAmount(req.Amount).
		SetEnvelope(envelope).
		Build()
	if err != nil {
		return types.Transaction{}, err
	}

	// credentials and endpoint belong to the signer and the client, not to the payment
	if err := validateStruct(req, "SenderSecret", "LedgerURL"); err != nil {
		return types.Transaction{}, err
	}

	return tx, nil
}

// Execute prepares the payment for req and submits it through client, signed by signer. Build
// failures are returned as a *StageError with StepBuild without touching client.
func (b *Bridge) Execute(
	ctx context.Context, req types.BridgeRequest, client sdk.LedgerClient, signer sdk.Signer,
) (types.SubmissionResult, error) {
	tx, err := b.Prepare(signer.Address(), req)
	if err != nil {
		return types.SubmissionResult{}, NewStageError(StepBuild, err)
	}

	return NewCoordinator(client, signer).Submit(ctx, tx)
}
