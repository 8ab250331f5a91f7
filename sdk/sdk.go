package sdk

import (
	"context"

	"github.com/xrpl-gmp/bridge/types"
)

// LedgerClient is a connection to an XRPL node. A client is used for a single bridging operation:
// Connect once, Autofill and SubmitAndWait at most once each, then Disconnect.
type LedgerClient interface {
	// Connect opens the connection. It is the first suspension point of an operation.
	Connect(ctx context.Context) error

	// Autofill returns tx with Sequence, Fee, LastLedgerSequence and, where the network requires
	// it, NetworkID populated from current ledger state.
	Autofill(ctx context.Context, tx types.Transaction) (types.Transaction, error)

	// SubmitAndWait submits a signed transaction and blocks until it is validated or can no
	// longer be included. A submitted transaction is never re-submitted.
	SubmitAndWait(ctx context.Context, signed types.SignedTransaction) (types.LedgerOutcome, error)

	// Disconnect releases the connection. It is safe to call on a client that never connected.
	Disconnect() error
}

// Signer holds the sender's credentials.
type Signer interface {
	Address() string
	Sign(tx types.Transaction) (types.SignedTransaction, error)
}
