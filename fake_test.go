package bridge_test

import (
	"context"
	"math/big"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/xrpl-gmp/bridge/sdk"
	"github.com/xrpl-gmp/bridge/types"
)

const (
	testSender      = "rPizsaGotY3WV3vPMCY6PUH7FhzFi8QeJN"
	testGateway     = "radG6QCKZdwerun5RWDDj6Chv2Z6s12Hqp"
	testIssuer      = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	testIssuerSeed  = "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"
	testIssuanceID  = "00000001B5F762798A53D543A014CAF8B297CFF8F2F937E8"
	testDestination = "0x1111111111111111111111111111111111111111"
	testContract    = "0x2222222222222222222222222222222222222222"
)

func testDeployment() types.Deployment {
	deployment := types.DefaultDeployment()
	deployment.GatewayAddress = testGateway

	return deployment
}

func testRequest() types.BridgeRequest {
	return types.BridgeRequest{
		SenderSecret:        testIssuerSeed,
		LedgerURL:           "wss://s.altnet.rippletest.net:51233",
		MPTIssuanceID:       testIssuanceID,
		IssuerAddress:       testIssuer,
		Amount:              big.NewInt(1_000_000),
		DestinationAddress:  testDestination,
		DestinationContract: testContract,
	}
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	return sdk.WithLogger(context.Background(), zaptest.NewLogger(t).Sugar())
}

// fakeLedger is an in-memory sdk.LedgerClient that records the order of the calls made to it.
type fakeLedger struct {
	connectErr    error
	autofillErr   error
	submitErr     error
	disconnectErr error
	outcome       types.LedgerOutcome

	calls     []string
	submitted types.SignedTransaction
}

var _ sdk.LedgerClient = (*fakeLedger)(nil)

func newFakeLedger(code string) *fakeLedger {
	return &fakeLedger{
		outcome: types.LedgerOutcome{
			Hash:              "LEDGERHASH",
			LedgerIndex:       101,
			Validated:         true,
			TransactionResult: code,
			Raw:               []byte(`{"validated":true}`),
		},
	}
}

func (f *fakeLedger) Connect(context.Context) error {
	f.calls = append(f.calls, "connect")
	return f.connectErr
}

// Autofill sets fixed ledger values.
func (f *fakeLedger) Autofill(_ context.Context, tx types.Transaction) (types.Transaction, error) {
	f.calls = append(f.calls, "autofill")
	if f.autofillErr != nil {
		return tx, f.autofillErr
	}
	tx.Sequence = 7
	tx.Fee = "12"
	tx.LastLedgerSequence = 120

	return tx, nil
}

func (f *fakeLedger) SubmitAndWait(_ context.Context, signed types.SignedTransaction) (types.LedgerOutcome, error) {
	f.calls = append(f.calls, "submit")
	f.submitted = signed
	if f.submitErr != nil {
		return types.LedgerOutcome{}, f.submitErr
	}

	return f.outcome, nil
}

func (f *fakeLedger) Disconnect() error {
	f.calls = append(f.calls, "disconnect")
	return f.disconnectErr
}

func (f *fakeLedger) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}

	return n
}

// fakeSigner implements sdk.Signer for testing purposes. The err provided is returned when Sign
// is called.
type fakeSigner struct {
	address string
	err     error
}

func newFakeSigner(address string, err error) *fakeSigner {
	return &fakeSigner{address: address, err: err}
}

func (f *fakeSigner) Address() string {
	return f.address
}

// Sign returns a placeholder signature.
func (f *fakeSigner) Sign(tx types.Transaction) (types.SignedTransaction, error) {
	if f.err != nil {
		return types.SignedTransaction{}, f.err
	}
	tx.SigningPubKey = "02AB"
	tx.TxnSignature = "3044"

	return types.SignedTransaction{Transaction: tx, TxBlob: "120000", Hash: "SIGNEDHASH"}, nil
}
