//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/xrpl-gmp/bridge"
	sdkerrors "github.com/xrpl-gmp/bridge/sdk/errors"
	"github.com/xrpl-gmp/bridge/sdk/xrpl"
)

// LedgerTestSuite checks the ledger client against a live node
type LedgerTestSuite struct {
	suite.Suite
	wallet *xrpl.Wallet
	TestSetup
}

// SetupSuite runs before the test suite
func (s *LedgerTestSuite) SetupSuite() {
	s.TestSetup = *InitializeSharedTestSetup(s.T())

	wallet, err := xrpl.NewWalletFromSeed(s.SenderSeed)
	s.Require().NoError(err, "Failed to load sender wallet")
	s.wallet = wallet
}

func (s *LedgerTestSuite) newClient() *xrpl.Client {
	client, err := xrpl.NewClient(s.LedgerURL, xrpl.WithPollInterval(500*time.Millisecond))
	s.Require().NoError(err)
	s.Require().NoError(client.Connect(context.Background()))
	s.T().Cleanup(func() { _ = client.Disconnect() })

	return client
}

// TestAutofill fills the ledger fields of a prepared payment
func (s *LedgerTestSuite) TestAutofill() {
	b, err := bridge.New(s.Deployment)
	s.Require().NoError(err)

	tx, err := b.Prepare(s.wallet.Address(), s.Request())
	s.Require().NoError(err)

	filled, err := s.newClient().Autofill(context.Background(), tx)
	s.Require().NoError(err)

	s.True(filled.IsAutofilled())
	s.Greater(filled.LastLedgerSequence, uint32(xrpl.DefaultLedgerOffset))
	s.Equal(tx.Memos, filled.Memos)
}

// TestAutofill_UnfundedAccount fails for an account that does not exist on the ledger
func (s *LedgerTestSuite) TestAutofill_UnfundedAccount() {
	entropy := make([]byte, 16)
	_, err := rand.Read(entropy)
	s.Require().NoError(err)

	seed, err := xrpl.EncodeSeed(entropy, xrpl.KeyTypeEd25519)
	s.Require().NoError(err)
	wallet, err := xrpl.NewWalletFromSeed(seed)
	s.Require().NoError(err)

	b, err := bridge.New(s.Deployment)
	s.Require().NoError(err)

	req := s.Request()
	req.SenderSecret = seed
	client, err := xrpl.NewClient(s.LedgerURL)
	s.Require().NoError(err)

	_, err = b.Execute(context.Background(), req, client, wallet)

	var stageErr *bridge.StageError
	s.Require().ErrorAs(err, &stageErr)
	s.Equal(bridge.StepAutofill, stageErr.Step)

	var rpcErr *xrpl.RPCError
	s.Require().True(errors.As(err, &rpcErr))
	s.Equal("actNotFound", rpcErr.Code)

	var networkErr *sdkerrors.NetworkError
	s.Require().ErrorAs(err, &networkErr)
}
