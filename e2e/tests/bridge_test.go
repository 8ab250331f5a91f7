//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"encoding/hex"
	"encoding/json"

	"github.com/stretchr/testify/suite"

	"github.com/xrpl-gmp/bridge"
	"github.com/xrpl-gmp/bridge/sdk/evm"
	"github.com/xrpl-gmp/bridge/sdk/xrpl"
	"github.com/xrpl-gmp/bridge/types"
)

// BridgeTestSuite sends a bridging payment to the configured gateway
type BridgeTestSuite struct {
	suite.Suite
	TestSetup
}

// SetupSuite runs before the test suite
func (s *BridgeTestSuite) SetupSuite() {
	s.TestSetup = *InitializeSharedTestSetup(s.T())
}

// TestExecute bridges the configured amount and checks the validated payment
func (s *BridgeTestSuite) TestExecute() {
	ctx := context.Background()

	b, err := bridge.New(s.Deployment)
	s.Require().NoError(err)

	wallet, err := xrpl.NewWalletFromSeed(s.SenderSeed)
	s.Require().NoError(err)
	client, err := xrpl.NewClient(s.LedgerURL)
	s.Require().NoError(err)

	result, err := b.Execute(ctx, s.Request(), client, wallet)
	s.Require().NoError(err)
	s.Require().True(result.Succeeded(), "payment failed with %s", result.Code)
	s.NotEmpty(result.Hash)
	s.NotZero(result.LedgerIndex)

	// the validated payment carries the envelope unchanged
	var validated struct {
		Destination string              `json:"Destination"`
		Memos       []types.MemoWrapper `json:"Memos"`
	}
	s.Require().NoError(json.Unmarshal(result.Raw, &validated))
	s.Equal(s.Deployment.GatewayAddress, validated.Destination)
	s.Require().Len(validated.Memos, 1)

	data, err := hex.DecodeString(validated.Memos[0].Memo.MemoData)
	s.Require().NoError(err)
	env, err := bridge.ParseEnvelope(data)
	s.Require().NoError(err)
	s.Equal(s.DestinationContract, env.DestinationAddress)

	_, amount, err := evm.DecodeMintCall(env.Payload)
	s.Require().NoError(err)
	s.Equal(0, amount.Cmp(s.Amount))
}
