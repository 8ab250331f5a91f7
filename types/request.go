package types

import (
	"math/big"
)

// BridgeRequest is the input of a single bridging operation. It is constructed once from the
// caller's arguments and never modified afterwards.
type BridgeRequest struct {
	// SenderSecret is the XRPL seed of the sending account.
	SenderSecret string `json:"-" validate:"required"`

	// LedgerURL is the http(s) or ws(s) endpoint of the XRPL node.
	LedgerURL string `json:"ledgerUrl" validate:"required,url"`

	// MPTIssuanceID identifies the multi-purpose token being bridged.
	MPTIssuanceID string `json:"mptIssuanceId" validate:"required,mptid"`

	// IssuerAddress is the classic address of the token issuer.
	IssuerAddress string `json:"issuerAddress" validate:"required,xrpladdr"`

	// Amount is the amount to bridge in the token's smallest unit.
	Amount *big.Int `json:"amount" validate:"required"`

	// DestinationAddress receives the minted tokens on the sidechain.
	DestinationAddress string `json:"destinationAddress" validate:"required,evmaddr"`

	// DestinationContract is the token contract on the sidechain that receives the mint call.
	DestinationContract string `json:"destinationContract" validate:"required,evmaddr"`
}
