package types

const (
	// DefaultDestinationChain is the GMP name of the XRPL EVM sidechain.
	DefaultDestinationChain = "xrpl-evm-sidechain"

	// DefaultAssetPrecision is the number of decimal places between the raw token units minted on
	// the sidechain and the decimal value carried by the ledger amount.
	DefaultAssetPrecision uint8 = 6
)

// Deployment holds the process-wide constants of a bridge deployment. It is built once at
// startup and never derived from a bridge request.
type Deployment struct {
	GatewayAddress   string `json:"gatewayAddress" validate:"required,xrpladdr"`
	DestinationChain string `json:"destinationChain" validate:"required,printascii"`

	// AssetPrecision is at most 18 so that 10^precision stays within the MPT amount range.
	AssetPrecision uint8 `json:"assetPrecision" validate:"lte=18"`
}

// DefaultDeployment returns the sidechain defaults. The gateway account differs per network and
// has to be supplied by the caller.
func DefaultDeployment() Deployment {
	return Deployment{
		DestinationChain: DefaultDestinationChain,
		AssetPrecision:   DefaultAssetPrecision,
	}
}
