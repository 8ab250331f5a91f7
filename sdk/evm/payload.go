package evm

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	abiUtils "github.com/xrpl-gmp/bridge/internal/utils/abi"
	sdkerrors "github.com/xrpl-gmp/bridge/sdk/errors"
)

const (
	// MintSignature is the destination-chain function invoked by the relayed message.
	MintSignature = "mint(address,uint256)"

	mintMethod = "mint"
	mintInputs = `[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}]`
)

var (
	addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

	// MaxUint256 is the largest amount the mint call can carry.
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// ValidateAddress checks that address is a 0x-prefixed 20-byte hex string. Mixed-case addresses
// must carry a valid EIP-55 checksum; all lower or all upper case addresses are accepted as is.
func ValidateAddress(address string) error {
	if !addressPattern.MatchString(address) {
		return fmt.Errorf("%q is not a 0x-prefixed 20-byte hex address", address)
	}

	body := address[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return nil
	}

	if common.HexToAddress(address).Hex() != address {
		return fmt.Errorf("%q has an invalid EIP-55 checksum", address)
	}

	return nil
}

// IsValidAddress reports whether ValidateAddress accepts address.
func IsValidAddress(address string) bool {
	return ValidateAddress(address) == nil
}

// EncodeMintCall returns the calldata of mint(destination, amount). The amount is in raw token
// units, it is never scaled here.
func EncodeMintCall(destination string, amount *big.Int) ([]byte, error) {
	if err := ValidateAddress(destination); err != nil {
		return nil, sdkerrors.NewEncodingError("destination address", err)
	}

	if err := validateAmount(amount); err != nil {
		return nil, sdkerrors.NewEncodingError("amount", err)
	}

	data, err := abiUtils.EncodeCall(mintMethod, mintInputs, common.HexToAddress(destination), amount)
	if err != nil {
		return nil, sdkerrors.NewEncodingError("payload", err)
	}

	return data, nil
}

// DecodeMintCall is the inverse of EncodeMintCall.
func DecodeMintCall(data []byte) (common.Address, *big.Int, error) {
	values, err := abiUtils.DecodeCall(mintMethod, mintInputs, data)
	if err != nil {
		return common.Address{}, nil, sdkerrors.NewEncodingError("payload", err)
	}

	to, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, nil, sdkerrors.NewEncodingError("payload", fmt.Errorf("unexpected address type %T", values[0]))
	}

	amount, ok := values[1].(*big.Int)
	if !ok {
		return common.Address{}, nil, sdkerrors.NewEncodingError("payload", fmt.Errorf("unexpected amount type %T", values[1]))
	}

	return to, amount, nil
}

func validateAmount(amount *big.Int) error {
	switch {
	case amount == nil:
		return errors.New("amount is required")
	case amount.Sign() < 0:
		return fmt.Errorf("amount %s is negative", amount)
	case amount.Cmp(MaxUint256) > 0:
		return fmt.Errorf("amount %s exceeds uint256 range", amount)
	}

	return nil
}
