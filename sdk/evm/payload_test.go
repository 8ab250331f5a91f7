package evm_test

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/xrpl-gmp/bridge/sdk/errors"
	"github.com/xrpl-gmp/bridge/sdk/evm"
)

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		wantErr string
	}{
		{name: "lower case", give: "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"},
		{name: "upper case", give: "0x5B38DA6A701C568545DCFCB03FCB875F56BEDDC4"},
		{name: "valid checksum", give: "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"},
		{
			name:    "invalid checksum",
			give:    "0x5B38Da6a701c568545dCfcB03FcB875f56beddc4",
			wantErr: "invalid EIP-55 checksum",
		},
		{name: "missing prefix", give: "5b38da6a701c568545dcfcb03fcb875f56beddc4", wantErr: "not a 0x-prefixed"},
		{name: "too short", give: "0x5b38da6a", wantErr: "not a 0x-prefixed"},
		{name: "non hex", give: "0xzz38da6a701c568545dcfcb03fcb875f56beddc4", wantErr: "not a 0x-prefixed"},
		{name: "empty", give: "", wantErr: "not a 0x-prefixed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := evm.ValidateAddress(tt.give)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				assert.False(t, evm.IsValidAddress(tt.give))
			} else {
				require.NoError(t, err)
				assert.True(t, evm.IsValidAddress(tt.give))
			}
		})
	}
}

func TestEncodeMintCall(t *testing.T) {
	t.Parallel()

	got, err := evm.EncodeMintCall("0x5b38da6a701c568545dcfcb03fcb875f56beddc4", big.NewInt(1000000))
	require.NoError(t, err)

	want := "40c10f19" +
		"0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4" +
		"00000000000000000000000000000000000000000000000000000000000f4240"
	assert.Equal(t, want, hex.EncodeToString(got))
	assert.Len(t, got, 4+32+32)
}

func TestEncodeMintCall_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		giveAddress string
		giveAmount  *big.Int
	}{
		{name: "zero amount", giveAddress: "0x0000000000000000000000000000000000000001", giveAmount: big.NewInt(0)},
		{name: "one unit", giveAddress: "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4", giveAmount: big.NewInt(1)},
		{name: "non multiple of precision", giveAddress: "0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2", giveAmount: big.NewInt(2500001)},
		{name: "max uint256", giveAddress: "0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", giveAmount: evm.MaxUint256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := evm.EncodeMintCall(tt.giveAddress, tt.giveAmount)
			require.NoError(t, err)

			to, amount, err := evm.DecodeMintCall(data)
			require.NoError(t, err)
			assert.Equal(t, common.HexToAddress(tt.giveAddress), to)
			assert.Equal(t, 0, tt.giveAmount.Cmp(amount), "amount %s != %s", tt.giveAmount, amount)
		})
	}
}

func TestEncodeMintCall_Errors(t *testing.T) {
	t.Parallel()

	tooLarge := new(big.Int).Add(evm.MaxUint256, big.NewInt(1))

	tests := []struct {
		name        string
		giveAddress string
		giveAmount  *big.Int
		wantField   string
	}{
		{name: "wrong length", giveAddress: "0xAbc123", giveAmount: big.NewInt(1), wantField: "destination address"},
		{name: "non hex", giveAddress: "0x" + strings.Repeat("g", 40), giveAmount: big.NewInt(1), wantField: "destination address"},
		{name: "nil amount", giveAddress: "0x0000000000000000000000000000000000000001", wantField: "amount"},
		{name: "negative amount", giveAddress: "0x0000000000000000000000000000000000000001", giveAmount: big.NewInt(-1), wantField: "amount"},
		{name: "amount overflows uint256", giveAddress: "0x0000000000000000000000000000000000000001", giveAmount: tooLarge, wantField: "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := evm.EncodeMintCall(tt.giveAddress, tt.giveAmount)

			var encErr *sdkerrors.EncodingError
			require.ErrorAs(t, err, &encErr)
			assert.Equal(t, tt.wantField, encErr.Field)
		})
	}
}

func TestDecodeMintCall_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := evm.DecodeMintCall([]byte{0xa9, 0x05, 0x9c, 0xbb})

	var encErr *sdkerrors.EncodingError
	require.ErrorAs(t, err, &encErr)
}
