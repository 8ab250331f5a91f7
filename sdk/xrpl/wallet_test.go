package xrpl

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrpl-gmp/bridge/types"
)

func TestNewWalletFromSeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		giveSeed      string
		wantAddress   string
		wantPublicKey string
		wantKeyType   KeyType
		wantErr       string
	}{
		{
			name:          "secp256k1 genesis seed",
			giveSeed:      genesisSeed,
			wantAddress:   genesisAddress,
			wantPublicKey: "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020",
			wantKeyType:   KeyTypeSecp256k1,
		},
		{
			name:          "ed25519 seed",
			giveSeed:      "sEdVQ4wvD1AaTG6JA54qt38TengAuiz",
			wantAddress:   "rGWrZyQqhTp9Xu7G5Pkayo7bXjH4k4QYpf",
			wantPublicKey: "EDAAC3F98BB94F451804EF5993C847DAAA4E6154F455635659D88AA5C80F156303",
			wantKeyType:   KeyTypeEd25519,
		},
		{
			name:     "address instead of seed",
			giveSeed: genesisAddress,
			wantErr:  "invalid seed: unknown encoding",
		},
		{
			name:     "empty seed",
			giveSeed: "",
			wantErr:  "invalid seed: empty value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wallet, err := NewWalletFromSeed(tt.giveSeed)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantAddress, wallet.Address())
			assert.Equal(t, tt.wantPublicKey, wallet.PublicKey())
			assert.Equal(t, tt.wantKeyType, wallet.KeyType())
		})
	}
}

func TestWallet_Sign(t *testing.T) {
	t.Parallel()

	seeds := []string{genesisSeed, "sEdVQ4wvD1AaTG6JA54qt38TengAuiz"}

	for _, seed := range seeds {
		t.Run(seed, func(t *testing.T) {
			t.Parallel()

			wallet, err := NewWalletFromSeed(seed)
			require.NoError(t, err)

			tx := types.Transaction{
				TransactionType:    types.TransactionTypePayment,
				Account:            wallet.Address(),
				Destination:        "rPizsaGotY3WV3vPMCY6PUH7FhzFi8QeJN",
				Amount:             types.NewMPTAmount("00000001"+genesisAccountID, "2.5", 6),
				Fee:                "12",
				Sequence:           7,
				LastLedgerSequence: 120,
				Memos: []types.MemoWrapper{{Memo: types.Memo{
					MemoType: "746578742F6A736F6E",
					MemoData: "7B7D",
				}}},
			}

			signed, err := wallet.Sign(tx)
			require.NoError(t, err)

			assert.Equal(t, wallet.PublicKey(), signed.Transaction.SigningPubKey)
			assert.NotEmpty(t, signed.Transaction.TxnSignature)

			blob, err := EncodeTransaction(signed.Transaction)
			require.NoError(t, err)
			assert.Equal(t, hex.EncodeToString(blob), lowerHex(t, signed.TxBlob))
			assert.Equal(t, TransactionID(blob), signed.Hash)

			message, err := SigningData(signed.Transaction)
			require.NoError(t, err)
			signature, err := hex.DecodeString(signed.Transaction.TxnSignature)
			require.NoError(t, err)
			publicKey, err := hex.DecodeString(signed.Transaction.SigningPubKey)
			require.NoError(t, err)
			assert.True(t, Verify(message, signature, publicKey))

			// the caller's copy is untouched
			assert.Empty(t, tx.SigningPubKey)
			assert.Empty(t, tx.TxnSignature)
		})
	}
}

func TestWallet_Sign_WrongAccount(t *testing.T) {
	t.Parallel()

	wallet, err := NewWalletFromSeed(genesisSeed)
	require.NoError(t, err)

	tx := unsignedVector()
	_, err = wallet.Sign(tx)
	require.EqualError(t, err, "wallet rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh cannot sign for account rPizsaGotY3WV3vPMCY6PUH7FhzFi8QeJN")
}

func TestWallet_Sign_Deterministic(t *testing.T) {
	t.Parallel()

	wallet, err := NewWalletFromSeed(genesisSeed)
	require.NoError(t, err)

	tx := unsignedVector()
	tx.Account = wallet.Address()

	first, err := wallet.Sign(tx)
	require.NoError(t, err)
	second, err := wallet.Sign(tx)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
}

func lowerHex(t *testing.T, s string) string {
	t.Helper()

	raw, err := hex.DecodeString(s)
	require.NoError(t, err)

	return hex.EncodeToString(raw)
}
