package bridge_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrpl-gmp/bridge"
	sdkerrors "github.com/xrpl-gmp/bridge/sdk/errors"
	"github.com/xrpl-gmp/bridge/types"
)

func testEnvelope() types.GMPEnvelope {
	return types.GMPEnvelope{
		DestinationChain:   types.DefaultDestinationChain,
		DestinationAddress: testContract,
		Payload:            []byte{0x01, 0xab},
	}
}

func TestTransactionBuilder(t *testing.T) {
	t.Parallel()

	envelopeHex := "7B2264657374696E6174696F6E5F636861696E223A227872706C2D65766D2D73696465636861696E222C2264" +
		"657374696E6174696F6E5F61646472657373223A223078323232323232323232323232323232323232323232" +
		"32323232323232323232323232323232323232222C227061796C6F6164223A22307830316162227D"

	tests := []struct {
		name     string
		setup    func(*bridge.TransactionBuilder)
		want     types.Transaction
		wantErr  string
		wantType any
	}{
		{
			name: "valid payment",
			setup: func(b *bridge.TransactionBuilder) {
				b.SetAccount(testSender).
					SetIssuance(testIssuanceID, testIssuer).
					SetAmount(big.NewInt(2_500_000)).
					SetEnvelope(testEnvelope())
			},
			want: types.Transaction{
				TransactionType: types.TransactionTypePayment,
				Account:         testSender,
				Destination:     testGateway,
				Amount:          types.NewMPTAmount(testIssuanceID, "2.5", 6),
				Memos: []types.MemoWrapper{{Memo: types.Memo{
					MemoType: "746578742F6A736F6E",
					MemoData: envelopeHex,
				}}},
			},
		},
		{
			name: "issuer is optional",
			setup: func(b *bridge.TransactionBuilder) {
				b.SetAccount(testSender).
					SetIssuance(testIssuanceID, "").
					SetAmount(big.NewInt(1)).
					SetEnvelope(testEnvelope())
			},
			want: types.Transaction{
				TransactionType: types.TransactionTypePayment,
				Account:         testSender,
				Destination:     testGateway,
				Amount:          types.NewMPTAmount(testIssuanceID, "0.000001", 6),
				Memos: []types.MemoWrapper{{Memo: types.Memo{
					MemoType: "746578742F6A736F6E",
					MemoData: envelopeHex,
				}}},
			},
		},
		{
			name: "invalid account",
			setup: func(b *bridge.TransactionBuilder) {
				b.SetAccount("rBad").
					SetIssuance(testIssuanceID, testIssuer).
					SetAmount(big.NewInt(1)).
					SetEnvelope(testEnvelope())
			},
			wantErr:  `validation error: invalid Account: "rBad" is not a classic address`,
			wantType: new(*sdkerrors.ValidationError),
		},
		{
			name: "short issuance id",
			setup: func(b *bridge.TransactionBuilder) {
				b.SetAccount(testSender).
					SetIssuance("00000001", testIssuer).
					SetAmount(big.NewInt(1)).
					SetEnvelope(testEnvelope())
			},
			wantErr:  `validation error: invalid mpt_issuance_id: invalid MPT issuance id "00000001": must be 24 bytes, got 4`,
			wantType: new(*sdkerrors.ValidationError),
		},
		{
			name: "invalid issuer address",
			setup: func(b *bridge.TransactionBuilder) {
				b.SetAccount(testSender).
					SetIssuance(testIssuanceID, "rBad").
					SetAmount(big.NewInt(1)).
					SetEnvelope(testEnvelope())
			},
			wantErr:  `validation error: invalid issuer: invalid address "rBad": value too short`,
			wantType: new(*sdkerrors.ValidationError),
		},
		{
			name: "issuance created by another account",
			setup: func(b *bridge.TransactionBuilder) {
				b.SetAccount(testSender).
					SetIssuance(testIssuanceID, testSender).
					SetAmount(big.NewInt(1)).
					SetEnvelope(testEnvelope())
			},
			wantErr:  `validation error: invalid issuer: issuance ` + testIssuanceID + ` was not created by ` + testSender,
			wantType: new(*sdkerrors.ValidationError),
		},
		{
			name: "missing amount",
			setup: func(b *bridge.TransactionBuilder) {
				b.SetAccount(testSender).
					SetIssuance(testIssuanceID, testIssuer).
					SetEnvelope(testEnvelope())
			},
			wantErr:  "validation error: invalid Amount: missing amount",
			wantType: new(*sdkerrors.ValidationError),
		},
		{
			name: "amount above maximum",
			setup: func(b *bridge.TransactionBuilder) {
				b.SetAccount(testSender).
					SetIssuance(testIssuanceID, testIssuer).
					SetAmount(new(big.Int).Add(big.NewInt(math.MaxInt64), big.NewInt(1))).
					SetEnvelope(testEnvelope())
			},
			wantErr: "validation error: invalid Amount: amount 9223372036854775808 exceeds the maximum MPT " +
				"amount 9223372036854775807",
			wantType: new(*sdkerrors.ValidationError),
		},
		{
			name: "missing envelope",
			setup: func(b *bridge.TransactionBuilder) {
				b.SetAccount(testSender).
					SetIssuance(testIssuanceID, testIssuer).
					SetAmount(big.NewInt(1))
			},
			wantErr:  "validation error: invalid Memos: missing GMP envelope",
			wantType: new(*sdkerrors.ValidationError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			builder := bridge.NewTransactionBuilder(testDeployment())
			tt.setup(builder)

			got, err := builder.Build()
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				require.ErrorAs(t, err, tt.wantType)

				return
			}
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Build() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransactionBuilder_MissingGateway(t *testing.T) {
	t.Parallel()

	_, err := bridge.NewTransactionBuilder(types.DefaultDeployment()).
		SetAccount(testSender).
		SetIssuance(testIssuanceID, testIssuer).
		SetAmount(big.NewInt(1)).
		SetEnvelope(testEnvelope()).
		Build()
	require.EqualError(t, err, `validation error: invalid Destination: does not satisfy "required"`)
}

func TestScaleAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give          int64
		givePrecision uint8
		want          string
	}{
		{give: 2_500_000, givePrecision: 6, want: "2.5"},
		{give: 1, givePrecision: 6, want: "0.000001"},
		{give: 1_000_000, givePrecision: 6, want: "1"},
		{give: 1_234_567, givePrecision: 6, want: "1.234567"},
		{give: 42, givePrecision: 0, want: "42"},
		{give: 10, givePrecision: 18, want: "0.00000000000000001"},
		{give: math.MaxInt64, givePrecision: 6, want: "9223372036854.775807"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bridge.ScaleAmount(big.NewInt(tt.give), tt.givePrecision),
			"ScaleAmount(%d, %d)", tt.give, tt.givePrecision)
	}
}
