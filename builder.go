package bridge

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	sdkerrors "github.com/xrpl-gmp/bridge/sdk/errors"
	"github.com/xrpl-gmp/bridge/sdk/xrpl"
	"github.com/xrpl-gmp/bridge/types"
)

// MaxMPTAmount is the largest raw amount an MPT payment can carry.
var MaxMPTAmount = big.NewInt(math.MaxInt64)

// TransactionBuilder assembles the unsigned payment that carries a GMP envelope to the gateway.
type TransactionBuilder struct {
	deployment types.Deployment
	account    string
	issuanceID string
	issuer     string
	amount     *big.Int
	envelope   *types.GMPEnvelope
}

// NewTransactionBuilder creates a new TransactionBuilder. The payment destination and the asset
// precision come from deployment.
func NewTransactionBuilder(deployment types.Deployment) *TransactionBuilder {
	return &TransactionBuilder{deployment: deployment}
}

// SetAccount sets the sending account.
func (b *TransactionBuilder) SetAccount(account string) *TransactionBuilder {
	b.account = account
	return b
}

// SetIssuance sets the MPT issuance being bridged. issuer may be empty; when set it must be the
// account that created the issuance.
func (b *TransactionBuilder) SetIssuance(issuanceID, issuer string) *TransactionBuilder {
	b.issuanceID = issuanceID
	b.issuer = issuer

	return b
}

// SetAmount sets the amount in raw token units.
func (b *TransactionBuilder) SetAmount(amount *big.Int) *TransactionBuilder {
	b.amount = amount
	return b
}

// SetEnvelope sets the envelope attached as the payment memo.
func (b *TransactionBuilder) SetEnvelope(envelope types.GMPEnvelope) *TransactionBuilder {
	b.envelope = &envelope
	return b
}

// Build validates the inputs and returns the unsigned payment. No network access is made.
func (b *TransactionBuilder) Build() (types.Transaction, error) {
	if !xrpl.IsValidAddress(b.account) {
		return types.Transaction{}, sdkerrors.NewValidationError("Account",
			fmt.Errorf("%q is not a classic address", b.account))
	}

	if err := b.validateIssuance(); err != nil {
		return types.Transaction{}, err
	}

	if err := validateRawAmount(b.amount); err != nil {
		return types.Transaction{}, sdkerrors.NewValidationError("Amount", err)
	}

	if b.envelope == nil {
		return types.Transaction{}, sdkerrors.NewValidationError("Memos", errors.New("missing GMP envelope"))
	}
	data, err := EncodeEnvelope(*b.envelope)
	if err != nil {
		return types.Transaction{}, err
	}

	tx := types.Transaction{
		TransactionType: types.TransactionTypePayment,
		Account:         b.account,
		Destination:     b.deployment.GatewayAddress,
		Amount: types.NewMPTAmount(
			b.issuanceID,
			ScaleAmount(b.amount, b.deployment.AssetPrecision),
			b.deployment.AssetPrecision,
		),
		Memos: []types.MemoWrapper{{Memo: types.Memo{
			MemoType: encodeMemoField([]byte(types.MemoTypeGMP)),
			MemoData: encodeMemoField(data),
		}}},
	}

	if err := validateStruct(tx); err != nil {
		return types.Transaction{}, err
	}

	return tx, nil
}

func (b *TransactionBuilder) validateIssuance() error {
	creator, err := xrpl.MPTIssuer(b.issuanceID)
	if err != nil {
		return sdkerrors.NewValidationError("mpt_issuance_id", err)
	}

	if b.issuer == "" {
		return nil
	}

	if _, err := xrpl.DecodeAddress(b.issuer); err != nil {
		return sdkerrors.NewValidationError("issuer", err)
	}
	if creator != b.issuer {
		return sdkerrors.NewValidationError("issuer",
			fmt.Errorf("issuance %s was not created by %s", b.issuanceID, b.issuer))
	}

	return nil
}

func validateRawAmount(amount *big.Int) error {
	switch {
	case amount == nil:
		return errors.New("missing amount")
	case amount.Sign() <= 0:
		return fmt.Errorf("amount %s must be positive", amount)
	case amount.Cmp(MaxMPTAmount) > 0:
		return fmt.Errorf("amount %s exceeds the maximum MPT amount %s", amount, MaxMPTAmount)
	}

	return nil
}

// ScaleAmount renders a raw amount as a decimal string with precision decimal places shifted
// out. The result is exact: 2500000 at precision 6 is "2.5", 1 is "0.000001".
func ScaleAmount(raw *big.Int, precision uint8) string {
	return decimal.NewFromBigInt(raw, -int32(precision)).String()
}

func encodeMemoField(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}
