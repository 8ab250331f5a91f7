package types

import (
	"bytes"
	"encoding/json"
	"errors"
)

// TransactionTypePayment is the only transaction type emitted by the bridge.
const TransactionTypePayment = "Payment"

// Amount is an XRPL amount. It is either a number of XRP drops or a multi-purpose token amount
// referencing its issuance.
type Amount struct {
	// Drops is set for XRP amounts.
	Drops string

	// MPTIssuanceID and Value are set for MPT amounts. Value is a decimal string expressed in
	// units of 10^Scale raw token units.
	MPTIssuanceID string
	Value         string

	// Scale is the asset precision used to produce Value. It is not part of the JSON form.
	Scale uint8
}

// NewMPTAmount returns an MPT amount.
func NewMPTAmount(issuanceID, value string, scale uint8) Amount {
	return Amount{MPTIssuanceID: issuanceID, Value: value, Scale: scale}
}

// IsMPT reports whether the amount references a multi-purpose token.
func (a Amount) IsMPT() bool {
	return a.MPTIssuanceID != ""
}

type mptAmountJSON struct {
	MPTIssuanceID string `json:"mpt_issuance_id"`
	Value         string `json:"value"`
}

// MarshalJSON renders XRP amounts as a string of drops and MPT amounts as an object.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.IsMPT() {
		return json.Marshal(mptAmountJSON{MPTIssuanceID: a.MPTIssuanceID, Value: a.Value})
	}

	return json.Marshal(a.Drops)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty amount")
	}

	if data[0] == '"' {
		*a = Amount{}
		return json.Unmarshal(data, &a.Drops)
	}

	var mpt mptAmountJSON
	if err := json.Unmarshal(data, &mpt); err != nil {
		return err
	}
	if mpt.MPTIssuanceID == "" {
		return errors.New("unsupported amount: only XRP and MPT amounts are supported")
	}
	*a = Amount{MPTIssuanceID: mpt.MPTIssuanceID, Value: mpt.Value, Scale: a.Scale}

	return nil
}

// Memo is an XRPL memo. All fields are hex encoded.
type Memo struct {
	MemoType   string `json:"MemoType,omitempty" validate:"omitempty,hexadecimal"`
	MemoData   string `json:"MemoData,omitempty" validate:"omitempty,hexadecimal"`
	MemoFormat string `json:"MemoFormat,omitempty" validate:"omitempty,hexadecimal"`
}

// MemoWrapper is the array element form of a memo in the Memos field.
type MemoWrapper struct {
	Memo Memo `json:"Memo"`
}

// Transaction is an XRPL Payment as produced by the bridge. The autofill fields (Sequence, Fee,
// LastLedgerSequence, NetworkID) are empty until the ledger client fills them, the signing
// fields until the signer does.
type Transaction struct {
	TransactionType string        `json:"TransactionType" validate:"required,eq=Payment"`
	Account         string        `json:"Account" validate:"required,xrpladdr"`
	Destination     string        `json:"Destination" validate:"required,xrpladdr,nefield=Account"`
	Amount          Amount        `json:"Amount"`
	Memos           []MemoWrapper `json:"Memos,omitempty" validate:"omitempty,dive"`
	Flags           uint32        `json:"Flags,omitempty"`

	Sequence           uint32 `json:"Sequence,omitempty"`
	Fee                string `json:"Fee,omitempty" validate:"omitempty,numeric"`
	LastLedgerSequence uint32 `json:"LastLedgerSequence,omitempty"`
	NetworkID          uint32 `json:"NetworkID,omitempty"`

	SigningPubKey string `json:"SigningPubKey,omitempty" validate:"omitempty,hexadecimal"`
	TxnSignature  string `json:"TxnSignature,omitempty" validate:"omitempty,hexadecimal"`
}

// IsAutofilled reports whether the ledger-dependent fields have been populated.
func (t Transaction) IsAutofilled() bool {
	return t.Sequence != 0 && t.Fee != "" && t.LastLedgerSequence != 0
}

// SignedTransaction is a transaction with its signature, serialized blob and identifying hash.
// TxBlob is authoritative: it carries MPT amounts in raw units, while Transaction.Amount.Value
// is scaled by Amount.Scale. Submit TxBlob as is rather than re-encoding Transaction.
type SignedTransaction struct {
	Transaction Transaction `json:"tx_json"`
	TxBlob      string      `json:"tx_blob"`
	Hash        string      `json:"hash"`
}
