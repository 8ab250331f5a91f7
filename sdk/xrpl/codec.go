package xrpl

import (
	"cmp"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xrpl-gmp/bridge/types"
)

// Serialized type codes.
const (
	typeUInt16    = 1
	typeUInt32    = 2
	typeAmount    = 6
	typeBlob      = 7
	typeAccountID = 8
	typeSTObject  = 14
	typeSTArray   = 15
)

const (
	objectEndMarker = 0xe1
	arrayEndMarker  = 0xf1

	// MaxDrops is the total XRP supply in drops.
	MaxDrops = 100_000_000_000_000_000

	positiveAmountBit = 0x4000000000000000
	mptAmountFlags    = 0x60
	maxMPTAmount      = math.MaxInt64
	maxLengthPrefixed = 918744
)

var (
	// hash prefixes
	signingPrefix       = []byte{'S', 'T', 'X', 0x00}
	transactionIDPrefix = []byte{'T', 'X', 'N', 0x00}

	transactionTypeCodes = map[string]uint16{
		types.TransactionTypePayment: 0,
	}
)

type fieldID struct {
	name      string
	typeCode  int
	fieldCode int
}

var (
	fieldTransactionType    = fieldID{"TransactionType", typeUInt16, 2}
	fieldNetworkID          = fieldID{"NetworkID", typeUInt32, 1}
	fieldFlags              = fieldID{"Flags", typeUInt32, 2}
	fieldSequence           = fieldID{"Sequence", typeUInt32, 4}
	fieldLastLedgerSequence = fieldID{"LastLedgerSequence", typeUInt32, 27}
	fieldAmount             = fieldID{"Amount", typeAmount, 1}
	fieldFee                = fieldID{"Fee", typeAmount, 8}
	fieldSigningPubKey      = fieldID{"SigningPubKey", typeBlob, 3}
	fieldTxnSignature       = fieldID{"TxnSignature", typeBlob, 4}
	fieldMemoType           = fieldID{"MemoType", typeBlob, 12}
	fieldMemoData           = fieldID{"MemoData", typeBlob, 13}
	fieldMemoFormat         = fieldID{"MemoFormat", typeBlob, 14}
	fieldAccount            = fieldID{"Account", typeAccountID, 1}
	fieldDestination        = fieldID{"Destination", typeAccountID, 3}
	fieldMemo               = fieldID{"Memo", typeSTObject, 10}
	fieldMemos              = fieldID{"Memos", typeSTArray, 9}
)

func (f fieldID) header() []byte {
	switch {
	case f.typeCode < 16 && f.fieldCode < 16:
		return []byte{byte(f.typeCode<<4 | f.fieldCode)}
	case f.typeCode < 16:
		return []byte{byte(f.typeCode << 4), byte(f.fieldCode)}
	case f.fieldCode < 16:
		return []byte{byte(f.fieldCode), byte(f.typeCode)}
	default:
		return []byte{0, byte(f.typeCode), byte(f.fieldCode)}
	}
}

type serializedField struct {
	id    fieldID
	value []byte
}

// fieldSet collects the fields of an object and writes them in canonical order.
type fieldSet []serializedField

func (s *fieldSet) add(id fieldID, value []byte) {
	*s = append(*s, serializedField{id: id, value: value})
}

func (s *fieldSet) addVariableLength(id fieldID, value []byte) error {
	prefix, err := encodeLength(len(value))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", id.name, err)
	}
	s.add(id, slices.Concat(prefix, value))

	return nil
}

func (s fieldSet) bytes() []byte {
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, func(a, b serializedField) int {
		return cmp.Or(cmp.Compare(a.id.typeCode, b.id.typeCode), cmp.Compare(a.id.fieldCode, b.id.fieldCode))
	})

	var out []byte
	for _, f := range sorted {
		out = append(out, f.id.header()...)
		out = append(out, f.value...)
	}

	return out
}

// EncodeTransaction returns the canonical binary serialization of a transaction.
func EncodeTransaction(tx types.Transaction) ([]byte, error) {
	return encodeTransaction(tx, false)
}

// SigningData returns the bytes a single signer signs: the signing prefix followed by the
// serialization without TxnSignature.
func SigningData(tx types.Transaction) ([]byte, error) {
	encoded, err := encodeTransaction(tx, true)
	if err != nil {
		return nil, err
	}

	return slices.Concat(signingPrefix, encoded), nil
}

// SigningHash returns SHA512Half of the signing data.
func SigningHash(tx types.Transaction) ([]byte, error) {
	data, err := SigningData(tx)
	if err != nil {
		return nil, err
	}

	return sha512Half(data), nil
}

// TransactionID returns the upper case hex identifying hash of a signed blob.
func TransactionID(blob []byte) string {
	return strings.ToUpper(hex.EncodeToString(sha512Half(slices.Concat(transactionIDPrefix, blob))))
}

func encodeTransaction(tx types.Transaction, forSigning bool) ([]byte, error) {
	var fields fieldSet

	code, ok := transactionTypeCodes[tx.TransactionType]
	if !ok {
		return nil, fmt.Errorf("unsupported transaction type %q", tx.TransactionType)
	}
	fields.add(fieldTransactionType, binary.BigEndian.AppendUint16(nil, code))

	if tx.NetworkID != 0 {
		fields.add(fieldNetworkID, binary.BigEndian.AppendUint32(nil, tx.NetworkID))
	}
	if tx.Flags != 0 {
		fields.add(fieldFlags, binary.BigEndian.AppendUint32(nil, tx.Flags))
	}
	fields.add(fieldSequence, binary.BigEndian.AppendUint32(nil, tx.Sequence))
	if tx.LastLedgerSequence != 0 {
		fields.add(fieldLastLedgerSequence, binary.BigEndian.AppendUint32(nil, tx.LastLedgerSequence))
	}

	amount, err := EncodeAmount(tx.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid Amount: %w", err)
	}
	fields.add(fieldAmount, amount)

	if tx.Fee == "" {
		return nil, errors.New("missing Fee")
	}
	fee, err := EncodeAmount(types.Amount{Drops: tx.Fee})
	if err != nil {
		return nil, fmt.Errorf("invalid Fee: %w", err)
	}
	fields.add(fieldFee, fee)

	blobs := []struct {
		id    fieldID
		value string
		skip  bool
	}{
		{fieldSigningPubKey, tx.SigningPubKey, false},
		{fieldTxnSignature, tx.TxnSignature, forSigning || tx.TxnSignature == ""},
	}
	for _, blob := range blobs {
		if blob.skip {
			continue
		}
		if err := addHexBlob(&fields, blob.id, blob.value); err != nil {
			return nil, err
		}
	}

	for _, account := range []struct {
		id      fieldID
		address string
	}{
		{fieldAccount, tx.Account},
		{fieldDestination, tx.Destination},
	} {
		accountID, err := DecodeAddress(account.address)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", account.id.name, err)
		}
		if err := fields.addVariableLength(account.id, accountID); err != nil {
			return nil, err
		}
	}

	if len(tx.Memos) > 0 {
		memos, err := encodeMemos(tx.Memos)
		if err != nil {
			return nil, err
		}
		fields.add(fieldMemos, memos)
	}

	return fields.bytes(), nil
}

func encodeMemos(memos []types.MemoWrapper) ([]byte, error) {
	var out []byte
	for i, wrapper := range memos {
		var inner fieldSet
		for _, f := range []struct {
			id    fieldID
			value string
		}{
			{fieldMemoType, wrapper.Memo.MemoType},
			{fieldMemoData, wrapper.Memo.MemoData},
			{fieldMemoFormat, wrapper.Memo.MemoFormat},
		} {
			if f.value == "" {
				continue
			}
			if err := addHexBlob(&inner, f.id, f.value); err != nil {
				return nil, fmt.Errorf("invalid Memos[%d]: %w", i, err)
			}
		}

		out = append(out, fieldMemo.header()...)
		out = append(out, inner.bytes()...)
		out = append(out, objectEndMarker)
	}

	return append(out, arrayEndMarker), nil
}

func addHexBlob(fields *fieldSet, id fieldID, value string) error {
	raw, err := hex.DecodeString(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", id.name, err)
	}

	return fields.addVariableLength(id, raw)
}

// EncodeAmount serializes an XRP or MPT amount. MPT values are decimal strings in units of
// 10^Scale and must resolve to a whole number of raw units.
func EncodeAmount(amount types.Amount) ([]byte, error) {
	if !amount.IsMPT() {
		drops, err := strconv.ParseUint(amount.Drops, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid drops %q: %w", amount.Drops, err)
		}
		if drops > MaxDrops {
			return nil, fmt.Errorf("drops %d exceed the XRP supply", drops)
		}

		return binary.BigEndian.AppendUint64(nil, positiveAmountBit|drops), nil
	}

	issuanceID, err := DecodeMPTIssuanceID(amount.MPTIssuanceID)
	if err != nil {
		return nil, err
	}

	raw, err := MPTRawValue(amount)
	if err != nil {
		return nil, err
	}

	out := []byte{mptAmountFlags}
	out = binary.BigEndian.AppendUint64(out, raw)

	return append(out, issuanceID...), nil
}

// MPTRawValue converts the decimal value of an MPT amount back to raw token units.
func MPTRawValue(amount types.Amount) (uint64, error) {
	value, err := decimal.NewFromString(amount.Value)
	if err != nil {
		return 0, fmt.Errorf("invalid MPT value %q: %w", amount.Value, err)
	}

	raw := value.Shift(int32(amount.Scale))
	if !raw.IsInteger() {
		return 0, fmt.Errorf("MPT value %q has more than %d decimal places", amount.Value, amount.Scale)
	}
	if raw.IsNegative() {
		return 0, fmt.Errorf("MPT value %q is negative", amount.Value)
	}
	if raw.GreaterThan(decimal.NewFromInt(maxMPTAmount)) {
		return 0, fmt.Errorf("MPT value %q exceeds the maximum MPT amount", amount.Value)
	}

	return raw.BigInt().Uint64(), nil
}

func encodeLength(n int) ([]byte, error) {
	switch {
	case n <= 192:
		return []byte{byte(n)}, nil
	case n <= 12480:
		n -= 193
		return []byte{byte(193 + n>>8), byte(n & 0xff)}, nil
	case n <= maxLengthPrefixed:
		n -= 12481
		return []byte{byte(241 + n>>16), byte(n >> 8 & 0xff), byte(n & 0xff)}, nil
	default:
		return nil, fmt.Errorf("length %d exceeds the maximum of %d", n, maxLengthPrefixed)
	}
}
