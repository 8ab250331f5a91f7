package xrpl

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // account IDs are defined over RIPEMD-160
)

const (
	accountIDLength = 20
	entropyLength   = 16
	checksumLength  = 4

	// MPTIssuanceIDLength is the byte length of an MPT issuance id: a big-endian sequence number
	// followed by the issuer's account id.
	MPTIssuanceIDLength = 24
)

var (
	xrplAlphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

	accountIDPrefix   = []byte{0x00}
	familySeedPrefix  = []byte{0x21}
	ed25519SeedPrefix = []byte{0x01, 0xe1, 0x4b}

	ErrInvalidChecksum = errors.New("invalid base58 checksum")
)

// KeyType is the signing algorithm of a wallet.
type KeyType string

const (
	KeyTypeSecp256k1 KeyType = "secp256k1"
	KeyTypeEd25519   KeyType = "ed25519"
)

// DecodeAddress returns the 20-byte account id of a classic address.
func DecodeAddress(address string) ([]byte, error) {
	body, err := decodeCheck(address)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", address, err)
	}

	if len(body) != len(accountIDPrefix)+accountIDLength || !bytes.HasPrefix(body, accountIDPrefix) {
		return nil, fmt.Errorf("invalid address %q: not a classic address", address)
	}

	return body[len(accountIDPrefix):], nil
}

// EncodeAddress returns the classic address of a 20-byte account id.
func EncodeAddress(accountID []byte) (string, error) {
	if len(accountID) != accountIDLength {
		return "", fmt.Errorf("account id must be %d bytes, got %d", accountIDLength, len(accountID))
	}

	return encodeCheck(accountIDPrefix, accountID), nil
}

// IsValidAddress reports whether address is a well-formed classic address.
func IsValidAddress(address string) bool {
	_, err := DecodeAddress(address)
	return err == nil
}

// AccountID returns the account id of a serialized public key.
func AccountID(publicKey []byte) []byte {
	sum := sha256.Sum256(publicKey)
	hasher := ripemd160.New()
	hasher.Write(sum[:])

	return hasher.Sum(nil)
}

// DecodeSeed returns the entropy and key type of a family seed.
func DecodeSeed(seed string) ([]byte, KeyType, error) {
	body, err := decodeCheck(seed)
	if err != nil {
		return nil, "", fmt.Errorf("invalid seed: %w", err)
	}

	switch {
	case len(body) == len(ed25519SeedPrefix)+entropyLength && bytes.HasPrefix(body, ed25519SeedPrefix):
		return body[len(ed25519SeedPrefix):], KeyTypeEd25519, nil
	case len(body) == len(familySeedPrefix)+entropyLength && bytes.HasPrefix(body, familySeedPrefix):
		return body[len(familySeedPrefix):], KeyTypeSecp256k1, nil
	default:
		return nil, "", errors.New("invalid seed: unknown encoding")
	}
}

// EncodeSeed returns the family seed of 16 bytes of entropy.
func EncodeSeed(entropy []byte, keyType KeyType) (string, error) {
	if len(entropy) != entropyLength {
		return "", fmt.Errorf("seed entropy must be %d bytes, got %d", entropyLength, len(entropy))
	}

	switch keyType {
	case KeyTypeSecp256k1:
		return encodeCheck(familySeedPrefix, entropy), nil
	case KeyTypeEd25519:
		return encodeCheck(ed25519SeedPrefix, entropy), nil
	default:
		return "", fmt.Errorf("unsupported key type %q", keyType)
	}
}

// DecodeMPTIssuanceID returns the raw bytes of a hex issuance id.
func DecodeMPTIssuanceID(issuanceID string) ([]byte, error) {
	raw, err := hex.DecodeString(issuanceID)
	if err != nil {
		return nil, fmt.Errorf("invalid MPT issuance id %q: %w", issuanceID, err)
	}
	if len(raw) != MPTIssuanceIDLength {
		return nil, fmt.Errorf("invalid MPT issuance id %q: must be %d bytes, got %d", issuanceID, MPTIssuanceIDLength, len(raw))
	}

	return raw, nil
}

// MPTIssuer returns the classic address of the account that created an issuance.
func MPTIssuer(issuanceID string) (string, error) {
	raw, err := DecodeMPTIssuanceID(issuanceID)
	if err != nil {
		return "", err
	}

	return EncodeAddress(raw[4:])
}

func encodeCheck(prefix, payload []byte) string {
	body := slices.Concat(prefix, payload)
	return base58.EncodeAlphabet(slices.Concat(body, checksum(body)), xrplAlphabet)
}

func decodeCheck(encoded string) ([]byte, error) {
	if strings.TrimSpace(encoded) == "" {
		return nil, errors.New("empty value")
	}

	raw, err := base58.DecodeAlphabet(encoded, xrplAlphabet)
	if err != nil {
		return nil, err
	}
	if len(raw) <= checksumLength {
		return nil, errors.New("value too short")
	}

	body, sum := raw[:len(raw)-checksumLength], raw[len(raw)-checksumLength:]
	if !bytes.Equal(checksum(body), sum) {
		return nil, ErrInvalidChecksum
	}

	return body, nil
}

func checksum(body []byte) []byte {
	first := sha256.Sum256(body)
	second := sha256.Sum256(first[:])

	return second[:checksumLength]
}
