package xrpl

import (
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/xrpl-gmp/bridge/sdk"
	"github.com/xrpl-gmp/bridge/types"
)

const ed25519PublicKeyPrefix = 0xed

var _ sdk.Signer = (*Wallet)(nil)

// Wallet holds the keypair of a single XRPL account and signs transactions for it.
type Wallet struct {
	keyType   KeyType
	secp      *secp256k1.PrivateKey
	ed        ed25519.PrivateKey
	publicKey []byte
	address   string
}

// NewWalletFromSeed derives the account keypair of a family seed.
func NewWalletFromSeed(seed string) (*Wallet, error) {
	entropy, keyType, err := DecodeSeed(seed)
	if err != nil {
		return nil, err
	}

	w := &Wallet{keyType: keyType}
	switch keyType {
	case KeyTypeEd25519:
		w.ed = ed25519.NewKeyFromSeed(sha512Half(entropy))
		pub, ok := w.ed.Public().(ed25519.PublicKey)
		if !ok {
			return nil, errors.New("unexpected ed25519 public key type")
		}
		w.publicKey = slices.Concat([]byte{ed25519PublicKeyPrefix}, pub)
	case KeyTypeSecp256k1:
		w.secp, err = deriveSecp256k1(entropy)
		if err != nil {
			return nil, err
		}
		w.publicKey = w.secp.PubKey().SerializeCompressed()
	default:
		return nil, fmt.Errorf("unsupported key type %q", keyType)
	}

	w.address, err = EncodeAddress(AccountID(w.publicKey))
	if err != nil {
		return nil, err
	}

	return w, nil
}

// Address returns the classic address of the wallet's account.
func (w *Wallet) Address() string {
	return w.address
}

// PublicKey returns the serialized public key as upper case hex.
func (w *Wallet) PublicKey() string {
	return strings.ToUpper(hex.EncodeToString(w.publicKey))
}

// KeyType returns the signing algorithm of the wallet.
func (w *Wallet) KeyType() KeyType {
	return w.keyType
}

// Sign fills SigningPubKey and TxnSignature and returns the serialized blob and its hash. The
// transaction must belong to the wallet's account.
func (w *Wallet) Sign(tx types.Transaction) (types.SignedTransaction, error) {
	if tx.Account != w.address {
		return types.SignedTransaction{}, fmt.Errorf("wallet %s cannot sign for account %s", w.address, tx.Account)
	}

	tx.SigningPubKey = w.PublicKey()
	tx.TxnSignature = ""

	message, err := SigningData(tx)
	if err != nil {
		return types.SignedTransaction{}, err
	}

	signature, err := w.sign(message)
	if err != nil {
		return types.SignedTransaction{}, err
	}
	tx.TxnSignature = strings.ToUpper(hex.EncodeToString(signature))

	blob, err := EncodeTransaction(tx)
	if err != nil {
		return types.SignedTransaction{}, err
	}

	return types.SignedTransaction{
		Transaction: tx,
		TxBlob:      strings.ToUpper(hex.EncodeToString(blob)),
		Hash:        TransactionID(blob),
	}, nil
}

func (w *Wallet) sign(message []byte) ([]byte, error) {
	switch w.keyType {
	case KeyTypeEd25519:
		return ed25519.Sign(w.ed, message), nil
	case KeyTypeSecp256k1:
		return ecdsa.Sign(w.secp, sha512Half(message)).Serialize(), nil
	default:
		return nil, fmt.Errorf("unsupported key type %q", w.keyType)
	}
}

// Verify checks a signature over the signing data of a transaction against a serialized public
// key.
func Verify(message, signature, publicKey []byte) bool {
	if len(publicKey) == ed25519.PublicKeySize+1 && publicKey[0] == ed25519PublicKeyPrefix {
		return ed25519.Verify(publicKey[1:], message, signature)
	}

	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false
	}

	return sig.Verify(sha512Half(message), pub)
}

// deriveSecp256k1 derives the account key of a family seed: the root key is the first valid
// scalar of SHA512Half(entropy || i) and the account key adds to it the first valid scalar of
// SHA512Half(rootPublicKey || 0 || i).
func deriveSecp256k1(entropy []byte) (*secp256k1.PrivateKey, error) {
	root, err := deriveScalar(entropy, nil)
	if err != nil {
		return nil, err
	}

	rootPublicKey := secp256k1.NewPrivateKey(root).PubKey().SerializeCompressed()
	accountIndex := uint32(0)
	account, err := deriveScalar(rootPublicKey, &accountIndex)
	if err != nil {
		return nil, err
	}
	account.Add(root)

	if account.IsZero() {
		return nil, errors.New("derived private key is zero")
	}

	return secp256k1.NewPrivateKey(account), nil
}

func deriveScalar(seed []byte, discriminator *uint32) (*secp256k1.ModNScalar, error) {
	for i := uint32(0); i < math.MaxUint32; i++ {
		buf := slices.Clone(seed)
		if discriminator != nil {
			buf = binary.BigEndian.AppendUint32(buf, *discriminator)
		}
		buf = binary.BigEndian.AppendUint32(buf, i)

		var scalar secp256k1.ModNScalar
		if overflow := scalar.SetByteSlice(sha512Half(buf)); overflow || scalar.IsZero() {
			continue
		}

		return &scalar, nil
	}

	return nil, errors.New("no valid secp256k1 scalar for seed")
}

func sha512Half(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:32]
}
