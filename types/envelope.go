package types

import (
	"bytes"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// MemoTypeGMP is the memo type that marks a payment memo as a JSON GMP envelope.
const MemoTypeGMP = "text/json"

// GMPEnvelope is the general message passing instruction carried in the payment memo. The field
// order is the serialization order and must not change: the gateway verifies the payload against
// the exact bytes it receives.
type GMPEnvelope struct {
	DestinationChain   string        `json:"destination_chain"`
	DestinationAddress string        `json:"destination_address"`
	Payload            hexutil.Bytes `json:"payload"`
}

// Marshal returns the canonical serialization of the envelope: compact UTF-8 JSON, keys in
// declaration order, payload as 0x-prefixed lower case hex and no HTML escaping.
func (e GMPEnvelope) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
