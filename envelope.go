package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	sdkerrors "github.com/xrpl-gmp/bridge/sdk/errors"
	"github.com/xrpl-gmp/bridge/sdk/evm"
	"github.com/xrpl-gmp/bridge/types"
)

// NewEnvelope wraps a call payload in a GMP envelope addressed to contract on the deployment's
// destination chain.
func NewEnvelope(deployment types.Deployment, contract string, payload []byte) (types.GMPEnvelope, error) {
	if strings.TrimSpace(deployment.DestinationChain) == "" {
		return types.GMPEnvelope{}, sdkerrors.NewSerializationError("destination_chain", errors.New("empty chain name"))
	}

	if err := evm.ValidateAddress(contract); err != nil {
		return types.GMPEnvelope{}, sdkerrors.NewSerializationError("destination_address", err)
	}

	if len(payload) == 0 {
		return types.GMPEnvelope{}, sdkerrors.NewSerializationError("payload", errors.New("empty payload"))
	}

	return types.GMPEnvelope{
		DestinationChain:   deployment.DestinationChain,
		DestinationAddress: contract,
		Payload:            slices.Clone(payload),
	}, nil
}

// EncodeEnvelope returns the canonical serialization of env.
func EncodeEnvelope(env types.GMPEnvelope) ([]byte, error) {
	data, err := env.Marshal()
	if err != nil {
		return nil, sdkerrors.NewSerializationError("envelope", err)
	}

	return data, nil
}

// ParseEnvelope is the strict inverse of EncodeEnvelope. Unknown or missing fields, trailing
// data and any serialization other than the canonical one are rejected, so a parsed envelope
// always re-encodes to the exact input bytes.
func ParseEnvelope(data []byte) (types.GMPEnvelope, error) {
	var fields struct {
		DestinationChain   *string          `json:"destination_chain"`
		DestinationAddress *string          `json:"destination_address"`
		Payload            *json.RawMessage `json:"payload"`
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fields); err != nil {
		return types.GMPEnvelope{}, sdkerrors.NewSerializationError("envelope", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return types.GMPEnvelope{}, sdkerrors.NewSerializationError("envelope", errors.New("trailing data"))
	}

	switch {
	case fields.DestinationChain == nil:
		return types.GMPEnvelope{}, sdkerrors.NewSerializationError("destination_chain", errors.New("missing"))
	case fields.DestinationAddress == nil:
		return types.GMPEnvelope{}, sdkerrors.NewSerializationError("destination_address", errors.New("missing"))
	case fields.Payload == nil:
		return types.GMPEnvelope{}, sdkerrors.NewSerializationError("payload", errors.New("missing"))
	}

	var payload hexutil.Bytes
	if err := json.Unmarshal(*fields.Payload, &payload); err != nil {
		return types.GMPEnvelope{}, sdkerrors.NewSerializationError("payload", err)
	}

	env, err := NewEnvelope(
		types.Deployment{DestinationChain: *fields.DestinationChain},
		*fields.DestinationAddress,
		payload,
	)
	if err != nil {
		return types.GMPEnvelope{}, err
	}

	canonical, err := EncodeEnvelope(env)
	if err != nil {
		return types.GMPEnvelope{}, err
	}
	if !bytes.Equal(canonical, data) {
		return types.GMPEnvelope{}, sdkerrors.NewSerializationError("envelope", errors.New("not in canonical form"))
	}

	return env, nil
}
