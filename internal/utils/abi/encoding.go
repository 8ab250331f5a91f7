package abi

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const selectorLength = 4

// ErrSelectorMismatch is returned when calldata does not start with the selector of the expected
// method.
var ErrSelectorMismatch = errors.New("function selector mismatch")

// Method builds the ABI method name(inputs) where inputs is a JSON argument list, for example
// `[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}]`.
func Method(name, inputs string) (abi.Method, error) {
	def := fmt.Sprintf(`[{"name":%q,"type":"function","inputs":%s}]`, name, inputs)
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		return abi.Method{}, err
	}

	return parsed.Methods[name], nil
}

// EncodeCall is the equivalent of abi.encodeWithSignature: the 4-byte selector of the method
// followed by the ABI encoding of the values.
func EncodeCall(name, inputs string, values ...any) ([]byte, error) {
	method, err := Method(name, inputs)
	if err != nil {
		return nil, err
	}

	args, err := method.Inputs.Pack(values...)
	if err != nil {
		return nil, err
	}

	return slices.Concat(method.ID, args), nil
}

// DecodeCall checks that data is a call to the method and returns the decoded arguments.
func DecodeCall(name, inputs string, data []byte) ([]any, error) {
	method, err := Method(name, inputs)
	if err != nil {
		return nil, err
	}

	if len(data) < selectorLength {
		return nil, fmt.Errorf("calldata too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:selectorLength], method.ID) {
		return nil, fmt.Errorf("%w: got 0x%x, want 0x%x", ErrSelectorMismatch, data[:selectorLength], method.ID)
	}

	return method.Inputs.Unpack(data[selectorLength:])
}
