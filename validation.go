package bridge

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	sdkerrors "github.com/xrpl-gmp/bridge/sdk/errors"
	"github.com/xrpl-gmp/bridge/sdk/evm"
	"github.com/xrpl-gmp/bridge/sdk/xrpl"
	"github.com/xrpl-gmp/bridge/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	tags := map[string]func(string) bool{
		"xrpladdr": xrpl.IsValidAddress,
		"evmaddr":  evm.IsValidAddress,
		"mptid": func(id string) bool {
			_, err := xrpl.DecodeMPTIssuanceID(id)
			return err == nil
		},
	}
	for tag, valid := range tags {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}

	return v
}

// ValidateRequest checks every field of a bridge request, credentials and endpoint included.
func ValidateRequest(req types.BridgeRequest) error {
	return validateStruct(req)
}

// validateStruct runs tag-based validation, skipping the fields named in except, and reports the
// first failing field. Field values are left out of the message since requests carry the sender
// secret.
func validateStruct(s any, except ...string) error {
	var err error
	if len(except) > 0 {
		err = validate.StructExcept(s, except...)
	} else {
		err = validate.Struct(s)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	constraint := fe.Tag()
	if fe.Param() != "" {
		constraint += "=" + fe.Param()
	}

	return sdkerrors.NewValidationError(fe.Field(), fmt.Errorf("does not satisfy %q", constraint))
}
