package bridge

import (
	"fmt"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"github.com/xrpl-gmp/bridge/internal/utils/safecast"
	"github.com/xrpl-gmp/bridge/types"
)

// Keys of a deployment profile.
const (
	KeyGatewayAddress   = "GATEWAY_ADDRESS"
	KeyDestinationChain = "DESTINATION_CHAIN"
	KeyAssetPrecision   = "ASSET_PRECISION"
)

var deploymentKeys = []string{KeyGatewayAddress, KeyDestinationChain, KeyAssetPrecision}

// LoadDeployment reads a dotenv-format deployment profile and applies it on top of base. Keys
// missing from the file keep their base value. The process environment is neither read nor
// modified.
func LoadDeployment(path string, base types.Deployment) (types.Deployment, error) {
	values, err := ReadDeploymentProfile(path)
	if err != nil {
		return types.Deployment{}, err
	}

	return ApplyDeployment(values, base)
}

// ReadDeploymentProfile returns the raw key/value pairs of a dotenv-format deployment profile.
func ReadDeploymentProfile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment profile %s: %w", path, err)
	}

	return values, nil
}

// ApplyDeployment overrides the fields of base with the profile values and validates the result.
func ApplyDeployment(values map[string]string, base types.Deployment) (types.Deployment, error) {
	deployment := base
	for key, value := range values {
		value = strings.TrimSpace(value)

		switch key {
		case KeyGatewayAddress:
			deployment.GatewayAddress = value
		case KeyDestinationChain:
			deployment.DestinationChain = value
		case KeyAssetPrecision:
			precision, err := safecast.ToUint8(value)
			if err != nil {
				return types.Deployment{}, fmt.Errorf("invalid %s %q: %w", KeyAssetPrecision, value, err)
			}
			deployment.AssetPrecision = precision
		default:
			return types.Deployment{}, fmt.Errorf("unknown deployment key %q, expected one of %s",
				key, strings.Join(deploymentKeys, ", "))
		}
	}

	if err := validateStruct(deployment); err != nil {
		return types.Deployment{}, err
	}

	return deployment, nil
}

// DeploymentKeys returns the keys accepted in a deployment profile.
func DeploymentKeys() []string {
	return slices.Clone(deploymentKeys)
}
