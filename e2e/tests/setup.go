package e2e

import (
	"math/big"
	"os"
	"sync"
	"testing"

	"github.com/joho/godotenv"

	"github.com/xrpl-gmp/bridge/types"
)

// Shared test setup
var (
	sharedSetup *TestSetup
	setupOnce   sync.Once
)

// Config defines the ledger and bridge deployment under test. The MPT issuance is created
// beforehand by its issuer and must already be held by the sender.
type Config struct {
	LedgerURL           string
	SenderSeed          string
	MPTIssuanceID       string
	IssuerAddress       string
	Amount              *big.Int
	DestinationAddress  string
	DestinationContract string
	Deployment          types.Deployment
}

// TestSetup holds common setup for E2E test suites
type TestSetup struct {
	Config
}

// InitializeSharedTestSetup ensures the TestSetup is initialized only once. The suite is skipped
// when no ledger is configured.
func InitializeSharedTestSetup(t *testing.T) *TestSetup {
	t.Helper()

	setupOnce.Do(func() {
		if err := godotenv.Load("../custom_configs/.env"); err != nil {
			t.Logf("Failed to load .env file: %v", err)
		}

		ledgerURL := os.Getenv("E2E_LEDGER_URL")
		if ledgerURL == "" {
			return
		}

		amount, ok := new(big.Int).SetString(getenv("E2E_AMOUNT", "1"), 10)
		if !ok {
			t.Fatalf("E2E_AMOUNT is not an integer")
		}

		deployment := types.DefaultDeployment()
		deployment.GatewayAddress = os.Getenv("E2E_GATEWAY_ADDRESS")
		deployment.DestinationChain = getenv("E2E_DESTINATION_CHAIN", deployment.DestinationChain)

		sharedSetup = &TestSetup{Config: Config{
			LedgerURL:           ledgerURL,
			SenderSeed:          os.Getenv("E2E_SENDER_SEED"),
			MPTIssuanceID:       os.Getenv("E2E_MPT_ISSUANCE_ID"),
			IssuerAddress:       os.Getenv("E2E_ISSUER_ADDRESS"),
			Amount:              amount,
			DestinationAddress:  os.Getenv("E2E_DESTINATION_ADDRESS"),
			DestinationContract: os.Getenv("E2E_DESTINATION_CONTRACT"),
			Deployment:          deployment,
		}}
	})

	if sharedSetup == nil {
		t.Skip("E2E_LEDGER_URL is not set")
	}

	return sharedSetup
}

// Request returns the bridge request described by the configuration.
func (c Config) Request() types.BridgeRequest {
	return types.BridgeRequest{
		SenderSecret:        c.SenderSeed,
		LedgerURL:           c.LedgerURL,
		MPTIssuanceID:       c.MPTIssuanceID,
		IssuerAddress:       c.IssuerAddress,
		Amount:              new(big.Int).Set(c.Amount),
		DestinationAddress:  c.DestinationAddress,
		DestinationContract: c.DestinationContract,
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
