package bridge

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xrpl-gmp/bridge"
	"github.com/xrpl-gmp/bridge/sdk"
	sdkerrors "github.com/xrpl-gmp/bridge/sdk/errors"
	"github.com/xrpl-gmp/bridge/sdk/xrpl"
	"github.com/xrpl-gmp/bridge/types"
)

// stageConfig reports deployment failures, which happen before any bridging step.
const stageConfig = "config"

type options struct {
	gateway          string
	destinationChain string
	precision        uint8
	deploymentPath   string
	dryRun           bool
	pollInterval     time.Duration
	requestTimeout   time.Duration
	verbose          bool
}

func BuildBridgeCmd() *cobra.Command {
	var opts options

	cmd := cobra.Command{
		Use: "bridge <senderSecret> <ledgerURL> <mptIssuanceID> <issuerAddress> <amount> " +
			"<destinationEvmAddress> <evmContractAddress>",
		Short: "Bridge an MPT from the XRP Ledger to the EVM sidechain",
		Long: `Sends a single MPT payment to the gateway account with a GMP memo that mints the amount to the
destination address on the sidechain, then waits for the payment to be validated.

The amount is given in the token's smallest unit. The outcome is written as one JSON record:
on stdout when the payment succeeded, on stderr otherwise.`,
		Args:          cobra.ExactArgs(7),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.gateway, "gateway", "", "XRPL gateway account that routes GMP payments")
	cmd.Flags().StringVar(&opts.destinationChain, "destination-chain", types.DefaultDestinationChain,
		"GMP name of the destination chain")
	cmd.Flags().Uint8Var(&opts.precision, "precision", types.DefaultAssetPrecision,
		"Decimal places between raw token units and the ledger amount")
	cmd.Flags().StringVar(&opts.deploymentPath, "deployment", "",
		"Dotenv file with GATEWAY_ADDRESS, DESTINATION_CHAIN and ASSET_PRECISION; flags take precedence")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the unsigned payment without contacting the ledger")
	cmd.Flags().DurationVar(&opts.pollInterval, "poll-interval", xrpl.DefaultPollInterval,
		"Interval between validation checks")
	cmd.Flags().DurationVar(&opts.requestTimeout, "request-timeout", xrpl.DefaultRequestTimeout,
		"Timeout of each request to the ledger node")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	return &cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts options, args []string) error {
	out := newReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	lggr := zap.NewNop()
	if opts.verbose {
		lggr = newDevelopmentLogger(cmd)
	}
	defer func() { _ = lggr.Sync() }()
	ctx = sdk.WithLogger(ctx, lggr.Sugar())

	deployment, err := loadDeployment(cmd, opts)
	if err != nil {
		return out.fail(stageConfig, err)
	}

	b, err := bridge.New(deployment)
	if err != nil {
		return out.fail(stageConfig, err)
	}

	req, err := parseRequest(args)
	if err != nil {
		return out.fail(string(bridge.StepBuild), err)
	}

	wallet, err := xrpl.NewWalletFromSeed(req.SenderSecret)
	if err != nil {
		return out.fail(string(bridge.StepSign), err)
	}

	if opts.dryRun {
		tx, err := b.Prepare(wallet.Address(), req)
		if err != nil {
			return out.fail(string(bridge.StepBuild), err)
		}

		return out.prepared(tx)
	}

	client, err := xrpl.NewClient(req.LedgerURL,
		xrpl.WithPollInterval(opts.pollInterval),
		xrpl.WithRequestTimeout(opts.requestTimeout),
	)
	if err != nil {
		return out.fail(string(bridge.StepConnect), err)
	}

	lggr.Sugar().Infof("Bridging %s raw units of %s from %s to %s on %s",
		req.Amount, req.MPTIssuanceID, wallet.Address(), req.DestinationAddress, deployment.DestinationChain)

	result, err := b.Execute(ctx, req, client, wallet)
	if err != nil {
		var stageErr *bridge.StageError
		if errors.As(err, &stageErr) {
			return out.fail(string(stageErr.Step), stageErr.Err)
		}

		return out.fail(string(bridge.StepSubmit), err)
	}

	return out.result(result)
}

// loadDeployment layers the deployment profile and then explicitly set flags over the defaults.
func loadDeployment(cmd *cobra.Command, opts options) (types.Deployment, error) {
	values := map[string]string{}
	if opts.deploymentPath != "" {
		var err error
		if values, err = bridge.ReadDeploymentProfile(opts.deploymentPath); err != nil {
			return types.Deployment{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("gateway") {
		values[bridge.KeyGatewayAddress] = opts.gateway
	}
	if flags.Changed("destination-chain") {
		values[bridge.KeyDestinationChain] = opts.destinationChain
	}
	if flags.Changed("precision") {
		values[bridge.KeyAssetPrecision] = strconv.FormatUint(uint64(opts.precision), 10)
	}

	return bridge.ApplyDeployment(values, types.DefaultDeployment())
}

func parseRequest(args []string) (types.BridgeRequest, error) {
	amount, ok := new(big.Int).SetString(args[4], 10)
	if !ok {
		return types.BridgeRequest{}, sdkerrors.NewValidationError("Amount",
			fmt.Errorf("%q is not a base 10 integer", args[4]))
	}

	req := types.BridgeRequest{
		SenderSecret:        args[0],
		LedgerURL:           args[1],
		MPTIssuanceID:       args[2],
		IssuerAddress:       args[3],
		Amount:              amount,
		DestinationAddress:  args[5],
		DestinationContract: args[6],
	}
	if err := bridge.ValidateRequest(req); err != nil {
		return types.BridgeRequest{}, err
	}

	return req, nil
}

func newDevelopmentLogger(cmd *cobra.Command) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		zap.DebugLevel,
	)

	return zap.New(core, zap.Development())
}
