package xrpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xrpl-gmp/bridge/internal/utils/safecast"
	"github.com/xrpl-gmp/bridge/sdk"
	sdkerrors "github.com/xrpl-gmp/bridge/sdk/errors"
	"github.com/xrpl-gmp/bridge/types"
)

const (
	// networks with an id above this value require NetworkID on every transaction
	restrictedNetworkID = 1024

	errTxnNotFound = "txnNotFound"
)

var (
	dropsPerXRP = decimal.NewFromInt(1_000_000)
	feeCushion  = decimal.RequireFromString("1.2")
)

type accountInfoResult struct {
	AccountData struct {
		Account  string `json:"Account"`
		Sequence any    `json:"Sequence"`
	} `json:"account_data"`
}

type serverInfoResult struct {
	Info struct {
		LoadFactor      any `json:"load_factor"`
		NetworkID       any `json:"network_id"`
		ValidatedLedger *struct {
			BaseFeeXRP any `json:"base_fee_xrp"`
			Seq        any `json:"seq"`
		} `json:"validated_ledger"`
	} `json:"info"`
}

type submitResult struct {
	EngineResult        string `json:"engine_result"`
	EngineResultMessage string `json:"engine_result_message"`
	TxJSON              struct {
		Hash string `json:"hash"`
	} `json:"tx_json"`
}

type txResult struct {
	Hash        string `json:"hash"`
	LedgerIndex any    `json:"ledger_index"`
	Validated   bool   `json:"validated"`
	Meta        *struct {
		TransactionResult string `json:"TransactionResult"`
	} `json:"meta"`
}

type ledgerResult struct {
	LedgerIndex any  `json:"ledger_index"`
	Validated   bool `json:"validated"`
}

// Autofill sets Sequence from the sender's account, Fee from the node's current load,
// LastLedgerSequence to the latest validated ledger plus the configured offset and NetworkID on
// networks that require it. Fields already set by the caller are kept.
func (c *Client) Autofill(ctx context.Context, tx types.Transaction) (types.Transaction, error) {
	if tx.Sequence == 0 {
		sequence, err := c.accountSequence(ctx, tx.Account)
		if err != nil {
			return tx, sdkerrors.NewNetworkError("autofill", err)
		}
		tx.Sequence = sequence
	}

	var info serverInfoResult
	if err := c.Request(ctx, "server_info", nil, &info); err != nil {
		return tx, sdkerrors.NewNetworkError("autofill", err)
	}
	if info.Info.ValidatedLedger == nil {
		return tx, sdkerrors.NewNetworkError("autofill", errors.New("node has no validated ledger"))
	}

	if tx.Fee == "" {
		fee, err := c.fee(info)
		if err != nil {
			return tx, sdkerrors.NewNetworkError("autofill", err)
		}
		tx.Fee = fee
	}

	if tx.LastLedgerSequence == 0 {
		validated, err := safecast.ToUint32(info.Info.ValidatedLedger.Seq)
		if err != nil {
			return tx, sdkerrors.NewNetworkError("autofill", fmt.Errorf("invalid validated ledger: %w", err))
		}
		tx.LastLedgerSequence = validated + c.ledgerOffset
	}

	if tx.NetworkID == 0 && info.Info.NetworkID != nil {
		networkID, err := safecast.ToUint32(info.Info.NetworkID)
		if err != nil {
			return tx, sdkerrors.NewNetworkError("autofill", fmt.Errorf("invalid network id: %w", err))
		}
		if networkID > restrictedNetworkID {
			tx.NetworkID = networkID
		}
	}

	sdk.LoggerFrom(ctx).Debugf("Autofilled sequence %d, fee %s, last ledger sequence %d",
		tx.Sequence, tx.Fee, tx.LastLedgerSequence)

	return tx, nil
}

func (c *Client) accountSequence(ctx context.Context, account string) (uint32, error) {
	var info accountInfoResult
	params := map[string]any{"account": account, "ledger_index": "current"}
	if err := c.Request(ctx, "account_info", params, &info); err != nil {
		return 0, err
	}

	sequence, err := safecast.ToUint32(info.AccountData.Sequence)
	if err != nil {
		return 0, fmt.Errorf("invalid account sequence: %w", err)
	}

	return sequence, nil
}

// fee returns base_fee_xrp scaled by the load factor and a 20% cushion, in drops, rounded up and
// capped by the configured maximum.
func (c *Client) fee(info serverInfoResult) (string, error) {
	baseFeeXRP, err := safecast.ToFloat64(info.Info.ValidatedLedger.BaseFeeXRP)
	if err != nil {
		return "", fmt.Errorf("invalid base fee: %w", err)
	}

	loadFactor := 1.0
	if info.Info.LoadFactor != nil {
		loadFactor, err = safecast.ToFloat64(info.Info.LoadFactor)
		if err != nil {
			return "", fmt.Errorf("invalid load factor: %w", err)
		}
	}

	drops := decimal.NewFromFloat(baseFeeXRP).
		Mul(dropsPerXRP).
		Mul(decimal.NewFromFloat(loadFactor)).
		Mul(feeCushion).
		Ceil()

	if maxFee := decimal.NewFromBigInt(new(big.Int).SetUint64(c.maxFeeDrops), 0); drops.GreaterThan(maxFee) {
		drops = maxFee
	}

	return drops.String(), nil
}

// SubmitAndWait submits the blob once and polls until the transaction is found in a validated
// ledger or the validated ledger passes its LastLedgerSequence. Once submitted, the wait is not
// interrupted by cancellation of ctx.
func (c *Client) SubmitAndWait(ctx context.Context, signed types.SignedTransaction) (types.LedgerOutcome, error) {
	lastLedger := signed.Transaction.LastLedgerSequence
	if lastLedger == 0 {
		return types.LedgerOutcome{}, sdkerrors.NewValidationError("LastLedgerSequence",
			errors.New("required to bound the wait for validation"))
	}

	var submitted submitResult
	if err := c.Request(ctx, "submit", map[string]any{"tx_blob": signed.TxBlob}, &submitted); err != nil {
		return types.LedgerOutcome{}, sdkerrors.NewNetworkError("submit", err)
	}

	lggr := sdk.LoggerFrom(ctx)
	lggr.Infof("Submitted %s: %s", signed.Hash, submitted.EngineResult)

	if isFinalRejection(submitted.EngineResult) {
		return types.LedgerOutcome{}, sdkerrors.NewEngineResultError(submitted.EngineResult, submitted.EngineResultMessage)
	}

	hash := signed.Hash
	if hash == "" {
		hash = submitted.TxJSON.Hash
	}

	return c.waitForValidation(context.WithoutCancel(ctx), hash, lastLedger)
}

// isFinalRejection reports whether an engine result guarantees the transaction will never be
// included: malformed (tem) and failed (tef) transactions are not relayed to the network.
func isFinalRejection(engineResult string) bool {
	return strings.HasPrefix(engineResult, "tem") || strings.HasPrefix(engineResult, "tef")
}

func (c *Client) waitForValidation(ctx context.Context, hash string, lastLedger uint32) (types.LedgerOutcome, error) {
	lggr := sdk.LoggerFrom(ctx)
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		outcome, found, err := c.lookupTransaction(ctx, hash)
		if err != nil {
			return types.LedgerOutcome{}, sdkerrors.NewNetworkError("wait", err)
		}
		if found && outcome.Validated {
			return outcome, nil
		}

		latest, err := c.validatedLedgerIndex(ctx)
		if err != nil {
			return types.LedgerOutcome{}, sdkerrors.NewNetworkError("wait", err)
		}

		if latest > lastLedger {
			// the transaction may have been validated between the two lookups
			outcome, found, err = c.lookupTransaction(ctx, hash)
			if err != nil {
				return types.LedgerOutcome{}, sdkerrors.NewNetworkError("wait", err)
			}
			if found && outcome.Validated {
				return outcome, nil
			}

			return types.LedgerOutcome{}, sdkerrors.NewExpiredError(hash, lastLedger, latest)
		}

		lggr.Debugf("Waiting for %s: validated ledger %d, last ledger sequence %d", hash, latest, lastLedger)

		select {
		case <-ctx.Done():
			return types.LedgerOutcome{}, sdkerrors.NewNetworkError("wait", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *Client) lookupTransaction(ctx context.Context, hash string) (types.LedgerOutcome, bool, error) {
	var raw json.RawMessage
	err := c.Request(ctx, "tx", map[string]any{"transaction": hash, "binary": false}, &raw)

	var rpcErr *RPCError
	if errors.As(err, &rpcErr) && rpcErr.Code == errTxnNotFound {
		return types.LedgerOutcome{}, false, nil
	}
	if err != nil {
		return types.LedgerOutcome{}, false, err
	}

	var result txResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return types.LedgerOutcome{}, false, fmt.Errorf("failed to decode tx result: %w", err)
	}

	outcome := types.LedgerOutcome{
		Hash:      result.Hash,
		Validated: result.Validated,
		Raw:       raw,
	}
	if result.Meta != nil {
		outcome.TransactionResult = result.Meta.TransactionResult
	}
	if result.LedgerIndex != nil {
		outcome.LedgerIndex, err = safecast.ToUint32(result.LedgerIndex)
		if err != nil {
			return types.LedgerOutcome{}, false, fmt.Errorf("invalid ledger index: %w", err)
		}
	}

	return outcome, true, nil
}

func (c *Client) validatedLedgerIndex(ctx context.Context) (uint32, error) {
	var result ledgerResult
	if err := c.Request(ctx, "ledger", map[string]any{"ledger_index": "validated"}, &result); err != nil {
		return 0, err
	}

	index, err := safecast.ToUint32(result.LedgerIndex)
	if err != nil {
		return 0, fmt.Errorf("invalid validated ledger index: %w", err)
	}

	return index, nil
}
