package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"nft-lifecycle-engine/internal/core/ports"
	"nft-lifecycle-engine/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

// SubmitFunc submits one transaction attempt.
type SubmitFunc func(ctx context.Context) (*types.Transaction, error)

// VerifyFunc re-reads chain state to check whether the intended effect of a
// write already happened. Used by the undecodable-receipt recovery path.
type VerifyFunc func(ctx context.Context) (bool, error)

// Executor wraps chain writes with bounded retries and the
// successful-despite-undecodable-receipt recovery. Without the recovery a
// correctly executed stake/unstake/burn would be retried or reported as
// failed, corrupting both stores.
type Executor struct {
	pool           *ClientPool
	from           common.Address
	writeRetries   int
	receiptTimeout time.Duration
	recoveryBlocks int
	log            zerolog.Logger
}

// NewExecutor creates an Executor. from is the submitting (operator)
// address, matched during recovery block scans.
func NewExecutor(pool *ClientPool, from common.Address, writeRetries int, receiptTimeout time.Duration, recoveryBlocks int, log zerolog.Logger) *Executor {
	if writeRetries <= 0 {
		writeRetries = 3
	}
	if receiptTimeout <= 0 {
		receiptTimeout = 45 * time.Second
	}
	if recoveryBlocks <= 0 {
		recoveryBlocks = 5
	}
	return &Executor{
		pool:           pool,
		from:           from,
		writeRetries:   writeRetries,
		receiptTimeout: receiptTimeout,
		recoveryBlocks: recoveryBlocks,
		log:            log,
	}
}

// ExecuteWrite submits via submit, waits for the receipt, and classifies
// failures: transient errors retry with exponential backoff, a wallet
// rejection and a contract revert are terminal, and a decode error goes
// through recovery before being reported. Every attempt starts with a
// pre-condition read; when the intended effect already holds on chain the
// write is skipped entirely, so a resubmission after a lost receipt cannot
// apply the same mutation twice.
func (e *Executor) ExecuteWrite(ctx context.Context, op string, to common.Address, submit SubmitFunc, verify VerifyFunc) (*ports.ChainWriteResult, error) {
	var result *ports.ChainWriteResult

	operation := func() error {
		if verify != nil {
			done, err := verify(ctx)
			if err != nil {
				e.log.Debug().Err(err).Str("op", op).Msg("pre-condition read failed, submitting anyway")
			} else if done {
				e.log.Info().Str("op", op).Msg("effect already on chain, skipping submit")
				result = &ports.ChainWriteResult{AlreadyApplied: true}
				return nil
			}
		}

		tx, err := submit(ctx)
		if err != nil {
			switch {
			case isUserRejected(err):
				return backoff.Permanent(apperror.ErrUserRejected())
			case isDecodeError(err):
				// The submission may have gone through before the client
				// choked on the response.
				recovered, recErr := e.recoverUndecodable(ctx, op, to, verify, err)
				if recErr != nil {
					return backoff.Permanent(recErr)
				}
				result = recovered
				return nil
			case isTransient(err):
				e.log.Warn().Err(err).Str("op", op).Msg("transient chain error, will retry")
				return err
			default:
				return backoff.Permanent(fmt.Errorf("%s: submit: %w", op, err))
			}
		}

		receipt, err := e.waitMined(ctx, tx)
		if err != nil {
			if isDecodeError(err) {
				recovered, recErr := e.recoverUndecodable(ctx, op, to, verify, err)
				if recErr != nil {
					return backoff.Permanent(recErr)
				}
				recovered.TxHash = tx.Hash().Hex()
				result = recovered
				return nil
			}
			if errors.Is(err, context.DeadlineExceeded) {
				// The tx may still land; the orphan sweep is the safety net.
				return backoff.Permanent(apperror.ErrChainTimeout(err).WithDetails(map[string]string{"tx_hash": tx.Hash().Hex()}))
			}
			return err
		}
		if receipt.Status == types.ReceiptStatusFailed {
			return backoff.Permanent(apperror.ErrChainReverted(fmt.Errorf("%s: tx %s", op, tx.Hash().Hex())).WithDetails(map[string]string{"tx_hash": tx.Hash().Hex()}))
		}

		result = &ports.ChainWriteResult{TxHash: tx.Hash().Hex(), GasUsed: receipt.GasUsed}
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(e.writeRetries)), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		return nil, err
	}
	return result, nil
}

// waitMined polls for the receipt under the configured timeout.
func (e *Executor) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, e.receiptTimeout)
	defer cancel()

	client := e.pool.Primary()
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		receipt, err := client.TransactionReceipt(waitCtx, tx.Hash())
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, context.DeadlineExceeded) && isDecodeError(err) {
			return nil, err
		}
		select {
		case <-waitCtx.Done():
			return nil, waitCtx.Err()
		case <-ticker.C:
		}
	}
}

// recoverUndecodable implements the mandatory recovery: (1) scan the most
// recent blocks for a matching from/to transaction, (2) re-read the
// intended chain-side effect. Only when both fail is the operation
// reported as failed, at high severity.
func (e *Executor) recoverUndecodable(ctx context.Context, op string, to common.Address, verify VerifyFunc, cause error) (*ports.ChainWriteResult, error) {
	e.log.Warn().Err(cause).Str("op", op).Msg("undecodable receipt, attempting recovery")

	if hash, ok := e.scanRecentBlocks(ctx, to); ok {
		e.log.Info().Str("op", op).Str("tx_hash", hash).Msg("recovered write via block scan")
		return &ports.ChainWriteResult{TxHash: hash, Recovered: true}, nil
	}

	if verify != nil {
		ok, err := verify(ctx)
		if err != nil {
			e.log.Warn().Err(err).Str("op", op).Msg("recovery state read failed")
		} else if ok {
			e.log.Info().Str("op", op).Msg("recovered write via state read")
			return &ports.ChainWriteResult{Recovered: true}, nil
		}
	}

	e.log.Error().Err(cause).Str("op", op).Msg("decode recovery failed, outcome unknown, manual reconciliation required")
	return nil, apperror.ErrDecodeRecoveryFailed(cause)
}

// scanRecentBlocks looks for a transaction from the operator to the target
// contract in the last few blocks.
func (e *Executor) scanRecentBlocks(ctx context.Context, to common.Address) (string, bool) {
	client := e.pool.Primary()
	head, err := client.BlockNumber(ctx)
	if err != nil {
		return "", false
	}
	for i := 0; i < e.recoveryBlocks && uint64(i) <= head; i++ {
		block, err := client.BlockByNumber(ctx, new(big.Int).SetUint64(head-uint64(i)))
		if err != nil {
			continue
		}
		if hash, ok := e.matchTx(block.Transactions(), to); ok {
			return hash, true
		}
	}
	return "", false
}

func (e *Executor) matchTx(txs types.Transactions, to common.Address) (string, bool) {
	for _, tx := range txs {
		if tx.To() == nil || *tx.To() != to {
			continue
		}
		from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
		if err == nil && from == e.from {
			return tx.Hash().Hex(), true
		}
	}
	return "", false
}

// isDecodeError matches the client-side "parameter decoding error" family:
// the tx may have succeeded on-chain while the local ABI failed on the
// response.
func isDecodeError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "abi") && (strings.Contains(msg, "unpack") || strings.Contains(msg, "decode")) ||
		strings.Contains(msg, "cannot unmarshal") ||
		strings.Contains(msg, "decoding error") ||
		strings.Contains(msg, "invalid opcode: output")
}

func isUserRejected(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "user rejected") || strings.Contains(msg, "user denied")
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection refused", "connection reset", "timeout", "temporarily",
		"too many requests", "502", "503", "eof", "nonce too low",
		"replacement transaction underpriced",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// isGasError matches estimation/underpricing failures that justify moving
// to the next fallback gas tier.
func isGasError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"gas required exceeds", "intrinsic gas too low", "out of gas", "underpriced", "gas limit"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
