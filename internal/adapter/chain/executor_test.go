package chain

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nft-lifecycle-engine/config"
	"nft-lifecycle-engine/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	operatorAddr = common.HexToAddress("0x000000000000000000000000000000000000feed")
	contractAddr = common.HexToAddress("0x000000000000000000000000000000000000beef")
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newTestPool spins up a JSON-RPC stub and dials a single-endpoint pool
// against it. respond returns the result value, or an error message for a
// JSON-RPC error response.
func newTestPool(t *testing.T, respond func(req rpcRequest) (any, string)) *ClientPool {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		result, errMsg := respond(req)
		w.Header().Set("Content-Type", "application/json")
		if errMsg != "" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0", "id": req.ID,
				"error": map[string]any{"code": -32000, "message": errMsg},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": result})
	}))
	t.Cleanup(srv.Close)

	pool, err := Dial(context.Background(), config.ChainConfig{
		RPCEndpoints: []string{srv.URL},
		ReadTimeout:  5 * time.Second,
		ReadRetries:  1,
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func newTestExecutor(t *testing.T, respond func(req rpcRequest) (any, string)) *Executor {
	t.Helper()
	return NewExecutor(newTestPool(t, respond), operatorAddr, 3, 5*time.Second, 2, zerolog.Nop())
}

// receiptFor echoes the requested hash back in a minimal receipt.
func receiptFor(req rpcRequest, status string) map[string]any {
	var hash string
	_ = json.Unmarshal(req.Params[0], &hash)
	return map[string]any{
		"type":              "0x2",
		"status":            status,
		"cumulativeGasUsed": "0x5208",
		"gasUsed":           "0x5208",
		"logsBloom":         "0x" + strings.Repeat("0", 512),
		"logs":              []any{},
		"transactionHash":   hash,
		"blockHash":         "0x" + strings.Repeat("11", 32),
		"blockNumber":       "0x1",
		"transactionIndex":  "0x0",
		"effectiveGasPrice": "0x1",
	}
}

func dummyTx() *types.Transaction {
	to := contractAddr
	return types.NewTx(&types.LegacyTx{
		Nonce:    1,
		To:       &to,
		Gas:      21_000,
		GasPrice: big.NewInt(1),
		Value:    big.NewInt(0),
	})
}

func TestExecutor_PreconditionHolds_SkipsSubmit(t *testing.T) {
	exec := newTestExecutor(t, func(req rpcRequest) (any, string) {
		return nil, "unexpected rpc call: " + req.Method
	})

	submitCalled := false
	submit := func(ctx context.Context) (*types.Transaction, error) {
		submitCalled = true
		return nil, errors.New("must not submit")
	}
	verify := func(ctx context.Context) (bool, error) { return true, nil }

	res, err := exec.ExecuteWrite(context.Background(), "stake", contractAddr, submit, verify)
	require.NoError(t, err)
	assert.True(t, res.AlreadyApplied)
	assert.Empty(t, res.TxHash)
	assert.False(t, submitCalled)
}

func TestExecutor_ReceiptConfirmed_Success(t *testing.T) {
	exec := newTestExecutor(t, func(req rpcRequest) (any, string) {
		if req.Method == "eth_getTransactionReceipt" {
			return receiptFor(req, "0x1"), ""
		}
		return nil, "unexpected rpc call: " + req.Method
	})

	tx := dummyTx()
	submit := func(ctx context.Context) (*types.Transaction, error) { return tx, nil }
	verify := func(ctx context.Context) (bool, error) { return false, nil }

	res, err := exec.ExecuteWrite(context.Background(), "stake", contractAddr, submit, verify)
	require.NoError(t, err)
	assert.Equal(t, tx.Hash().Hex(), res.TxHash)
	assert.Equal(t, uint64(21_000), res.GasUsed)
	assert.False(t, res.Recovered)
}

func TestExecutor_Reverted_Terminal(t *testing.T) {
	exec := newTestExecutor(t, func(req rpcRequest) (any, string) {
		if req.Method == "eth_getTransactionReceipt" {
			return receiptFor(req, "0x0"), ""
		}
		return nil, "unexpected rpc call: " + req.Method
	})

	submits := 0
	submit := func(ctx context.Context) (*types.Transaction, error) {
		submits++
		return dummyTx(), nil
	}

	_, err := exec.ExecuteWrite(context.Background(), "withdraw", contractAddr, submit, nil)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CHN_002", appErr.Code)
	// A revert is final on chain; resubmitting would revert again.
	assert.Equal(t, 1, submits)
}

func TestExecutor_UserRejected_Terminal(t *testing.T) {
	exec := newTestExecutor(t, func(req rpcRequest) (any, string) {
		return nil, "unexpected rpc call: " + req.Method
	})

	submits := 0
	submit := func(ctx context.Context) (*types.Transaction, error) {
		submits++
		return nil, errors.New("user rejected transaction")
	}

	_, err := exec.ExecuteWrite(context.Background(), "setApprovalForAll", contractAddr, submit, nil)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CHN_004", appErr.Code)
	assert.Equal(t, 1, submits)
}

func TestExecutor_TransientSubmitFailure_Retries(t *testing.T) {
	exec := newTestExecutor(t, func(req rpcRequest) (any, string) {
		if req.Method == "eth_getTransactionReceipt" {
			return receiptFor(req, "0x1"), ""
		}
		return nil, "unexpected rpc call: " + req.Method
	})

	submits := 0
	submit := func(ctx context.Context) (*types.Transaction, error) {
		submits++
		if submits == 1 {
			return nil, errors.New("connection refused")
		}
		return dummyTx(), nil
	}

	res, err := exec.ExecuteWrite(context.Background(), "stake", contractAddr, submit, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, res.TxHash)
	assert.Equal(t, 2, submits)
}

func TestExecutor_DecodeError_StateReadConfirms_Recovered(t *testing.T) {
	// Block scan unavailable: the post-hoc state read is the only probe.
	exec := newTestExecutor(t, func(req rpcRequest) (any, string) {
		if req.Method == "eth_blockNumber" {
			return nil, "scan unavailable"
		}
		return nil, "unexpected rpc call: " + req.Method
	})

	submit := func(ctx context.Context) (*types.Transaction, error) {
		return nil, errors.New("json: cannot unmarshal object into Go value of type string")
	}
	verifyCalls := 0
	verify := func(ctx context.Context) (bool, error) {
		verifyCalls++
		// False for the pre-condition read, true once the write landed.
		return verifyCalls > 1, nil
	}

	res, err := exec.ExecuteWrite(context.Background(), "stake", contractAddr, submit, verify)
	require.NoError(t, err)
	assert.True(t, res.Recovered)
	assert.Equal(t, 2, verifyCalls)
}

func TestExecutor_DecodeError_BothProbesFail_DecodeRecoveryFailed(t *testing.T) {
	exec := newTestExecutor(t, func(req rpcRequest) (any, string) {
		if req.Method == "eth_blockNumber" {
			return nil, "scan unavailable"
		}
		return nil, "unexpected rpc call: " + req.Method
	})

	submit := func(ctx context.Context) (*types.Transaction, error) {
		return nil, errors.New("abi: cannot unpack output")
	}
	verify := func(ctx context.Context) (bool, error) { return false, nil }

	_, err := exec.ExecuteWrite(context.Background(), "stake", contractAddr, submit, verify)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CHN_005", appErr.Code)
	assert.Equal(t, apperror.HintCheckWallet, appErr.Hint)
}
