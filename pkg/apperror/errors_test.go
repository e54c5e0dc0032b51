package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("NFT_002", "Asset is already staked", http.StatusConflict, HintNone),
			expected: "[NFT_002] Asset is already staked",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, HintSafeToRetry, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, HintSafeToRetry, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("NFT_001", "test", http.StatusForbidden, HintNone)
	assert.Nil(t, appErr.Unwrap())
}

func TestLifecycleErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
		hint       RetryHint
	}{
		{"NotOwner", ErrNotOwner(), "NFT_001", 403, HintNone},
		{"AlreadyStaked", ErrAlreadyStaked(), "NFT_002", 409, HintNone},
		{"NotStaked", ErrNotStaked(), "NFT_003", 409, HintNone},
		{"InvalidBurnSet", ErrInvalidBurnSet(), "NFT_004", 400, HintNone},
		{"PoolExhausted", ErrPoolExhausted(), "NFT_005", 409, HintNone},
		{"MutationInFlight", ErrMutationInFlight(), "NFT_006", 409, HintSafeToRetry},
		{"AssetNotFound", ErrAssetNotFound("a1"), "NFT_007", 404, HintNone},
		{"NotClaimable", ErrNotClaimable(), "NFT_008", 409, HintNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.hint, tt.err.Hint)
		})
	}
}

func TestChainErrors(t *testing.T) {
	cause := fmt.Errorf("rpc: connection reset")
	tests := []struct {
		name string
		err  *AppError
		code string
		hint RetryHint
	}{
		{"ChainTimeout", ErrChainTimeout(cause), "CHN_001", HintSafeToRetry},
		{"ChainReverted", ErrChainReverted(cause), "CHN_002", HintNone},
		{"ApprovalFailed", ErrApprovalFailed(cause), "CHN_003", HintSafeToRetry},
		{"UserRejected", ErrUserRejected(), "CHN_004", HintNone},
		{"DecodeRecoveryFailed", ErrDecodeRecoveryFailed(cause), "CHN_005", HintCheckWallet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.hint, tt.err.Hint)
		})
	}
}

func TestAppError_Retryable(t *testing.T) {
	assert.True(t, ErrMutationInFlight().Retryable())
	assert.True(t, ErrDatabaseError(fmt.Errorf("x")).Retryable())
	assert.False(t, ErrAlreadyStaked().Retryable())
	assert.False(t, ErrDecodeRecoveryFailed(fmt.Errorf("x")).Retryable())
}

func TestAppError_WithHintAndDetails(t *testing.T) {
	err := ErrChainReverted(fmt.Errorf("revert")).
		WithHint(HintIrreversible).
		WithDetails(map[string]any{"succeeded_token_ids": []uint64{1, 2}})

	assert.Equal(t, HintIrreversible, err.Hint)
	details, ok := err.Details.(map[string]any)
	assert.True(t, ok)
	assert.Len(t, details["succeeded_token_ids"], 2)
}
