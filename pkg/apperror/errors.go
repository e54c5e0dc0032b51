package apperror

import (
	"fmt"
	"net/http"
)

// RetryHint tells the caller what a failure means for their assets.
type RetryHint string

const (
	// HintSafeToRetry: nothing happened, the operation can be resubmitted.
	HintSafeToRetry RetryHint = "safe_to_retry"
	// HintCheckWallet: the chain outcome is uncertain (undecodable receipt);
	// the caller should verify on an explorer before retrying.
	HintCheckWallet RetryHint = "check_wallet"
	// HintIrreversible: on-chain effects already happened and cannot be
	// rolled back.
	HintIrreversible RetryHint = "irreversible"
	// HintNone: validation failure, retrying the same request cannot succeed.
	HintNone RetryHint = "none"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string    `json:"error_code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"-"`
	Hint       RetryHint `json:"retry_hint"`
	Details    any       `json:"details,omitempty"` // e.g. partially burned token ids
	Err        error     `json:"-"`                 // wrapped internal error, not exposed
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the operation may be resubmitted as-is.
func (e *AppError) Retryable() bool {
	return e.Hint == HintSafeToRetry
}

// WithDetails attaches machine-readable context (tx hash, succeeded ids).
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// WithHint overrides the retry hint, e.g. a burn failure that already
// transferred tokens on-chain is irreversible even if the cause was transient.
func (e *AppError) WithHint(hint RetryHint) *AppError {
	e.Hint = hint
	return e
}

// New creates a new AppError.
func New(code, message string, httpStatus int, hint RetryHint) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Hint: hint}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code, message string, httpStatus int, hint RetryHint, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Hint: hint, Err: err}
}

// ---- Lifecycle validation (NFT) ----

func ErrNotOwner() *AppError {
	return New("NFT_001", "Asset is not owned by the requesting wallet", http.StatusForbidden, HintNone)
}

func ErrAlreadyStaked() *AppError {
	return New("NFT_002", "Asset is already staked", http.StatusConflict, HintNone)
}

func ErrNotStaked() *AppError {
	return New("NFT_003", "Asset is not staked", http.StatusConflict, HintNone)
}

func ErrInvalidBurnSet() *AppError {
	return New("NFT_004", "Selected assets do not match any burn rule", http.StatusBadRequest, HintNone)
}

func ErrPoolExhausted() *AppError {
	return New("NFT_005", "No result asset of the required rarity is available", http.StatusConflict, HintNone)
}

func ErrMutationInFlight() *AppError {
	return New("NFT_006", "Another mutation for this asset is still pending", http.StatusConflict, HintSafeToRetry)
}

func ErrAssetNotFound(assetID string) *AppError {
	return New("NFT_007", fmt.Sprintf("Asset %s not found", assetID), http.StatusNotFound, HintNone)
}

func ErrNotClaimable() *AppError {
	return New("NFT_008", "Asset has no reserved token id and cannot be claimed", http.StatusConflict, HintNone)
}

// ---- Chain interaction (CHN) ----

func ErrChainTimeout(err error) *AppError {
	return Wrap("CHN_001", "Chain call timed out", http.StatusGatewayTimeout, HintSafeToRetry, err)
}

func ErrChainReverted(err error) *AppError {
	return Wrap("CHN_002", "Transaction reverted by the contract", http.StatusUnprocessableEntity, HintNone, err)
}

func ErrApprovalFailed(err error) *AppError {
	return Wrap("CHN_003", "Could not grant operator approval", http.StatusBadGateway, HintSafeToRetry, err)
}

func ErrUserRejected() *AppError {
	return New("CHN_004", "Signature request rejected by wallet", http.StatusBadRequest, HintNone)
}

func ErrDecodeRecoveryFailed(err error) *AppError {
	return Wrap("CHN_005", "Transaction outcome could not be confirmed", http.StatusBadGateway, HintCheckWallet, err)
}

// ---- System & infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, HintSafeToRetry, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, HintSafeToRetry, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest, HintNone)
}
