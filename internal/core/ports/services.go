package ports

import (
	"context"

	"nft-lifecycle-engine/internal/core/domain"
)

// OperationResult is returned by stake/unstake/claim operations.
type OperationResult struct {
	AssetID       string               `json:"asset_id"`
	Store         domain.Store         `json:"store"`
	StakeStatus   domain.StakeStatus   `json:"stake_status"`
	StakingSource domain.StakingSource `json:"staking_source"`
	TxHash        *string              `json:"tx_hash,omitempty"`
}

// BurnResult is returned by a burn. SucceededTokenIDs is populated even on
// partial failure so the caller knows which on-chain burns went through.
type BurnResult struct {
	BurnTxID          string          `json:"burn_tx_id"`
	BurnType          domain.BurnType `json:"burn_type"`
	BurnedAssetIDs    []string        `json:"burned_asset_ids"`
	SucceededTokenIDs []uint64        `json:"succeeded_token_ids,omitempty"`
	ResultAsset       *domain.Asset   `json:"result_asset,omitempty"`
	ChainTxHashes     []string        `json:"chain_tx_hashes,omitempty"`
}

// ReconcileResult reports an orphan sweep.
type ReconcileResult struct {
	WalletAddress   string `json:"wallet_address"`
	RecordsInserted int    `json:"records_inserted"`
}

// LifecycleService is the only component permitted to request a store
// mutation; it drives the per-asset state machine.
type LifecycleService interface {
	Stake(ctx context.Context, session domain.Session, assetID string) (*OperationResult, error)
	Unstake(ctx context.Context, session domain.Session, assetID string) (*OperationResult, error)
	Claim(ctx context.Context, session domain.Session, assetID string) (*OperationResult, error)
	Burn(ctx context.Context, session domain.Session, assetIDs []string) (*BurnResult, error)
	GetState(ctx context.Context, session domain.Session) ([]domain.Asset, error)
	Reconcile(ctx context.Context, session domain.Session) (*ReconcileResult, error)
	GetStakeSummary(ctx context.Context, session domain.Session) (*domain.StakeSummary, error)
}

// ApprovalOrchestrator guarantees the staking contract may move the
// session's tokens before any transfer-dependent operation, idempotently.
// tokenIDs are the tokens about to move; they back the per-token approval
// read when the blanket read is unreachable.
type ApprovalOrchestrator interface {
	EnsureApproved(ctx context.Context, session domain.Session, tokenIDs ...uint64) error
}

// Reconciler propagates a confirmed mutation in one store into the other.
type Reconciler interface {
	// RecordOnchainStake upserts the StakeRecord for a confirmed on-chain
	// stake, resolving rarity via tokenURI metadata. Idempotent.
	RecordOnchainStake(ctx context.Context, wallet string, tokenID uint64, txHash string) error
	// ReconcileUnstake closes the StakeRecord (never deletes).
	ReconcileUnstake(ctx context.Context, wallet, nftRef string) error
	// RecoverOrphans inserts StakeRecords for on-chain stakes the database
	// does not know about. Safe to run repeatedly and concurrently.
	RecoverOrphans(ctx context.Context, wallet string) (int, error)
}

// BurnEngine validates and executes a multi-asset burn against the
// configured rules.
type BurnEngine interface {
	ExecuteBurn(ctx context.Context, session domain.Session, assets []domain.Asset) (*BurnResult, error)
}
