package ports

import (
	"context"
	"time"

	"nft-lifecycle-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AssetRepository defines persistence for assets. All keys are the
// normalized (lower-cased) wallet address plus the logical asset id, and
// every write is an idempotent upsert.
// Methods accepting pgx.Tx run inside multi-statement transaction blocks.
type AssetRepository interface {
	Upsert(ctx context.Context, a *domain.Asset) error
	UpsertTx(ctx context.Context, tx pgx.Tx, a *domain.Asset) error
	GetByID(ctx context.Context, wallet, assetID string) (*domain.Asset, error)
	ListByWallet(ctx context.Context, wallet string) ([]domain.Asset, error)
	DeleteTx(ctx context.Context, tx pgx.Tx, wallet, assetID string) error
	// SetStakeStateTx flips the staking flags of one asset.
	SetStakeStateTx(ctx context.Context, tx pgx.Tx, wallet, assetID string, status domain.StakeStatus, source domain.StakingSource, stakedAt *time.Time) error
}

// StakeRecordRepository persists the reward-accounting ledger. Records are
// never deleted; unstaking sets UnstakedAt.
type StakeRecordRepository interface {
	// UpsertActive inserts a record unless an active one already exists for
	// (wallet, nft_ref, source); repeated calls are no-ops.
	UpsertActive(ctx context.Context, rec *domain.StakeRecord) error
	MarkUnstaked(ctx context.Context, wallet, nftRef string, source domain.StakingSource, at time.Time) error
	ListActiveByWallet(ctx context.Context, wallet string) ([]domain.StakeRecord, error)
	ListByWallet(ctx context.Context, wallet string) ([]domain.StakeRecord, error)
}

// BurnRepository persists burn audit rows and the pre-seeded result pool.
type BurnRepository interface {
	CreateTransactionTx(ctx context.Context, tx pgx.Tx, bt *domain.BurnTransaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*domain.BurnTransaction, error)
	ListTransactionsByWallet(ctx context.Context, wallet string) ([]domain.BurnTransaction, error)
	// ClaimPoolAssetTx atomically claims one undistributed pool asset of the
	// given rarity (conditional update, safe under concurrency).
	// Returns nil, nil when the pool is exhausted for that rarity.
	ClaimPoolAssetTx(ctx context.Context, tx pgx.Tx, rarity domain.Rarity, wallet string) (*domain.PoolAsset, error)
	SeedPoolAsset(ctx context.Context, pa *domain.PoolAsset) error
	CountUndistributed(ctx context.Context, rarity domain.Rarity) (int64, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
