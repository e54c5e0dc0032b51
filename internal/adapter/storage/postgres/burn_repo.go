package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nft-lifecycle-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BurnRepo implements ports.BurnRepository.
type BurnRepo struct {
	pool Pool
}

// NewBurnRepo creates a new BurnRepo.
func NewBurnRepo(pool Pool) *BurnRepo {
	return &BurnRepo{pool: pool}
}

const burnTxColumns = `id, wallet_address, burned_asset_ids, result_rarity, result_asset_id, burn_type, chain_tx_hash, created_at`

// CreateTransactionTx inserts the insert-only burn audit row.
func (r *BurnRepo) CreateTransactionTx(ctx context.Context, tx pgx.Tx, bt *domain.BurnTransaction) error {
	query := `INSERT INTO burn_transactions (id, wallet_address, burned_asset_ids, result_rarity,
		result_asset_id, burn_type, chain_tx_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		bt.ID, domain.NormalizeWallet(bt.WalletAddress), bt.BurnedAssetIDs,
		bt.ResultRarity, bt.ResultAssetID, bt.BurnType, bt.ChainTxHash, bt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert burn transaction: %w", err)
	}
	return nil
}

// GetTransaction fetches one burn audit row. Returns nil, nil when not found.
func (r *BurnRepo) GetTransaction(ctx context.Context, id uuid.UUID) (*domain.BurnTransaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM burn_transactions WHERE id = $1`, burnTxColumns)

	bt := &domain.BurnTransaction{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&bt.ID, &bt.WalletAddress, &bt.BurnedAssetIDs, &bt.ResultRarity,
		&bt.ResultAssetID, &bt.BurnType, &bt.ChainTxHash, &bt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan burn transaction: %w", err)
	}
	return bt, nil
}

// ListTransactionsByWallet fetches the burn history of a wallet, newest first.
func (r *BurnRepo) ListTransactionsByWallet(ctx context.Context, wallet string) ([]domain.BurnTransaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM burn_transactions WHERE wallet_address = $1 ORDER BY created_at DESC`, burnTxColumns)

	rows, err := r.pool.Query(ctx, query, domain.NormalizeWallet(wallet))
	if err != nil {
		return nil, fmt.Errorf("list burn transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.BurnTransaction
	for rows.Next() {
		bt := domain.BurnTransaction{}
		err := rows.Scan(
			&bt.ID, &bt.WalletAddress, &bt.BurnedAssetIDs, &bt.ResultRarity,
			&bt.ResultAssetID, &bt.BurnType, &bt.ChainTxHash, &bt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan burn transaction row: %w", err)
		}
		txns = append(txns, bt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate burn transaction rows: %w", err)
	}
	return txns, nil
}

// ClaimPoolAssetTx atomically claims one undistributed pool asset of the
// given rarity. The inner SELECT uses FOR UPDATE SKIP LOCKED so concurrent
// burns never race for the same row; the conditional update guarantees a
// pool asset is distributed at most once. Returns nil, nil when exhausted.
func (r *BurnRepo) ClaimPoolAssetTx(ctx context.Context, tx pgx.Tx, rarity domain.Rarity, wallet string) (*domain.PoolAsset, error) {
	query := `UPDATE burn_pool SET is_distributed = TRUE, distributed_to = $2, distributed_at = $3
		WHERE id = (
			SELECT id FROM burn_pool
			WHERE rarity = $1 AND is_distributed = FALSE
			ORDER BY id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, asset_id, rarity, is_distributed, distributed_to, distributed_at`

	pa := &domain.PoolAsset{}
	err := tx.QueryRow(ctx, query, rarity, domain.NormalizeWallet(wallet), time.Now().UTC()).Scan(
		&pa.ID, &pa.AssetID, &pa.Rarity, &pa.IsDistributed, &pa.DistributedTo, &pa.DistributedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim pool asset: %w", err)
	}
	return pa, nil
}

// SeedPoolAsset inserts one undistributed pool asset, idempotent on asset_id.
func (r *BurnRepo) SeedPoolAsset(ctx context.Context, pa *domain.PoolAsset) error {
	query := `INSERT INTO burn_pool (asset_id, rarity, is_distributed)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (asset_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, pa.AssetID, pa.Rarity)
	if err != nil {
		return fmt.Errorf("seed pool asset: %w", err)
	}
	return nil
}

// CountUndistributed reports remaining pool inventory for a rarity.
func (r *BurnRepo) CountUndistributed(ctx context.Context, rarity domain.Rarity) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM burn_pool WHERE rarity = $1 AND is_distributed = FALSE`, rarity,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pool assets: %w", err)
	}
	return count, nil
}
