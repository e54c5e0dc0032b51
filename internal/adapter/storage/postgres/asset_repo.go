package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nft-lifecycle-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AssetRepo implements ports.AssetRepository.
type AssetRepo struct {
	pool Pool
}

// NewAssetRepo creates a new AssetRepo.
func NewAssetRepo(pool Pool) *AssetRepo {
	return &AssetRepo{pool: pool}
}

const assetColumns = `asset_id, token_id, wallet_address, rarity, store,
	stake_status, staking_source, staked_at, last_reconciled_at, created_at, updated_at`

const upsertAssetQuery = `INSERT INTO assets (asset_id, token_id, wallet_address, rarity, store,
	stake_status, staking_source, staked_at, last_reconciled_at, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (wallet_address, asset_id) DO UPDATE SET
	token_id = EXCLUDED.token_id, rarity = EXCLUDED.rarity, store = EXCLUDED.store,
	stake_status = EXCLUDED.stake_status, staking_source = EXCLUDED.staking_source,
	staked_at = EXCLUDED.staked_at, last_reconciled_at = EXCLUDED.last_reconciled_at,
	updated_at = EXCLUDED.updated_at`

// Upsert inserts or replaces an asset row keyed by (wallet, asset_id).
func (r *AssetRepo) Upsert(ctx context.Context, a *domain.Asset) error {
	if err := a.Validate(); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, upsertAssetQuery, upsertArgs(a)...)
	if err != nil {
		return fmt.Errorf("upsert asset: %w", err)
	}
	return nil
}

// UpsertTx is Upsert inside a caller-managed transaction.
func (r *AssetRepo) UpsertTx(ctx context.Context, tx pgx.Tx, a *domain.Asset) error {
	if err := a.Validate(); err != nil {
		return err
	}
	_, err := tx.Exec(ctx, upsertAssetQuery, upsertArgs(a)...)
	if err != nil {
		return fmt.Errorf("upsert asset: %w", err)
	}
	return nil
}

func upsertArgs(a *domain.Asset) []any {
	return []any{
		a.AssetID, a.TokenID, domain.NormalizeWallet(a.WalletAddress), a.Rarity, a.Store,
		a.StakeStatus, a.StakingSource, a.StakedAt, a.LastReconciledAt,
		a.CreatedAt, a.UpdatedAt,
	}
}

// GetByID fetches one asset. Returns nil, nil when not found.
func (r *AssetRepo) GetByID(ctx context.Context, wallet, assetID string) (*domain.Asset, error) {
	query := fmt.Sprintf(`SELECT %s FROM assets WHERE wallet_address = $1 AND asset_id = $2`, assetColumns)
	return r.scanAsset(r.pool.QueryRow(ctx, query, domain.NormalizeWallet(wallet), assetID))
}

// ListByWallet fetches all assets of a wallet ordered by creation time.
func (r *AssetRepo) ListByWallet(ctx context.Context, wallet string) ([]domain.Asset, error) {
	query := fmt.Sprintf(`SELECT %s FROM assets WHERE wallet_address = $1 ORDER BY created_at, asset_id`, assetColumns)

	rows, err := r.pool.Query(ctx, query, domain.NormalizeWallet(wallet))
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		a := domain.Asset{}
		err := rows.Scan(
			&a.AssetID, &a.TokenID, &a.WalletAddress, &a.Rarity, &a.Store,
			&a.StakeStatus, &a.StakingSource, &a.StakedAt, &a.LastReconciledAt,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan asset row: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asset rows: %w", err)
	}
	return assets, nil
}

// DeleteTx removes an asset row inside a transaction, used by burn and
// claim where removal commits together with its counterpart writes.
func (r *AssetRepo) DeleteTx(ctx context.Context, tx pgx.Tx, wallet, assetID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM assets WHERE wallet_address = $1 AND asset_id = $2`,
		domain.NormalizeWallet(wallet), assetID)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset not found: %s", assetID)
	}
	return nil
}

// SetStakeStateTx flips the staking flags of one asset.
func (r *AssetRepo) SetStakeStateTx(ctx context.Context, tx pgx.Tx, wallet, assetID string, status domain.StakeStatus, source domain.StakingSource, stakedAt *time.Time) error {
	query := `UPDATE assets SET stake_status = $1, staking_source = $2, staked_at = $3, updated_at = $4
		WHERE wallet_address = $5 AND asset_id = $6`

	tag, err := tx.Exec(ctx, query, status, source, stakedAt, time.Now().UTC(),
		domain.NormalizeWallet(wallet), assetID)
	if err != nil {
		return fmt.Errorf("set stake state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset not found: %s", assetID)
	}
	return nil
}

// scanAsset is a helper to scan a single row into an Asset.
func (r *AssetRepo) scanAsset(row pgx.Row) (*domain.Asset, error) {
	a := &domain.Asset{}
	err := row.Scan(
		&a.AssetID, &a.TokenID, &a.WalletAddress, &a.Rarity, &a.Store,
		&a.StakeStatus, &a.StakingSource, &a.StakedAt, &a.LastReconciledAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan asset: %w", err)
	}
	return a, nil
}
