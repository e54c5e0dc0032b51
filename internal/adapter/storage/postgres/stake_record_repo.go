package postgres

import (
	"context"
	"fmt"
	"time"

	"nft-lifecycle-engine/internal/core/domain"
)

// StakeRecordRepo implements ports.StakeRecordRepository.
type StakeRecordRepo struct {
	pool Pool
}

// NewStakeRecordRepo creates a new StakeRecordRepo.
func NewStakeRecordRepo(pool Pool) *StakeRecordRepo {
	return &StakeRecordRepo{pool: pool}
}

const stakeRecordColumns = `id, nft_ref, wallet_address, rarity, daily_reward, staked_at, unstaked_at, source`

// UpsertActive inserts a stake record unless an active one already exists
// for the same (wallet, nft_ref, source). Relies on the partial unique
// index over active rows, so concurrent reconcilers cannot double-insert.
func (r *StakeRecordRepo) UpsertActive(ctx context.Context, rec *domain.StakeRecord) error {
	query := `INSERT INTO stake_records (nft_ref, wallet_address, rarity, daily_reward, staked_at, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (wallet_address, nft_ref, source) WHERE unstaked_at IS NULL DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		rec.NFTRef, domain.NormalizeWallet(rec.WalletAddress), rec.Rarity,
		rec.DailyReward, rec.StakedAt, rec.Source,
	)
	if err != nil {
		return fmt.Errorf("upsert stake record: %w", err)
	}
	return nil
}

// MarkUnstaked closes the active record for (wallet, nft_ref, source).
// A missing active record is not an error; unstake reconciliation retries.
func (r *StakeRecordRepo) MarkUnstaked(ctx context.Context, wallet, nftRef string, source domain.StakingSource, at time.Time) error {
	query := `UPDATE stake_records SET unstaked_at = $1
		WHERE wallet_address = $2 AND nft_ref = $3 AND source = $4 AND unstaked_at IS NULL`

	_, err := r.pool.Exec(ctx, query, at, domain.NormalizeWallet(wallet), nftRef, source)
	if err != nil {
		return fmt.Errorf("mark unstaked: %w", err)
	}
	return nil
}

// ListActiveByWallet fetches records still accruing rewards.
func (r *StakeRecordRepo) ListActiveByWallet(ctx context.Context, wallet string) ([]domain.StakeRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM stake_records
		WHERE wallet_address = $1 AND unstaked_at IS NULL ORDER BY staked_at, id`, stakeRecordColumns)
	return r.list(ctx, query, domain.NormalizeWallet(wallet))
}

// ListByWallet fetches the full ledger history of a wallet.
func (r *StakeRecordRepo) ListByWallet(ctx context.Context, wallet string) ([]domain.StakeRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM stake_records
		WHERE wallet_address = $1 ORDER BY staked_at, id`, stakeRecordColumns)
	return r.list(ctx, query, domain.NormalizeWallet(wallet))
}

func (r *StakeRecordRepo) list(ctx context.Context, query string, args ...any) ([]domain.StakeRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stake records: %w", err)
	}
	defer rows.Close()

	var records []domain.StakeRecord
	for rows.Next() {
		rec := domain.StakeRecord{}
		err := rows.Scan(
			&rec.ID, &rec.NFTRef, &rec.WalletAddress, &rec.Rarity,
			&rec.DailyReward, &rec.StakedAt, &rec.UnstakedAt, &rec.Source,
		)
		if err != nil {
			return nil, fmt.Errorf("scan stake record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stake record rows: %w", err)
	}
	return records, nil
}
