package postgres

import (
	"context"
	"testing"
	"time"

	"nft-lifecycle-engine/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStakeRecord() *domain.StakeRecord {
	return &domain.StakeRecord{
		NFTRef:        "onchain_42",
		WalletAddress: "0xabc",
		Rarity:        domain.RarityRare,
		DailyReward:   6,
		StakedAt:      time.Now().UTC().Truncate(time.Microsecond),
		Source:        domain.SourceOnchain,
	}
}

func stakeRecordColumnNames() []string {
	return []string{"id", "nft_ref", "wallet_address", "rarity", "daily_reward", "staked_at", "unstaked_at", "source"}
}

func TestStakeRecordRepo_UpsertActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStakeRecordRepo(mock)
	rec := newTestStakeRecord()

	mock.ExpectExec("INSERT INTO stake_records").
		WithArgs(rec.NFTRef, rec.WalletAddress, rec.Rarity, rec.DailyReward, rec.StakedAt, rec.Source).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.UpsertActive(context.Background(), rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStakeRecordRepo_UpsertActive_DuplicateIsNoop(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStakeRecordRepo(mock)
	rec := newTestStakeRecord()

	// ON CONFLICT DO NOTHING: zero rows affected, still no error.
	mock.ExpectExec("INSERT INTO stake_records").
		WithArgs(rec.NFTRef, rec.WalletAddress, rec.Rarity, rec.DailyReward, rec.StakedAt, rec.Source).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err = repo.UpsertActive(context.Background(), rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStakeRecordRepo_MarkUnstaked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStakeRecordRepo(mock)
	at := time.Now().UTC()

	mock.ExpectExec("UPDATE stake_records SET unstaked_at").
		WithArgs(at, "0xabc", "onchain_42", domain.SourceOnchain).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.MarkUnstaked(context.Background(), "0xABC", "onchain_42", domain.SourceOnchain, at)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStakeRecordRepo_ListActiveByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStakeRecordRepo(mock)
	rec := newTestStakeRecord()

	rows := pgxmock.NewRows(stakeRecordColumnNames()).
		AddRow(int64(1), rec.NFTRef, rec.WalletAddress, rec.Rarity, rec.DailyReward, rec.StakedAt, nil, rec.Source)

	mock.ExpectQuery("SELECT .+ FROM stake_records").
		WithArgs("0xabc").
		WillReturnRows(rows)

	records, err := repo.ListActiveByWallet(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Active())
	assert.Equal(t, domain.SourceOnchain, records[0].Source)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStakeRecordRepo_ListByWallet_IncludesClosed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStakeRecordRepo(mock)
	rec := newTestStakeRecord()
	unstakedAt := rec.StakedAt.Add(48 * time.Hour)

	rows := pgxmock.NewRows(stakeRecordColumnNames()).
		AddRow(int64(1), rec.NFTRef, rec.WalletAddress, rec.Rarity, rec.DailyReward, rec.StakedAt, &unstakedAt, rec.Source).
		AddRow(int64(2), "offchain_xyz", rec.WalletAddress, domain.RarityCommon, 1.0, rec.StakedAt, nil, domain.SourceOffchain)

	mock.ExpectQuery("SELECT .+ FROM stake_records").
		WithArgs("0xabc").
		WillReturnRows(rows)

	records, err := repo.ListByWallet(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.False(t, records[0].Active())
	assert.True(t, records[1].Active())
	assert.NoError(t, mock.ExpectationsWereMet())
}
