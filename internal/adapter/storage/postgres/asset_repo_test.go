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

func newTestAsset(wallet string) *domain.Asset {
	now := time.Now().UTC().Truncate(time.Microsecond)
	tokenID := uint64(42)
	return &domain.Asset{
		AssetID:       "onchain_42",
		TokenID:       &tokenID,
		WalletAddress: wallet,
		Rarity:        domain.RarityGold,
		Store:         domain.StoreOnchain,
		StakeStatus:   domain.StakeStatusUnstaked,
		StakingSource: domain.SourceNone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func assetColumnNames() []string {
	return []string{"asset_id", "token_id", "wallet_address", "rarity", "store",
		"stake_status", "staking_source", "staked_at", "last_reconciled_at", "created_at", "updated_at"}
}

func assetRow(a *domain.Asset) *pgxmock.Rows {
	return pgxmock.NewRows(assetColumnNames()).AddRow(
		a.AssetID, a.TokenID, a.WalletAddress, a.Rarity, a.Store,
		a.StakeStatus, a.StakingSource, a.StakedAt, a.LastReconciledAt,
		a.CreatedAt, a.UpdatedAt,
	)
}

func TestAssetRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAssetRepo(mock)
	a := newTestAsset("0xABCDEF")

	mock.ExpectExec("INSERT INTO assets").
		WithArgs(a.AssetID, a.TokenID, "0xabcdef", a.Rarity, a.Store,
			a.StakeStatus, a.StakingSource, a.StakedAt, a.LastReconciledAt,
			a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Upsert(context.Background(), a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepo_Upsert_RejectsInvalidState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAssetRepo(mock)
	a := newTestAsset("0xabc")
	a.StakeStatus = domain.StakeStatusStaked // staked but SourceNone

	err = repo.Upsert(context.Background(), a)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAssetRepo(mock)
	a := newTestAsset("0xabc")

	mock.ExpectQuery("SELECT .+ FROM assets WHERE wallet_address").
		WithArgs("0xabc", a.AssetID).
		WillReturnRows(assetRow(a))

	result, err := repo.GetByID(context.Background(), "0xABC", a.AssetID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.AssetID, result.AssetID)
	assert.Equal(t, a.Rarity, result.Rarity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAssetRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM assets WHERE wallet_address").
		WithArgs("0xabc", "missing").
		WillReturnRows(pgxmock.NewRows(assetColumnNames()))

	result, err := repo.GetByID(context.Background(), "0xabc", "missing")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepo_ListByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAssetRepo(mock)
	a := newTestAsset("0xabc")
	b := newTestAsset("0xabc")
	b.AssetID = "offchain_xyz"
	b.TokenID = nil
	b.Store = domain.StoreOffchain

	rows := pgxmock.NewRows(assetColumnNames()).
		AddRow(a.AssetID, a.TokenID, a.WalletAddress, a.Rarity, a.Store,
			a.StakeStatus, a.StakingSource, a.StakedAt, a.LastReconciledAt, a.CreatedAt, a.UpdatedAt).
		AddRow(b.AssetID, b.TokenID, b.WalletAddress, b.Rarity, b.Store,
			b.StakeStatus, b.StakingSource, b.StakedAt, b.LastReconciledAt, b.CreatedAt, b.UpdatedAt)

	mock.ExpectQuery("SELECT .+ FROM assets WHERE wallet_address").
		WithArgs("0xabc").
		WillReturnRows(rows)

	assets, err := repo.ListByWallet(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "onchain_42", assets[0].AssetID)
	assert.Nil(t, assets[1].TokenID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepo_DeleteTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAssetRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM assets").
		WithArgs("0xabc", "onchain_42").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.DeleteTx(context.Background(), tx, "0xabc", "onchain_42")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepo_DeleteTx_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAssetRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM assets").
		WithArgs("0xabc", "missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.DeleteTx(context.Background(), tx, "0xabc", "missing")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepo_SetStakeStateTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAssetRepo(mock)
	stakedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE assets SET stake_status").
		WithArgs(domain.StakeStatusStaked, domain.SourceOffchain, &stakedAt,
			pgxmock.AnyArg(), "0xabc", "offchain_xyz").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.SetStakeStateTx(context.Background(), tx, "0xabc", "offchain_xyz",
		domain.StakeStatusStaked, domain.SourceOffchain, &stakedAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
