package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"nft-lifecycle-engine/internal/core/domain"
	"nft-lifecycle-engine/internal/core/ports"
	"nft-lifecycle-engine/internal/core/ports/mocks"
	"nft-lifecycle-engine/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

var testRules = []domain.BurnRule{
	{MinRarity: domain.RarityCommon, RequiredAmount: 3, ResultingRarity: domain.RarityRare},
	{MinRarity: domain.RarityRare, RequiredAmount: 3, ResultingRarity: domain.RarityLegendary},
}

type burnTestDeps struct {
	svc        *BurnServiceImpl
	gateway    *mocks.MockChainGateway
	assetRepo  *mocks.MockAssetRepository
	burnRepo   *mocks.MockBurnRepository
	idemCache  *mocks.MockIdempotencyCache
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupBurnService(t *testing.T) *burnTestDeps {
	ctrl := gomock.NewController(t)
	d := &burnTestDeps{
		gateway:    mocks.NewMockChainGateway(ctrl),
		assetRepo:  mocks.NewMockAssetRepository(ctrl),
		burnRepo:   mocks.NewMockBurnRepository(ctrl),
		idemCache:  mocks.NewMockIdempotencyCache(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewBurnService(
		d.gateway, d.assetRepo, d.burnRepo, d.idemCache, d.transactor,
		testRules, 24*time.Hour, zerolog.Nop(),
	)
	return d
}

func offchainAsset(id string, rarity domain.Rarity) domain.Asset {
	return domain.Asset{
		AssetID:       id,
		WalletAddress: "0xabc",
		Rarity:        rarity,
		Store:         domain.StoreOffchain,
		StakeStatus:   domain.StakeStatusUnstaked,
		StakingSource: domain.SourceNone,
	}
}

func onchainAsset(id string, tokenID uint64, rarity domain.Rarity) domain.Asset {
	a := offchainAsset(id, rarity)
	a.Store = domain.StoreOnchain
	a.TokenID = &tokenID
	return a
}

func TestBurnService_OffchainBurn_Success(t *testing.T) {
	d := setupBurnService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	session := domain.NewSession("0xabc")
	assets := []domain.Asset{
		offchainAsset("a1", domain.RarityCommon),
		offchainAsset("a2", domain.RarityCommon),
		offchainAsset("a3", domain.RarityCommon),
	}
	tx := &mockTx{}

	d.idemCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().DeleteTx(ctx, tx, "0xabc", "a1").Return(nil)
	d.assetRepo.EXPECT().DeleteTx(ctx, tx, "0xabc", "a2").Return(nil)
	d.assetRepo.EXPECT().DeleteTx(ctx, tx, "0xabc", "a3").Return(nil)
	d.burnRepo.EXPECT().ClaimPoolAssetTx(ctx, tx, domain.RarityRare, "0xabc").
		Return(&domain.PoolAsset{ID: 1, AssetID: "pool_rare_001", Rarity: domain.RarityRare, IsDistributed: true}, nil)
	d.assetRepo.EXPECT().UpsertTx(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, a *domain.Asset) error {
			assert.Equal(t, "pool_rare_001", a.AssetID)
			assert.Equal(t, domain.RarityRare, a.Rarity)
			assert.Equal(t, domain.StoreOffchain, a.Store)
			return nil
		})
	d.burnRepo.EXPECT().CreateTransactionTx(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, bt *domain.BurnTransaction) error {
			assert.Equal(t, []string{"a1", "a2", "a3"}, bt.BurnedAssetIDs)
			assert.Equal(t, domain.BurnTypeOffchain, bt.BurnType)
			assert.Nil(t, bt.ChainTxHash)
			return nil
		})
	d.idemCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), 24*time.Hour).Return(nil)

	result, err := d.svc.ExecuteBurn(ctx, session, assets)
	require.NoError(t, err)
	assert.Equal(t, domain.BurnTypeOffchain, result.BurnType)
	assert.Equal(t, "pool_rare_001", result.ResultAsset.AssetID)
	assert.Empty(t, result.SucceededTokenIDs)
}

func TestBurnService_IdempotentReplay(t *testing.T) {
	d := setupBurnService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	session := domain.NewSession("0xabc")
	assets := []domain.Asset{
		offchainAsset("a1", domain.RarityCommon),
		offchainAsset("a2", domain.RarityCommon),
		offchainAsset("a3", domain.RarityCommon),
	}

	cached := ports.BurnResult{BurnTxID: "prev", BurnType: domain.BurnTypeOffchain, BurnedAssetIDs: []string{"a1", "a2", "a3"}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	key := domain.BurnSelectionKey("0xabc", []string{"a1", "a2", "a3"})
	d.idemCache.EXPECT().Get(ctx, key).Return(payload, nil)

	result, err := d.svc.ExecuteBurn(ctx, session, assets)
	require.NoError(t, err)
	assert.Equal(t, "prev", result.BurnTxID)
}

func TestBurnService_MixedRarities_Rejected(t *testing.T) {
	d := setupBurnService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	session := domain.NewSession("0xabc")
	assets := []domain.Asset{
		offchainAsset("a1", domain.RarityCommon),
		offchainAsset("a2", domain.RarityGold),
		offchainAsset("a3", domain.RarityCommon),
	}

	d.idemCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)

	_, err := d.svc.ExecuteBurn(ctx, session, assets)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "NFT_004", appErr.Code)
}

func TestBurnService_WrongCount_Rejected(t *testing.T) {
	d := setupBurnService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	session := domain.NewSession("0xabc")
	assets := []domain.Asset{
		offchainAsset("a1", domain.RarityCommon),
		offchainAsset("a2", domain.RarityCommon),
	}

	d.idemCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)

	_, err := d.svc.ExecuteBurn(ctx, session, assets)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "NFT_004", appErr.Code)
}

func TestBurnService_GoldSelection_MatchesCommonRule(t *testing.T) {
	d := setupBurnService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	session := domain.NewSession("0xabc")
	// Gold is above common but below rare: the common rule applies.
	assets := []domain.Asset{
		offchainAsset("g1", domain.RarityGold),
		offchainAsset("g2", domain.RarityGold),
		offchainAsset("g3", domain.RarityGold),
	}
	tx := &mockTx{}

	d.idemCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().DeleteTx(ctx, tx, "0xabc", gomock.Any()).Return(nil).Times(3)
	d.burnRepo.EXPECT().ClaimPoolAssetTx(ctx, tx, domain.RarityRare, "0xabc").
		Return(&domain.PoolAsset{AssetID: "pool_rare_002", Rarity: domain.RarityRare}, nil)
	d.assetRepo.EXPECT().UpsertTx(ctx, tx, gomock.Any()).Return(nil)
	d.burnRepo.EXPECT().CreateTransactionTx(ctx, tx, gomock.Any()).Return(nil)
	d.idemCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.svc.ExecuteBurn(ctx, session, assets)
	require.NoError(t, err)
	assert.Equal(t, domain.RarityRare, result.ResultAsset.Rarity)
}

func TestBurnService_PoolExhausted(t *testing.T) {
	d := setupBurnService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	session := domain.NewSession("0xabc")
	assets := []domain.Asset{
		offchainAsset("a1", domain.RarityCommon),
		offchainAsset("a2", domain.RarityCommon),
		offchainAsset("a3", domain.RarityCommon),
	}
	tx := &mockTx{}

	d.idemCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().DeleteTx(ctx, tx, "0xabc", gomock.Any()).Return(nil).Times(3)
	d.burnRepo.EXPECT().ClaimPoolAssetTx(ctx, tx, domain.RarityRare, "0xabc").Return(nil, nil)

	_, err := d.svc.ExecuteBurn(ctx, session, assets)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "NFT_005", appErr.Code)
}

func TestBurnService_OnchainBurn_Success(t *testing.T) {
	d := setupBurnService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	session := domain.NewSession("0xabc")
	assets := []domain.Asset{
		onchainAsset("onchain_1", 1, domain.RarityRare),
		onchainAsset("onchain_2", 2, domain.RarityRare),
		onchainAsset("onchain_3", 3, domain.RarityRare),
	}
	tx := &mockTx{}

	d.idemCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.gateway.EXPECT().TransferToBurn(ctx, session, uint64(1)).Return(&ports.ChainWriteResult{TxHash: "0xh1"}, nil)
	d.gateway.EXPECT().TransferToBurn(ctx, session, uint64(2)).Return(&ports.ChainWriteResult{TxHash: "0xh2"}, nil)
	d.gateway.EXPECT().TransferToBurn(ctx, session, uint64(3)).Return(&ports.ChainWriteResult{TxHash: "0xh3"}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().DeleteTx(ctx, tx, "0xabc", gomock.Any()).Return(nil).Times(3)
	d.burnRepo.EXPECT().ClaimPoolAssetTx(ctx, tx, domain.RarityLegendary, "0xabc").
		Return(&domain.PoolAsset{AssetID: "pool_leg_001", Rarity: domain.RarityLegendary}, nil)
	d.assetRepo.EXPECT().UpsertTx(ctx, tx, gomock.Any()).Return(nil)
	d.burnRepo.EXPECT().CreateTransactionTx(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, bt *domain.BurnTransaction) error {
			assert.Equal(t, domain.BurnTypeOnchain, bt.BurnType)
			require.NotNil(t, bt.ChainTxHash)
			assert.Equal(t, "0xh3", *bt.ChainTxHash)
			return nil
		})
	d.idemCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.svc.ExecuteBurn(ctx, session, assets)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, result.SucceededTokenIDs)
	assert.Equal(t, []string{"0xh1", "0xh2", "0xh3"}, result.ChainTxHashes)
}

func TestBurnService_HybridBurn_MixedStores(t *testing.T) {
	d := setupBurnService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	session := domain.NewSession("0xabc")
	// Two offchain commons plus one onchain common: one chain transfer,
	// three row deletes, one pooled rare.
	assets := []domain.Asset{
		offchainAsset("a1", domain.RarityCommon),
		offchainAsset("a2", domain.RarityCommon),
		onchainAsset("onchain_7", 7, domain.RarityCommon),
	}
	tx := &mockTx{}

	d.idemCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.gateway.EXPECT().TransferToBurn(ctx, session, uint64(7)).Return(&ports.ChainWriteResult{TxHash: "0xh7"}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().DeleteTx(ctx, tx, "0xabc", "a1").Return(nil)
	d.assetRepo.EXPECT().DeleteTx(ctx, tx, "0xabc", "a2").Return(nil)
	d.assetRepo.EXPECT().DeleteTx(ctx, tx, "0xabc", "onchain_7").Return(nil)
	d.burnRepo.EXPECT().ClaimPoolAssetTx(ctx, tx, domain.RarityRare, "0xabc").
		Return(&domain.PoolAsset{AssetID: "pool_rare_003", Rarity: domain.RarityRare}, nil)
	d.assetRepo.EXPECT().UpsertTx(ctx, tx, gomock.Any()).Return(nil)
	d.burnRepo.EXPECT().CreateTransactionTx(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, bt *domain.BurnTransaction) error {
			assert.Equal(t, domain.BurnTypeHybrid, bt.BurnType)
			assert.Equal(t, []string{"a1", "a2", "onchain_7"}, bt.BurnedAssetIDs)
			require.NotNil(t, bt.ChainTxHash)
			assert.Equal(t, "0xh7", *bt.ChainTxHash)
			return nil
		})
	d.idemCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.svc.ExecuteBurn(ctx, session, assets)
	require.NoError(t, err)
	assert.Equal(t, domain.BurnTypeHybrid, result.BurnType)
	assert.Equal(t, []uint64{7}, result.SucceededTokenIDs)
	assert.Equal(t, "pool_rare_003", result.ResultAsset.AssetID)
}

func TestBurnService_PartialOnchainFailure_ReportsIrreversible(t *testing.T) {
	d := setupBurnService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	session := domain.NewSession("0xabc")
	assets := []domain.Asset{
		onchainAsset("onchain_1", 1, domain.RarityRare),
		onchainAsset("onchain_2", 2, domain.RarityRare),
		onchainAsset("onchain_3", 3, domain.RarityRare),
	}

	d.idemCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.gateway.EXPECT().TransferToBurn(ctx, session, uint64(1)).Return(&ports.ChainWriteResult{TxHash: "0xh1"}, nil)
	d.gateway.EXPECT().TransferToBurn(ctx, session, uint64(2)).
		Return(nil, apperror.ErrChainReverted(assert.AnError))

	_, err := d.svc.ExecuteBurn(ctx, session, assets)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.HintIrreversible, appErr.Hint)

	details, ok := appErr.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []uint64{1}, details["succeeded_token_ids"])
}

func TestBurnService_StakedAsset_Rejected(t *testing.T) {
	d := setupBurnService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	session := domain.NewSession("0xabc")
	staked := offchainAsset("a1", domain.RarityCommon)
	staked.StakeStatus = domain.StakeStatusStaked
	staked.StakingSource = domain.SourceOffchain
	assets := []domain.Asset{
		staked,
		offchainAsset("a2", domain.RarityCommon),
		offchainAsset("a3", domain.RarityCommon),
	}

	d.idemCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)

	_, err := d.svc.ExecuteBurn(ctx, session, assets)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "NFT_004", appErr.Code)
}
