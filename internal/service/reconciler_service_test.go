package service

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"nft-lifecycle-engine/internal/core/domain"
	"nft-lifecycle-engine/internal/core/ports"
	"nft-lifecycle-engine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerTestDeps struct {
	svc       *ReconcilerImpl
	gateway   *mocks.MockChainGateway
	resolver  *mocks.MockMetadataResolver
	stakeRepo *mocks.MockStakeRecordRepository
	ctrl      *gomock.Controller
}

func setupReconciler(t *testing.T) *reconcilerTestDeps {
	ctrl := gomock.NewController(t)
	d := &reconcilerTestDeps{
		gateway:   mocks.NewMockChainGateway(ctrl),
		resolver:  mocks.NewMockMetadataResolver(ctrl),
		stakeRepo: mocks.NewMockStakeRecordRepository(ctrl),
		ctrl:      ctrl,
	}
	rates := map[string]float64{"common": 1, "gold": 4, "legendary": 12}
	d.svc = NewReconciler(d.gateway, d.resolver, d.stakeRepo, rates, domain.RarityCommon, zerolog.Nop())
	return d
}

func TestReconciler_RecordOnchainStake_FreezesResolvedRarity(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.gateway.EXPECT().TokenURI(ctx, uint64(42)).Return("ipfs://Qm/42.json", nil)
	d.resolver.EXPECT().Resolve(ctx, "ipfs://Qm/42.json").
		Return(domain.Metadata{Resolved: true, Rarity: domain.RarityLegendary})
	d.stakeRepo.EXPECT().UpsertActive(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.StakeRecord) error {
			assert.Equal(t, "onchain_42", rec.NFTRef)
			assert.Equal(t, "0xabc", rec.WalletAddress)
			assert.Equal(t, domain.RarityLegendary, rec.Rarity)
			assert.Equal(t, float64(12), rec.DailyReward)
			assert.Equal(t, domain.SourceOnchain, rec.Source)
			assert.True(t, rec.Active())
			return nil
		})

	err := d.svc.RecordOnchainStake(ctx, "0xABC", 42, "0xhash")
	assert.NoError(t, err)
}

func TestReconciler_RecordOnchainStake_MetadataFailureUsesDefault(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.gateway.EXPECT().TokenURI(ctx, uint64(7)).Return("", errors.New("rpc down"))
	d.stakeRepo.EXPECT().UpsertActive(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.StakeRecord) error {
			assert.Equal(t, domain.RarityCommon, rec.Rarity)
			assert.Equal(t, float64(1), rec.DailyReward)
			return nil
		})

	err := d.svc.RecordOnchainStake(ctx, "0xabc", 7, "0xhash")
	assert.NoError(t, err)
}

func TestReconciler_ReconcileUnstake_ClosesLedgerRow(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.stakeRepo.EXPECT().MarkUnstaked(ctx, "0xabc", "onchain_42", domain.SourceOnchain, gomock.Any()).Return(nil)

	err := d.svc.ReconcileUnstake(ctx, "0xabc", "onchain_42")
	assert.NoError(t, err)
}

func TestReconciler_RecoverOrphans_InsertsMissingOnly(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	// Chain knows 3 staked tokens; the ledger only has one of them.
	d.gateway.EXPECT().GetStakeInfo(ctx, "0xabc").Return(&ports.StakeInfo{
		TokenIDs: []uint64{1, 2, 3},
		Rewards:  big.NewInt(0),
	}, nil)
	d.stakeRepo.EXPECT().ListActiveByWallet(ctx, "0xabc").Return([]domain.StakeRecord{
		{NFTRef: "onchain_2", Source: domain.SourceOnchain},
		{NFTRef: "offchain_x", Source: domain.SourceOffchain}, // must not mask token 2's twin ref
	}, nil)

	for _, id := range []uint64{1, 3} {
		d.gateway.EXPECT().TokenURI(ctx, id).Return("uri", nil)
		d.resolver.EXPECT().Resolve(ctx, "uri").Return(domain.UnresolvedMetadata())
		d.stakeRepo.EXPECT().UpsertActive(ctx, gomock.Any()).Return(nil)
	}

	inserted, err := d.svc.RecoverOrphans(ctx, "0xABC")
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
}

func TestReconciler_RecoverOrphans_NothingMissing(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.gateway.EXPECT().GetStakeInfo(ctx, "0xabc").Return(&ports.StakeInfo{TokenIDs: []uint64{5}, Rewards: big.NewInt(0)}, nil)
	d.stakeRepo.EXPECT().ListActiveByWallet(ctx, "0xabc").Return([]domain.StakeRecord{
		{NFTRef: "onchain_5", Source: domain.SourceOnchain},
	}, nil)

	inserted, err := d.svc.RecoverOrphans(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestReconciler_RecoverOrphans_ChainUnreadable(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.gateway.EXPECT().GetStakeInfo(ctx, "0xabc").Return(nil, errors.New("all endpoints failed"))

	_, err := d.svc.RecoverOrphans(ctx, "0xabc")
	assert.Error(t, err)
}
