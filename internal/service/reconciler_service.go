package service

import (
	"context"
	"fmt"
	"time"

	"nft-lifecycle-engine/internal/core/domain"
	"nft-lifecycle-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// ReconcilerImpl implements ports.Reconciler. It propagates confirmed
// on-chain staking mutations into the stake-record ledger, and sweeps up
// orphans: stakes the chain knows about that the ledger missed (crash after
// chain confirm, undecodable receipt, direct contract interaction).
type ReconcilerImpl struct {
	gateway       ports.ChainGateway
	resolver      ports.MetadataResolver
	stakeRepo     ports.StakeRecordRepository
	dailyRates    map[string]float64
	defaultRarity domain.Rarity
	log           zerolog.Logger
}

// NewReconciler creates a new ReconcilerImpl.
func NewReconciler(
	gateway ports.ChainGateway,
	resolver ports.MetadataResolver,
	stakeRepo ports.StakeRecordRepository,
	dailyRates map[string]float64,
	defaultRarity domain.Rarity,
	log zerolog.Logger,
) *ReconcilerImpl {
	if !defaultRarity.Valid() {
		defaultRarity = domain.RarityCommon
	}
	return &ReconcilerImpl{
		gateway:       gateway,
		resolver:      resolver,
		stakeRepo:     stakeRepo,
		dailyRates:    dailyRates,
		defaultRarity: defaultRarity,
		log:           log,
	}
}

// RecordOnchainStake writes the ledger row for a confirmed on-chain stake.
// Rarity is resolved from tokenURI metadata and frozen; an unresolvable
// metadata degrades to the default rarity rather than failing, because the
// chain mutation already happened and must be accounted for.
func (r *ReconcilerImpl) RecordOnchainStake(ctx context.Context, wallet string, tokenID uint64, txHash string) error {
	rarity := r.resolveRarity(ctx, tokenID)

	rec := &domain.StakeRecord{
		NFTRef:        domain.OnchainAssetID(tokenID),
		WalletAddress: domain.NormalizeWallet(wallet),
		Rarity:        rarity,
		DailyReward:   r.dailyReward(rarity),
		StakedAt:      time.Now().UTC(),
		Source:        domain.SourceOnchain,
	}
	if err := r.stakeRepo.UpsertActive(ctx, rec); err != nil {
		return fmt.Errorf("record onchain stake: %w", err)
	}

	r.log.Info().
		Str("wallet", rec.WalletAddress).
		Uint64("token_id", tokenID).
		Str("rarity", string(rarity)).
		Str("tx_hash", txHash).
		Msg("onchain stake reconciled into ledger")
	return nil
}

// ReconcileUnstake closes the active ledger row. Records are never deleted;
// the closed row keeps the reward history intact.
func (r *ReconcilerImpl) ReconcileUnstake(ctx context.Context, wallet, nftRef string) error {
	err := r.stakeRepo.MarkUnstaked(ctx, wallet, nftRef, domain.SourceOnchain, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("reconcile unstake: %w", err)
	}
	return nil
}

// RecoverOrphans diffs the chain-side stake set against active ledger rows
// and inserts what is missing. Safe to run repeatedly and concurrently: the
// insert is idempotent on active (wallet, nft_ref, source).
func (r *ReconcilerImpl) RecoverOrphans(ctx context.Context, wallet string) (int, error) {
	wallet = domain.NormalizeWallet(wallet)

	info, err := r.gateway.GetStakeInfo(ctx, wallet)
	if err != nil {
		return 0, fmt.Errorf("recover orphans: read chain stakes: %w", err)
	}

	active, err := r.stakeRepo.ListActiveByWallet(ctx, wallet)
	if err != nil {
		return 0, fmt.Errorf("recover orphans: list ledger: %w", err)
	}
	known := make(map[string]bool, len(active))
	for _, rec := range active {
		if rec.Source == domain.SourceOnchain {
			known[rec.NFTRef] = true
		}
	}

	inserted := 0
	for _, tokenID := range info.TokenIDs {
		ref := domain.OnchainAssetID(tokenID)
		if known[ref] {
			continue
		}
		if err := r.RecordOnchainStake(ctx, wallet, tokenID, ""); err != nil {
			return inserted, err
		}
		inserted++
	}

	if inserted > 0 {
		r.log.Warn().
			Str("wallet", wallet).
			Int("recovered", inserted).
			Msg("orphaned onchain stakes recovered into ledger")
	}
	return inserted, nil
}

func (r *ReconcilerImpl) resolveRarity(ctx context.Context, tokenID uint64) domain.Rarity {
	uri, err := r.gateway.TokenURI(ctx, tokenID)
	if err != nil {
		r.log.Warn().Err(err).Uint64("token_id", tokenID).Msg("tokenURI read failed, using default rarity")
		return r.defaultRarity
	}
	md := r.resolver.Resolve(ctx, uri)
	return md.RarityOrDefault(r.defaultRarity)
}

func (r *ReconcilerImpl) dailyReward(rarity domain.Rarity) float64 {
	if rate, ok := r.dailyRates[string(rarity)]; ok {
		return rate
	}
	return r.dailyRates[string(r.defaultRarity)]
}
