package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nft-lifecycle-engine/internal/core/domain"
	"nft-lifecycle-engine/internal/core/ports"
	"nft-lifecycle-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// LifecycleServiceImpl implements ports.LifecycleService. It is the single
// entry point for asset mutations: every operation validates the transition
// against the lifecycle table, registers an optimistic view overlay, runs
// the chain and database work, then commits or reverts the overlay.
type LifecycleServiceImpl struct {
	assetRepo  ports.AssetRepository
	stakeRepo  ports.StakeRecordRepository
	transactor ports.DBTransactor
	gateway    ports.ChainGateway
	approver   ports.ApprovalOrchestrator
	reconciler ports.Reconciler
	burnEngine ports.BurnEngine
	view       *ViewCache
	dailyRates map[string]float64
	log        zerolog.Logger
}

// NewLifecycleService creates a new LifecycleServiceImpl.
func NewLifecycleService(
	assetRepo ports.AssetRepository,
	stakeRepo ports.StakeRecordRepository,
	transactor ports.DBTransactor,
	gateway ports.ChainGateway,
	approver ports.ApprovalOrchestrator,
	reconciler ports.Reconciler,
	burnEngine ports.BurnEngine,
	view *ViewCache,
	dailyRates map[string]float64,
	log zerolog.Logger,
) *LifecycleServiceImpl {
	return &LifecycleServiceImpl{
		assetRepo:  assetRepo,
		stakeRepo:  stakeRepo,
		transactor: transactor,
		gateway:    gateway,
		approver:   approver,
		reconciler: reconciler,
		burnEngine: burnEngine,
		view:       view,
		dailyRates: dailyRates,
		log:        log,
	}
}

// Stake moves an asset into its store-appropriate staked state. Off-chain
// assets stake with a database write; on-chain assets go through approval
// and the staking contract first.
func (s *LifecycleServiceImpl) Stake(ctx context.Context, session domain.Session, assetID string) (*ports.OperationResult, error) {
	asset, err := s.loadOwned(ctx, session, assetID)
	if err != nil {
		return nil, err
	}
	if !domain.CanFire(domain.StateOf(asset), domain.EventStake) {
		if asset.IsStaked() {
			return nil, apperror.ErrAlreadyStaked()
		}
		return nil, apperror.Validation(fmt.Sprintf("asset %s cannot be staked in its current state", assetID))
	}

	now := time.Now().UTC()
	source := domain.SourceOffchain
	if asset.Store == domain.StoreOnchain {
		source = domain.SourceOnchain
	}
	optimistic := asset.Clone()
	optimistic.StakeStatus = domain.StakeStatusStaked
	optimistic.StakingSource = source
	optimistic.StakedAt = &now

	if err := s.view.Begin(session.WalletAddress, assetID, asset, optimistic); err != nil {
		return nil, err
	}

	var txHash *string
	if asset.Store == domain.StoreOnchain {
		txHash, err = s.stakeOnchain(ctx, session, asset, now)
	} else {
		err = s.stakeOffchain(ctx, session, asset, now)
	}
	if err != nil {
		s.view.Revert(session.WalletAddress, assetID)
		return nil, err
	}
	s.view.Commit(session.WalletAddress, assetID)

	s.log.Info().
		Str("wallet", session.WalletAddress).
		Str("asset_id", assetID).
		Str("source", string(source)).
		Msg("asset staked")
	return &ports.OperationResult{
		AssetID:       assetID,
		Store:         asset.Store,
		StakeStatus:   domain.StakeStatusStaked,
		StakingSource: source,
		TxHash:        txHash,
	}, nil
}

func (s *LifecycleServiceImpl) stakeOffchain(ctx context.Context, session domain.Session, asset *domain.Asset, now time.Time) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin stake: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.assetRepo.SetStakeStateTx(ctx, tx, session.WalletAddress, asset.AssetID,
		domain.StakeStatusStaked, domain.SourceOffchain, &now); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit stake: %w", err))
	}

	rec := &domain.StakeRecord{
		NFTRef:        asset.AssetID,
		WalletAddress: domain.NormalizeWallet(session.WalletAddress),
		Rarity:        asset.Rarity,
		DailyReward:   s.dailyRates[string(asset.Rarity)],
		StakedAt:      now,
		Source:        domain.SourceOffchain,
	}
	if err := s.stakeRepo.UpsertActive(ctx, rec); err != nil {
		// The staking flag is already committed; surface the ledger gap
		// loudly instead of hiding it behind a success response.
		s.log.Error().Err(err).
			Str("wallet", rec.WalletAddress).
			Str("asset_id", asset.AssetID).
			Msg("stake flag set but ledger row failed")
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

func (s *LifecycleServiceImpl) stakeOnchain(ctx context.Context, session domain.Session, asset *domain.Asset, now time.Time) (*string, error) {
	if asset.TokenID == nil {
		return nil, apperror.Validation(fmt.Sprintf("asset %s is onchain but has no token id", asset.AssetID))
	}
	tokenID := *asset.TokenID

	if err := s.approver.EnsureApproved(ctx, session, tokenID); err != nil {
		return nil, err
	}

	res, err := s.gateway.Stake(ctx, session, []uint64{tokenID})
	if err != nil {
		s.maybeSweepOrphans(session, err)
		return nil, err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin stake: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.assetRepo.SetStakeStateTx(ctx, tx, session.WalletAddress, asset.AssetID,
		domain.StakeStatusStaked, domain.SourceOnchain, &now); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit stake: %w", err))
	}

	if err := s.reconciler.RecordOnchainStake(ctx, session.WalletAddress, tokenID, res.TxHash); err != nil {
		// The chain mutation is confirmed; the orphan sweep will fill the
		// missing ledger row.
		s.log.Error().Err(err).
			Str("wallet", session.WalletAddress).
			Uint64("token_id", tokenID).
			Msg("onchain stake confirmed but ledger reconciliation failed")
	}

	return &res.TxHash, nil
}

// Unstake reverses a stake in the asset's current staking source.
func (s *LifecycleServiceImpl) Unstake(ctx context.Context, session domain.Session, assetID string) (*ports.OperationResult, error) {
	asset, err := s.loadOwned(ctx, session, assetID)
	if err != nil {
		return nil, err
	}
	if !domain.CanFire(domain.StateOf(asset), domain.EventUnstake) {
		return nil, apperror.ErrNotStaked()
	}

	optimistic := asset.Clone()
	optimistic.StakeStatus = domain.StakeStatusUnstaked
	optimistic.StakingSource = domain.SourceNone
	optimistic.StakedAt = nil

	if err := s.view.Begin(session.WalletAddress, assetID, asset, optimistic); err != nil {
		return nil, err
	}

	source := asset.StakingSource
	var txHash *string
	if source == domain.SourceOnchain {
		txHash, err = s.unstakeOnchain(ctx, session, asset)
	} else {
		err = s.unstakeOffchain(ctx, session, asset)
	}
	if err != nil {
		s.view.Revert(session.WalletAddress, assetID)
		return nil, err
	}
	s.view.Commit(session.WalletAddress, assetID)

	s.log.Info().
		Str("wallet", session.WalletAddress).
		Str("asset_id", assetID).
		Str("source", string(source)).
		Msg("asset unstaked")
	return &ports.OperationResult{
		AssetID:       assetID,
		Store:         asset.Store,
		StakeStatus:   domain.StakeStatusUnstaked,
		StakingSource: domain.SourceNone,
		TxHash:        txHash,
	}, nil
}

func (s *LifecycleServiceImpl) unstakeOffchain(ctx context.Context, session domain.Session, asset *domain.Asset) error {
	now := time.Now().UTC()

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin unstake: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.assetRepo.SetStakeStateTx(ctx, tx, session.WalletAddress, asset.AssetID,
		domain.StakeStatusUnstaked, domain.SourceNone, nil); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit unstake: %w", err))
	}

	if err := s.stakeRepo.MarkUnstaked(ctx, session.WalletAddress, asset.AssetID, domain.SourceOffchain, now); err != nil {
		s.log.Error().Err(err).
			Str("wallet", session.WalletAddress).
			Str("asset_id", asset.AssetID).
			Msg("unstake flag cleared but ledger close failed")
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

func (s *LifecycleServiceImpl) unstakeOnchain(ctx context.Context, session domain.Session, asset *domain.Asset) (*string, error) {
	if asset.TokenID == nil {
		return nil, apperror.Validation(fmt.Sprintf("asset %s is onchain but has no token id", asset.AssetID))
	}
	tokenID := *asset.TokenID

	res, err := s.gateway.Withdraw(ctx, session, []uint64{tokenID})
	if err != nil {
		s.maybeSweepOrphans(session, err)
		return nil, err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin unstake: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.assetRepo.SetStakeStateTx(ctx, tx, session.WalletAddress, asset.AssetID,
		domain.StakeStatusUnstaked, domain.SourceNone, nil); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit unstake: %w", err))
	}

	if err := s.reconciler.ReconcileUnstake(ctx, session.WalletAddress, asset.AssetID); err != nil {
		s.log.Error().Err(err).
			Str("wallet", session.WalletAddress).
			Str("asset_id", asset.AssetID).
			Msg("onchain unstake confirmed but ledger close failed")
	}

	return &res.TxHash, nil
}

// Claim moves an off-chain asset on-chain: the reserved token transfers
// from the custody wallet to the session wallet, and the asset row is
// rewritten under its chain-native id in one transaction.
func (s *LifecycleServiceImpl) Claim(ctx context.Context, session domain.Session, assetID string) (*ports.OperationResult, error) {
	asset, err := s.loadOwned(ctx, session, assetID)
	if err != nil {
		return nil, err
	}
	if !domain.CanFire(domain.StateOf(asset), domain.EventClaim) {
		if asset.IsStaked() {
			return nil, apperror.ErrAlreadyStaked()
		}
		return nil, apperror.Validation(fmt.Sprintf("asset %s cannot be claimed in its current state", assetID))
	}
	if asset.TokenID == nil {
		return nil, apperror.ErrNotClaimable()
	}
	tokenID := *asset.TokenID

	now := time.Now().UTC()
	optimistic := asset.Clone()
	optimistic.AssetID = domain.OnchainAssetID(tokenID)
	optimistic.Store = domain.StoreOnchain
	optimistic.UpdatedAt = now

	if err := s.view.Begin(session.WalletAddress, assetID, asset, optimistic); err != nil {
		return nil, err
	}

	res, err := s.gateway.TransferFromCustody(ctx, session, tokenID)
	if err != nil {
		s.view.Revert(session.WalletAddress, assetID)
		s.maybeSweepOrphans(session, err)
		return nil, err
	}

	if err := s.persistClaim(ctx, session, asset, optimistic); err != nil {
		s.view.Revert(session.WalletAddress, assetID)
		return nil, err
	}
	s.view.Commit(session.WalletAddress, assetID)

	s.log.Info().
		Str("wallet", session.WalletAddress).
		Str("asset_id", assetID).
		Str("onchain_id", optimistic.AssetID).
		Str("tx_hash", res.TxHash).
		Msg("asset claimed onchain")
	return &ports.OperationResult{
		AssetID:       optimistic.AssetID,
		Store:         domain.StoreOnchain,
		StakeStatus:   domain.StakeStatusUnstaked,
		StakingSource: domain.SourceNone,
		TxHash:        &res.TxHash,
	}, nil
}

func (s *LifecycleServiceImpl) persistClaim(ctx context.Context, session domain.Session, old, claimed *domain.Asset) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin claim: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.assetRepo.DeleteTx(ctx, tx, session.WalletAddress, old.AssetID); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.assetRepo.UpsertTx(ctx, tx, claimed); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit claim: %w", err))
	}
	return nil
}

// Burn validates the selection against the lifecycle table and delegates to
// the burn engine. All selected assets hide from reads while the burn runs.
func (s *LifecycleServiceImpl) Burn(ctx context.Context, session domain.Session, assetIDs []string) (*ports.BurnResult, error) {
	if len(assetIDs) == 0 {
		return nil, apperror.Validation("asset_ids must not be empty")
	}
	seen := make(map[string]bool, len(assetIDs))
	assets := make([]domain.Asset, 0, len(assetIDs))
	for _, id := range assetIDs {
		if seen[id] {
			return nil, apperror.Validation(fmt.Sprintf("asset %s selected twice", id))
		}
		seen[id] = true

		asset, err := s.loadOwned(ctx, session, id)
		if err != nil {
			return nil, err
		}
		if !domain.CanFire(domain.StateOf(asset), domain.EventBurn) {
			if asset.IsStaked() {
				return nil, apperror.ErrAlreadyStaked()
			}
			return nil, apperror.ErrInvalidBurnSet()
		}
		assets = append(assets, *asset)
	}

	var begun []string
	for i := range assets {
		if err := s.view.Begin(session.WalletAddress, assets[i].AssetID, &assets[i], nil); err != nil {
			for _, id := range begun {
				s.view.Revert(session.WalletAddress, id)
			}
			return nil, err
		}
		begun = append(begun, assets[i].AssetID)
	}

	result, err := s.burnEngine.ExecuteBurn(ctx, session, assets)
	if err != nil {
		for _, id := range begun {
			s.view.Revert(session.WalletAddress, id)
		}
		return nil, err
	}
	for _, id := range begun {
		s.view.Commit(session.WalletAddress, id)
	}
	return result, nil
}

// GetState returns the wallet's assets with in-flight optimistic mutations
// overlaid.
func (s *LifecycleServiceImpl) GetState(ctx context.Context, session domain.Session) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListByWallet(ctx, session.WalletAddress)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return s.view.Overlay(session.WalletAddress, assets), nil
}

// Reconcile runs the orphan sweep for the session wallet on demand.
func (s *LifecycleServiceImpl) Reconcile(ctx context.Context, session domain.Session) (*ports.ReconcileResult, error) {
	inserted, err := s.reconciler.RecoverOrphans(ctx, session.WalletAddress)
	if err != nil {
		return nil, err
	}
	return &ports.ReconcileResult{
		WalletAddress:   domain.NormalizeWallet(session.WalletAddress),
		RecordsInserted: inserted,
	}, nil
}

// GetStakeSummary aggregates the wallet's active ledger rows.
func (s *LifecycleServiceImpl) GetStakeSummary(ctx context.Context, session domain.Session) (*domain.StakeSummary, error) {
	records, err := s.stakeRepo.ListActiveByWallet(ctx, session.WalletAddress)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	summary := &domain.StakeSummary{WalletAddress: domain.NormalizeWallet(session.WalletAddress)}
	for i := range records {
		summary.ActiveStakes++
		summary.DailyRewardTotal += records[i].DailyReward
	}
	return summary, nil
}

// loadOwned fetches an asset scoped to the session wallet.
func (s *LifecycleServiceImpl) loadOwned(ctx context.Context, session domain.Session, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.GetByID(ctx, session.WalletAddress, assetID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if asset == nil {
		return nil, apperror.ErrAssetNotFound(assetID)
	}
	if !session.Owns(asset) {
		return nil, apperror.ErrNotOwner()
	}
	return asset, nil
}

// maybeSweepOrphans launches a background orphan sweep when a chain write
// ended with an unconfirmable outcome: if the write actually landed, the
// sweep repairs the ledger.
func (s *LifecycleServiceImpl) maybeSweepOrphans(session domain.Session, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != "CHN_005" {
		return
	}
	wallet := session.WalletAddress
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if n, serr := s.reconciler.RecoverOrphans(ctx, wallet); serr != nil {
			s.log.Warn().Err(serr).Str("wallet", wallet).Msg("post-failure orphan sweep failed")
		} else if n > 0 {
			s.log.Info().Str("wallet", wallet).Int("recovered", n).Msg("post-failure orphan sweep recovered stakes")
		}
	}()
}
