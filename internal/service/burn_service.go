package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nft-lifecycle-engine/internal/core/domain"
	"nft-lifecycle-engine/internal/core/ports"
	"nft-lifecycle-engine/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BurnServiceImpl implements ports.BurnEngine: rule validation, the
// irreversible on-chain transfers, and the atomic off-chain settlement
// (asset deletion, pool claim, result creation, audit row) in one database
// transaction.
type BurnServiceImpl struct {
	gateway    ports.ChainGateway
	assetRepo  ports.AssetRepository
	burnRepo   ports.BurnRepository
	idemCache  ports.IdempotencyCache
	transactor ports.DBTransactor
	rules      []domain.BurnRule
	idemTTL    time.Duration
	log        zerolog.Logger
}

// NewBurnService creates a new BurnServiceImpl.
func NewBurnService(
	gateway ports.ChainGateway,
	assetRepo ports.AssetRepository,
	burnRepo ports.BurnRepository,
	idemCache ports.IdempotencyCache,
	transactor ports.DBTransactor,
	rules []domain.BurnRule,
	idemTTL time.Duration,
	log zerolog.Logger,
) *BurnServiceImpl {
	if idemTTL <= 0 {
		idemTTL = 24 * time.Hour
	}
	return &BurnServiceImpl{
		gateway:    gateway,
		assetRepo:  assetRepo,
		burnRepo:   burnRepo,
		idemCache:  idemCache,
		transactor: transactor,
		rules:      rules,
		idemTTL:    idemTTL,
		log:        log,
	}
}

// ExecuteBurn runs the full burn: idempotency replay, rule match, chain
// burns, then the settlement transaction. The caller has already verified
// ownership and that every asset may legally fire the burn event.
func (s *BurnServiceImpl) ExecuteBurn(ctx context.Context, session domain.Session, assets []domain.Asset) (*ports.BurnResult, error) {
	assetIDs := make([]string, len(assets))
	for i := range assets {
		assetIDs[i] = assets[i].AssetID
	}
	idemKey := domain.BurnSelectionKey(session.WalletAddress, assetIDs)

	// Retrying the same selection replays the recorded outcome instead of
	// burning twice.
	if cached, err := s.idemCache.Get(ctx, idemKey); err != nil {
		s.log.Warn().Err(err).Str("key", idemKey).Msg("burn idempotency check failed, proceeding")
	} else if cached != nil {
		var result ports.BurnResult
		if err := json.Unmarshal(cached, &result); err == nil {
			s.log.Info().Str("key", idemKey).Msg("burn replayed from idempotency cache")
			return &result, nil
		}
	}

	rule, err := s.matchRule(assets)
	if err != nil {
		return nil, err
	}
	burnType := classifyBurn(assets)

	// Irreversible part first: each on-chain token goes to the burn address
	// sequentially so a partial failure is reported precisely.
	succeeded, txHashes, chainErr := s.burnOnchain(ctx, session, assets)
	if chainErr != nil {
		return nil, chainErr
	}

	result, err := s.settle(ctx, session, assets, rule, burnType, txHashes)
	if err != nil {
		// The tokens are already at the burn address; reflect that in the
		// hint so nobody resubmits expecting a clean retry.
		if appErr, ok := err.(*apperror.AppError); ok && len(succeeded) > 0 {
			return nil, appErr.
				WithHint(apperror.HintIrreversible).
				WithDetails(map[string]any{"succeeded_token_ids": succeeded, "chain_tx_hashes": txHashes})
		}
		return nil, err
	}
	result.SucceededTokenIDs = succeeded

	if payload, err := json.Marshal(result); err == nil {
		if err := s.idemCache.Set(ctx, idemKey, payload, s.idemTTL); err != nil {
			s.log.Warn().Err(err).Str("key", idemKey).Msg("burn idempotency cache write failed")
		}
	}

	s.log.Info().
		Str("wallet", session.WalletAddress).
		Str("burn_tx_id", result.BurnTxID).
		Str("burn_type", string(burnType)).
		Strs("burned", assetIDs).
		Str("result_rarity", string(rule.ResultingRarity)).
		Msg("burn executed")
	return result, nil
}

// matchRule validates the selection against the configured rules: uniform
// rarity, exact count, and rarity at or above the rule minimum. The most
// specific satisfiable rule (highest minimum) wins.
func (s *BurnServiceImpl) matchRule(assets []domain.Asset) (*domain.BurnRule, error) {
	if len(assets) == 0 {
		return nil, apperror.ErrInvalidBurnSet()
	}
	rarity := assets[0].Rarity
	for i := range assets {
		if assets[i].Rarity != rarity {
			return nil, apperror.ErrInvalidBurnSet().WithDetails("selection mixes rarities")
		}
		if assets[i].IsStaked() {
			return nil, apperror.ErrInvalidBurnSet().WithDetails(fmt.Sprintf("asset %s is staked", assets[i].AssetID))
		}
	}

	var best *domain.BurnRule
	for i := range s.rules {
		rule := s.rules[i]
		if len(assets) != rule.RequiredAmount || !rarity.AtLeast(rule.MinRarity) {
			continue
		}
		if best == nil || rule.MinRarity.AtLeast(best.MinRarity) {
			best = &s.rules[i]
		}
	}
	if best == nil {
		return nil, apperror.ErrInvalidBurnSet()
	}
	return best, nil
}

// burnOnchain transfers each on-chain token to the burn address. On failure
// the succeeded ids are attached to the error; those burns cannot be undone.
func (s *BurnServiceImpl) burnOnchain(ctx context.Context, session domain.Session, assets []domain.Asset) ([]uint64, []string, error) {
	var succeeded []uint64
	var txHashes []string

	for i := range assets {
		if assets[i].Store != domain.StoreOnchain || assets[i].TokenID == nil {
			continue
		}
		tokenID := *assets[i].TokenID

		res, err := s.gateway.TransferToBurn(ctx, session, tokenID)
		if err != nil {
			s.log.Error().Err(err).
				Uint64("failed_token_id", tokenID).
				Uints64("succeeded_token_ids", succeeded).
				Msg("partial onchain burn failure")

			appErr, ok := err.(*apperror.AppError)
			if !ok {
				appErr = apperror.InternalError(err)
			}
			if len(succeeded) > 0 {
				appErr = appErr.
					WithHint(apperror.HintIrreversible).
					WithDetails(map[string]any{"succeeded_token_ids": succeeded, "chain_tx_hashes": txHashes})
			}
			return succeeded, txHashes, appErr
		}
		succeeded = append(succeeded, tokenID)
		if res.TxHash != "" {
			txHashes = append(txHashes, res.TxHash)
		}
	}
	return succeeded, txHashes, nil
}

// settle runs the single database transaction that removes the burned
// assets, claims the pooled result, creates the result asset, and writes
// the audit row. The whole block retries as a unit; chain state is already
// final, so the database must eventually agree.
func (s *BurnServiceImpl) settle(
	ctx context.Context,
	session domain.Session,
	assets []domain.Asset,
	rule *domain.BurnRule,
	burnType domain.BurnType,
	txHashes []string,
) (*ports.BurnResult, error) {
	var result *ports.BurnResult

	operation := func() error {
		res, err := s.settleOnce(ctx, session, assets, rule, burnType, txHashes)
		if err != nil {
			if appErr, ok := err.(*apperror.AppError); ok && !appErr.Retryable() {
				return backoff.Permanent(err)
			}
			s.log.Warn().Err(err).Msg("burn settlement failed, retrying")
			return err
		}
		result = res
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *BurnServiceImpl) settleOnce(
	ctx context.Context,
	session domain.Session,
	assets []domain.Asset,
	rule *domain.BurnRule,
	burnType domain.BurnType,
	txHashes []string,
) (*ports.BurnResult, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin burn settlement: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	assetIDs := make([]string, len(assets))
	for i := range assets {
		assetIDs[i] = assets[i].AssetID
		if err := s.assetRepo.DeleteTx(ctx, tx, session.WalletAddress, assets[i].AssetID); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
	}

	pool, err := s.burnRepo.ClaimPoolAssetTx(ctx, tx, rule.ResultingRarity, session.WalletAddress)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if pool == nil {
		// Exhaustion after irreversible burns is the bad case the pool
		// seeding process exists to prevent. No silent downgrade.
		s.log.Error().
			Str("wallet", session.WalletAddress).
			Str("rarity", string(rule.ResultingRarity)).
			Strs("burned", assetIDs).
			Msg("burn pool exhausted after burns were executed")
		return nil, apperror.ErrPoolExhausted()
	}

	now := time.Now().UTC()
	resultAsset := &domain.Asset{
		AssetID:       pool.AssetID,
		WalletAddress: domain.NormalizeWallet(session.WalletAddress),
		Rarity:        rule.ResultingRarity,
		Store:         domain.StoreOffchain,
		StakeStatus:   domain.StakeStatusUnstaked,
		StakingSource: domain.SourceNone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.assetRepo.UpsertTx(ctx, tx, resultAsset); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	var chainTxHash *string
	if len(txHashes) > 0 {
		chainTxHash = &txHashes[len(txHashes)-1]
	}
	burnTx := &domain.BurnTransaction{
		ID:             uuid.New(),
		WalletAddress:  resultAsset.WalletAddress,
		BurnedAssetIDs: assetIDs,
		ResultRarity:   rule.ResultingRarity,
		ResultAssetID:  pool.AssetID,
		BurnType:       burnType,
		ChainTxHash:    chainTxHash,
		CreatedAt:      now,
	}
	if err := s.burnRepo.CreateTransactionTx(ctx, tx, burnTx); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit burn settlement: %w", err))
	}

	return &ports.BurnResult{
		BurnTxID:       burnTx.ID.String(),
		BurnType:       burnType,
		BurnedAssetIDs: assetIDs,
		ResultAsset:    resultAsset,
		ChainTxHashes:  txHashes,
	}, nil
}

func classifyBurn(assets []domain.Asset) domain.BurnType {
	var onchain, offchain bool
	for i := range assets {
		if assets[i].Store == domain.StoreOnchain {
			onchain = true
		} else {
			offchain = true
		}
	}
	switch {
	case onchain && offchain:
		return domain.BurnTypeHybrid
	case onchain:
		return domain.BurnTypeOnchain
	default:
		return domain.BurnTypeOffchain
	}
}
