package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nft-lifecycle-engine/internal/core/domain"
	"nft-lifecycle-engine/internal/core/ports"
	"nft-lifecycle-engine/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

const (
	approvalAttempts        = 3
	approvalInitialInterval = 2 * time.Second
)

// ApprovalServiceImpl implements ports.ApprovalOrchestrator. It guarantees
// the staking contract holds approval before any transfer-dependent
// operation: cache fast path, then the blanket chain read, then per-token
// reads, then a bounded grant attempt.
type ApprovalServiceImpl struct {
	gateway       ports.ChainGateway
	cache         ports.ApprovalCache
	approvalTTL   time.Duration
	retryInterval time.Duration
	log           zerolog.Logger
}

// NewApprovalService creates a new ApprovalServiceImpl.
func NewApprovalService(gateway ports.ChainGateway, cache ports.ApprovalCache, approvalTTL time.Duration, log zerolog.Logger) *ApprovalServiceImpl {
	if approvalTTL <= 0 {
		approvalTTL = 10 * time.Minute
	}
	return &ApprovalServiceImpl{
		gateway:       gateway,
		cache:         cache,
		approvalTTL:   approvalTTL,
		retryInterval: approvalInitialInterval,
		log:           log,
	}
}

// EnsureApproved is idempotent: an already approved wallet returns
// immediately. When the blanket isApprovedForAll read fails, the per-token
// getApproved reads for the tokens about to move are the fallback; only
// when both reads are unreachable does the operation proceed on the
// assumption that approval exists, where the downstream transfer fails
// loudly if it does not. Rejecting on a flaky RPC read would block wallets
// that already approved long ago.
func (s *ApprovalServiceImpl) EnsureApproved(ctx context.Context, session domain.Session, tokenIDs ...uint64) error {
	wallet := session.WalletAddress

	approved, found, err := s.cache.Get(ctx, wallet)
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", wallet).Msg("approval cache read failed, falling through to chain")
	}
	if found && approved {
		return nil
	}

	operator := s.gateway.StakingOperator()
	onchain, err := s.gateway.IsApprovedForAll(ctx, wallet, operator)
	if err != nil {
		confirmed, tokenErr := s.tokensApproved(ctx, operator, tokenIDs)
		if tokenErr != nil {
			s.log.Warn().Err(err).AnErr("token_read", tokenErr).Str("wallet", wallet).
				Msg("approval state unreadable at both levels, proceeding as approved")
			return nil
		}
		if confirmed {
			// Per-token approval covers this operation; the blanket flag
			// stays uncached since its state is still unknown.
			return nil
		}
	} else if onchain {
		s.cacheApproved(ctx, wallet)
		return nil
	}

	if err := s.grant(ctx, session); err != nil {
		return err
	}
	s.cacheApproved(ctx, wallet)
	return nil
}

// tokensApproved reads the per-token approval for each token about to
// move. It answers true only when every token is individually approved for
// the operator; a read failure means unknown, never false.
func (s *ApprovalServiceImpl) tokensApproved(ctx context.Context, operator string, tokenIDs []uint64) (bool, error) {
	if len(tokenIDs) == 0 {
		return false, fmt.Errorf("no token ids to check")
	}
	for _, id := range tokenIDs {
		got, err := s.gateway.GetApproved(ctx, id)
		if err != nil {
			return false, fmt.Errorf("getApproved(%d): %w", id, err)
		}
		if got != operator {
			return false, nil
		}
	}
	return true, nil
}

// grant submits setApprovalForAll with a short bounded retry. A wallet
// rejection is terminal immediately.
func (s *ApprovalServiceImpl) grant(ctx context.Context, session domain.Session) error {
	operation := func() error {
		_, err := s.gateway.SetApprovalForAll(ctx, session, true)
		if err == nil {
			return nil
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "CHN_004" {
			return backoff.Permanent(err)
		}
		s.log.Warn().Err(err).Str("wallet", session.WalletAddress).Msg("approval grant failed, retrying")
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.retryInterval
	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, approvalAttempts-1), ctx))
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "CHN_004" {
			return appErr
		}
		return apperror.ErrApprovalFailed(err)
	}

	s.log.Info().Str("wallet", session.WalletAddress).Msg("blanket approval granted")
	return nil
}

func (s *ApprovalServiceImpl) cacheApproved(ctx context.Context, wallet string) {
	if err := s.cache.Set(ctx, wallet, true, s.approvalTTL); err != nil {
		s.log.Warn().Err(err).Str("wallet", wallet).Msg("approval cache write failed")
	}
}
