package ports

import (
	"context"
	"math/big"
	"time"

	"nft-lifecycle-engine/internal/core/domain"
)

// ChainWriteResult reports a confirmed on-chain write.
type ChainWriteResult struct {
	TxHash  string
	GasUsed uint64
	// Recovered is true when the client-side receipt was undecodable but a
	// block scan or post-hoc state read confirmed the write landed.
	Recovered bool
	// AlreadyApplied is true when the pre-condition read found the intended
	// effect already on chain and no transaction was submitted.
	AlreadyApplied bool
}

// StakeInfo is the chain-side view of a wallet's stake.
type StakeInfo struct {
	TokenIDs []uint64
	Rewards  *big.Int
}

// ChainGateway wraps reads and writes against the NFT and staking
// contracts. Reads never mutate state and degrade to an error (unknown)
// rather than a false value; writes run through the retry executor with
// gas-tier fallback and undecodable-receipt recovery.
type ChainGateway interface {
	OwnerOf(ctx context.Context, tokenID uint64) (string, error)
	IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error)
	GetApproved(ctx context.Context, tokenID uint64) (string, error)
	TokenURI(ctx context.Context, tokenID uint64) (string, error)
	GetStakeInfo(ctx context.Context, owner string) (*StakeInfo, error)

	SetApprovalForAll(ctx context.Context, session domain.Session, approved bool) (*ChainWriteResult, error)
	Stake(ctx context.Context, session domain.Session, tokenIDs []uint64) (*ChainWriteResult, error)
	Withdraw(ctx context.Context, session domain.Session, tokenIDs []uint64) (*ChainWriteResult, error)
	// TransferToBurn sends one token to the burn address. Irreversible.
	TransferToBurn(ctx context.Context, session domain.Session, tokenID uint64) (*ChainWriteResult, error)
	// TransferFromCustody moves a reserved token from the custody wallet to
	// the session wallet (the claim transfer).
	TransferFromCustody(ctx context.Context, session domain.Session, tokenID uint64) (*ChainWriteResult, error)

	// StakingOperator returns the staking/burn contract address that needs
	// blanket approval.
	StakingOperator() string
}

// MetadataResolver fetches content-addressed JSON metadata. It must
// tolerate non-JSON or unreachable responses by returning the Unresolved
// variant rather than failing the operation.
type MetadataResolver interface {
	Resolve(ctx context.Context, uri string) domain.Metadata
}

// ApprovalCache is the ephemeral per-wallet blanket-approval flag
// (PendingApproval); it lives in cache only and is re-derived from chain on
// a miss.
type ApprovalCache interface {
	// Get returns (approved, found, error).
	Get(ctx context.Context, wallet string) (bool, bool, error)
	Set(ctx context.Context, wallet string, approved bool, ttl time.Duration) error
}

// IdempotencyCache caches operation responses (fast path). Get returns
// nil, nil on a miss.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
