package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Rarity is the reward tier of an asset, frozen into StakeRecords at stake time.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RaritySilver    Rarity = "silver"
	RarityGold      Rarity = "gold"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
	RarityPlatinum  Rarity = "platinum"
)

var rarityRank = map[Rarity]int{
	RarityCommon:    0,
	RaritySilver:    1,
	RarityGold:      2,
	RarityRare:      3,
	RarityLegendary: 4,
	RarityPlatinum:  5,
}

// Valid reports whether r is a known rarity.
func (r Rarity) Valid() bool {
	_, ok := rarityRank[r]
	return ok
}

// AtLeast reports whether r is of equal or higher tier than other.
func (r Rarity) AtLeast(other Rarity) bool {
	return rarityRank[r] >= rarityRank[other]
}

// Store identifies which side currently holds an asset.
type Store string

const (
	StoreOffchain Store = "offchain"
	StoreOnchain  Store = "onchain"
)

// StakeStatus is the staking flag of an asset.
type StakeStatus string

const (
	StakeStatusUnstaked StakeStatus = "unstaked"
	StakeStatusStaked   StakeStatus = "staked"
)

// StakingSource records where a stake lives. It is SourceNone iff the asset
// is unstaked.
type StakingSource string

const (
	SourceNone     StakingSource = "none"
	SourceOffchain StakingSource = "offchain"
	SourceOnchain  StakingSource = "onchain"
)

// Asset is one NFT instance tracked across both stores.
type Asset struct {
	AssetID          string        `json:"asset_id"`
	TokenID          *uint64       `json:"token_id,omitempty"` // chain-native id, set once minted
	WalletAddress    string        `json:"wallet_address"`
	Rarity           Rarity        `json:"rarity"`
	Store            Store         `json:"store"`
	StakeStatus      StakeStatus   `json:"stake_status"`
	StakingSource    StakingSource `json:"staking_source"`
	StakedAt         *time.Time    `json:"staked_at,omitempty"`
	LastReconciledAt *time.Time    `json:"last_reconciled_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// IsStaked returns true if the asset is currently staked in either store.
func (a *Asset) IsStaked() bool {
	return a.StakeStatus == StakeStatusStaked
}

// Validate enforces the store/staking exclusivity invariants:
// an asset is in exactly one store; StakingSource is none iff unstaked;
// an on-chain asset may only be staked on-chain.
func (a *Asset) Validate() error {
	if a.Store != StoreOffchain && a.Store != StoreOnchain {
		return fmt.Errorf("asset %s: invalid store %q", a.AssetID, a.Store)
	}
	staked := a.StakeStatus == StakeStatusStaked
	if staked && a.StakingSource == SourceNone {
		return fmt.Errorf("asset %s: staked without a staking source", a.AssetID)
	}
	if !staked && a.StakingSource != SourceNone {
		return fmt.Errorf("asset %s: unstaked but staking source is %q", a.AssetID, a.StakingSource)
	}
	if a.Store == StoreOnchain && staked && a.StakingSource != SourceOnchain {
		return fmt.Errorf("asset %s: on-chain asset staked via %q", a.AssetID, a.StakingSource)
	}
	return nil
}

// Clone returns a deep copy, used for optimistic-view snapshots.
func (a *Asset) Clone() *Asset {
	c := *a
	if a.TokenID != nil {
		v := *a.TokenID
		c.TokenID = &v
	}
	if a.StakedAt != nil {
		v := *a.StakedAt
		c.StakedAt = &v
	}
	if a.LastReconciledAt != nil {
		v := *a.LastReconciledAt
		c.LastReconciledAt = &v
	}
	return &c
}

// NormalizeWallet lower-cases a wallet address; all persistence is keyed by
// the normalized form.
func NormalizeWallet(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// OnchainAssetID builds the logical id used for minted assets.
func OnchainAssetID(tokenID uint64) string {
	return "onchain_" + strconv.FormatUint(tokenID, 10)
}

// ParseOnchainAssetID extracts the token id from an "onchain_<id>" asset id.
func ParseOnchainAssetID(assetID string) (uint64, bool) {
	raw, ok := strings.CutPrefix(assetID, "onchain_")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
