package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BurnRule is static crafting configuration: RequiredAmount assets of
// MinRarity (or above, within the same selection) are consumed to produce
// one asset of ResultingRarity. Rules partition all valid combinations.
type BurnRule struct {
	MinRarity       Rarity `json:"min_rarity"`
	RequiredAmount  int    `json:"required_amount"`
	ResultingRarity Rarity `json:"resulting_rarity"`
}

// BurnType classifies which stores a burn touched.
type BurnType string

const (
	BurnTypeOffchain BurnType = "offchain"
	BurnTypeOnchain  BurnType = "onchain"
	BurnTypeHybrid   BurnType = "hybrid"
)

// BurnTransaction is the insert-only audit record written once per
// successful burn.
type BurnTransaction struct {
	ID             uuid.UUID `json:"id"`
	WalletAddress  string    `json:"wallet_address"`
	BurnedAssetIDs []string  `json:"burned_asset_ids"`
	ResultRarity   Rarity    `json:"result_rarity"`
	ResultAssetID  string    `json:"result_asset_id"`
	BurnType       BurnType  `json:"burn_type"`
	ChainTxHash    *string   `json:"chain_tx_hash,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// PoolAsset is one pre-seeded crafted-result asset. It is distributed at
// most once; the claim is an atomic conditional update on IsDistributed.
type PoolAsset struct {
	ID            int64      `json:"id"`
	AssetID       string     `json:"asset_id"`
	Rarity        Rarity     `json:"rarity"`
	IsDistributed bool       `json:"is_distributed"`
	DistributedTo *string    `json:"distributed_to,omitempty"`
	DistributedAt *time.Time `json:"distributed_at,omitempty"`
}

// BurnSelectionKey derives a stable idempotency key for a burn selection:
// the same wallet retrying the same set of assets maps to the same key
// regardless of ordering.
func BurnSelectionKey(wallet string, assetIDs []string) string {
	ids := make([]string, len(assetIDs))
	copy(ids, assetIDs)
	sort.Strings(ids)
	sum := sha256.Sum256([]byte(strings.Join(ids, "|")))
	return NormalizeWallet(wallet) + ":burn:" + hex.EncodeToString(sum[:8])
}
