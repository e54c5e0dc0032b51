package dto

// BurnRequest is the request body for a burn.
type BurnRequest struct {
	AssetIDs []string `json:"asset_ids" binding:"required,min=1,max=50"`
}

// AssetResponse is one asset in a wallet state listing.
type AssetResponse struct {
	AssetID       string  `json:"asset_id"`
	TokenID       *uint64 `json:"token_id,omitempty"`
	Rarity        string  `json:"rarity"`
	Store         string  `json:"store"`
	StakeStatus   string  `json:"stake_status"`
	StakingSource string  `json:"staking_source"`
	StakedAt      *string `json:"staked_at,omitempty"`
}

// WalletStateResponse wraps the overlaid asset list for a wallet.
type WalletStateResponse struct {
	WalletAddress string          `json:"wallet_address"`
	Assets        []AssetResponse `json:"assets"`
}

// OperationResponse is the response body for stake, unstake and claim.
type OperationResponse struct {
	AssetID       string  `json:"asset_id"`
	Store         string  `json:"store"`
	StakeStatus   string  `json:"stake_status"`
	StakingSource string  `json:"staking_source"`
	TxHash        *string `json:"tx_hash,omitempty"`
}

// BurnResponse is the response body for a completed burn.
type BurnResponse struct {
	BurnTxID          string         `json:"burn_tx_id"`
	BurnType          string         `json:"burn_type"`
	BurnedAssetIDs    []string       `json:"burned_asset_ids"`
	SucceededTokenIDs []uint64       `json:"succeeded_token_ids,omitempty"`
	ResultAsset       *AssetResponse `json:"result_asset,omitempty"`
	ChainTxHashes     []string       `json:"chain_tx_hashes,omitempty"`
}

// ReconcileResponse reports an on-demand orphan sweep.
type ReconcileResponse struct {
	WalletAddress   string `json:"wallet_address"`
	RecordsInserted int    `json:"records_inserted"`
}

// StakeSummaryResponse aggregates a wallet's active stakes.
type StakeSummaryResponse struct {
	WalletAddress    string  `json:"wallet_address"`
	ActiveStakes     int     `json:"active_stakes"`
	DailyRewardTotal float64 `json:"daily_reward_total"`
}
