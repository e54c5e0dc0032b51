package domain

import "time"

// StakeRecord is the durable reward-accounting ledger row. It is created
// when an asset enters staking and updated (never deleted) on unstake, so
// the audit history survives the chain-claim lifecycle.
type StakeRecord struct {
	ID            int64         `json:"id"`
	NFTRef        string        `json:"nft_ref"` // normalized asset id, e.g. "onchain_42"
	WalletAddress string        `json:"wallet_address"`
	Rarity        Rarity        `json:"rarity"` // frozen at stake time
	DailyReward   float64       `json:"daily_reward"`
	StakedAt      time.Time     `json:"staked_at"`
	UnstakedAt    *time.Time    `json:"unstaked_at,omitempty"`
	Source        StakingSource `json:"source"`
}

// Active reports whether the record still accrues rewards.
func (r *StakeRecord) Active() bool {
	return r.UnstakedAt == nil
}

// StakeSummary aggregates a wallet's active stakes for the reward process.
type StakeSummary struct {
	WalletAddress    string  `json:"wallet_address"`
	ActiveStakes     int     `json:"active_stakes"`
	DailyRewardTotal float64 `json:"daily_reward_total"`
}
