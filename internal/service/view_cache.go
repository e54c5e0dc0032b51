package service

import (
	"sync"
	"time"

	"nft-lifecycle-engine/internal/core/domain"
	"nft-lifecycle-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// overlayEntry is one in-flight optimistic mutation. snapshot is the
// persisted state at begin time (nil when the asset did not exist);
// optimistic is what reads should see while the mutation runs (nil marks an
// optimistic removal, e.g. an asset mid-burn).
type overlayEntry struct {
	snapshot   *domain.Asset
	optimistic *domain.Asset
	startedAt  time.Time
}

// ViewCache is the per-wallet optimistic read overlay. Lifecycle mutations
// register their intended outcome before the slow chain/DB work, so reads
// observe transient states (Claiming, Burning) that are never persisted.
// One in-flight mutation per asset: a second Begin on the same asset fails
// with ErrMutationInFlight instead of queueing.
type ViewCache struct {
	mu      sync.Mutex
	wallets map[string]map[string]*overlayEntry
	subs    []chan ViewChange
	log     zerolog.Logger
}

// ViewChange is published whenever a wallet's overlay changes, so pollers
// and push transports can refresh instead of re-reading on a timer.
type ViewChange struct {
	WalletAddress string
	AssetID       string
	Committed     bool
}

// NewViewCache creates an empty view cache.
func NewViewCache(log zerolog.Logger) *ViewCache {
	return &ViewCache{
		wallets: make(map[string]map[string]*overlayEntry),
		log:     log,
	}
}

// Subscribe returns a channel receiving a ViewChange for every commit or
// revert. Slow subscribers drop notifications rather than block mutations.
func (c *ViewCache) Subscribe() <-chan ViewChange {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan ViewChange, 64)
	c.subs = append(c.subs, ch)
	return ch
}

func (c *ViewCache) notifyLocked(change ViewChange) {
	for _, ch := range c.subs {
		select {
		case ch <- change:
		default:
			c.log.Warn().
				Str("wallet", change.WalletAddress).
				Msg("view change subscriber full, notification dropped")
		}
	}
}

// Begin registers an optimistic mutation for (wallet, assetID). current is
// the persisted state (nil when the mutation creates the asset); optimistic
// is the projected state (nil when the mutation removes it).
func (c *ViewCache) Begin(wallet, assetID string, current, optimistic *domain.Asset) error {
	wallet = domain.NormalizeWallet(wallet)

	c.mu.Lock()
	defer c.mu.Unlock()

	entries, ok := c.wallets[wallet]
	if !ok {
		entries = make(map[string]*overlayEntry)
		c.wallets[wallet] = entries
	}
	if _, busy := entries[assetID]; busy {
		return apperror.ErrMutationInFlight()
	}

	e := &overlayEntry{startedAt: time.Now()}
	if current != nil {
		e.snapshot = current.Clone()
	}
	if optimistic != nil {
		e.optimistic = optimistic.Clone()
	}
	entries[assetID] = e
	return nil
}

// Commit drops the overlay entry after the durable write succeeded; reads
// fall through to the now-updated persisted state.
func (c *ViewCache) Commit(wallet, assetID string) {
	c.remove(wallet, assetID, true)
}

// Revert drops the overlay entry after a failed mutation, restoring the
// snapshot view. Returns the snapshot for callers that report it.
func (c *ViewCache) Revert(wallet, assetID string) *domain.Asset {
	return c.remove(wallet, assetID, false)
}

func (c *ViewCache) remove(wallet, assetID string, committed bool) *domain.Asset {
	wallet = domain.NormalizeWallet(wallet)

	c.mu.Lock()
	defer c.mu.Unlock()

	entries, ok := c.wallets[wallet]
	if !ok {
		return nil
	}
	e, ok := entries[assetID]
	if !ok {
		return nil
	}
	delete(entries, assetID)
	if len(entries) == 0 {
		delete(c.wallets, wallet)
	}
	c.notifyLocked(ViewChange{WalletAddress: wallet, AssetID: assetID, Committed: committed})

	c.log.Debug().
		Str("wallet", wallet).
		Str("asset_id", assetID).
		Bool("committed", committed).
		Dur("held_for", time.Since(e.startedAt)).
		Msg("optimistic overlay released")
	return e.snapshot
}

// InFlight reports whether a mutation is pending for (wallet, assetID).
func (c *ViewCache) InFlight(wallet, assetID string) bool {
	wallet = domain.NormalizeWallet(wallet)

	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.wallets[wallet][assetID]
	return ok
}

// Overlay merges the in-flight optimistic states over the persisted asset
// list: replaced assets show their projected state, optimistic removals
// disappear, and optimistic creations are appended.
func (c *ViewCache) Overlay(wallet string, persisted []domain.Asset) []domain.Asset {
	wallet = domain.NormalizeWallet(wallet)

	c.mu.Lock()
	defer c.mu.Unlock()

	entries, ok := c.wallets[wallet]
	if !ok || len(entries) == 0 {
		return persisted
	}

	seen := make(map[string]bool, len(persisted))
	out := make([]domain.Asset, 0, len(persisted))
	for i := range persisted {
		id := persisted[i].AssetID
		seen[id] = true
		if e, busy := entries[id]; busy {
			if e.optimistic != nil {
				out = append(out, *e.optimistic.Clone())
			}
			// nil optimistic: hidden while being removed
			continue
		}
		out = append(out, persisted[i])
	}
	for id, e := range entries {
		if !seen[id] && e.optimistic != nil {
			out = append(out, *e.optimistic.Clone())
		}
	}
	return out
}
