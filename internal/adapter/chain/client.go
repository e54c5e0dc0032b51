package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nft-lifecycle-engine/config"
	"nft-lifecycle-engine/pkg/apperror"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// ClientPool holds one ethclient per configured RPC endpoint. Reads are
// retried across the pool; the circuit breaker trips when a provider keeps
// failing so a dead endpoint does not eat the whole read budget.
type ClientPool struct {
	endpoints   []string
	clients     []*ethclient.Client
	breaker     *gobreaker.CircuitBreaker
	readTimeout time.Duration
	readRetries int
	log         zerolog.Logger
}

// Dial connects every configured endpoint. At least one endpoint must be
// reachable; unreachable ones are dropped with a warning.
func Dial(ctx context.Context, cfg config.ChainConfig, log zerolog.Logger) (*ClientPool, error) {
	p := &ClientPool{
		readTimeout: cfg.ReadTimeout,
		readRetries: cfg.ReadRetries,
		log:         log,
	}
	if p.readTimeout <= 0 {
		p.readTimeout = 12 * time.Second
	}
	if p.readRetries <= 0 {
		p.readRetries = 2
	}

	for _, ep := range cfg.RPCEndpoints {
		client, err := ethclient.DialContext(ctx, ep)
		if err != nil {
			log.Warn().Err(err).Str("endpoint", ep).Msg("rpc endpoint unreachable, skipping")
			continue
		}
		p.clients = append(p.clients, client)
		p.endpoints = append(p.endpoints, ep)
	}
	if len(p.clients) == 0 {
		return nil, fmt.Errorf("no reachable rpc endpoint out of %d configured", len(cfg.RPCEndpoints))
	}

	p.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "chain-rpc",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})

	log.Info().Int("endpoints", len(p.clients)).Msg("chain client pool established")
	return p, nil
}

// Read runs fn against the pool with per-endpoint retries under an
// aggregate timeout. A failure means "unknown", never "false": the last
// error is always surfaced to the caller.
func (p *ClientPool) Read(ctx context.Context, op string, fn func(ctx context.Context, client *ethclient.Client) error) error {
	readCtx, cancel := context.WithTimeout(ctx, p.readTimeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt < p.readRetries; attempt++ {
		for i, client := range p.clients {
			if readCtx.Err() != nil {
				return apperror.ErrChainTimeout(fmt.Errorf("%s: %w (last: %v)", op, readCtx.Err(), lastErr))
			}
			_, err := p.breaker.Execute(func() (interface{}, error) {
				return nil, fn(readCtx, client)
			})
			if err == nil {
				return nil
			}
			if errors.Is(err, gobreaker.ErrOpenState) {
				lastErr = err
				break // provider considered down, wait for the breaker
			}
			lastErr = err
			p.log.Debug().Err(err).Str("op", op).Str("endpoint", p.endpoints[i]).Int("attempt", attempt).Msg("chain read failed, trying next endpoint")
		}
	}
	if errors.Is(readCtx.Err(), context.DeadlineExceeded) {
		return apperror.ErrChainTimeout(fmt.Errorf("%s: %w", op, lastErr))
	}
	return fmt.Errorf("%s: all endpoints failed: %w", op, lastErr)
}

// Primary returns the first healthy client, used for transaction
// submission and block scans.
func (p *ClientPool) Primary() *ethclient.Client {
	return p.clients[0]
}

// Close releases all clients.
func (p *ClientPool) Close() {
	for _, c := range p.clients {
		c.Close()
	}
}

// HealthCheck implements ports.HealthChecker for the chain provider.
type HealthCheck struct {
	pool *ClientPool
}

// NewHealthCheck creates a chain health checker.
func NewHealthCheck(pool *ClientPool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks provider connectivity via a chain id call.
func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.pool.Read(ctx, "health", func(ctx context.Context, client *ethclient.Client) error {
		_, err := client.ChainID(ctx)
		return err
	})
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "chain"
}
