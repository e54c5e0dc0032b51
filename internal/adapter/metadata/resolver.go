package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nft-lifecycle-engine/internal/core/domain"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout  = 8 * time.Second
	maxPayloadBytes = 1 << 20 // metadata JSON should never be this big
	defaultIPFSGate = "https://ipfs.io/ipfs/"
)

// HTTPResolver fetches token metadata over HTTP, rewriting ipfs:// URIs to a
// public gateway. Any failure yields the Unresolved variant; metadata
// problems must never fail a lifecycle operation.
type HTTPResolver struct {
	client   *http.Client
	ipfsGate string
	log      zerolog.Logger
}

// NewHTTPResolver creates a resolver with a bounded request timeout.
func NewHTTPResolver(log zerolog.Logger) *HTTPResolver {
	return &HTTPResolver{
		client:   &http.Client{Timeout: defaultTimeout},
		ipfsGate: defaultIPFSGate,
		log:      log,
	}
}

// tokenMetadata is the loose on-chain metadata shape. Attributes follow the
// common trait_type/value convention but nothing is guaranteed.
type tokenMetadata struct {
	Name       string `json:"name"`
	Image      string `json:"image"`
	Attributes []struct {
		TraitType string      `json:"trait_type"`
		Value     interface{} `json:"value"`
	} `json:"attributes"`
}

// Resolve fetches and interprets the metadata at uri.
func (r *HTTPResolver) Resolve(ctx context.Context, uri string) domain.Metadata {
	if uri == "" {
		return domain.UnresolvedMetadata()
	}
	url := r.rewrite(uri)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		r.log.Warn().Err(err).Str("uri", uri).Msg("metadata request build failed")
		return domain.UnresolvedMetadata()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Warn().Err(err).Str("uri", uri).Msg("metadata fetch failed")
		return domain.UnresolvedMetadata()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Warn().Int("status", resp.StatusCode).Str("uri", uri).Msg("metadata fetch returned non-200")
		return domain.UnresolvedMetadata()
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		r.log.Warn().Err(err).Str("uri", uri).Msg("metadata body read failed")
		return domain.UnresolvedMetadata()
	}

	var raw tokenMetadata
	if err := json.Unmarshal(body, &raw); err != nil {
		r.log.Warn().Err(err).Str("uri", uri).Msg("metadata payload is not valid json")
		return domain.UnresolvedMetadata()
	}

	md := domain.Metadata{
		Resolved:   true,
		Name:       raw.Name,
		Image:      raw.Image,
		Attributes: make(map[string]string, len(raw.Attributes)),
	}
	for _, attr := range raw.Attributes {
		if attr.TraitType == "" {
			continue
		}
		val := stringify(attr.Value)
		md.Attributes[attr.TraitType] = val
		if strings.EqualFold(attr.TraitType, "rarity") {
			rarity := domain.Rarity(strings.ToLower(val))
			if rarity.Valid() {
				md.Rarity = rarity
			}
		}
	}
	return md
}

// rewrite maps ipfs:// URIs onto the configured gateway.
func (r *HTTPResolver) rewrite(uri string) string {
	if cid, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		return r.ipfsGate + strings.TrimPrefix(cid, "ipfs/")
	}
	return uri
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
