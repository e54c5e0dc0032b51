package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"nft-lifecycle-engine/config"
	"nft-lifecycle-engine/internal/core/domain"
	"nft-lifecycle-engine/internal/core/ports"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// Minimal ABI fragments for the ERC-721 collection and the staking
// contract; only the functions this engine calls.
const erc721ABI = `[
	{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"getApproved","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"isApprovedForAll","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"operator","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"setApprovalForAll","stateMutability":"nonpayable","inputs":[{"name":"operator","type":"address"},{"name":"approved","type":"bool"}],"outputs":[]},
	{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]}
]`

const stakingABI = `[
	{"type":"function","name":"stake","stateMutability":"nonpayable","inputs":[{"name":"tokenIds","type":"uint256[]"}],"outputs":[]},
	{"type":"function","name":"withdraw","stateMutability":"nonpayable","inputs":[{"name":"tokenIds","type":"uint256[]"}],"outputs":[]},
	{"type":"function","name":"getStakeInfo","stateMutability":"view","inputs":[{"name":"staker","type":"address"}],"outputs":[{"name":"tokensStaked","type":"uint256[]"},{"name":"rewards","type":"uint256"}]}
]`

// signer holds the custodial operator key used to submit transactions.
type signer struct {
	key     *ecdsa.PrivateKey
	addr    common.Address
	chainID *big.Int
}

func newSigner(hexKey string, chainID int64) (*signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parsing operator key: %w", err)
	}
	return &signer{
		key:     key,
		addr:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: big.NewInt(chainID),
	}, nil
}

func (s *signer) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("building transact opts: %w", err)
	}
	auth.Context = ctx
	return auth, nil
}

// Gateway implements ports.ChainGateway over the client pool and the
// retry executor.
type Gateway struct {
	pool        *ClientPool
	exec        *Executor
	signer      *signer
	nftAddr     common.Address
	stakingAddr common.Address
	burnAddr    common.Address
	custodyAddr common.Address
	nftABI      abi.ABI
	stakingABI  abi.ABI
	gasTiers    []uint64
	log         zerolog.Logger
}

// NewGateway parses the contract ABIs and wires the executor. The operator
// key is optional; without it the gateway is read-only.
func NewGateway(pool *ClientPool, cfg config.ChainConfig, log zerolog.Logger) (*Gateway, error) {
	parsedNFT, err := abi.JSON(strings.NewReader(erc721ABI))
	if err != nil {
		return nil, fmt.Errorf("parsing erc721 abi: %w", err)
	}
	parsedStaking, err := abi.JSON(strings.NewReader(stakingABI))
	if err != nil {
		return nil, fmt.Errorf("parsing staking abi: %w", err)
	}

	g := &Gateway{
		pool:        pool,
		nftAddr:     common.HexToAddress(cfg.NFTContract),
		stakingAddr: common.HexToAddress(cfg.StakingContract),
		burnAddr:    common.HexToAddress(cfg.BurnAddress),
		custodyAddr: common.HexToAddress(cfg.CustodyAddress),
		nftABI:      parsedNFT,
		stakingABI:  parsedStaking,
		gasTiers:    cfg.GasTiers,
		log:         log,
	}
	if len(g.gasTiers) == 0 {
		g.gasTiers = []uint64{300_000, 600_000, 1_200_000}
	}

	if cfg.OperatorKey != "" {
		s, err := newSigner(cfg.OperatorKey, cfg.ChainID)
		if err != nil {
			return nil, err
		}
		g.signer = s
	}

	var from common.Address
	if g.signer != nil {
		from = g.signer.addr
	}
	g.exec = NewExecutor(pool, from, cfg.WriteRetries, cfg.ReceiptTimeout, cfg.RecoveryBlocks, log)
	return g, nil
}

// StakingOperator returns the staking/burn contract address.
func (g *Gateway) StakingOperator() string {
	return strings.ToLower(g.stakingAddr.Hex())
}

// ---- Reads ----

func (g *Gateway) OwnerOf(ctx context.Context, tokenID uint64) (string, error) {
	var owner common.Address
	err := g.pool.Read(ctx, "ownerOf", func(ctx context.Context, client *ethclient.Client) error {
		out, err := g.call(ctx, client, g.nftAddr, g.nftABI, "ownerOf", new(big.Int).SetUint64(tokenID))
		if err != nil {
			return err
		}
		addr, ok := out[0].(common.Address)
		if !ok {
			return fmt.Errorf("ownerOf: unexpected output type %T", out[0])
		}
		owner = addr
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.ToLower(owner.Hex()), nil
}

func (g *Gateway) IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error) {
	var approved bool
	err := g.pool.Read(ctx, "isApprovedForAll", func(ctx context.Context, client *ethclient.Client) error {
		out, err := g.call(ctx, client, g.nftAddr, g.nftABI, "isApprovedForAll",
			common.HexToAddress(owner), common.HexToAddress(operator))
		if err != nil {
			return err
		}
		v, ok := out[0].(bool)
		if !ok {
			return fmt.Errorf("isApprovedForAll: unexpected output type %T", out[0])
		}
		approved = v
		return nil
	})
	if err != nil {
		// Unknown, not "false": callers must treat this as unconfirmable.
		return false, err
	}
	return approved, nil
}

func (g *Gateway) GetApproved(ctx context.Context, tokenID uint64) (string, error) {
	var operator common.Address
	err := g.pool.Read(ctx, "getApproved", func(ctx context.Context, client *ethclient.Client) error {
		out, err := g.call(ctx, client, g.nftAddr, g.nftABI, "getApproved", new(big.Int).SetUint64(tokenID))
		if err != nil {
			return err
		}
		addr, ok := out[0].(common.Address)
		if !ok {
			return fmt.Errorf("getApproved: unexpected output type %T", out[0])
		}
		operator = addr
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.ToLower(operator.Hex()), nil
}

func (g *Gateway) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	var uri string
	err := g.pool.Read(ctx, "tokenURI", func(ctx context.Context, client *ethclient.Client) error {
		out, err := g.call(ctx, client, g.nftAddr, g.nftABI, "tokenURI", new(big.Int).SetUint64(tokenID))
		if err != nil {
			return err
		}
		v, ok := out[0].(string)
		if !ok {
			return fmt.Errorf("tokenURI: unexpected output type %T", out[0])
		}
		uri = v
		return nil
	})
	if err != nil {
		return "", err
	}
	return uri, nil
}

func (g *Gateway) GetStakeInfo(ctx context.Context, owner string) (*ports.StakeInfo, error) {
	info := &ports.StakeInfo{Rewards: big.NewInt(0)}
	err := g.pool.Read(ctx, "getStakeInfo", func(ctx context.Context, client *ethclient.Client) error {
		out, err := g.call(ctx, client, g.stakingAddr, g.stakingABI, "getStakeInfo", common.HexToAddress(owner))
		if err != nil {
			return err
		}
		if len(out) < 2 {
			return fmt.Errorf("getStakeInfo: short output (%d values)", len(out))
		}
		tokens, ok := out[0].([]*big.Int)
		if !ok {
			return fmt.Errorf("getStakeInfo: unexpected tokens type %T", out[0])
		}
		rewards, ok := out[1].(*big.Int)
		if !ok {
			return fmt.Errorf("getStakeInfo: unexpected rewards type %T", out[1])
		}
		ids := make([]uint64, 0, len(tokens))
		for _, t := range tokens {
			ids = append(ids, t.Uint64())
		}
		info.TokenIDs = ids
		info.Rewards = rewards
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (g *Gateway) call(ctx context.Context, client *ethclient.Client, addr common.Address, contractABI abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	contract := bind.NewBoundContract(addr, contractABI, client, client, client)
	var out []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: empty result", method)
	}
	return out, nil
}

// ---- Writes ----

func (g *Gateway) SetApprovalForAll(ctx context.Context, session domain.Session, approved bool) (*ports.ChainWriteResult, error) {
	verify := func(ctx context.Context) (bool, error) {
		got, err := g.IsApprovedForAll(ctx, session.WalletAddress, g.StakingOperator())
		if err != nil {
			return false, err
		}
		return got == approved, nil
	}
	return g.write(ctx, "setApprovalForAll", g.nftAddr, g.nftABI, verify, "setApprovalForAll", g.stakingAddr, approved)
}

func (g *Gateway) Stake(ctx context.Context, session domain.Session, tokenIDs []uint64) (*ports.ChainWriteResult, error) {
	verify := func(ctx context.Context) (bool, error) {
		info, err := g.GetStakeInfo(ctx, session.WalletAddress)
		if err != nil {
			return false, err
		}
		return containsAll(info.TokenIDs, tokenIDs), nil
	}
	return g.write(ctx, "stake", g.stakingAddr, g.stakingABI, verify, "stake", toBigInts(tokenIDs))
}

func (g *Gateway) Withdraw(ctx context.Context, session domain.Session, tokenIDs []uint64) (*ports.ChainWriteResult, error) {
	verify := func(ctx context.Context) (bool, error) {
		info, err := g.GetStakeInfo(ctx, session.WalletAddress)
		if err != nil {
			return false, err
		}
		return containsNone(info.TokenIDs, tokenIDs), nil
	}
	return g.write(ctx, "withdraw", g.stakingAddr, g.stakingABI, verify, "withdraw", toBigInts(tokenIDs))
}

func (g *Gateway) TransferToBurn(ctx context.Context, session domain.Session, tokenID uint64) (*ports.ChainWriteResult, error) {
	verify := func(ctx context.Context) (bool, error) {
		owner, err := g.OwnerOf(ctx, tokenID)
		if err != nil {
			return false, err
		}
		return owner == strings.ToLower(g.burnAddr.Hex()), nil
	}
	from := common.HexToAddress(session.WalletAddress)
	return g.write(ctx, "transferToBurn", g.nftAddr, g.nftABI, verify,
		"transferFrom", from, g.burnAddr, new(big.Int).SetUint64(tokenID))
}

func (g *Gateway) TransferFromCustody(ctx context.Context, session domain.Session, tokenID uint64) (*ports.ChainWriteResult, error) {
	verify := func(ctx context.Context) (bool, error) {
		owner, err := g.OwnerOf(ctx, tokenID)
		if err != nil {
			return false, err
		}
		return owner == session.WalletAddress, nil
	}
	to := common.HexToAddress(session.WalletAddress)
	return g.write(ctx, "claimTransfer", g.nftAddr, g.nftABI, verify,
		"transferFrom", g.custodyAddr, to, new(big.Int).SetUint64(tokenID))
}

// write builds the submit closure (typed call with raw-encoded fallback and
// gas-tier escalation) and hands it to the executor.
func (g *Gateway) write(ctx context.Context, op string, target common.Address, targetABI abi.ABI, verify VerifyFunc, method string, args ...interface{}) (*ports.ChainWriteResult, error) {
	if g.signer == nil {
		return nil, fmt.Errorf("%s: no operator key configured, gateway is read-only", op)
	}

	data, err := targetABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: pack: %w", op, err)
	}

	attempt := 0
	submit := func(ctx context.Context) (*types.Transaction, error) {
		client := g.pool.Primary()
		gasLimit := g.gasLimitFor(ctx, client, target, data, attempt)
		attempt++

		auth, err := g.signer.transactOpts(ctx)
		if err != nil {
			return nil, err
		}
		auth.GasLimit = gasLimit

		contract := bind.NewBoundContract(target, targetABI, client, client, client)
		tx, err := contract.Transact(auth, method, args...)
		if err != nil && isDecodeError(err) {
			// Bypass client-side encoding/decoding entirely.
			g.log.Warn().Err(err).Str("op", op).Msg("typed submit failed to decode, falling back to raw transaction")
			return g.rawSubmit(ctx, client, target, data, gasLimit)
		}
		return tx, err
	}

	res, err := g.exec.ExecuteWrite(ctx, op, target, submit, verify)
	if err != nil {
		return nil, err
	}
	g.log.Info().Str("op", op).Str("tx_hash", res.TxHash).Bool("recovered", res.Recovered).Msg("chain write confirmed")
	return res, nil
}

// gasLimitFor estimates gas, falling back to the configured tiers when
// estimation fails or a previous attempt hit a gas error.
func (g *Gateway) gasLimitFor(ctx context.Context, client *ethclient.Client, to common.Address, data []byte, attempt int) uint64 {
	if attempt == 0 {
		estimated, err := client.EstimateGas(ctx, ethereum.CallMsg{
			From: g.signer.addr,
			To:   &to,
			Data: data,
		})
		if err == nil {
			// Headroom over the estimate; estimation is often optimistic
			// for storage-heavy staking writes.
			return estimated + estimated/5
		}
		g.log.Warn().Err(err).Msg("gas estimation failed, using fallback tier")
	}
	tier := attempt
	if tier >= len(g.gasTiers) {
		tier = len(g.gasTiers) - 1
	}
	return g.gasTiers[tier]
}

// rawSubmit signs and sends a raw dynamic-fee transaction.
func (g *Gateway) rawSubmit(ctx context.Context, client *ethclient.Client, to common.Address, data []byte, gasLimit uint64) (*types.Transaction, error) {
	nonce, err := client.PendingNonceAt(ctx, g.signer.addr)
	if err != nil {
		return nil, fmt.Errorf("raw submit: nonce: %w", err)
	}
	tip, err := client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("raw submit: tip cap: %w", err)
	}
	head, err := client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("raw submit: head: %w", err)
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   g.signer.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		To:        &to,
		Value:     big.NewInt(0),
		Data:      data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(g.signer.chainID), g.signer.key)
	if err != nil {
		return nil, fmt.Errorf("raw submit: sign: %w", err)
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("raw submit: send: %w", err)
	}
	return signed, nil
}

func toBigInts(ids []uint64) []*big.Int {
	out := make([]*big.Int, len(ids))
	for i, id := range ids {
		out[i] = new(big.Int).SetUint64(id)
	}
	return out
}

func containsAll(haystack, needles []uint64) bool {
	set := make(map[uint64]struct{}, len(haystack))
	for _, h := range haystack {
		set[h] = struct{}{}
	}
	for _, n := range needles {
		if _, ok := set[n]; !ok {
			return false
		}
	}
	return true
}

func containsNone(haystack, needles []uint64) bool {
	set := make(map[uint64]struct{}, len(haystack))
	for _, h := range haystack {
		set[h] = struct{}{}
	}
	for _, n := range needles {
		if _, ok := set[n]; ok {
			return false
		}
	}
	return true
}
