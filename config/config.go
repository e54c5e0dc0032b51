package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Rewards  RewardsConfig  `mapstructure:"rewards"`
	Burn     BurnConfig     `mapstructure:"burn"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ChainConfig describes the RPC endpoints, contracts and write policy.
type ChainConfig struct {
	RPCEndpoints    []string      `mapstructure:"rpc_endpoints"`
	ChainID         int64         `mapstructure:"chain_id"`
	NFTContract     string        `mapstructure:"nft_contract"`
	StakingContract string        `mapstructure:"staking_contract"`
	BurnAddress     string        `mapstructure:"burn_address"`
	CustodyAddress  string        `mapstructure:"custody_address"` // holds pre-minted claimable tokens
	OperatorKey     string        `mapstructure:"operator_key"`    // hex private key of the custodial signer
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`    // aggregate across fallback endpoints
	ReceiptTimeout  time.Duration `mapstructure:"receipt_timeout"`
	ReadRetries     int           `mapstructure:"read_retries"` // per endpoint
	WriteRetries    int           `mapstructure:"write_retries"`
	GasTiers        []uint64      `mapstructure:"gas_tiers"` // fallback gas limits when estimation fails
	RecoveryBlocks  int           `mapstructure:"recovery_blocks"`
	ApprovalTTL     time.Duration `mapstructure:"approval_ttl"` // how long a confirmed approval is cached
}

// RewardsConfig maps rarity to the daily reward rate frozen into
// StakeRecords.
type RewardsConfig struct {
	DailyRates    map[string]float64 `mapstructure:"daily_rates"`
	DefaultRarity string             `mapstructure:"default_rarity"` // used when metadata is unresolvable
}

// BurnRuleConfig mirrors domain.BurnRule for configuration.
type BurnRuleConfig struct {
	MinRarity       string `mapstructure:"min_rarity"`
	RequiredAmount  int    `mapstructure:"required_amount"`
	ResultingRarity string `mapstructure:"resulting_rarity"`
}

type BurnConfig struct {
	Rules          []BurnRuleConfig `mapstructure:"rules"`
	IdempotencyTTL time.Duration    `mapstructure:"idempotency_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SLE_ (Staking Lifecycle Engine).
// Nested keys use underscore: SLE_DATABASE_HOST, SLE_CHAIN_NFT_CONTRACT, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "nft_lifecycle")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("chain.rpc_endpoints", []string{"http://localhost:8545"})
	v.SetDefault("chain.chain_id", 1)
	v.SetDefault("chain.burn_address", "0x000000000000000000000000000000000000dEaD")
	v.SetDefault("chain.read_timeout", "12s")
	v.SetDefault("chain.receipt_timeout", "45s")
	v.SetDefault("chain.read_retries", 2)
	v.SetDefault("chain.write_retries", 3)
	v.SetDefault("chain.gas_tiers", []uint64{300_000, 600_000, 1_200_000})
	v.SetDefault("chain.recovery_blocks", 5)
	v.SetDefault("chain.approval_ttl", "10m")
	v.SetDefault("rewards.default_rarity", "common")
	v.SetDefault("burn.idempotency_ttl", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SLE_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Viper cannot default nested slices/maps cleanly; fill them here.
	if len(cfg.Burn.Rules) == 0 {
		cfg.Burn.Rules = defaultBurnRules()
	}
	if len(cfg.Rewards.DailyRates) == 0 {
		cfg.Rewards.DailyRates = defaultDailyRates()
	}

	return &cfg, nil
}

func defaultBurnRules() []BurnRuleConfig {
	return []BurnRuleConfig{
		{MinRarity: "common", RequiredAmount: 3, ResultingRarity: "rare"},
		{MinRarity: "rare", RequiredAmount: 3, ResultingRarity: "legendary"},
		{MinRarity: "legendary", RequiredAmount: 3, ResultingRarity: "platinum"},
	}
}

func defaultDailyRates() map[string]float64 {
	return map[string]float64{
		"common":    1,
		"silver":    2,
		"gold":      4,
		"rare":      6,
		"legendary": 12,
		"platinum":  25,
	}
}
