package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// minKDFIterations is the floor for the PBKDF2 work factor on wallet secrets.
const minKDFIterations = 100_000

// ErrMissingMasterSecret is returned by Validate when no encryption master
// secret is configured. The process must not start without one.
var ErrMissingMasterSecret = errors.New("encryption.master_secret is not set")

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Encryption EncryptionConfig `mapstructure:"encryption"`
	Rates      RatesConfig      `mapstructure:"rates"`
	Chains     ChainsConfig     `mapstructure:"chains"`
	Checker    CheckerConfig    `mapstructure:"checker"`
	Notify     NotifyConfig     `mapstructure:"notify"`
	Log        LogConfig        `mapstructure:"log"`
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

// JWTConfig configures operator tokens for the admin API.
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// EncryptionConfig holds the process-wide secret protecting wallet material.
type EncryptionConfig struct {
	MasterSecret  string `mapstructure:"master_secret"`
	KDFIterations int    `mapstructure:"kdf_iterations"`
}

type RatesConfig struct {
	ProviderURL string        `mapstructure:"provider_url"`
	APIKey      string        `mapstructure:"api_key"`
	TTL         time.Duration `mapstructure:"ttl"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type ChainsConfig struct {
	Bitcoin        BitcoinConfig  `mapstructure:"bitcoin"`
	Ethereum       EthereumConfig `mapstructure:"ethereum"`
	RequestTimeout time.Duration  `mapstructure:"request_timeout"`
	MaxRetries     uint64         `mapstructure:"max_retries"`
}

// MinConfirmationsFor returns the confirmation threshold for a currency.
// ETH and configured ERC-20 tokens share the ethereum threshold.
func (c ChainsConfig) MinConfirmationsFor(currency string) int {
	if strings.EqualFold(currency, "BTC") {
		return c.Bitcoin.MinConfirmations
	}
	return c.Ethereum.MinConfirmations
}

type BitcoinConfig struct {
	ExplorerURL        string `mapstructure:"explorer_url"`
	TestnetExplorerURL string `mapstructure:"testnet_explorer_url"`
	MinConfirmations   int    `mapstructure:"min_confirmations"`
}

type EthereumConfig struct {
	ExplorerURL        string                 `mapstructure:"explorer_url"`
	TestnetExplorerURL string                 `mapstructure:"testnet_explorer_url"`
	APIKey             string                 `mapstructure:"api_key"`
	MinConfirmations   int                    `mapstructure:"min_confirmations"`
	Tokens             map[string]TokenConfig `mapstructure:"tokens"`
}

// TokenConfig describes an ERC-20 asset settled on the Ethereum family.
type TokenConfig struct {
	Contract string `mapstructure:"contract"`
	Decimals int32  `mapstructure:"decimals"`
}

type CheckerConfig struct {
	Schedule         string        `mapstructure:"schedule"` // cron spec, e.g. "@every 1m"
	Concurrency      int           `mapstructure:"concurrency"`
	OverpayTolerance string        `mapstructure:"overpay_tolerance"` // decimal fraction, "0.01" = 1%
	LockTTL          time.Duration `mapstructure:"lock_ttl"`
	BatchSize        int           `mapstructure:"batch_size"` // invoices per sweep, least recently checked first
}

// NotifyConfig configures the settlement webhook. Empty URL disables it.
type NotifyConfig struct {
	WebhookURL string        `mapstructure:"webhook_url"`
	Secret     string        `mapstructure:"secret"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SETTLE_.
// Nested keys use underscore: SETTLE_DATABASE_HOST, SETTLE_ENCRYPTION_MASTER_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "settlement")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "hdwallet-settlement")
	v.SetDefault("encryption.master_secret", "")
	v.SetDefault("encryption.kdf_iterations", minKDFIterations)
	v.SetDefault("rates.provider_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("rates.api_key", "")
	v.SetDefault("rates.ttl", "5m")
	v.SetDefault("rates.timeout", "10s")
	v.SetDefault("chains.bitcoin.explorer_url", "https://blockstream.info/api")
	v.SetDefault("chains.bitcoin.testnet_explorer_url", "https://blockstream.info/testnet/api")
	v.SetDefault("chains.bitcoin.min_confirmations", 3)
	v.SetDefault("chains.ethereum.explorer_url", "https://api.etherscan.io/api")
	v.SetDefault("chains.ethereum.testnet_explorer_url", "https://api-sepolia.etherscan.io/api")
	v.SetDefault("chains.ethereum.api_key", "")
	v.SetDefault("chains.ethereum.min_confirmations", 12)
	v.SetDefault("chains.request_timeout", "15s")
	v.SetDefault("chains.max_retries", 3)
	v.SetDefault("checker.schedule", "@every 1m")
	v.SetDefault("checker.concurrency", 8)
	v.SetDefault("checker.overpay_tolerance", "0.01")
	v.SetDefault("checker.lock_ttl", "5m")
	v.SetDefault("checker.batch_size", 500)
	v.SetDefault("notify.webhook_url", "")
	v.SetDefault("notify.secret", "")
	v.SetDefault("notify.timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// SETTLE_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SETTLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required: env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks settings the process cannot run without.
func (c *Config) Validate() error {
	if c.Encryption.MasterSecret == "" {
		return ErrMissingMasterSecret
	}
	if c.Encryption.KDFIterations < minKDFIterations {
		return fmt.Errorf("encryption.kdf_iterations must be >= %d, got %d", minKDFIterations, c.Encryption.KDFIterations)
	}
	if c.Checker.Concurrency < 1 {
		return fmt.Errorf("checker.concurrency must be positive, got %d", c.Checker.Concurrency)
	}
	if c.Checker.BatchSize < 1 {
		return fmt.Errorf("checker.batch_size must be positive, got %d", c.Checker.BatchSize)
	}
	if c.Chains.Bitcoin.MinConfirmations < 0 || c.Chains.Ethereum.MinConfirmations < 0 {
		return errors.New("chains.*.min_confirmations must not be negative")
	}
	return nil
}
