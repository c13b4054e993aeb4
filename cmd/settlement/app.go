package main

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"hdwallet-settlement/config"
	"hdwallet-settlement/internal/adapter/explorer"
	"hdwallet-settlement/internal/adapter/oracle"
	pgStorage "hdwallet-settlement/internal/adapter/storage/postgres"
	redisStorage "hdwallet-settlement/internal/adapter/storage/redis"
	"hdwallet-settlement/internal/chain"
	"hdwallet-settlement/internal/chain/bitcoin"
	"hdwallet-settlement/internal/chain/ethereum"
	"hdwallet-settlement/internal/core/ports"
	"hdwallet-settlement/internal/metrics"
	"hdwallet-settlement/internal/service"
	"hdwallet-settlement/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// app holds the wired process. Commands build only what they need:
// migrate stops after the pool, everything else calls wire.
type app struct {
	cfg  *config.Config
	log  zerolog.Logger
	pool *pgxpool.Pool
	rdb  *goredis.Client

	families *chain.Registry
	metrics  *metrics.Collector
	tokenSvc ports.TokenService
	wallets  *service.WalletManagerImpl
	invoices *service.InvoiceServiceImpl
	checker  *service.TransactionCheckerImpl
	health   []ports.HealthChecker
}

// loadConfig reads and validates configuration and builds the logger.
func loadConfig(path string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("invalid config: %w", err)
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Pretty), nil
}

// openDatabase connects the PostgreSQL pool only.
func openDatabase(ctx context.Context, cfgPath string) (*app, error) {
	cfg, log, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &app{cfg: cfg, log: log, pool: pool}, nil
}

// newApp connects every backing store and wires all services.
func newApp(ctx context.Context, cfgPath string) (*app, error) {
	a, err := openDatabase(ctx, cfgPath)
	if err != nil {
		return nil, err
	}
	if err := a.wire(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) wire(ctx context.Context) error {
	cfg := a.cfg

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, a.log)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	a.rdb = rdb

	tolerance, err := parseTolerance(cfg.Checker.OverpayTolerance)
	if err != nil {
		return err
	}

	a.families = buildRegistry(cfg.Chains)
	a.log.Info().Strs("currencies", sortedCurrencies(a.families)).Msg("chain families registered")

	resolver, err := explorer.NewResolver(cfg.Chains, a.families, nil)
	if err != nil {
		return fmt.Errorf("build explorer clients: %w", err)
	}

	// Repositories
	walletRepo := pgStorage.NewWalletRepo(a.pool)
	invoiceRepo := pgStorage.NewInvoiceRepo(a.pool)
	chainTxRepo := pgStorage.NewChainTransactionRepo(a.pool)
	entitlements := pgStorage.NewEntitlementRepo(a.pool)
	auditRepo := pgStorage.NewAuditRepo(a.pool)
	transactor := pgStorage.NewTransactor(a.pool)

	// Infrastructure services
	encSvc, err := service.NewAESEncryptionService(cfg.Encryption.MasterSecret, cfg.Encryption.KDFIterations)
	if err != nil {
		return fmt.Errorf("init encryption: %w", err)
	}
	hashSvc := service.NewArgon2HashService()
	a.tokenSvc = service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(auditRepo, a.log)

	priceOracle := oracle.NewCoinGecko(cfg.Rates.ProviderURL, cfg.Rates.APIKey,
		&http.Client{Timeout: cfg.Rates.Timeout}, cfg.Chains.MaxRetries)
	rates := service.NewExchangeRateService(redisStorage.NewRateCache(rdb), priceOracle, cfg.Rates.TTL, a.log)

	notifier := service.NewWebhookNotifier(cfg.Notify.WebhookURL, cfg.Notify.Secret,
		&http.Client{Timeout: cfg.Notify.Timeout}, a.log)

	a.metrics = metrics.New()

	// Business services
	a.wallets = service.NewWalletManager(walletRepo, invoiceRepo, transactor, encSvc, hashSvc,
		a.families, auditSvc, cfg.Chains.MinConfirmationsFor, a.log)
	a.invoices = service.NewInvoiceService(invoiceRepo, chainTxRepo, walletRepo, entitlements,
		a.wallets, rates, a.families, service.NewPNGQRRenderer(), auditSvc, a.log)
	a.checker = service.NewTransactionChecker(invoiceRepo, chainTxRepo, walletRepo, entitlements,
		transactor, resolver, rates, redisStorage.NewSweepLock(rdb), notifier, auditSvc, a.metrics,
		service.CheckerOptions{
			OverpayTolerance: tolerance,
			Concurrency:      cfg.Checker.Concurrency,
			RequestTimeout:   cfg.Chains.RequestTimeout,
			LockTTL:          cfg.Checker.LockTTL,
			BatchLimit:       cfg.Checker.BatchSize,
		}, a.log)

	a.health = []ports.HealthChecker{
		pgStorage.NewHealthCheck(a.pool),
		redisStorage.NewHealthCheck(rdb),
	}
	return nil
}

// Close releases the backing stores.
func (a *app) Close() {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Warn().Err(err).Msg("closing redis")
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

// buildRegistry registers BTC, ETH and every configured ERC-20 token.
func buildRegistry(cfg config.ChainsConfig) *chain.Registry {
	families := []chain.Family{bitcoin.New(), ethereum.New()}
	for symbol, token := range cfg.Ethereum.Tokens {
		families = append(families, ethereum.NewToken(strings.ToUpper(symbol), token.Decimals))
	}
	return chain.NewRegistry(families...)
}

func sortedCurrencies(r *chain.Registry) []string {
	out := r.Currencies()
	sort.Strings(out)
	return out
}

// parseTolerance reads the overpay tolerance as a fraction in [0, 1).
func parseTolerance(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.NewFromFloat(-1), nil // checker falls back to its default
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("checker.overpay_tolerance: %w", err)
	}
	if d.Sign() < 0 || d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("checker.overpay_tolerance must be in [0, 1), got %s", d)
	}
	return d, nil
}
