package explorer

import (
	"fmt"
	"net/http"
	"strings"

	"hdwallet-settlement/config"
	"hdwallet-settlement/internal/chain"
	"hdwallet-settlement/internal/chain/bitcoin"
	"hdwallet-settlement/internal/chain/ethereum"
	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"
)

type clientKey struct {
	currency string
	network  domain.Network
}

// Resolver implements ports.BlockchainResolver. Clients are built once per
// currency and network from configuration.
type Resolver struct {
	clients map[clientKey]ports.BlockchainClient
}

// NewResolver wires explorer clients for every currency in registry.
// Currencies with no configured explorer are rejected by ClientFor.
func NewResolver(cfg config.ChainsConfig, registry *chain.Registry, httpClient HTTPClient) (*Resolver, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	r := &Resolver{clients: make(map[clientKey]ports.BlockchainClient)}

	for _, currency := range registry.Currencies() {
		family, err := registry.Get(currency)
		if err != nil {
			return nil, err
		}

		switch {
		case currency == bitcoin.Currency:
			r.add(currency, domain.NetworkMainnet, cfg.Bitcoin.ExplorerURL, func(u string) ports.BlockchainClient {
				return NewEsplora(u, family, httpClient, cfg.MaxRetries)
			})
			r.add(currency, domain.NetworkTestnet, cfg.Bitcoin.TestnetExplorerURL, func(u string) ports.BlockchainClient {
				return NewEsplora(u, family, httpClient, cfg.MaxRetries)
			})

		case currency == ethereum.Currency:
			for network, u := range ethereumURLs(cfg.Ethereum) {
				r.add(currency, network, u, func(u string) ports.BlockchainClient {
					return NewEtherscan(u, cfg.Ethereum.APIKey, family, httpClient, cfg.MaxRetries)
				})
			}

		default:
			token, ok := lookupToken(cfg.Ethereum.Tokens, currency)
			if !ok {
				continue
			}
			if token.Contract == "" {
				return nil, fmt.Errorf("token %s: contract address is not configured", currency)
			}
			for network, u := range ethereumURLs(cfg.Ethereum) {
				r.add(currency, network, u, func(u string) ports.BlockchainClient {
					return NewEtherscanToken(u, cfg.Ethereum.APIKey, token.Contract, family, httpClient, cfg.MaxRetries)
				})
			}
		}
	}
	return r, nil
}

func (r *Resolver) add(currency string, network domain.Network, baseURL string, build func(string) ports.BlockchainClient) {
	if baseURL == "" {
		return
	}
	r.clients[clientKey{currency: currency, network: network}] = build(baseURL)
}

// ClientFor returns the explorer for currency on network.
func (r *Resolver) ClientFor(currency string, network domain.Network) (ports.BlockchainClient, error) {
	c, ok := r.clients[clientKey{currency: strings.ToUpper(currency), network: network}]
	if !ok {
		return nil, fmt.Errorf("no explorer configured for %s on %s", currency, network)
	}
	return c, nil
}

func ethereumURLs(cfg config.EthereumConfig) map[domain.Network]string {
	return map[domain.Network]string{
		domain.NetworkMainnet: cfg.ExplorerURL,
		domain.NetworkTestnet: cfg.TestnetExplorerURL,
	}
}

// lookupToken matches case-insensitively; viper lower-cases map keys.
func lookupToken(tokens map[string]config.TokenConfig, currency string) (config.TokenConfig, bool) {
	for symbol, t := range tokens {
		if strings.EqualFold(symbol, currency) {
			return t, true
		}
	}
	return config.TokenConfig{}, false
}
