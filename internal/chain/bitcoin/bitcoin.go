// Package bitcoin implements the UTXO family: BIP84 native SegWit
// (P2WPKH) receiving addresses.
package bitcoin

import (
	"fmt"

	"hdwallet-settlement/internal/chain"
	"hdwallet-settlement/internal/core/domain"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/shopspring/decimal"
)

const (
	Currency    = "BTC"
	Purpose     = 84
	CoinMainnet = 0
	CoinTestnet = 1
	Decimals    = 8
)

// Family derives bech32 P2WPKH addresses.
type Family struct{}

// New returns the bitcoin family.
func New() *Family {
	return &Family{}
}

func (f *Family) Currency() string { return Currency }
func (f *Family) Decimals() int32  { return Decimals }

// Params returns the chain parameters for network.
func Params(network domain.Network) *chaincfg.Params {
	if network == domain.NetworkTestnet {
		return &chaincfg.TestNet3Params
	}
	return &chaincfg.MainNetParams
}

func coinType(network domain.Network) uint32 {
	if network == domain.NetworkTestnet {
		return CoinTestnet
	}
	return CoinMainnet
}

func (f *Family) AccountPath(network domain.Network) string {
	return domain.AccountPath(Purpose, coinType(network), 0)
}

func (f *Family) DeriveAccount(seed []byte, network domain.Network) (*chain.Account, error) {
	return chain.DeriveAccount(seed, Params(network), Purpose, coinType(network))
}

// DeriveAddress derives m/84'/coin'/0'/0/index from the account xpub.
// The network is taken from the xpub version bytes.
func (f *Family) DeriveAddress(accountXPub string, index uint32) (string, error) {
	key, err := chain.ParseXPub(accountXPub)
	if err != nil {
		return "", err
	}
	net := &chaincfg.MainNetParams
	if !key.IsForNet(net) {
		net = &chaincfg.TestNet3Params
	}

	child, err := chain.DeriveExternal(key, index)
	if err != nil {
		return "", err
	}
	pub, err := child.ECPubKey()
	if err != nil {
		return "", fmt.Errorf("extracting public key: %w", err)
	}

	addr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), net)
	if err != nil {
		return "", fmt.Errorf("encoding p2wpkh address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

func (f *Family) ValidateAddress(address string, network domain.Network) bool {
	params := Params(network)
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return false
	}
	return addr.IsForNet(params)
}

// ParseAmount converts satoshis to BTC.
func (f *Family) ParseAmount(baseUnits string) (decimal.Decimal, error) {
	return chain.ParseBaseUnits(baseUnits, Decimals)
}

func (f *Family) FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(Decimals)
}
