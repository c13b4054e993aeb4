// Package ethereum implements the account family: BIP44 coin 60 keys with
// EIP-55 checksummed addresses. ERC-20 tokens share the derivation and
// differ only in currency code and decimals.
package ethereum

import (
	"encoding/hex"
	"fmt"
	"strings"

	"hdwallet-settlement/internal/chain"
	"hdwallet-settlement/internal/core/domain"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/sha3"
)

const (
	Currency = "ETH"
	Purpose  = 44
	CoinType = 60
	Decimals = 18
)

// Family derives EVM addresses for one asset.
type Family struct {
	currency string
	decimals int32
}

// New returns the native ether family.
func New() *Family {
	return &Family{currency: Currency, decimals: Decimals}
}

// NewToken returns a family for an ERC-20 token using the same keys as ether.
func NewToken(symbol string, decimals int32) *Family {
	return &Family{currency: strings.ToUpper(symbol), decimals: decimals}
}

func (f *Family) Currency() string { return f.currency }
func (f *Family) Decimals() int32  { return f.decimals }

// IsToken reports whether the family is an ERC-20 token.
func (f *Family) IsToken() bool { return f.currency != Currency }

func (f *Family) AccountPath(domain.Network) string {
	return domain.AccountPath(Purpose, CoinType, 0)
}

func (f *Family) DeriveAccount(seed []byte, network domain.Network) (*chain.Account, error) {
	params := &chaincfg.MainNetParams
	if network == domain.NetworkTestnet {
		params = &chaincfg.TestNet3Params
	}
	return chain.DeriveAccount(seed, params, Purpose, CoinType)
}

func (f *Family) DeriveAddress(accountXPub string, index uint32) (string, error) {
	key, err := chain.ParseXPub(accountXPub)
	if err != nil {
		return "", err
	}
	child, err := chain.DeriveExternal(key, index)
	if err != nil {
		return "", err
	}
	pub, err := child.ECPubKey()
	if err != nil {
		return "", fmt.Errorf("extracting public key: %w", err)
	}
	return PublicKeyToAddress(pub), nil
}

// PublicKeyToAddress returns the EIP-55 address of a secp256k1 key.
func PublicKeyToAddress(pub *btcec.PublicKey) string {
	h := keccak256(pub.SerializeUncompressed()[1:])
	return ToChecksumAddress(hex.EncodeToString(h[12:]))
}

// ToChecksumAddress applies EIP-55 mixed-case encoding to a hex address
// with or without the 0x prefix.
func ToChecksumAddress(address string) string {
	lower := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X"))
	hash := hex.EncodeToString(keccak256([]byte(lower)))

	out := make([]byte, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return "0x" + string(out)
}

// ValidateAddress accepts all-lower, all-upper or correctly checksummed addresses.
func (f *Family) ValidateAddress(address string, _ domain.Network) bool {
	if len(address) != 42 || !strings.HasPrefix(address, "0x") {
		return false
	}
	body := address[2:]
	if _, err := hex.DecodeString(body); err != nil {
		return false
	}
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return ToChecksumAddress(address) == address
}

// ParseAmount converts wei (or token minor units) to asset units.
func (f *Family) ParseAmount(baseUnits string) (decimal.Decimal, error) {
	return chain.ParseBaseUnits(baseUnits, f.decimals)
}

func (f *Family) FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(f.decimals)
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
