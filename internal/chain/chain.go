// Package chain defines the asset-family capability the wallet manager is
// polymorphic over, plus the shared BIP32 derivation helpers.
package chain

import (
	"fmt"
	"strings"

	"hdwallet-settlement/internal/core/domain"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/shopspring/decimal"
)

// Family is one derivation and address scheme. Adding an asset means adding
// a Family, not branching inside the wallet manager.
type Family interface {
	Currency() string
	Decimals() int32
	AccountPath(network domain.Network) string
	DeriveAccount(seed []byte, network domain.Network) (*Account, error)
	DeriveAddress(accountXPub string, index uint32) (string, error)
	ValidateAddress(address string, network domain.Network) bool
	// ParseAmount converts a base-unit integer string (satoshi, wei, token
	// minor units) into asset units.
	ParseAmount(baseUnits string) (decimal.Decimal, error)
	FormatAmount(amount decimal.Decimal) string
}

// Account is the key material of one BIP44-style account.
type Account struct {
	MasterXPrv  string
	AccountXPrv string
	AccountXPub string
	Path        string
}

// DeriveAccount walks m/purpose'/coin'/0' from seed.
func DeriveAccount(seed []byte, net *chaincfg.Params, purpose, coin uint32) (*Account, error) {
	master, err := hdkeychain.NewMaster(seed, net)
	if err != nil {
		return nil, fmt.Errorf("creating master key: %w", err)
	}

	key := master
	for _, level := range []uint32{purpose, coin, 0} {
		key, err = key.Derive(hdkeychain.HardenedKeyStart + level)
		if err != nil {
			return nil, fmt.Errorf("deriving hardened child %d: %w", level, err)
		}
	}

	pub, err := key.Neuter()
	if err != nil {
		return nil, fmt.Errorf("neutering account key: %w", err)
	}

	return &Account{
		MasterXPrv:  master.String(),
		AccountXPrv: key.String(),
		AccountXPub: pub.String(),
		Path:        domain.AccountPath(purpose, coin, 0),
	}, nil
}

// DeriveExternal returns the external-chain child at index of an account key.
// Works on both public and private account keys.
func DeriveExternal(account *hdkeychain.ExtendedKey, index uint32) (*hdkeychain.ExtendedKey, error) {
	if index >= hdkeychain.HardenedKeyStart {
		return nil, fmt.Errorf("derivation index %d out of range", index)
	}
	external, err := account.Derive(domain.ExternalChain)
	if err != nil {
		return nil, fmt.Errorf("deriving external chain: %w", err)
	}
	child, err := external.Derive(index)
	if err != nil {
		return nil, fmt.Errorf("deriving index %d: %w", index, err)
	}
	return child, nil
}

// ParseXPub decodes an account extended public key.
func ParseXPub(xpub string) (*hdkeychain.ExtendedKey, error) {
	key, err := hdkeychain.NewKeyFromString(xpub)
	if err != nil {
		return nil, fmt.Errorf("parsing extended key: %w", err)
	}
	if key.IsPrivate() {
		return nil, fmt.Errorf("expected a public extended key")
	}
	return key, nil
}

// ParseBaseUnits parses an integer amount in minor units and shifts it by decimals.
func ParseBaseUnits(baseUnits string, decimals int32) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(baseUnits))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", baseUnits, err)
	}
	if !d.Equal(d.Truncate(0)) || d.Sign() < 0 {
		return decimal.Zero, fmt.Errorf("amount %q is not a non-negative integer", baseUnits)
	}
	return d.Shift(-decimals), nil
}

// ErrUnsupported is returned for currencies with no registered family.
type ErrUnsupported struct {
	Currency string
}

func (e *ErrUnsupported) Error() string {
	return fmt.Sprintf("unsupported currency: %s", e.Currency)
}

// Registry selects a Family by currency code.
type Registry struct {
	families map[string]Family
}

// NewRegistry indexes families by their upper-case currency code.
func NewRegistry(families ...Family) *Registry {
	r := &Registry{families: make(map[string]Family, len(families))}
	for _, f := range families {
		r.families[strings.ToUpper(f.Currency())] = f
	}
	return r
}

// Get returns the family for currency or *ErrUnsupported.
func (r *Registry) Get(currency string) (Family, error) {
	f, ok := r.families[strings.ToUpper(currency)]
	if !ok {
		return nil, &ErrUnsupported{Currency: currency}
	}
	return f, nil
}

// Currencies lists the registered currency codes.
func (r *Registry) Currencies() []string {
	out := make([]string, 0, len(r.families))
	for c := range r.families {
		out = append(out, c)
	}
	return out
}
