package domain

import (
	"time"

	"github.com/google/uuid"
)

// Network selects the chain parameters a wallet derives addresses for.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// Valid reports whether n is a known network.
func (n Network) Valid() bool {
	return n == NetworkMainnet || n == NetworkTestnet
}

// Wallet is one HD root per (currency, network).
// Only the account-level extended public key is stored in the clear; the
// mnemonic and private keys live in EncryptedBundle.
type Wallet struct {
	ID                    uuid.UUID `json:"id"`
	Currency              string    `json:"currency"`
	Network               Network   `json:"network"`
	Label                 string    `json:"label"`
	EncryptedBundle       string    `json:"-"` // SecretBundle, encrypted under master secret + wallet password
	EncryptedPasswordHash string    `json:"-"` // Argon2id hash, encrypted under master secret
	AccountXPub           string    `json:"account_xpub"`
	DerivationPath        string    `json:"derivation_path"` // account path, e.g. m/84'/0'/0'
	NextDerivationIndex   uint32    `json:"next_derivation_index"`
	MinConfirmations      int       `json:"min_confirmations"`
	IsActive              bool      `json:"is_active"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// AddressPath returns the full derivation path of the external-chain address at index.
func (w *Wallet) AddressPath(index uint32) string {
	return AddressPath(w.DerivationPath, index)
}

// SecretBundle is the plaintext wallet material. It only ever exists in
// memory for the duration of a password-gated operation.
type SecretBundle struct {
	Mnemonic     string `json:"mnemonic"`
	MasterXPrv   string `json:"master_xprv"`
	AccountXPrv  string `json:"account_xprv"`
	AccountXPub  string `json:"account_xpub"`
	AccountPath  string `json:"account_path"`
	Currency     string `json:"currency"`
	Network      string `json:"network"`
	CreatedAtUTC int64  `json:"created_at"`
}

// Wipe clears the secret fields in place.
func (b *SecretBundle) Wipe() {
	b.Mnemonic = ""
	b.MasterXPrv = ""
	b.AccountXPrv = ""
}
