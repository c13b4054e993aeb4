package domain

import "fmt"

// ExternalChain is the BIP44 change level used for receiving addresses.
const ExternalChain = 0

// MaxDerivationIndex bounds receiving-address indexes to the non-hardened
// range; index MaxDerivationIndex and above cannot be derived from an xpub.
const MaxDerivationIndex = 1 << 31

// AccountPath formats a hardened BIP44-style account path.
func AccountPath(purpose, coinType, account uint32) string {
	return fmt.Sprintf("m/%d'/%d'/%d'", purpose, coinType, account)
}

// AddressPath appends the external chain and index to an account path.
func AddressPath(accountPath string, index uint32) string {
	return fmt.Sprintf("%s/%d/%d", accountPath, ExternalChain, index)
}
