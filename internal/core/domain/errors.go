package domain

import "errors"

var (
	// ErrDuplicateTxHash signals a tx hash already credited to a different invoice.
	ErrDuplicateTxHash = errors.New("transaction hash already recorded")
	// ErrInvoiceTerminal signals an attempted mutation of a paid/overpaid/cancelled invoice.
	ErrInvoiceTerminal = errors.New("invoice is in a terminal state")
	// ErrSettlementConflict signals a donation already linked to the invoice.
	ErrSettlementConflict = errors.New("invoice already settled")
	// ErrWalletNotFound signals a missing or inactive wallet.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrDerivationExhausted signals a wallet whose non-hardened index range is used up.
	ErrDerivationExhausted = errors.New("wallet derivation index range exhausted")
	// ErrRankNotFound signals an invoice referencing an unknown rank.
	ErrRankNotFound = errors.New("rank not found")
)
