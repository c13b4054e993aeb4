package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction tags a sensitive wallet or invoice operation.
type AuditAction string

const (
	AuditActionWalletCreated      AuditAction = "wallet_created"
	AuditActionWalletAccessed     AuditAction = "wallet_accessed"
	AuditActionWalletAccessDenied AuditAction = "wallet_access_denied"
	AuditActionAddressDerived     AuditAction = "address_derived"
	AuditActionPasswordChanged    AuditAction = "password_changed"
	AuditActionWalletDeleted      AuditAction = "wallet_deleted"
	AuditActionInvoiceCreated     AuditAction = "invoice_created"
	AuditActionInvoiceCancelled   AuditAction = "invoice_cancelled"
	AuditActionPaymentDetected    AuditAction = "payment_detected"
	AuditActionPaymentConfirmed   AuditAction = "payment_confirmed"
	AuditActionInvoiceSettled     AuditAction = "invoice_settled"
)

// AuditLog is an append-only record. It is never updated or deleted.
type AuditLog struct {
	ID        uuid.UUID   `json:"id"`
	WalletID  *uuid.UUID  `json:"wallet_id,omitempty"`
	InvoiceID *uuid.UUID  `json:"invoice_id,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	Action    AuditAction `json:"action"`
	Details   string      `json:"details,omitempty"` // JSON object
	Success   bool        `json:"success"`
	CreatedAt time.Time   `json:"created_at"`
}

// AuditEvent is the input to AuditService.Record.
type AuditEvent struct {
	WalletID  *uuid.UUID
	InvoiceID *uuid.UUID
	UserID    string
	Action    AuditAction
	Details   map[string]any
	Success   bool
}
