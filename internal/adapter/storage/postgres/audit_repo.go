package postgres

import (
	"context"
	"fmt"

	"hdwallet-settlement/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository. Rows are append-only.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create appends an audit entry.
func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	var details *string
	if entry.Details != "" {
		details = &entry.Details
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, wallet_id, invoice_id, user_id, action, details, success, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.WalletID, entry.InvoiceID, entry.UserID, string(entry.Action),
		details, entry.Success, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
