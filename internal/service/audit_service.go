package service

import (
	"context"
	"encoding/json"
	"time"

	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates the audit recorder.
// If repo is nil, audit entries are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record appends one audit entry. Persistence failures are logged and
// swallowed so auditing never blocks the audited operation.
func (s *auditService) Record(ctx context.Context, event domain.AuditEvent) {
	entry := &domain.AuditLog{
		ID:        uuid.New(),
		WalletID:  event.WalletID,
		InvoiceID: event.InvoiceID,
		UserID:    event.UserID,
		Action:    event.Action,
		Success:   event.Success,
		CreatedAt: time.Now().UTC(),
	}
	if len(event.Details) > 0 {
		if b, err := json.Marshal(event.Details); err == nil {
			entry.Details = string(b)
		} else {
			s.log.Warn().Err(err).Str("action", string(event.Action)).Msg("audit: unencodable details")
		}
	}

	ev := s.log.Info().
		Str("audit_id", entry.ID.String()).
		Str("action", string(entry.Action)).
		Bool("success", entry.Success)
	if entry.WalletID != nil {
		ev = ev.Str("wallet_id", entry.WalletID.String())
	}
	if entry.InvoiceID != nil {
		ev = ev.Str("invoice_id", entry.InvoiceID.String())
	}
	ev.Msg("audit")

	if s.repo == nil {
		return
	}
	// Audit must land even when the caller's context was cancelled.
	if err := s.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
	}
}
