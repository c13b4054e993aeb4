package postgres

import (
	"context"
	"errors"
	"fmt"

	"hdwallet-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// EntitlementRepo implements ports.EntitlementStore over the donations,
// ranks, rank_grants and user_donation_totals tables.
type EntitlementRepo struct {
	pool Pool
}

// NewEntitlementRepo creates a new EntitlementRepo.
func NewEntitlementRepo(pool Pool) *EntitlementRepo {
	return &EntitlementRepo{pool: pool}
}

// CreateDonation inserts the donation for a settled invoice. A second
// donation for the same invoice yields domain.ErrSettlementConflict.
func (r *EntitlementRepo) CreateDonation(ctx context.Context, tx pgx.Tx, d *domain.Donation) error {
	query := `INSERT INTO donations (id, user_id, invoice_id, amount, currency, method, rank_id, days, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		d.ID, d.UserID, d.InvoiceID, d.Amount, d.Currency, d.Method, d.RankID, d.Days, d.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSettlementConflict
		}
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// GetRank fetches a rank by id.
func (r *EntitlementRepo) GetRank(ctx context.Context, rankID string) (*domain.Rank, error) {
	query := `SELECT id, name, duration_days FROM ranks WHERE id = $1`

	rank := &domain.Rank{}
	err := r.pool.QueryRow(ctx, query, rankID).Scan(&rank.ID, &rank.Name, &rank.DurationDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rank: %w", err)
	}
	return rank, nil
}

// GetRankGrant fetches and locks a user's grant for a rank.
func (r *EntitlementRepo) GetRankGrant(ctx context.Context, tx pgx.Tx, userID, rankID string) (*domain.RankGrant, error) {
	query := `SELECT user_id, rank_id, expires_at FROM rank_grants WHERE user_id = $1 AND rank_id = $2 FOR UPDATE`

	g := &domain.RankGrant{}
	err := tx.QueryRow(ctx, query, userID, rankID).Scan(&g.UserID, &g.RankID, &g.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rank grant: %w", err)
	}
	return g, nil
}

// GrantRank upserts the grant's expiry.
func (r *EntitlementRepo) GrantRank(ctx context.Context, tx pgx.Tx, g domain.RankGrant) error {
	query := `INSERT INTO rank_grants (user_id, rank_id, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, rank_id) DO UPDATE SET expires_at = EXCLUDED.expires_at`

	if _, err := tx.Exec(ctx, query, g.UserID, g.RankID, g.ExpiresAt); err != nil {
		return fmt.Errorf("grant rank: %w", err)
	}
	return nil
}

// AddLifetimeDonation adds amount to the user's running total.
func (r *EntitlementRepo) AddLifetimeDonation(ctx context.Context, tx pgx.Tx, userID string, amount decimal.Decimal) error {
	query := `INSERT INTO user_donation_totals (user_id, lifetime_amount, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET lifetime_amount = user_donation_totals.lifetime_amount + EXCLUDED.lifetime_amount, updated_at = NOW()`

	if _, err := tx.Exec(ctx, query, userID, amount); err != nil {
		return fmt.Errorf("add lifetime donation: %w", err)
	}
	return nil
}
