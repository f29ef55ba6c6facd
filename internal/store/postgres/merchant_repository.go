package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	"github.com/betsolutions/casino-sdk-go/internal/domain/merchant"
)

// MerchantRepository implements repositories.MerchantRepository on the
// merchants table.
type MerchantRepository struct {
	db *pgxpool.Pool
}

func NewMerchantRepository(db *pgxpool.Pool) *MerchantRepository {
	return &MerchantRepository{db: db}
}

// Save upserts m by id.
func (r *MerchantRepository) Save(ctx context.Context, m *merchant.Merchant) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO merchants (id, name, sealed_key, is_active, created_at, deactivated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    sealed_key = EXCLUDED.sealed_key,
		    is_active = EXCLUDED.is_active,
		    deactivated_at = EXCLUDED.deactivated_at`,
		m.ID, m.Name, m.SealedKey, m.IsActive, m.CreatedAt, m.DeactivatedAt)
	return err
}

// FindByID returns core.ErrNotFound when no row matches.
func (r *MerchantRepository) FindByID(ctx context.Context, id int64) (*merchant.Merchant, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, sealed_key, is_active, created_at, deactivated_at
		FROM merchants
		WHERE id = $1`, id)
	return scanMerchant(row)
}

func scanMerchant(row pgx.Row) (*merchant.Merchant, error) {
	var m merchant.Merchant
	err := row.Scan(&m.ID, &m.Name, &m.SealedKey, &m.IsActive, &m.CreatedAt, &m.DeactivatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
