package investment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eladgel/nof-ai/internal/domain"
)

// ErrNotFound indicates that nothing is stored for the requested profile.
var ErrNotFound = errors.New("investment data not found")

// Record is stored investment data with its profile key.
type Record struct {
	Profile   string                `json:"profile"`
	Data      domain.InvestmentData `json:"data"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// Repository defines persistent storage for investment data.
type Repository interface {
	Save(ctx context.Context, profile string, data domain.InvestmentData) error
	Load(ctx context.Context, profile string) (*Record, error)
	Clear(ctx context.Context, profile string) error
}

// PgRepository implements Repository with PostgreSQL.
type PgRepository struct {
	pool *pgxpool.Pool
}

// NewPgRepository creates a new PostgreSQL investment repository.
func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Save(ctx context.Context, profile string, data domain.InvestmentData) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO investment_data (profile, current_broker, domestic, foreign_amount, updated_at)
		 VALUES ($1, $2, $3::numeric, $4::numeric, NOW())
		 ON CONFLICT (profile)
		 DO UPDATE SET current_broker = $2, domestic = $3::numeric, foreign_amount = $4::numeric, updated_at = NOW()`,
		profile, data.CurrentBroker, data.Domestic.String(), data.Foreign.String())
	if err != nil {
		return fmt.Errorf("saving investment data: %w", err)
	}
	return nil
}

func (r *PgRepository) Load(ctx context.Context, profile string) (*Record, error) {
	var (
		rec               Record
		domestic, foreign string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT profile, current_broker, domestic::text, foreign_amount::text, updated_at
		 FROM investment_data
		 WHERE profile = $1`, profile).Scan(&rec.Profile, &rec.Data.CurrentBroker, &domestic, &foreign, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading investment data: %w", err)
	}
	rec.Data.Domestic = domain.SafeParse(domestic)
	rec.Data.Foreign = domain.SafeParse(foreign)
	return &rec, nil
}

func (r *PgRepository) Clear(ctx context.Context, profile string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM investment_data WHERE profile = $1`, profile); err != nil {
		return fmt.Errorf("clearing investment data: %w", err)
	}
	return nil
}
