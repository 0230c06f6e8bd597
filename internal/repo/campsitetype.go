package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/creekriver/backend/internal/domain"
)

// CampsiteTypeRepo defines the persistence operations for CampsiteTypes.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type CampsiteTypeRepo interface {
	// Create inserts a new campsite type and returns the persisted record
	// (with DB-generated id and created_at populated).
	// Returns domain.ErrConstraint if the name is already taken.
	Create(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error)

	// GetByID retrieves a single campsite type by primary key.
	// Returns domain.ErrNotFound if no type with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.CampsiteType, error)

	// List returns all campsite types ordered by name.
	List(ctx context.Context) ([]domain.CampsiteType, error)

	// Update overwrites the mutable fields of an existing type and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error)
}

// pgCampsiteTypeRepo is the Postgres implementation of CampsiteTypeRepo.
type pgCampsiteTypeRepo struct {
	db db
}

// NewCampsiteTypeRepo constructs a CampsiteTypeRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewCampsiteTypeRepo(db db) CampsiteTypeRepo {
	return &pgCampsiteTypeRepo{db: db}
}

func (r *pgCampsiteTypeRepo) Create(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error) {
	const q = `
		INSERT INTO campsite_types (name, fee_per_night, max_reservation_days)
		VALUES (@name, @fee_per_night::numeric, @max_reservation_days)
		RETURNING id, name, fee_per_night::text, max_reservation_days, created_at`

	args := pgx.NamedArgs{
		"name":                 ct.Name,
		"fee_per_night":        ct.FeePerNight.String(),
		"max_reservation_days": ct.MaxReservationDays,
	}

	result, err := scanCampsiteType(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.CampsiteType{}, fmt.Errorf("repo.CampsiteTypeRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgCampsiteTypeRepo) GetByID(ctx context.Context, id int64) (domain.CampsiteType, error) {
	const q = `
		SELECT id, name, fee_per_night::text, max_reservation_days, created_at
		FROM campsite_types
		WHERE id = @id`

	result, err := scanCampsiteType(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.CampsiteType{}, fmt.Errorf("repo.CampsiteTypeRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgCampsiteTypeRepo) List(ctx context.Context) ([]domain.CampsiteType, error) {
	const q = `
		SELECT id, name, fee_per_night::text, max_reservation_days, created_at
		FROM campsite_types
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CampsiteTypeRepo.List: %w", err)
	}
	defer rows.Close()

	var types []domain.CampsiteType
	for rows.Next() {
		ct, err := scanCampsiteType(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CampsiteTypeRepo.List: scan: %w", err)
		}
		types = append(types, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CampsiteTypeRepo.List: rows: %w", err)
	}

	return types, nil
}

func (r *pgCampsiteTypeRepo) Update(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error) {
	const q = `
		UPDATE campsite_types
		SET name                 = @name,
		    fee_per_night        = @fee_per_night::numeric,
		    max_reservation_days = @max_reservation_days
		WHERE id = @id
		RETURNING id, name, fee_per_night::text, max_reservation_days, created_at`

	args := pgx.NamedArgs{
		"id":                   ct.ID,
		"name":                 ct.Name,
		"fee_per_night":        ct.FeePerNight.String(),
		"max_reservation_days": ct.MaxReservationDays,
	}

	result, err := scanCampsiteType(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.CampsiteType{}, fmt.Errorf("repo.CampsiteTypeRepo.Update: %w", mapPgError(err))
	}
	return result, nil
}

// scanCampsiteType maps a single database row into a domain.CampsiteType.
// fee_per_night arrives as its NUMERIC(10,2) text form and is parsed into the
// fixed-point Money type.
func scanCampsiteType(s scanner) (domain.CampsiteType, error) {
	var (
		ct  domain.CampsiteType
		fee string
	)

	err := s.Scan(&ct.ID, &ct.Name, &fee, &ct.MaxReservationDays, &ct.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CampsiteType{}, domain.ErrNotFound
		}
		return domain.CampsiteType{}, err
	}

	if ct.FeePerNight, err = domain.ParseMoney(fee); err != nil {
		return domain.CampsiteType{}, err
	}
	return ct, nil
}
