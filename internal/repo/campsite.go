package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/creekriver/backend/internal/domain"
)

// CampsiteRepo defines the persistence operations for Campsites.
type CampsiteRepo interface {
	// Create inserts a new campsite and returns the persisted record.
	// Returns domain.ErrConstraint if the referenced campsite type does not exist.
	Create(ctx context.Context, c domain.Campsite) (domain.Campsite, error)

	// GetByID retrieves a single campsite with its CampsiteType populated.
	// Returns domain.ErrNotFound if no campsite with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Campsite, error)

	// ListPaged returns one page of campsites ordered by nickname, plus the
	// total count for pagination metadata.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Campsite, int64, error)

	// Update overwrites the mutable fields (nickname, type, image) of an
	// existing campsite and returns the updated record with its type populated.
	// Returns domain.ErrNotFound if the campsite does not exist and
	// domain.ErrConstraint if the new type reference does not resolve.
	Update(ctx context.Context, c domain.Campsite) (domain.Campsite, error)

	// Delete removes a campsite by ID. The schema cascades the delete to all
	// reservations on the campsite in the same transaction.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgCampsiteRepo is the Postgres implementation of CampsiteRepo.
type pgCampsiteRepo struct {
	db db
}

// NewCampsiteRepo constructs a CampsiteRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCampsiteRepo(db db) CampsiteRepo {
	return &pgCampsiteRepo{db: db}
}

func (r *pgCampsiteRepo) Create(ctx context.Context, c domain.Campsite) (domain.Campsite, error) {
	const q = `
		INSERT INTO campsites (campsite_type_id, nickname, image_url)
		VALUES (@campsite_type_id, @nickname, @image_url)
		RETURNING id, campsite_type_id, nickname, image_url, created_at, updated_at`

	args := pgx.NamedArgs{
		"campsite_type_id": c.CampsiteTypeID,
		"nickname":         c.Nickname,
		"image_url":        c.ImageURL,
	}

	result, err := scanCampsite(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Campsite{}, fmt.Errorf("repo.CampsiteRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

// GetByID joins campsite_types so a single read returns the campsite together
// with its type, the shape the reservation validator and the detail endpoint
// both need.
func (r *pgCampsiteRepo) GetByID(ctx context.Context, id int64) (domain.Campsite, error) {
	const q = `
		SELECT c.id, c.campsite_type_id, c.nickname, c.image_url, c.created_at, c.updated_at,
		       ct.id, ct.name, ct.fee_per_night::text, ct.max_reservation_days, ct.created_at
		FROM campsites c
		JOIN campsite_types ct ON ct.id = c.campsite_type_id
		WHERE c.id = @id`

	result, err := scanCampsiteWithType(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Campsite{}, fmt.Errorf("repo.CampsiteRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgCampsiteRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Campsite, int64, error) {
	const q = `
		SELECT id, campsite_type_id, nickname, image_url, created_at, updated_at,
		       count(*) OVER () AS total
		FROM campsites
		ORDER BY nickname
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CampsiteRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var (
		campsites []domain.Campsite
		total     int64
	)
	for rows.Next() {
		var c domain.Campsite
		err := rows.Scan(&c.ID, &c.CampsiteTypeID, &c.Nickname, &c.ImageURL,
			&c.CreatedAt, &c.UpdatedAt, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.CampsiteRepo.ListPaged: scan: %w", err)
		}
		campsites = append(campsites, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.CampsiteRepo.ListPaged: rows: %w", err)
	}

	return campsites, total, nil
}

func (r *pgCampsiteRepo) Update(ctx context.Context, c domain.Campsite) (domain.Campsite, error) {
	const q = `
		UPDATE campsites
		SET campsite_type_id = @campsite_type_id,
		    nickname         = @nickname,
		    image_url        = @image_url,
		    updated_at       = now()
		WHERE id = @id
		RETURNING id, campsite_type_id, nickname, image_url, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":               c.ID,
		"campsite_type_id": c.CampsiteTypeID,
		"nickname":         c.Nickname,
		"image_url":        c.ImageURL,
	}

	result, err := scanCampsite(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Campsite{}, fmt.Errorf("repo.CampsiteRepo.Update: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgCampsiteRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM campsites WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.CampsiteRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CampsiteRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanCampsite maps a bare campsites row into a domain.Campsite.
func scanCampsite(s scanner) (domain.Campsite, error) {
	var c domain.Campsite
	err := s.Scan(&c.ID, &c.CampsiteTypeID, &c.Nickname, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Campsite{}, domain.ErrNotFound
		}
		return domain.Campsite{}, err
	}
	return c, nil
}

// scanCampsiteWithType maps a campsites row joined to campsite_types.
func scanCampsiteWithType(s scanner) (domain.Campsite, error) {
	var (
		c   domain.Campsite
		ct  domain.CampsiteType
		fee string
	)

	err := s.Scan(&c.ID, &c.CampsiteTypeID, &c.Nickname, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt,
		&ct.ID, &ct.Name, &fee, &ct.MaxReservationDays, &ct.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Campsite{}, domain.ErrNotFound
		}
		return domain.Campsite{}, err
	}

	if ct.FeePerNight, err = domain.ParseMoney(fee); err != nil {
		return domain.Campsite{}, err
	}
	c.Type = &ct
	return c, nil
}
