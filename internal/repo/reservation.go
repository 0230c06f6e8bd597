package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/creekriver/backend/internal/domain"
)

// ReservationRepo defines the persistence operations for Reservations.
// Reservations are immutable after creation, so there is no Update; a change
// of dates is a delete followed by a fresh, fully validated create.
type ReservationRepo interface {
	// Create inserts a new reservation and returns the persisted record (with
	// DB-generated id and confirmation code).
	// Returns domain.ErrOverlap if the campsite is already booked for an
	// overlapping range (the exclusion constraint fired), and
	// domain.ErrConstraint if the campsite or user profile does not exist.
	Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error)

	// GetByID retrieves a single reservation by primary key.
	// Returns domain.ErrNotFound if no reservation with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Reservation, error)

	// ListByCampsiteID returns all reservations on a campsite ordered by
	// checkin_date, the input the availability validator works over.
	ListByCampsiteID(ctx context.Context, campsiteID int64) ([]domain.Reservation, error)

	// ListWithRelations returns all reservations ordered by checkin_date with
	// the user profile, campsite, and campsite type eagerly populated.
	ListWithRelations(ctx context.Context) ([]domain.Reservation, error)

	// Delete removes a reservation by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgReservationRepo is the Postgres implementation of ReservationRepo.
type pgReservationRepo struct {
	db db
}

// NewReservationRepo constructs a ReservationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewReservationRepo(db db) ReservationRepo {
	return &pgReservationRepo{db: db}
}

func (r *pgReservationRepo) Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	const q = `
		INSERT INTO reservations (campsite_id, user_profile_id, checkin_date, checkout_date)
		VALUES (@campsite_id, @user_profile_id, @checkin_date, @checkout_date)
		RETURNING id, confirmation_code, campsite_id, user_profile_id,
		          checkin_date, checkout_date, created_at`

	args := pgx.NamedArgs{
		"campsite_id":     res.CampsiteID,
		"user_profile_id": res.UserProfileID,
		"checkin_date":    res.CheckinDate,
		"checkout_date":   res.CheckoutDate,
	}

	result, err := scanReservation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgReservationRepo) GetByID(ctx context.Context, id int64) (domain.Reservation, error) {
	const q = `
		SELECT id, confirmation_code, campsite_id, user_profile_id,
		       checkin_date, checkout_date, created_at
		FROM reservations
		WHERE id = @id`

	result, err := scanReservation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgReservationRepo) ListByCampsiteID(ctx context.Context, campsiteID int64) ([]domain.Reservation, error) {
	const q = `
		SELECT id, confirmation_code, campsite_id, user_profile_id,
		       checkin_date, checkout_date, created_at
		FROM reservations
		WHERE campsite_id = @campsite_id
		ORDER BY checkin_date`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"campsite_id": campsiteID})
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListByCampsiteID: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ReservationRepo.ListByCampsiteID: scan: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListByCampsiteID: rows: %w", err)
	}

	return reservations, nil
}

// ListWithRelations joins user_profiles, campsites, and campsite_types in one
// query so the listing endpoint never issues per-row lookups.
func (r *pgReservationRepo) ListWithRelations(ctx context.Context) ([]domain.Reservation, error) {
	const q = `
		SELECT res.id, res.confirmation_code, res.campsite_id, res.user_profile_id,
		       res.checkin_date, res.checkout_date, res.created_at,
		       up.id, up.first_name, up.last_name, up.email, up.created_at,
		       c.id, c.campsite_type_id, c.nickname, c.image_url, c.created_at, c.updated_at,
		       ct.id, ct.name, ct.fee_per_night::text, ct.max_reservation_days, ct.created_at
		FROM reservations res
		JOIN user_profiles up ON up.id = res.user_profile_id
		JOIN campsites c ON c.id = res.campsite_id
		JOIN campsite_types ct ON ct.id = c.campsite_type_id
		ORDER BY res.checkin_date`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListWithRelations: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var (
			res      domain.Reservation
			code     pgtype.UUID
			checkin  pgtype.Date
			checkout pgtype.Date
			up       domain.UserProfile
			c        domain.Campsite
			ct       domain.CampsiteType
			fee      string
		)

		err := rows.Scan(&res.ID, &code, &res.CampsiteID, &res.UserProfileID,
			&checkin, &checkout, &res.CreatedAt,
			&up.ID, &up.FirstName, &up.LastName, &up.Email, &up.CreatedAt,
			&c.ID, &c.CampsiteTypeID, &c.Nickname, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt,
			&ct.ID, &ct.Name, &fee, &ct.MaxReservationDays, &ct.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repo.ReservationRepo.ListWithRelations: scan: %w", err)
		}

		res.ConfirmationCode = uuid.UUID(code.Bytes)
		res.CheckinDate = checkin.Time
		res.CheckoutDate = checkout.Time
		if ct.FeePerNight, err = domain.ParseMoney(fee); err != nil {
			return nil, fmt.Errorf("repo.ReservationRepo.ListWithRelations: %w", err)
		}
		c.Type = &ct
		res.Campsite = &c
		res.UserProfile = &up

		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListWithRelations: rows: %w", err)
	}

	return reservations, nil
}

func (r *pgReservationRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM reservations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ReservationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ReservationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanReservation maps a single database row into a domain.Reservation.
// It handles the UUID confirmation code and the DATE columns, which come back
// as midnight-UTC time.Time values.
func scanReservation(s scanner) (domain.Reservation, error) {
	var (
		res      domain.Reservation
		code     pgtype.UUID
		checkin  pgtype.Date
		checkout pgtype.Date
	)

	err := s.Scan(&res.ID, &code, &res.CampsiteID, &res.UserProfileID,
		&checkin, &checkout, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Reservation{}, domain.ErrNotFound
		}
		return domain.Reservation{}, err
	}

	res.ConfirmationCode = uuid.UUID(code.Bytes)
	res.CheckinDate = checkin.Time
	res.CheckoutDate = checkout.Time
	return res, nil
}
