package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/creekriver/backend/internal/domain"
)

// UserProfileRepo defines the persistence operations for UserProfiles.
// Profiles are immutable after creation, so there is no Update.
type UserProfileRepo interface {
	// Create inserts a new user profile and returns the persisted record.
	Create(ctx context.Context, up domain.UserProfile) (domain.UserProfile, error)

	// GetByID retrieves a single profile by primary key.
	// Returns domain.ErrNotFound if no profile with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.UserProfile, error)

	// Delete removes a profile by ID. The schema cascades the delete to all
	// reservations held by the profile in the same transaction.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgUserProfileRepo is the Postgres implementation of UserProfileRepo.
type pgUserProfileRepo struct {
	db db
}

// NewUserProfileRepo constructs a UserProfileRepo backed by the provided db connection.
func NewUserProfileRepo(db db) UserProfileRepo {
	return &pgUserProfileRepo{db: db}
}

func (r *pgUserProfileRepo) Create(ctx context.Context, up domain.UserProfile) (domain.UserProfile, error) {
	const q = `
		INSERT INTO user_profiles (first_name, last_name, email)
		VALUES (@first_name, @last_name, @email)
		RETURNING id, first_name, last_name, email, created_at`

	args := pgx.NamedArgs{
		"first_name": up.FirstName,
		"last_name":  up.LastName,
		"email":      up.Email,
	}

	result, err := scanUserProfile(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("repo.UserProfileRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgUserProfileRepo) GetByID(ctx context.Context, id int64) (domain.UserProfile, error) {
	const q = `
		SELECT id, first_name, last_name, email, created_at
		FROM user_profiles
		WHERE id = @id`

	result, err := scanUserProfile(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("repo.UserProfileRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgUserProfileRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM user_profiles WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.UserProfileRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserProfileRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanUserProfile maps a single database row into a domain.UserProfile.
func scanUserProfile(s scanner) (domain.UserProfile, error) {
	var up domain.UserProfile
	err := s.Scan(&up.ID, &up.FirstName, &up.LastName, &up.Email, &up.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserProfile{}, domain.ErrNotFound
		}
		return domain.UserProfile{}, err
	}
	return up, nil
}
