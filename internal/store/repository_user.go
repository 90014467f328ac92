// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// database-assigned UserID.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if r.db.isUniqueViolation(err) {
			log.Info().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error saving user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user registered with email.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to create query")
		return models.User{}, err
	}

	var foundUser models.User
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&foundUser.UserID,
			&foundUser.Email,
			&foundUser.PasswordHash,
			&foundUser.Role,
			&foundUser.CreatedAt,
			&foundUser.UpdatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}
