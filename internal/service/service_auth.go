// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/store"
	"github.com/MKhiriev/go-report-keeper/internal/utils"
	"github.com/MKhiriev/go-report-keeper/internal/validators"
	"github.com/MKhiriev/go-report-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks email and password shape before any hashing happens.
	validator validators.Validator

	// hashCost is the bcrypt cost of newly created password hashes.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	hashCost := cfg.PasswordHashCost
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		validator:      validators.NewReportValidator(),
		hashCost:       hashCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// RegisterUser creates a new account with role USER.
//
// Returns the persisted user (with a server-assigned UserID and no password)
// or:
//   - ErrInvalidDataProvided if the email or password is malformed.
//   - ErrUserAlreadyExists if the email is taken.
//   - A wrapped storage error for anything else.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = normalizeEmail(user.Email)
	if err := a.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := a.now()
	user.PasswordHash = string(hash)
	user.Password = ""
	user.Role = models.RoleUser
	user.CreatedAt = now
	user.UpdatedAt = now

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Warn().Str("func", "authService.RegisterUser").Str("email", user.Email).Msg("email already registered")
		return models.User{}, fmt.Errorf("%w: %w", ErrUserAlreadyExists, err)
	}
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.PasswordHash = ""
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrWrongPassword so the
// response does not reveal which emails are registered.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = normalizeEmail(user.Email)
	if err := a.validator.Validate(ctx, user, validators.FieldEmail); err != nil || user.Password == "" {
		log.Error().Str("func", "authService.Login").Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("func", "authService.Login").Str("email", user.Email).Msg("login for unknown email")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); err != nil {
		log.Warn().Str("func", "authService.Login").Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	foundUser.PasswordHash = ""
	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
