// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-report-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken for
	// headers that are not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrInvalidTokenParams is returned by GenerateJWTToken when the issuer,
	// the lifetime or the sign key is missing.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")

	// ErrEmptySubject means the token carries no "sub" claim.
	ErrEmptySubject = errors.New("token subject is empty")
)

// GenerateJWTToken issues an HS256 token for userID. The subject holds the
// decimal user id; iat is now and exp is now+tokenDuration.
//
//	token, err := utils.GenerateJWTToken("go-report-keeper", 42, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	token := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
		UserID: userID,
	}

	token.Token = jwt.NewWithClaims(jwt.SigningMethodHS256, token.RegisteredClaims)
	signed, err := token.Token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign JWT token: %w", err)
	}
	token.SignedString = signed

	return token, nil
}

// ValidateAndParseJWTToken checks the HS256 signature, the issuer and the
// expiry of tokenString and resolves its subject into a user id.
// Tokens signed with any other algorithm, "none" included, are rejected.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return []byte(tokenSignKey), nil },
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("validate JWT token: %w", err)
	}

	userID, err := subjectUserID(&claims)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{
		Token:            parsed,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, models.TokenType) || token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}

// ParseUserIDFromJWT reads the subject of tokenString without verifying the
// signature. Only use it on tokens this process received from the server.
func ParseUserIDFromJWT(tokenString string) (int64, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return 0, fmt.Errorf("parse JWT token: %w", err)
	}

	return subjectUserID(&claims)
}

func subjectUserID(claims jwt.Claims) (int64, error) {
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}
	if sub == "" {
		return 0, ErrEmptySubject
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not a user id: %w", sub, err)
	}

	return userID, nil
}
