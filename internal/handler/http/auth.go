// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "Invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	h.issueToken(w, r, registeredUser, http.StatusCreated, "user registered")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "Invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.issueToken(w, r, foundUser, http.StatusOK, "login successful")
}

// issueToken signs a token for user and returns it both in the
// Authorization header and in the response body.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User, status int, message string) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("%s %s", models.TokenType, token.SignedString))
	writeResponse(w, r, status, message, models.AuthResponse{
		Token:  token.SignedString,
		Type:   models.TokenType,
		UserID: user.UserID,
		Email:  user.Email,
	})
}
