package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"DistroFM/cache"
	"DistroFM/core/auth"
	"DistroFM/logger"
	"DistroFM/model"
	"DistroFM/repository"
)

// LoginRequest represents the login request body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authResponse is the body returned by login and logout.
type authResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token,omitempty"`
	User    *model.User `json:"user,omitempty"`
	Message string      `json:"message"`
}

// LoginHandler handles user login requests. Credential checking is a
// documented mock: any non-empty username/password pair succeeds. Empty
// fields are unauthorized.
func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode login request", logger.ErrorField(err))
		writeJSON(w, http.StatusBadRequest, authResponse{Success: false, Message: "Invalid request data"})
		return
	}

	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusUnauthorized, authResponse{Success: false, Message: "Invalid credentials"})
		return
	}

	// Reuse the registered account when one exists so tokens carry a
	// stable user id; otherwise fall back to a mock principal.
	user, err := h.userRepo.GetUserByUsername(req.Username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			writeJSON(w, http.StatusInternalServerError, authResponse{Success: false, Message: "Internal server error"})
			return
		}
		user = &model.User{ID: "1", Username: req.Username}
	}

	token, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		logger.Error("Failed to generate token", logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, authResponse{Success: false, Message: "Internal server error"})
		return
	}

	logger.Info("Login successful", logger.String("username", user.Username))
	writeJSON(w, http.StatusOK, authResponse{
		Success: true,
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// LogoutHandler always succeeds. When the request carries a valid bearer
// token, that token is revoked in the session cache.
func (h *APIHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if tokenString, ok := bearerToken(r); ok {
		if claims, err := auth.ParseToken(tokenString); err == nil {
			if err := cache.RevokeToken(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				logger.Warn("Failed to revoke token on logout", logger.ErrorField(err))
			}
		}
	}
	writeJSON(w, http.StatusOK, authResponse{Success: true, Message: "Logged out successfully"})
}

// RegisterHandler creates a user with a bcrypt password hash. The shipped
// login flow does not verify against it, but registered accounts keep a
// stable id across sessions.
func (h *APIHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Success: false, Message: "Invalid request data"})
		return
	}

	if req.Username == "" || req.Password == "" {
		writeValidationFailed(w, []string{"username and password are required"})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, authResponse{Success: false, Message: "Internal server error"})
		return
	}

	user, err := h.userRepo.CreateUser(&model.User{
		Username:     req.Username,
		PasswordHash: hashed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			logger.Warn("Username already taken", logger.String("username", req.Username))
			writeJSON(w, http.StatusConflict, authResponse{Success: false, Message: "Username already exists"})
			return
		}
		logger.Error("Failed to create user", logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, authResponse{Success: false, Message: "Internal server error"})
		return
	}

	logger.Info("User registered", logger.String("username", user.Username))
	writeJSON(w, http.StatusCreated, authResponse{
		Success: true,
		User:    user,
		Message: "Registration successful",
	})
}

// MeHandler returns the principal carried by the request token.
func (h *APIHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	username, _ := GetUsernameFromContext(r.Context())

	writeJSON(w, http.StatusOK, map[string]string{
		"id":       userID,
		"username": username,
	})
}

// AuthMiddleware checks for a valid, non-revoked JWT before calling next.
func (h *APIHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		if cache.IsTokenRevoked(r.Context(), claims.ID) {
			writeMessage(w, http.StatusUnauthorized, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, usernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

type contextKey string

const (
	userIDKey   contextKey = "userID"
	usernameKey contextKey = "username"
)

// GetUserIDFromContext extracts the user id from the request context.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return "", fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}

// GetUsernameFromContext extracts the username from the request context.
func GetUsernameFromContext(ctx context.Context) (string, error) {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok {
		return "", fmt.Errorf("username not found in context")
	}
	return username, nil
}
