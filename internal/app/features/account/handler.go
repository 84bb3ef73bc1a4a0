// internal/app/features/account/handler.go

// Package account serves login, signup, and forgot-password. Login doubles
// as implicit signup: an unknown (email, role) pair is registered on the
// spot. No session or token is issued; the portal frontend keeps the user
// summary client-side.
package account

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/mentorhub/internal/app/store/users"
	"github.com/dalemusser/mentorhub/internal/app/system/apperrors"
	"github.com/dalemusser/mentorhub/internal/app/system/httpjson"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost for hashing passwords.
	BcryptCost = 10
	// DefaultTempPasswordLength is used when no length is configured.
	DefaultTempPasswordLength = 8
)

// Handler owns the account endpoints.
type Handler struct {
	DB                 *mongo.Database
	Log                *zap.Logger
	TempPasswordLength int
}

// NewHandler constructs a Handler bound to the given Mongo database.
func NewHandler(db *mongo.Database, tempPasswordLength int, logger *zap.Logger) *Handler {
	if tempPasswordLength <= 0 {
		tempPasswordLength = DefaultTempPasswordLength
	}
	return &Handler{DB: db, Log: logger, TempPasswordLength: tempPasswordLength}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// HandleLogin serves POST /api/login.
//
// An unknown (email, role) pair becomes a new account: the password is
// hashed, the display name derived from the email local part, and a
// creation message returned. A known pair is checked against the stored
// hash; a mismatch is a 401.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}
	if req.Email == "" || req.Password == "" || req.Role == "" {
		httpjson.Fail(w, h.Log, apperrors.Validation("Missing fields"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	users := userstore.New(h.DB)
	user, err := users.GetByEmailRole(ctx, req.Email, req.Role)
	if err == userstore.ErrNotFound {
		hash, herr := bcrypt.GenerateFromPassword([]byte(req.Password), BcryptCost)
		if herr != nil {
			httpjson.Fail(w, h.Log, apperrors.Storage("Server error: password hashing failed", herr))
			return
		}
		name := req.Email
		if at := strings.Index(req.Email, "@"); at > 0 {
			name = req.Email[:at]
		}
		if _, cerr := users.Create(ctx, models.User{
			Name:     name,
			Email:    req.Email,
			Role:     req.Role,
			Password: string(hash),
		}); cerr != nil {
			httpjson.Fail(w, h.Log, apperrors.Storage("Server error: could not create account", cerr))
			return
		}
		httpjson.OK(w, map[string]any{
			"success": true,
			"message": fmt.Sprintf("Account created successfully as %s", req.Role),
		})
		return
	}
	if err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Server error: could not look up account", err))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		httpjson.Fail(w, h.Log, apperrors.Authentication("Incorrect password. Try again."))
		return
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Login successful! Welcome %s", user.Name),
		"user":    user.Public(),
	})
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// HandleSignup serves POST /api/signup. The duplicate check is scoped to
// the (email, role) pair: the same email may also register under another
// role.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		httpjson.Fail(w, h.Log, apperrors.Validation("All fields are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), BcryptCost)
	if err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Server error: password hashing failed", err))
		return
	}

	users := userstore.New(h.DB)
	if _, err := users.Create(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: string(hash),
	}); err != nil {
		if err == userstore.ErrDuplicate {
			httpjson.Fail(w, h.Log, apperrors.Conflict("User already exists with this role"))
			return
		}
		httpjson.Fail(w, h.Log, apperrors.Storage("Server error: could not create account", err))
		return
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"message": "Account created successfully!",
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HandleForgotPassword serves POST /api/forgot-password. A temporary
// alphanumeric password is generated, hashed, and persisted, and the
// plaintext is returned in the response body. Out-of-band delivery (email
// or SMS) is not implemented; until it is, the response is the only way
// the user receives the password.
func (h *Handler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}
	if req.Email == "" || req.Role == "" {
		httpjson.Fail(w, h.Log, apperrors.Validation("Missing fields"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	users := userstore.New(h.DB)
	if _, err := users.GetByEmailRole(ctx, req.Email, req.Role); err != nil {
		if err == userstore.ErrNotFound {
			httpjson.Fail(w, h.Log, apperrors.NotFound("User not found"))
			return
		}
		httpjson.Fail(w, h.Log, apperrors.Storage("Server error: could not look up account", err))
		return
	}

	tempPassword := generateTempPassword(h.TempPasswordLength)
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), BcryptCost)
	if err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Server error: password hashing failed", err))
		return
	}
	if err := users.SetPassword(ctx, req.Email, req.Role, string(hash)); err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Server error: could not reset password", err))
		return
	}

	httpjson.OK(w, map[string]any{
		"success":      true,
		"message":      "Temporary password generated",
		"tempPassword": tempPassword,
	})
}

const tempPasswordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// generateTempPassword returns a random alphanumeric string of length n.
// Panics if the system's cryptographic random number generator fails.
func generateTempPassword(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand.Read failed: " + err.Error())
	}
	for i := range b {
		b[i] = tempPasswordCharset[int(b[i])%len(tempPasswordCharset)]
	}
	return string(b)
}
