// Package auth, service layer: the business logic of registration, login and logout.
// In a Nest.js analogy this is the AuthService injected into the AuthController.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/user/nutritrack-go/apperror"
)

// Client-facing messages.
const (
	msgUserRegistered    = "User was registered"
	msgAlreadyRegistered = "User already registered"
	msgErrorCreating     = "Error creating user"
	msgLoginSuccessful   = "Login successful"
	msgUserNotFound      = "User not found"
	msgPasswordWrong     = "Password is incorrect"
	msgErrorLoggingIn    = "Error by logging the user"
	msgTokenFailed       = "Unable to generate token"
	msgLoggedOut         = "Logged out"
)

// LoginResult is what a successful login produces. Session is nil when the
// stateful variant is disabled.
type LoginResult struct {
	Response LoginResponse
	Session  *Session
}

// AuthService provides authentication-related services.
// Dependencies are injected through the constructor (manual DI, the Go way).
type AuthService struct {
	users    UserRepository
	hasher   *PasswordHasher
	tokens   *TokenManager
	sessions *SessionManager
}

// NewAuthService creates a new AuthService. sessions may be nil.
func NewAuthService(users UserRepository, hasher *PasswordHasher, tokens *TokenManager, sessions *SessionManager) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Sessions returns the session manager, or nil for the stateless variant.
func (s *AuthService) Sessions() *SessionManager {
	return s.sessions
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user.
// The email is looked up first; when it is already registered nothing is hashed or
// written. The repository's own uniqueness check turns a lost race into the same
// conflict outcome.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	email := normalizeEmail(req.Email)

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return apperror.NewConflictError(msgAlreadyRegistered, nil)
	case !errors.Is(err, apperror.ErrRecordNotFound):
		return apperror.NewDatabaseError(msgErrorCreating, err)
	}

	if len(req.Password) > maxPasswordBytes {
		return apperror.NewValidationError("password must be at most 72 bytes", nil)
	}
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return apperror.NewInternalError(msgErrorCreating, err)
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Age:          req.Age,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrDuplicateRecord) {
			return apperror.NewConflictError(msgAlreadyRegistered, nil)
		}
		return apperror.NewDatabaseError(msgErrorCreating, err)
	}
	return nil
}

// Login verifies the credential and issues a token (and a session when enabled).
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperror.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError(msgUserNotFound, nil)
		}
		return nil, apperror.NewDatabaseError(msgErrorLoggingIn, err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperror.NewAuthError(msgPasswordWrong, nil)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError(msgTokenFailed, err)
	}

	result := &LoginResult{
		Response: LoginResponse{
			Message:  msgLoginSuccessful,
			Token:    token,
			UserInfo: user.Info(),
		},
	}

	if s.sessions != nil {
		session, err := s.sessions.Create(ctx, user.ID, token)
		if err != nil {
			return nil, apperror.NewDatabaseError(msgErrorLoggingIn, err)
		}
		result.Session = session
	}
	return result, nil
}

// Logout deletes the given session. An empty id (no cookie) is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if s.sessions == nil || sessionID == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return apperror.NewDatabaseError("Error logging out", err)
	}
	return nil
}
