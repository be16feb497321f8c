// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/domain"
	"bookstore/internal/token"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was
	// incorrect. Unknown usernames return the same value so callers cannot probe
	// which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrAccountDisabled indicates the account exists but has been disabled.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrUsernameTaken indicates a registration conflict on username.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrEmailTaken indicates a registration conflict on email.
	ErrEmailTaken = errors.New("email is already in use")
)

// AuthService turns credentials into signed bearer tokens. It keeps no session
// state: the issued token is the only artifact of a login.
type AuthService struct {
	users domain.UserRepository
	codec *token.Codec
	now   func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, codec *token.Codec) *AuthService {
	return &AuthService{users: users, codec: codec, now: time.Now}
}

// Login verifies a username/password pair and returns a signed token carrying
// the user's roles.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if !user.Enabled {
		return "", ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.codec.Issue(user.Username, user.Roles, s.now())
}

// Register creates a new enabled account with the USER role.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, username, email, string(hash), []domain.Role{domain.RoleUser})
}

// LoginWithIdentity issues a token for an externally authenticated user (SSO),
// auto-provisioning the account on first login. The empty password hash keeps
// the account unusable for password login.
func (s *AuthService) LoginWithIdentity(ctx context.Context, username string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		user, err = s.users.Create(ctx, username, username, "", []domain.Role{domain.RoleUser})
		if err != nil {
			// Creation can lose a race on the unique constraint; try again.
			createErr := err
			user, err = s.users.GetByUsername(ctx, username)
			if err != nil {
				return "", err
			}
			if user == nil {
				// Not a race: the conflict is with some other account, for
				// instance an email already registered under a different
				// username.
				return "", createErr
			}
		}
	}

	if !user.Enabled {
		return "", ErrAccountDisabled
	}

	return s.codec.Issue(user.Username, user.Roles, s.now())
}

// SeedUsers creates the demo accounts if no users exist yet.
func (s *AuthService) SeedUsers(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		username, email, password string
		roles                     []domain.Role
	}{
		{"user", "user@example.com", "password", []domain.Role{domain.RoleUser}},
		{"admin", "admin@example.com", "admin123", []domain.Role{domain.RoleUser, domain.RoleAdmin}},
	}

	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := s.users.Create(ctx, seed.username, seed.email, string(hash), seed.roles); err != nil {
			return err
		}
	}
	return nil
}
