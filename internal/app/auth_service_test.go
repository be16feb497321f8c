package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookstore/internal/domain"
	"bookstore/internal/token"

	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type mockUserRepo struct {
	getByUsernameFn    func(ctx context.Context, username string) (*domain.User, error)
	createFn           func(ctx context.Context, username, email, passwordHash string, roles []domain.Role) (*domain.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)
	existsByEmailFn    func(ctx context.Context, email string) (bool, error)
	countFn            func(ctx context.Context) (int, error)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, username, email, passwordHash string, roles []domain.Role) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username, email, passwordHash, roles)
	}
	return &domain.User{ID: 1, Username: username, Email: email, PasswordHash: passwordHash, Roles: roles, Enabled: true}, nil
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func testCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.New(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}
	return codec
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	password := "testpass123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{
				ID:           1,
				Username:     "testuser",
				PasswordHash: string(hash),
				Roles:        []domain.Role{domain.RoleUser},
				Enabled:      true,
			}, nil
		},
	}

	codec := testCodec(t)
	svc := NewAuthService(users, codec)

	tok, err := svc.Login(ctx, "testuser", password)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tok == "" {
		t.Fatal("expected token, got empty string")
	}

	claims, err := codec.Verify(tok, time.Now())
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.Subject != "testuser" {
		t.Errorf("expected subject 'testuser', got %s", claims.Subject)
	}
	if !domain.ContainsRole(claims.Roles, domain.RoleUser) {
		t.Error("expected USER role in claims")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correctpass"), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "testuser", PasswordHash: string(hash), Enabled: true}, nil
		},
	}

	svc := NewAuthService(users, testCodec(t))
	_, err := svc.Login(ctx, "testuser", "wrongpass")
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	// Unknown usernames must be indistinguishable from wrong passwords.
	ctx := context.Background()
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, nil
		},
	}

	svc := NewAuthService(users, testCodec(t))
	_, err := svc.Login(ctx, "ghost", "whatever")
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "locked", PasswordHash: string(hash), Enabled: false}, nil
		},
	}

	svc := NewAuthService(users, testCodec(t))
	_, err := svc.Login(ctx, "locked", "password")
	if err != ErrAccountDisabled {
		t.Errorf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()

	var gotHash string
	users := &mockUserRepo{
		createFn: func(ctx context.Context, username, email, passwordHash string, roles []domain.Role) (*domain.User, error) {
			gotHash = passwordHash
			if username != "newbie" {
				t.Errorf("expected username 'newbie', got %s", username)
			}
			if len(roles) != 1 || roles[0] != domain.RoleUser {
				t.Errorf("expected [USER] roles, got %v", roles)
			}
			return &domain.User{ID: 2, Username: username, Email: email, PasswordHash: passwordHash, Roles: roles, Enabled: true}, nil
		},
	}

	svc := NewAuthService(users, testCodec(t))
	u, err := svc.Register(ctx, "newbie", "newbie@example.com", "secret1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u.Username != "newbie" {
		t.Errorf("expected username 'newbie', got %s", u.Username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(gotHash), []byte("secret1")); err != nil {
		t.Error("stored hash does not match password")
	}
}

func TestAuthService_Register_Conflicts(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		existsByUsernameFn: func(ctx context.Context, username string) (bool, error) {
			return username == "taken", nil
		},
		existsByEmailFn: func(ctx context.Context, email string) (bool, error) {
			return email == "taken@example.com", nil
		},
	}

	svc := NewAuthService(users, testCodec(t))

	if _, err := svc.Register(ctx, "taken", "new@example.com", "secret1"); err != ErrUsernameTaken {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
	if _, err := svc.Register(ctx, "new", "taken@example.com", "secret1"); err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_LoginWithIdentity_Provisions(t *testing.T) {
	ctx := context.Background()

	created := false
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			if created {
				return &domain.User{ID: 3, Username: username, Roles: []domain.Role{domain.RoleUser}, Enabled: true}, nil
			}
			return nil, nil
		},
		createFn: func(ctx context.Context, username, email, passwordHash string, roles []domain.Role) (*domain.User, error) {
			created = true
			if passwordHash != "" {
				t.Error("expected empty password hash for provisioned account")
			}
			return &domain.User{ID: 3, Username: username, Email: email, Roles: roles, Enabled: true}, nil
		},
	}

	svc := NewAuthService(users, testCodec(t))
	tok, err := svc.LoginWithIdentity(ctx, "sso-user@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tok == "" {
		t.Error("expected token, got empty string")
	}
	if !created {
		t.Error("expected account to be provisioned")
	}
}

func TestAuthService_LoginWithIdentity_EmailConflict(t *testing.T) {
	// The SSO identity's email already belongs to an account under a different
	// username, so Create fails and the retry lookup still finds nothing. That
	// must surface as an error, never as a success with an empty token.
	ctx := context.Background()

	conflict := errors.New("email already exists")
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, username, email, passwordHash string, roles []domain.Role) (*domain.User, error) {
			return nil, conflict
		},
	}

	svc := NewAuthService(users, testCodec(t))
	tok, err := svc.LoginWithIdentity(ctx, "bob@example.com")
	if err != conflict {
		t.Errorf("expected the create error to surface, got %v", err)
	}
	if tok != "" {
		t.Errorf("expected no token, got %q", tok)
	}
}

func TestAuthService_SeedUsers(t *testing.T) {
	ctx := context.Background()

	var seeded []string
	users := &mockUserRepo{
		countFn: func(ctx context.Context) (int, error) { return 0, nil },
		createFn: func(ctx context.Context, username, email, passwordHash string, roles []domain.Role) (*domain.User, error) {
			seeded = append(seeded, username)
			if username == "admin" && !domain.ContainsRole(roles, domain.RoleAdmin) {
				t.Error("expected admin seed to carry ADMIN role")
			}
			return &domain.User{ID: int64(len(seeded)), Username: username, Enabled: true}, nil
		},
	}

	svc := NewAuthService(users, testCodec(t))
	if err := svc.SeedUsers(ctx); err != nil {
		t.Fatalf("SeedUsers: %v", err)
	}
	if len(seeded) != 2 || seeded[0] != "user" || seeded[1] != "admin" {
		t.Errorf("expected [user admin], got %v", seeded)
	}
}

func TestAuthService_SeedUsers_SkipsNonEmpty(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		countFn: func(ctx context.Context) (int, error) { return 5, nil },
		createFn: func(ctx context.Context, username, email, passwordHash string, roles []domain.Role) (*domain.User, error) {
			t.Error("Create should not be called when users exist")
			return nil, errors.New("unexpected")
		},
	}

	svc := NewAuthService(users, testCodec(t))
	if err := svc.SeedUsers(ctx); err != nil {
		t.Fatalf("SeedUsers: %v", err)
	}
}
