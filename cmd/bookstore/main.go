package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	adapthttp "bookstore/internal/adapter/http"
	"bookstore/internal/adapter/postgres"
	"bookstore/internal/app"
	"bookstore/internal/config"
	"bookstore/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	codec, err := token.New(cfg.JWTSecret, cfg.TokenLifetime)
	if err != nil {
		log.Fatalf("token codec: %v", err)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	users := postgres.NewUserRepo(db)
	books := postgres.NewBookRepo(db)
	authors := postgres.NewAuthorRepo(db)

	authSvc := app.NewAuthService(users, codec)
	bookSvc := app.NewBookService(books)
	authorSvc := app.NewAuthorService(authors)
	statsSvc := app.NewStatsService(books, authors, users)

	ctx := context.Background()
	if err := authSvc.SeedUsers(ctx); err != nil {
		log.Fatalf("seed users: %v", err)
	}

	var sso adapthttp.SSOConfig
	if cfg.OIDC.Enabled() {
		provider, err := oidc.NewProvider(ctx, cfg.OIDC.Issuer)
		if err != nil {
			log.Fatalf("oidc provider: %v", err)
		}
		sso = adapthttp.SSOConfig{
			Enabled:  true,
			Provider: provider,
			OAuth2Config: oauth2.Config{
				ClientID:     cfg.OIDC.ClientID,
				ClientSecret: cfg.OIDC.ClientSecret,
				RedirectURL:  cfg.OIDC.RedirectURL,
				Endpoint:     provider.Endpoint(),
				Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
			},
		}
	}

	h := adapthttp.New(authSvc, bookSvc, authorSvc, statsSvc, codec, sso).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
