package auth

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type tokenVerifier interface {
	VerifySessionCookie(ctx context.Context, sessionCookie string) (*fbauth.Token, error)
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier resolves a session cookie or an ID token into a buyer.
type FirebaseVerifier struct {
	client tokenVerifier
}

func NewFirebaseVerifier(ctx context.Context, cfg config.Auth) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase auth: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) VerifySession(ctx context.Context, credential string) (entities.Buyer, error) {
	if credential == "" {
		return entities.Buyer{}, entities.ErrUnauthorized
	}

	token, err := v.client.VerifySessionCookie(ctx, credential)
	if err != nil {
		token, err = v.client.VerifyIDToken(ctx, credential)
	}
	if err != nil {
		return entities.Buyer{}, fmt.Errorf("%w: %v", entities.ErrUnauthorized, err)
	}

	return buyerFromToken(token), nil
}

func buyerFromToken(t *fbauth.Token) entities.Buyer {
	return entities.Buyer{
		UID:         t.UID,
		Email:       claim(t, "email"),
		DisplayName: claim(t, "name"),
		PhoneNumber: claim(t, "phone_number"),
	}
}

func claim(t *fbauth.Token, key string) string {
	s, _ := t.Claims[key].(string)
	return s
}
