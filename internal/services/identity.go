package services

import (
	"context"
	"fmt"
	"log"

	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// GoogleIdentityProvider deletes accounts through the Google Identity
// Toolkit API, which fronts the auth accounts the mobile app signs in
// with.
type GoogleIdentityProvider struct {
	service *identitytoolkit.Service
}

func NewGoogleIdentityProvider(ctx context.Context, apiKey string) (*GoogleIdentityProvider, error) {
	service, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create identitytoolkit service: %w", err)
	}
	return &GoogleIdentityProvider{service: service}, nil
}

func (p *GoogleIdentityProvider) DeleteUser(ctx context.Context, uid string) error {
	req := &identitytoolkit.IdentitytoolkitRelyingpartyDeleteAccountRequest{
		LocalId: uid,
	}
	_, err := p.service.Relyingparty.DeleteAccount(req).Context(ctx).Do()
	return err
}

// NoopIdentityProvider is used when no identity API key is configured,
// e.g. against a local database dump.
type NoopIdentityProvider struct{}

func (NoopIdentityProvider) DeleteUser(ctx context.Context, uid string) error {
	log.Printf("identity: no provider configured, skipping account deletion for %s", uid)
	return nil
}
