package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks a Google-signed OIDC token for the given audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// pushAuth verifies the OIDC token an authenticated push subscription attaches.
// See https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
type pushAuth struct {
	validate TokenValidator
}

func (a *pushAuth) verify(req *http.Request) error {
	scheme, token, _ := strings.Cut(req.Header.Get("Authorization"), " ")
	if !strings.EqualFold(scheme, "Bearer") || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := a.validate(req.Context(), token, pushAudience(req))
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}

	return nil
}

// pushAudience is the URL the subscription pushes to.
func pushAudience(req *http.Request) string {
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	return scheme + "://" + req.Host + req.URL.Path
}
