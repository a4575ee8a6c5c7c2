package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/httpclient"
)

// GoogleLoginURL builds the consent screen URL the frontend redirects
// to. The callback route receives the resulting credential.
func (s *AuthServiceImpl) GoogleLoginURL() string {
	params := url.Values{}
	params.Set("client_id", s.config.GoogleClientID)
	params.Set("redirect_uri", fmt.Sprintf("%s/api/v1/auth/google/callback", s.config.BackendURL))
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")

	return fmt.Sprintf("https://accounts.google.com/o/oauth2/v2/auth?%s", params.Encode())
}

type googleProfile struct {
	Sub   string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// exchangeGoogleCode validates the ID token forwarded by the frontend
// against Google's tokeninfo endpoint and returns the claimed profile.
func (s *AuthServiceImpl) exchangeGoogleCode(ctx context.Context, idToken string) (profile googleProfile, err error) {
	statusCode, body, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("https://oauth2.googleapis.com/tokeninfo?id_token=%s", idToken),
		Method: http.MethodGet,
	})
	if err != nil {
		return
	}

	if statusCode != http.StatusOK {
		return profile, fmt.Errorf("tokeninfo returned status %d", statusCode)
	}

	if err = json.Unmarshal(body, &profile); err != nil {
		return
	}

	if profile.Sub == "" {
		return profile, fmt.Errorf("tokeninfo response missing subject")
	}

	return profile, nil
}
