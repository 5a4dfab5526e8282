package agreements

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/alinrajpoot/paypal-agreements/pkg/api"
)

// AuthSession is the credential state shared by every authenticated call:
// the bearer token obtained from the OAuth2 client-credentials exchange and
// the base endpoint it was issued against.
//
// A session has no expiry tracking.  It lives until Configure or
// InvalidateSession drops it, regardless of the processor's actual token
// TTL.
type AuthSession struct {
	AccessToken string
	Endpoint    string
}

// apply attaches the headers carried by every authenticated request.
func (s *AuthSession) apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.AccessToken)
	req.Header.Set("Content-Type", "application/json")
}

// AuthSession returns the cached session, performing the client-credentials
// exchange first if no session is cached.  Concurrent first callers share a
// single exchange.
func (c *Client) AuthSession(ctx context.Context) (*AuthSession, error) {
	c.mu.Lock()

	if !c.creds.valid() {
		c.mu.Unlock()

		return nil, fmt.Errorf("get auth session: %w", ErrNotConfigured)
	}

	if s := c.session; s != nil {
		c.mu.Unlock()

		return s, nil
	}

	creds, endpoint := c.creds, c.endpoint
	c.mu.Unlock()

	v, err, _ := c.group.Do("token-exchange", func() (any, error) {
		// A caller that lost the race against a completed exchange
		// lands in a fresh flight; serve it from the cache.
		c.mu.Lock()
		if s := c.session; s != nil {
			c.mu.Unlock()

			return s, nil
		}
		c.mu.Unlock()

		return c.exchangeToken(ctx, creds, endpoint)
	})
	if err != nil {
		return nil, err
	}

	session, _ := v.(*AuthSession)

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	return session, nil
}

func (c *Client) exchangeToken(ctx context.Context, creds credentials, endpoint string) (*AuthSession, error) {
	form := url.Values{
		"grant_type": {api.GrantClientCredentials},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+api.PathOAuthToken, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, FailedAuthentication(err)
	}

	req.SetBasicAuth(creds.clientID, creds.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, FailedAuthentication(err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, FailedAuthentication(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode/100 != 2 {
		return nil, FailedAuthentication(fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var token api.TokenResponse
	if err := decodeResponse(body, &token); err != nil {
		return nil, FailedAuthentication(err)
	}

	if token.AccessToken == "" {
		return nil, FailedAuthentication(errors.New("response carries no access_token"))
	}

	c.logger().Info("authenticated", slog.String("endpoint", endpoint))

	return &AuthSession{
		AccessToken: token.AccessToken,
		Endpoint:    endpoint,
	}, nil
}
