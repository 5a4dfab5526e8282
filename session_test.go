package agreements_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	agreements "github.com/alinrajpoot/paypal-agreements"
	"github.com/alinrajpoot/paypal-agreements/pkg/api"
	"github.com/alinrajpoot/paypal-agreements/pkg/api/apitest"
)

func TestAuthSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("caches the session across calls", func(t *testing.T) {
		t.Parallel()

		srv := apitest.NewServer(t)
		client := newTestClient(t, srv)

		first, err := client.AuthSession(ctx)
		require.NoError(t, err)

		second, err := client.AuthSession(ctx)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, srv.Calls(api.PathOAuthToken))
	})

	t.Run("reconfigure forces a fresh exchange", func(t *testing.T) {
		t.Parallel()

		srv := apitest.NewServer(t)
		client := newTestClient(t, srv)

		_, err := client.AuthSession(ctx)
		require.NoError(t, err)

		client.Configure("other-id", "other-secret", true)

		_, err = client.AuthSession(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, srv.Calls(api.PathOAuthToken))
	})

	t.Run("invalidate forces a fresh exchange", func(t *testing.T) {
		t.Parallel()

		srv := apitest.NewServer(t)
		client := newTestClient(t, srv)

		_, err := client.AuthSession(ctx)
		require.NoError(t, err)

		client.InvalidateSession()

		_, err = client.AuthSession(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, srv.Calls(api.PathOAuthToken))
	})

	t.Run("concurrent first callers share one exchange", func(t *testing.T) {
		t.Parallel()

		srv := apitest.NewServer(t)
		client := newTestClient(t, srv)

		var wg sync.WaitGroup

		for i := 0; i < 8; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, err := client.AuthSession(ctx)
				assert.NoError(t, err)
			}()
		}

		wg.Wait()

		assert.Equal(t, 1, srv.Calls(api.PathOAuthToken))
	})

	t.Run("sends the credentials as Basic auth", func(t *testing.T) {
		t.Parallel()

		srv := apitest.NewServer(t)
		client := newTestClient(t, srv)

		srv.Handle(api.PathOAuthToken, func(w http.ResponseWriter, r *http.Request) {
			id, secret, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "client-id", id)
			assert.Equal(t, "client-secret", secret)

			_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"Bearer"}`))
		})

		session, err := client.AuthSession(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", session.AccessToken)
	})

	t.Run("fails - exchange returns non-2xx", func(t *testing.T) {
		t.Parallel()

		srv := apitest.NewServer(t)
		client := newTestClient(t, srv)

		srv.Handle(api.PathOAuthToken, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
		})

		_, err := client.AuthSession(ctx)
		require.ErrorIs(t, err, agreements.ErrAuthenticationFailed)
		assert.ErrorContains(t, err, "invalid_client")
	})

	t.Run("fails - response carries no access_token", func(t *testing.T) {
		t.Parallel()

		srv := apitest.NewServer(t)
		client := newTestClient(t, srv)

		srv.Handle(api.PathOAuthToken, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
		})

		_, err := client.AuthSession(ctx)
		require.ErrorIs(t, err, agreements.ErrAuthenticationFailed)
	})

	t.Run("fails - exchange error is not cached", func(t *testing.T) {
		t.Parallel()

		srv := apitest.NewServer(t)
		client := newTestClient(t, srv)

		srv.Handle(api.PathOAuthToken, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		_, err := client.AuthSession(ctx)
		require.ErrorIs(t, err, agreements.ErrAuthenticationFailed)

		srv.Handle(api.PathOAuthToken, nil)

		session, err := client.AuthSession(ctx)
		require.NoError(t, err)
		assert.Equal(t, apitest.AccessToken, session.AccessToken)
	})
}
