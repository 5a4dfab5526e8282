package agreements_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	agreements "github.com/alinrajpoot/paypal-agreements"
	"github.com/alinrajpoot/paypal-agreements/pkg/api"
	"github.com/alinrajpoot/paypal-agreements/pkg/api/apitest"
)

func newTestClient(t *testing.T, srv *apitest.Server, opts ...agreements.Option) *agreements.Client {
	t.Helper()

	opts = append(opts, agreements.WithEndpoint(srv.URL))

	client, err := agreements.New("client-id", "client-secret", true, opts...)
	require.NoError(t, err)

	return client
}

func TestNew(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t)
	client := newTestClient(t, srv)

	session, err := client.AuthSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, apitest.AccessToken, session.AccessToken)
	assert.Equal(t, srv.URL, session.Endpoint)
}

func TestNewFromEnv(t *testing.T) {
	t.Run("passes - all variables set", func(t *testing.T) {
		t.Setenv(agreements.EnvClientID, "client-id")
		t.Setenv(agreements.EnvClientSecret, "client-secret")
		t.Setenv(agreements.EnvSandbox, "true")

		client, err := agreements.NewFromEnv()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("passes - sandbox flag omitted", func(t *testing.T) {
		t.Setenv(agreements.EnvClientID, "client-id")
		t.Setenv(agreements.EnvClientSecret, "client-secret")

		client, err := agreements.NewFromEnv()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("fails - client id missing", func(t *testing.T) {
		t.Setenv(agreements.EnvClientSecret, "client-secret")

		_, err := agreements.NewFromEnv()
		require.ErrorIs(t, err, agreements.ErrEnvVarNotFound)
	})

	t.Run("fails - sandbox flag malformed", func(t *testing.T) {
		t.Setenv(agreements.EnvClientID, "client-id")
		t.Setenv(agreements.EnvClientSecret, "client-secret")
		t.Setenv(agreements.EnvSandbox, "sometimes")

		_, err := agreements.NewFromEnv()
		require.Error(t, err)
	})
}

func TestNotConfigured(t *testing.T) {
	t.Parallel()

	var client agreements.Client

	ctx := context.Background()

	_, err := client.AuthSession(ctx)
	assert.ErrorIs(t, err, agreements.ErrNotConfigured)

	_, err = client.CreateAgreementToken(ctx, "https://x/ok", "https://x/cancel")
	assert.ErrorIs(t, err, agreements.ErrNotConfigured)

	_, err = client.ExecuteAgreement(ctx, "T1")
	assert.ErrorIs(t, err, agreements.ErrNotConfigured)

	_, err = client.ChargeCustomer(ctx, "PAYER1", "AG1", "55.00")
	assert.ErrorIs(t, err, agreements.ErrNotConfigured)
}

// TestWorkflow walks the whole lifecycle against the fake processor:
// approval URL, agreement execution, then a reference-transaction charge.
func TestWorkflow(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t)
	client := newTestClient(t, srv)

	ctx := context.Background()

	srv.Handle(api.PathAgreementTokens, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"links":[{"rel":"approval_url","href":"https://approve.example/abc"}]}`))
	})

	approvalURL, err := client.CreateAgreementToken(ctx, "https://x/ok", "https://x/cancel")
	require.NoError(t, err)
	assert.Equal(t, "https://approve.example/abc", approvalURL)

	srv.Handle(api.PathAgreements, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"token_id":"T1"}`, string(body))

		_, _ = w.Write([]byte(`{"id":"AG1","payer":{"payer_info":{"payer_id":"PAYER1"}}}`))
	})

	agreement, err := client.ExecuteAgreement(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, &api.Agreement{ID: "AG1", PayerID: "PAYER1"}, agreement)

	const orderPayload = `{"id":"ORDER1","status":"COMPLETED","purchase_units":[{"amount":{"currency_code":"USD","value":"55.00"}}]}`

	srv.Handle(api.PathPaymentTokens, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"TOK1"}`))
	})
	srv.Handle(api.PathOrders, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(orderPayload))
	})

	order, err := client.ChargeCustomer(ctx, agreement.PayerID, agreement.ID, "55.00")
	require.NoError(t, err)
	assert.Equal(t, "ORDER1", order.ID)
	assert.Equal(t, "COMPLETED", order.Status)
	assert.Equal(t, orderPayload, string(order.Raw))

	// The whole flow reuses one bearer token.
	assert.Equal(t, 1, srv.Calls(api.PathOAuthToken))
}
