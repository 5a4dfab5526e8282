// Package apitest provides an in-process fake of the processor's five
// billing-agreement endpoints, for use in this module's tests and in the
// tests of code built on top of it.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alinrajpoot/paypal-agreements/pkg/api"
)

// Identifiers issued by the default handlers.
const (
	AccessToken    = "apitest-access-token"
	AgreementToken = "BA-APITEST"
	ApprovalURL    = "https://www.sandbox.paypal.com/agreements/approve?ba_token=BA-APITEST"
	AgreementID    = "B-APITEST"
	PayerID        = "APITESTPAYER"
	PaymentTokenID = "8kk00000tapitest"
	OrderID        = "5O190127TN364715T"
)

// Server is an httptest.Server wired with default happy-path handlers for
// the token-exchange, agreement-token, agreement-execution, vault and order
// endpoints.  Individual endpoints can be overridden with Handle, and every
// request is counted per path.
type Server struct {
	*httptest.Server

	t *testing.T

	mu       sync.Mutex
	calls    map[string]int
	handlers map[string]http.HandlerFunc
}

// NewServer starts a fake processor.  It is closed automatically when the
// test finishes.
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		t:        t,
		calls:    map[string]int{},
		handlers: map[string]http.HandlerFunc{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc(api.PathOAuthToken, s.dispatch(api.PathOAuthToken, s.handleToken))
	mux.HandleFunc(api.PathAgreementTokens, s.dispatch(api.PathAgreementTokens, s.handleAgreementToken))
	mux.HandleFunc(api.PathAgreements, s.dispatch(api.PathAgreements, s.handleExecute))
	mux.HandleFunc(api.PathPaymentTokens, s.dispatch(api.PathPaymentTokens, s.handleVault))
	mux.HandleFunc(api.PathOrders, s.dispatch(api.PathOrders, s.handleOrder))

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)

	return s
}

// Handle replaces the handler for path.  The per-path call counter still
// increments.
func (s *Server) Handle(path string, handler http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers[path] = handler
}

// Calls reports how many requests have reached path.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls[path]
}

func (s *Server) dispatch(path string, fallback http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[path]++
		handler := s.handlers[path]
		s.mu.Unlock()

		if handler != nil {
			handler(w, r)

			return
		}

		fallback(w, r)
	}
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	assert.Equal(s.t, http.MethodPost, r.Method)
	assert.NoError(s.t, r.ParseForm())
	assert.Equal(s.t, api.GrantClientCredentials, r.PostForm.Get("grant_type"))

	_, _, ok := r.BasicAuth()
	assert.True(s.t, ok, "token exchange must carry Basic auth")

	writeJSON(w, fmt.Sprintf(`{"access_token":%q,"token_type":"Bearer","expires_in":32400}`, AccessToken))
}

func (s *Server) handleAgreementToken(w http.ResponseWriter, r *http.Request) {
	s.requireSession(r)

	writeJSON(w, fmt.Sprintf(`{"token_id":%q,"links":[{"href":%q,"rel":"approval_url","method":"POST"},{"href":"https://example.invalid/self","rel":"self","method":"GET"}]}`, AgreementToken, ApprovalURL))
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	s.requireSession(r)

	writeJSON(w, fmt.Sprintf(`{"id":%q,"state":"ACTIVE","payer":{"payer_info":{"payer_id":%q}}}`, AgreementID, PayerID))
}

func (s *Server) handleVault(w http.ResponseWriter, r *http.Request) {
	s.requireSession(r)

	writeJSON(w, fmt.Sprintf(`{"id":%q}`, PaymentTokenID))
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	s.requireSession(r)

	writeJSON(w, fmt.Sprintf(`{"id":%q,"status":"COMPLETED"}`, OrderID))
}

// requireSession verifies the headers every authenticated call must carry.
func (s *Server) requireSession(r *http.Request) {
	assert.Equal(s.t, http.MethodPost, r.Method)
	assert.Equal(s.t, "Bearer "+AccessToken, r.Header.Get("Authorization"))
	assert.Equal(s.t, "application/json", r.Header.Get("Content-Type"))
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
