// Package agreements orchestrates PayPal's billing-agreement workflow so
// that a merchant can charge a customer later without the customer being
// present.  The workflow has three steps: create an agreement token and
// send the customer to the returned approval URL, exchange the approved
// token for a durable billing agreement, and charge that agreement through
// a reference transaction.
//
// A Client authenticates once with an OAuth2 client-credentials exchange
// and reuses the resulting bearer token for every call until the client is
// reconfigured or the session is explicitly invalidated.  Token expiry is
// not tracked; long-running processes that outlive the processor's token
// TTL should call InvalidateSession themselves.
//
// Defaults
//
//   - If the WithHTTPClient option is not specified, a client using the
//     http.DefaultTransport is used.
//   - If the WithLogger option is not specified, a No-Op logger is used.
//   - If the WithEndpoint option is not specified, the base endpoint is
//     chosen by the sandbox flag passed to New or Configure.
package agreements
