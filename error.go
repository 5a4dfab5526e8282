package agreements

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when an operation is invoked before the
// client has been given credentials via New or Configure.
var ErrNotConfigured = errors.New("client is not configured")

// ErrAuthenticationFailed is returned when the OAuth2 client-credentials
// exchange fails or its response carries no access token.
var ErrAuthenticationFailed = errors.New("authentication failed")

// ErrRequestFailed is returned when an API call fails at the transport
// level, returns a non-2xx status, or produces a response that cannot be
// decoded.
var ErrRequestFailed = errors.New("request failed")

// ErrApprovalURLNotFound is returned when the agreement-token response
// contains no link with rel "approval_url".
var ErrApprovalURLNotFound = errors.New("approval URL not found")

// ErrAgreementIDNotFound is returned when the agreement-execution response
// omits the agreement's id.
var ErrAgreementIDNotFound = errors.New("agreement ID not found")

// ErrPaymentTokenNotReturned is returned when the vault does not return an
// id for the minted payment-method token.
var ErrPaymentTokenNotReturned = errors.New("payment token not returned")

// ErrOrderIDNotFound is returned when the order creation response omits
// the order's id.
var ErrOrderIDNotFound = errors.New("order ID not found")

// ErrEnvVarNotFound is returned by NewFromEnv when a required environment
// variable is not present.
var ErrEnvVarNotFound = errors.New("environment variable not found")

// FailedAuthentication wraps err as an ErrAuthenticationFailed.
func FailedAuthentication(err error) error {
	return fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
}

// FailedRequest wraps err as an ErrRequestFailed for the named operation.
func FailedRequest(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrRequestFailed, err)
}
