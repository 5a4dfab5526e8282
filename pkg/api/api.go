// Package api holds the wire types exchanged with PayPal's REST API.  The
// field names and JSON tags reproduce the processor's contract and must
// not be "improved"; PayPal owns this shape.
package api

// Paths of the endpoints involved in the billing-agreement workflow,
// relative to the environment's base endpoint.
const (
	PathOAuthToken      = "/v1/oauth2/token"
	PathAgreementTokens = "/v1/billing-agreements/agreement-tokens"
	PathAgreements      = "/v1/billing-agreements/agreements"
	PathPaymentTokens   = "/v3/vault/payment-tokens"
	PathOrders          = "/v2/checkout/orders"
)

// Constants the workflow sends verbatim.
const (
	PaymentMethodPayPal    = "PAYPAL"
	PlanMerchantInitiated  = "MERCHANT_INITIATED_BILLING"
	AcceptAnyPaymentType   = "ANY"
	TokenTypeBillingAgmt   = "BILLING_AGREEMENT"
	TokenTypePaymentMethod = "PAYMENT_METHOD_TOKEN"
	IntentCapture          = "CAPTURE"
	RelApprovalURL         = "approval_url"
	GrantClientCredentials = "client_credentials"
)

// Link is a HATEOAS link as returned in PayPal's links arrays.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}
