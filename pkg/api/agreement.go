package api

// AgreementTokenRequest creates a pending billing-agreement token that the
// customer must approve before it can be executed.
type AgreementTokenRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	Payer       Payer  `json:"payer"`
	Plan        Plan   `json:"plan"`
}

// Payer names the payment method backing the agreement.
type Payer struct {
	PaymentMethod string `json:"payment_method"`
}

// Plan describes how the merchant intends to use the agreement.
type Plan struct {
	Type                string              `json:"type"`
	MerchantPreferences MerchantPreferences `json:"merchant_preferences"`
}

// MerchantPreferences carries the redirect URLs for the customer's consent
// flow and the agreement's setup fee.
type MerchantPreferences struct {
	ReturnURL           string   `json:"return_url"`
	CancelURL           string   `json:"cancel_url"`
	AcceptedPaymentType string   `json:"accepted_pymt_type"`
	SetupFee            SetupFee `json:"setup_fee"`
}

// SetupFee is a v1-style money value.
type SetupFee struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// AgreementTokenResponse is the processor's answer to an agreement-token
// creation.  The approval URL the customer must visit is one of the links.
type AgreementTokenResponse struct {
	TokenID string `json:"token_id,omitempty"`
	Links   []Link `json:"links"`
}

// ExecuteAgreementRequest exchanges an approved agreement token for a
// durable billing agreement.
type ExecuteAgreementRequest struct {
	TokenID string `json:"token_id"`
}

// AgreementResponse is the processor's representation of an executed
// billing agreement.
type AgreementResponse struct {
	ID    string       `json:"id"`
	State string       `json:"state,omitempty"`
	Payer PayerDetails `json:"payer"`
}

// PayerDetails nests the payer's identity inside the agreement response.
type PayerDetails struct {
	PayerInfo PayerInfo `json:"payer_info"`
}

// PayerInfo identifies the payer who approved the agreement.
type PayerInfo struct {
	PayerID string `json:"payer_id"`
	Email   string `json:"email,omitempty"`
}

// Agreement is the durable authorization produced by executing an approved
// agreement token.  It is what callers persist to charge the payer later.
type Agreement struct {
	ID      string
	PayerID string
}
