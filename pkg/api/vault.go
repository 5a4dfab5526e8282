package api

// PaymentTokenRequest converts a billing agreement into a single-use
// payment-method token via the vault.
type PaymentTokenRequest struct {
	PaymentSource PaymentSource `json:"payment_source"`
}

// PaymentTokenResponse is the vault's answer; ID is the minted
// payment-method token.
type PaymentTokenResponse struct {
	ID    string `json:"id"`
	Links []Link `json:"links,omitempty"`
}
