package api

import "encoding/json"

// OrderRequest creates (and, with IntentCapture, immediately captures) an
// order funded by a previously minted payment-method token.
type OrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
	PaymentSource *PaymentSource `json:"payment_source,omitempty"`
}

// PurchaseUnit contains the amount for an order.
type PurchaseUnit struct {
	Amount      Amount `json:"amount"`
	Description string `json:"description,omitempty"`
}

// Amount is a v2-style money value.
type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// PaymentSource funds an order or mints a vault token, depending on the
// token's type.
type PaymentSource struct {
	Token PaymentSourceToken `json:"token"`
}

// PaymentSourceToken references either a billing agreement or a minted
// payment-method token.
type PaymentSourceToken struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// OrderResponse carries the fields this library inspects on a created
// order.
type OrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

// Order is the result of a charge.  ID and Status are parsed for
// convenience; Raw preserves the processor's full response verbatim for
// callers that need fields this library does not model.
type Order struct {
	ID     string
	Status string
	Raw    json.RawMessage
}
