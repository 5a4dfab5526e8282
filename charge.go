package agreements

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alinrajpoot/paypal-agreements/pkg/api"
)

// DefaultCurrency is the currency used when WithCurrency is not given.
const DefaultCurrency = "USD"

const orderDescription = "Reference transaction against a billing agreement."

type chargeConfig struct {
	currency    string
	description string
}

// ChargeOption alters a single ChargeCustomer call.
type ChargeOption func(*chargeConfig) error

// WithCurrency is a ChargeOption that sets the ISO 4217 currency code of
// the charge.
func WithCurrency(code string) ChargeOption {
	return func(c *chargeConfig) error {
		c.currency = code

		return nil
	}
}

// WithDescription is a ChargeOption that replaces the purchase unit's
// description.
func WithDescription(description string) ChargeOption {
	return func(c *chargeConfig) error {
		c.description = description

		return nil
	}
}

// ChargeCustomer charges amount against an executed billing agreement.
// The amount is passed through as a decimal-formatted string without local
// validation; the processor is the authority on rejecting malformed,
// zero or negative values.
//
// The charge is two remote steps: the agreement is converted into a
// single-use payment-method token via the vault, and that token then funds
// a captured order.  The steps are not atomic and there is no rollback; if
// order creation fails after the token was minted, the token is abandoned.
// Callers needing exactly-once semantics must reconcile externally.
//
// payerID is accepted for symmetry with ExecuteAgreement's result and for
// forward compatibility; the reference transaction is keyed by the
// agreement alone.
func (c *Client) ChargeCustomer(ctx context.Context, payerID, agreementID, amount string, opts ...ChargeOption) (*api.Order, error) {
	const op = "charge customer"

	cfg := chargeConfig{
		currency:    DefaultCurrency,
		description: orderDescription,
	}

	var errs error
	for _, opt := range opts {
		errs = errors.Join(errs, opt(&cfg))
	}

	if errs != nil {
		return nil, fmt.Errorf("%s: %w", op, errs)
	}

	session, err := c.AuthSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	paymentToken, err := c.mintPaymentToken(ctx, session, agreementID)
	if err != nil {
		return nil, err
	}

	order, err := c.createOrder(ctx, session, paymentToken, amount, cfg)
	if err != nil {
		return nil, err
	}

	c.logger().Info("customer charged",
		slog.String("agreement_id", agreementID),
		slog.String("order_id", order.ID),
		slog.String("amount", amount),
		slog.String("currency", cfg.currency),
	)

	return order, nil
}

// mintPaymentToken converts the billing agreement into a single-use
// payment-method token.
func (c *Client) mintPaymentToken(ctx context.Context, session *AuthSession, agreementID string) (string, error) {
	const op = "mint payment token"

	payload := api.PaymentTokenRequest{
		PaymentSource: api.PaymentSource{
			Token: api.PaymentSourceToken{
				ID:   agreementID,
				Type: api.TokenTypeBillingAgmt,
			},
		},
	}

	body, err := c.postJSON(ctx, session, op, api.PathPaymentTokens, payload)
	if err != nil {
		return "", err
	}

	var res api.PaymentTokenResponse
	if err := decodeResponse(body, &res); err != nil {
		return "", FailedRequest(op, err)
	}

	if res.ID == "" {
		return "", fmt.Errorf("%s: %w", op, ErrPaymentTokenNotReturned)
	}

	return res.ID, nil
}

// createOrder creates and captures an order funded by the minted
// payment-method token.
func (c *Client) createOrder(ctx context.Context, session *AuthSession, paymentToken, amount string, cfg chargeConfig) (*api.Order, error) {
	const op = "create order"

	payload := api.OrderRequest{
		Intent: api.IntentCapture,
		PurchaseUnits: []api.PurchaseUnit{
			{
				Amount: api.Amount{
					CurrencyCode: cfg.currency,
					Value:        amount,
				},
				Description: cfg.description,
			},
		},
		PaymentSource: &api.PaymentSource{
			Token: api.PaymentSourceToken{
				ID:   paymentToken,
				Type: api.TokenTypePaymentMethod,
			},
		},
	}

	body, err := c.postJSON(ctx, session, op, api.PathOrders, payload)
	if err != nil {
		return nil, err
	}

	var res api.OrderResponse
	if err := decodeResponse(body, &res); err != nil {
		return nil, FailedRequest(op, err)
	}

	if res.ID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrOrderIDNotFound)
	}

	return &api.Order{
		ID:     res.ID,
		Status: res.Status,
		Raw:    body,
	}, nil
}
