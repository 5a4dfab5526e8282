package agreements

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alinrajpoot/paypal-agreements/pkg/api"
)

const (
	agreementName        = "Billing Agreement"
	agreementDescription = "Billing agreement for merchant-initiated payments."

	// The agreement must start in the future; one minute gives the
	// customer time to complete the consent flow.
	agreementStartDelay = time.Minute
)

// CreateAgreementToken creates a pending billing-agreement token and
// returns the approval URL the customer must be redirected to.  The
// redirect itself, and handling the processor's callback to returnURL or
// cancelURL, are the caller's responsibility.
func (c *Client) CreateAgreementToken(ctx context.Context, returnURL, cancelURL string) (string, error) {
	const op = "create agreement token"

	session, err := c.AuthSession(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	payload := api.AgreementTokenRequest{
		Name:        agreementName,
		Description: agreementDescription,
		StartDate:   c.nowFunc()().UTC().Add(agreementStartDelay).Format(time.RFC3339),
		Payer: api.Payer{
			PaymentMethod: api.PaymentMethodPayPal,
		},
		Plan: api.Plan{
			Type: api.PlanMerchantInitiated,
			MerchantPreferences: api.MerchantPreferences{
				ReturnURL:           returnURL,
				CancelURL:           cancelURL,
				AcceptedPaymentType: api.AcceptAnyPaymentType,
				SetupFee: api.SetupFee{
					Value:    "0",
					Currency: DefaultCurrency,
				},
			},
		},
	}

	body, err := c.postJSON(ctx, session, op, api.PathAgreementTokens, payload)
	if err != nil {
		return "", err
	}

	var res api.AgreementTokenResponse
	if err := decodeResponse(body, &res); err != nil {
		return "", FailedRequest(op, err)
	}

	for _, link := range res.Links {
		if link.Rel == api.RelApprovalURL {
			c.logger().Info("agreement token created", slog.String("approval_url", link.Href))

			return link.Href, nil
		}
	}

	return "", fmt.Errorf("%s: %w", op, ErrApprovalURLNotFound)
}

// ExecuteAgreement exchanges an approved agreement token for a durable
// billing agreement.  A token is consumed by its first successful
// execution; re-executing it is rejected remotely by the processor.
func (c *Client) ExecuteAgreement(ctx context.Context, token string) (*api.Agreement, error) {
	const op = "execute agreement"

	session, err := c.AuthSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	payload := api.ExecuteAgreementRequest{
		TokenID: token,
	}

	body, err := c.postJSON(ctx, session, op, api.PathAgreements, payload)
	if err != nil {
		return nil, err
	}

	var res api.AgreementResponse
	if err := decodeResponse(body, &res); err != nil {
		return nil, FailedRequest(op, err)
	}

	if res.ID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrAgreementIDNotFound)
	}

	c.logger().Info("agreement executed", slog.String("agreement_id", res.ID))

	return &api.Agreement{
		ID:      res.ID,
		PayerID: res.Payer.PayerInfo.PayerID,
	}, nil
}
