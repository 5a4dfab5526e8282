// Command checkout walks the billing-agreement workflow against the
// PayPal sandbox.  On the first run it prints the approval URL the
// customer must visit; once approved, re-run it with PAYPAL_BA_TOKEN set
// to execute the agreement and charge it.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	agreements "github.com/alinrajpoot/paypal-agreements"
)

func main() {
	const (
		approvedTokenEnvVar = "PAYPAL_BA_TOKEN"
		returnURL           = "https://merchant.example/paypal/return"
		cancelURL           = "https://merchant.example/paypal/cancel"
		amount              = "55.00"
	)

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelDebug,
	}))

	client, err := agreements.NewFromEnv(agreements.WithLogger(log))
	if err != nil {
		log.Error("failed to create client", tint.Err(err))
		os.Exit(1)
	}

	ctx := context.Background()

	token, ok := os.LookupEnv(approvedTokenEnvVar)
	if !ok {
		approvalURL, err := client.CreateAgreementToken(ctx, returnURL, cancelURL)
		if err != nil {
			log.Error("failed to create agreement token", tint.Err(err))
			os.Exit(1)
		}

		log.Info("send the customer to the approval URL, then re-run with the approved token",
			slog.String("approval_url", approvalURL),
			slog.String("env_var", approvedTokenEnvVar),
		)

		return
	}

	agreement, err := client.ExecuteAgreement(ctx, token)
	if err != nil {
		log.Error("failed to execute agreement", tint.Err(err))
		os.Exit(1)
	}

	log.Info("agreement executed",
		slog.String("agreement_id", agreement.ID),
		slog.String("payer_id", agreement.PayerID),
	)

	order, err := client.ChargeCustomer(ctx, agreement.PayerID, agreement.ID, amount)
	if err != nil {
		log.Error("failed to charge customer", tint.Err(err))
		os.Exit(1)
	}

	log.Info("customer charged",
		slog.String("order_id", order.ID),
		slog.String("status", order.Status),
		slog.String("response", string(order.Raw)),
	)
}
