package stripe

import (
	"context"
	"fmt"

	"enrollment-app/internal/service/charges"

	stripego "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/customer"
	"github.com/stripe/stripe-go/v75/paymentintent"
)

// Gateway is the stripe-go implementation of charges.PaymentGateway.
type Gateway struct{}

func NewGateway(secretKey string) *Gateway {
	stripego.Key = secretKey
	return &Gateway{}
}

func (g *Gateway) FindCustomerByEmail(ctx context.Context, email string) (*charges.Customer, error) {
	params := &stripego.CustomerListParams{Email: stripego.String(email)}
	params.Context = ctx
	params.Limit = stripego.Int64(1)

	it := customer.List(params)
	for it.Next() {
		c := it.Customer()
		return &charges.Customer{ID: c.ID, Email: c.Email}, nil
	}
	if err := it.Err(); err != nil {
		return nil, translate(err)
	}
	return nil, nil
}

func (g *Gateway) CreateCustomer(ctx context.Context, email, fullName, paymentMethodID string) (*charges.Customer, error) {
	params := &stripego.CustomerParams{
		Email:         stripego.String(email),
		Name:          stripego.String(fullName),
		PaymentMethod: stripego.String(paymentMethodID),
		InvoiceSettings: &stripego.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripego.String(paymentMethodID),
		},
	}
	params.Context = ctx

	cus, err := customer.New(params)
	if err != nil {
		return nil, translate(err)
	}
	return &charges.Customer{ID: cus.ID, Email: cus.Email}, nil
}

func (g *Gateway) CreatePaymentIntent(ctx context.Context, p charges.CreateIntentParams) (*charges.PaymentIntent, error) {
	params := &stripego.PaymentIntentParams{
		Amount:        stripego.Int64(p.AmountCents),
		Currency:      stripego.String(p.Currency),
		PaymentMethod: stripego.String(p.PaymentMethodID),

		// Immediate confirmation with in-page step-up only: this is an
		// embedded checkout, so redirect-based challenges are disallowed.
		Confirm: stripego.Bool(true),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripego.Bool(true),
			AllowRedirects: stripego.String(string(stripego.PaymentIntentAutomaticPaymentMethodsAllowRedirectsNever)),
		},
	}
	params.Context = ctx
	if p.Description != "" {
		params.Description = stripego.String(p.Description)
	}
	if p.CustomerID != "" {
		params.Customer = stripego.String(p.CustomerID)
	}
	if p.ReceiptEmail != "" {
		params.ReceiptEmail = stripego.String(p.ReceiptEmail)
	}
	if p.IdempotencyKey != "" {
		params.IdempotencyKey = stripego.String(p.IdempotencyKey)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, translate(err)
	}
	return &charges.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       NormalizeIntentStatus(intent.Status),
	}, nil
}

// translate converts validation-class Stripe errors into *charges.DeclineError
// so their message reaches the payer; everything else passes through wrapped.
func translate(err error) error {
	if msg, ok := declineMessage(err); ok {
		return &charges.DeclineError{Message: msg}
	}
	return fmt.Errorf("stripe: %w", err)
}
