package charges

import (
	"context"

	"enrollment-app/internal/domain/billing"
	"enrollment-app/internal/domain/payers"
)

// PayerRepository is the local payer store. FindByEmail returns (nil, nil)
// when no record exists.
type PayerRepository interface {
	FindByEmail(ctx context.Context, email string) (*payers.Payer, error)
	Create(ctx context.Context, p *payers.Payer) error
}

// ChargeRepository records collection attempts once the processor has
// acknowledged them.
type ChargeRepository interface {
	Create(ctx context.Context, ch *billing.Charge) error
}

// Customer is the processor-side customer handle.
type Customer struct {
	ID    string
	Email string
}

// PaymentIntent is the processor's view of a charge attempt. Status is
// normalized to the billing package constants where possible.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

type CreateIntentParams struct {
	AmountCents     int64
	Currency        string
	CustomerID      string
	PaymentMethodID string
	Description     string
	ReceiptEmail    string
	IdempotencyKey  string
}

// PaymentGateway abstracts the payment processor. Implementations translate
// validation-class processor declines into *DeclineError.
type PaymentGateway interface {
	FindCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	CreateCustomer(ctx context.Context, email, fullName, paymentMethodID string) (*Customer, error)
	CreatePaymentIntent(ctx context.Context, params CreateIntentParams) (*PaymentIntent, error)
}
