package stripe

import (
	"errors"

	"enrollment-app/internal/domain/billing"

	stripego "github.com/stripe/stripe-go/v75"
)

// NormalizeIntentStatus maps a Stripe PaymentIntent status onto the three
// states the checkout protocol acts on. Unknown statuses pass through raw so
// the resolver can log them before failing generically.
func NormalizeIntentStatus(s stripego.PaymentIntentStatus) string {
	switch s {
	case stripego.PaymentIntentStatusRequiresAction:
		return billing.StatusRequiresAction
	case stripego.PaymentIntentStatusSucceeded:
		return billing.StatusSucceeded
	default:
		return string(s)
	}
}

// declineMessage returns the payer-facing message for validation-class Stripe
// errors (card declines, bad requests). Anything else is not safe to surface.
func declineMessage(err error) (string, bool) {
	var sErr *stripego.Error
	if !errors.As(err, &sErr) {
		return "", false
	}
	switch sErr.Type {
	case stripego.ErrorTypeCard, stripego.ErrorTypeInvalidRequest:
		if sErr.Msg != "" {
			return sErr.Msg, true
		}
	}
	return "", false
}
