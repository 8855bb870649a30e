package stripe

import (
	"errors"
	"testing"

	"enrollment-app/internal/domain/billing"
	"enrollment-app/internal/service/charges"

	stripego "github.com/stripe/stripe-go/v75"
)

func TestNormalizeIntentStatus(t *testing.T) {
	cases := []struct {
		in   stripego.PaymentIntentStatus
		want string
	}{
		{stripego.PaymentIntentStatusRequiresAction, billing.StatusRequiresAction},
		{stripego.PaymentIntentStatusSucceeded, billing.StatusSucceeded},
		{stripego.PaymentIntentStatusRequiresPaymentMethod, "requires_payment_method"},
		{stripego.PaymentIntentStatusCanceled, "canceled"},
	}
	for _, tc := range cases {
		if got := NormalizeIntentStatus(tc.in); got != tc.want {
			t.Fatalf("status %q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestTranslate(t *testing.T) {
	t.Run("card error becomes decline with message", func(t *testing.T) {
		err := translate(&stripego.Error{Type: stripego.ErrorTypeCard, Msg: "Your card was declined."})
		var decline *charges.DeclineError
		if !errors.As(err, &decline) {
			t.Fatalf("expected DeclineError, got %T: %v", err, err)
		}
		if decline.Message != "Your card was declined." {
			t.Fatalf("unexpected message: %q", decline.Message)
		}
	})

	t.Run("invalid request becomes decline", func(t *testing.T) {
		err := translate(&stripego.Error{Type: stripego.ErrorTypeInvalidRequest, Msg: "No such payment_method."})
		var decline *charges.DeclineError
		if !errors.As(err, &decline) {
			t.Fatalf("expected DeclineError, got %T: %v", err, err)
		}
	})

	t.Run("api error stays generic", func(t *testing.T) {
		err := translate(&stripego.Error{Type: stripego.ErrorTypeAPI, Msg: "internal detail"})
		var decline *charges.DeclineError
		if errors.As(err, &decline) {
			t.Fatal("API errors must not surface as declines")
		}
	})

	t.Run("non stripe error stays generic", func(t *testing.T) {
		err := translate(errors.New("connection reset"))
		var decline *charges.DeclineError
		if errors.As(err, &decline) {
			t.Fatal("plain errors must not surface as declines")
		}
	})
}
