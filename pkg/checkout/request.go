package checkout

import (
	"errors"
	"fmt"
	"strings"

	"enrollment-app/internal/domain/plans"
)

// ErrMissingField is the validation condition for empty identity fields or a
// missing payment-method token.
var ErrMissingField = errors.New("missing required field")

// PayerIdentity is collected once per checkout attempt. It is not validated
// beyond presence before being sent onward.
type PayerIdentity struct {
	FullName string
	Email    string
}

// ChargeRequest is the wire body for the charge endpoint. It is built fresh
// per submit and must never be reused across retries: the payment-method
// token is single-use.
type ChargeRequest struct {
	PlanID          uint   `json:"planId"`
	PaymentMethodID string `json:"paymentMethodId"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	Currency        string `json:"currency,omitempty"`
}

// BuildChargeRequest assembles one request from the current selection, the
// payer identity, and a fresh payment-method token. It fails fast before any
// network call: the plan must resolve in this client's catalog copy and every
// field must be present.
func BuildChargeRequest(sel *Selection, identity PayerIdentity, paymentMethodID string) (ChargeRequest, error) {
	plan, err := sel.AdvanceToPayment()
	if err != nil {
		return ChargeRequest{}, err
	}
	if strings.TrimSpace(identity.FullName) == "" {
		return ChargeRequest{}, fmt.Errorf("%w: fullName", ErrMissingField)
	}
	if strings.TrimSpace(identity.Email) == "" {
		return ChargeRequest{}, fmt.Errorf("%w: email", ErrMissingField)
	}
	if strings.TrimSpace(paymentMethodID) == "" {
		return ChargeRequest{}, fmt.Errorf("%w: paymentMethodId", ErrMissingField)
	}

	return ChargeRequest{
		PlanID:          plan.ID,
		PaymentMethodID: paymentMethodID,
		Email:           identity.Email,
		FullName:        identity.FullName,
		Currency:        plan.Currency,
	}, nil
}

// AmountDueTodayCents mirrors the server's settlement formula for display and
// confirmation text only. The server always recomputes the real amount.
func AmountDueTodayCents(p plans.Plan) int64 {
	return plans.AmountDueCents(p)
}
