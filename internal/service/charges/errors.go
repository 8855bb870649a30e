package charges

import "errors"

var (
	// ErrMissingPaymentMethod and ErrMissingPlan reject a request before any
	// processor or storage call is made.
	ErrMissingPaymentMethod = errors.New("missing paymentMethodId")
	ErrMissingPlan          = errors.New("missing planId")

	// ErrUnknownPlan means the planId is not in the authoritative catalog:
	// either a stale client or tampering. Checked before the processor call.
	ErrUnknownPlan = errors.New("unknown plan")
)

// DeclineError is a validation-class processor decline (insufficient funds,
// invalid card). Its message is actionable by the payer and safe to surface.
// Every other processor failure gets a generic message instead.
type DeclineError struct {
	Message string
}

func (e *DeclineError) Error() string {
	return e.Message
}
