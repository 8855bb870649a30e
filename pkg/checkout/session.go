package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// State is the submit-side protocol state. Completed and Failed are terminal
// for the request that produced them; after Failed a brand-new request (with
// a freshly obtained token) may be submitted on the same session.
type State string

const (
	StateEditing             State = "editing"
	StateSubmitting          State = "submitting"
	StateConfirmingChallenge State = "confirming_challenge"
	StateCompleted           State = "completed"
	StateFailed              State = "failed"
)

var (
	// ErrSubmissionInFlight rejects a resubmission while a charge attempt is
	// pending, so one session can never double-charge.
	ErrSubmissionInFlight = errors.New("a charge attempt is already in flight")

	// ErrCheckoutComplete rejects further charge actions after success.
	ErrCheckoutComplete = errors.New("checkout already completed")

	// ErrStaleAttempt is returned when the session was reset while the
	// attempt was in flight; the result has been discarded, not applied.
	ErrStaleAttempt = errors.New("charge attempt outlived its session")
)

// Tokenizer is the processor's client-side tokenization step. It yields an
// opaque single-use token; raw card data never passes through this package.
type Tokenizer interface {
	Tokenize(ctx context.Context, identity PayerIdentity) (string, error)
}

// Confirmer drives the processor's in-page step-up confirmation (3-D Secure
// and friends) with the opaque challenge secret.
type Confirmer interface {
	ConfirmPayment(ctx context.Context, clientSecret string) error
}

// Session drives one checkout against the charge endpoint and holds the
// protocol state. Each attempt is bound to the session epoch at submit time;
// Reset bumps the epoch so a result landing afterwards is discarded instead
// of being applied to reinitialized state.
type Session struct {
	endpoint  string
	client    *http.Client
	confirmer Confirmer

	mu              sync.Mutex
	state           State
	epoch           uint64
	paymentIntentID string
	failureReason   string
}

func NewSession(endpoint string, client *http.Client, confirmer Confirmer) *Session {
	if client == nil {
		client = http.DefaultClient
	}
	return &Session{
		endpoint:  endpoint,
		client:    client,
		confirmer: confirmer,
		state:     StateEditing,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// PaymentIntentID is set once the session reaches Completed via the direct
// success path. It is empty after a challenge confirmation, where the
// processor's client library owns the final intent handle.
func (s *Session) PaymentIntentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentIntentID
}

func (s *Session) FailureReason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failureReason
}

// Reset returns the session to editing and invalidates any attempt still in
// flight. The dispatched processor call completes or fails on its own; its
// result just never touches this session again.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.state = StateEditing
	s.paymentIntentID = ""
	s.failureReason = ""
}

// Checkout runs one full attempt in order: tokenize, build the request,
// submit. Tokenization must complete before the request is built; a
// tokenization failure surfaces inline on the form and the charge endpoint is
// never reached.
func (s *Session) Checkout(ctx context.Context, sel *Selection, identity PayerIdentity, tok Tokenizer) error {
	token, err := tok.Tokenize(ctx, identity)
	if err != nil {
		return fmt.Errorf("tokenize payment method: %w", err)
	}
	req, err := BuildChargeRequest(sel, identity, token)
	if err != nil {
		return err
	}
	return s.Submit(ctx, req)
}

// Submit posts the request and drives the status protocol to a terminal
// state. The token inside req is single-use: after a failure, obtain a fresh
// token and build a new request rather than resubmitting this one.
func (s *Session) Submit(ctx context.Context, req ChargeRequest) error {
	s.mu.Lock()
	switch s.state {
	case StateSubmitting, StateConfirmingChallenge:
		s.mu.Unlock()
		return ErrSubmissionInFlight
	case StateCompleted:
		s.mu.Unlock()
		return ErrCheckoutComplete
	}
	s.state = StateSubmitting
	s.paymentIntentID = ""
	s.failureReason = ""
	epoch := s.epoch
	s.mu.Unlock()

	resp, err := s.post(ctx, req)
	if err != nil {
		return s.fail(epoch, "An unexpected error occurred while processing your payment. Please try again.")
	}
	if resp.Error != "" {
		return s.fail(epoch, resp.Error)
	}

	if resp.RequiresAction {
		if resp.ClientSecret == "" {
			return s.fail(epoch, "Payment requires confirmation but no challenge was provided.")
		}
		if err := s.transition(epoch, StateConfirmingChallenge); err != nil {
			return err
		}
		if s.confirmer == nil {
			return s.fail(epoch, "Payment confirmation is not available.")
		}
		if err := s.confirmer.ConfirmPayment(ctx, resp.ClientSecret); err != nil {
			return s.fail(epoch, err.Error())
		}
		return s.complete(epoch, resp.PaymentIntentID)
	}

	if resp.Success {
		return s.complete(epoch, resp.PaymentIntentID)
	}
	return s.fail(epoch, "Payment failed. Please try again.")
}

type chargeResponse struct {
	Success         bool   `json:"success"`
	PaymentIntentID string `json:"paymentIntentId"`
	RequiresAction  bool   `json:"requiresAction"`
	ClientSecret    string `json:"clientSecret"`
	Error           string `json:"error"`
}

func (s *Session) post(ctx context.Context, body ChargeRequest) (*chargeResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	var out chargeResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if httpResp.StatusCode != http.StatusOK && out.Error == "" {
		out.Error = "Payment failed. Please try again."
	}
	return &out, nil
}

func (s *Session) transition(epoch uint64, to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return ErrStaleAttempt
	}
	s.state = to
	return nil
}

func (s *Session) complete(epoch uint64, paymentIntentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return ErrStaleAttempt
	}
	s.state = StateCompleted
	s.paymentIntentID = paymentIntentID
	return nil
}

func (s *Session) fail(epoch uint64, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return ErrStaleAttempt
	}
	s.state = StateFailed
	s.failureReason = reason
	return errors.New(reason)
}
