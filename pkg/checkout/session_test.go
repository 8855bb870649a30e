package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"enrollment-app/internal/domain/plans"
)

type fakeConfirmer struct {
	secrets []string
	err     error
}

func (f *fakeConfirmer) ConfirmPayment(_ context.Context, clientSecret string) error {
	f.secrets = append(f.secrets, clientSecret)
	return f.err
}

type fakeTokenizer struct {
	token string
	err   error
	calls int
}

func (f *fakeTokenizer) Tokenize(_ context.Context, _ PayerIdentity) (string, error) {
	f.calls++
	return f.token, f.err
}

func jsonHandler(status int, body map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

func testRequest() ChargeRequest {
	return ChargeRequest{PlanID: 1, PaymentMethodID: "pm_1", Email: "a@b.com", FullName: "Jane Doe", Currency: "usd"}
}

func TestSubmitSucceeded(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, map[string]any{
		"success":         true,
		"paymentIntentId": "pi_123",
	}))
	defer srv.Close()

	s := NewSession(srv.URL, srv.Client(), &fakeConfirmer{})
	if err := s.Submit(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.State() != StateCompleted {
		t.Fatalf("expected Completed, got %s", s.State())
	}
	if s.PaymentIntentID() != "pi_123" {
		t.Fatalf("expected pi_123, got %q", s.PaymentIntentID())
	}
}

func TestSubmitRequiresAction(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, map[string]any{
		"requiresAction": true,
		"clientSecret":   "sec_123",
	}))
	defer srv.Close()

	t.Run("completes only when confirmation succeeds", func(t *testing.T) {
		confirmer := &fakeConfirmer{}
		s := NewSession(srv.URL, srv.Client(), confirmer)

		if err := s.Submit(context.Background(), testRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State() != StateCompleted {
			t.Fatalf("expected Completed, got %s", s.State())
		}
		if len(confirmer.secrets) != 1 || confirmer.secrets[0] != "sec_123" {
			t.Fatalf("expected confirmation with sec_123, got %v", confirmer.secrets)
		}
	})

	t.Run("fails with the processor reason when confirmation fails", func(t *testing.T) {
		confirmer := &fakeConfirmer{err: errors.New("challenge was cancelled")}
		s := NewSession(srv.URL, srv.Client(), confirmer)

		err := s.Submit(context.Background(), testRequest())
		if err == nil {
			t.Fatal("expected an error")
		}
		if s.State() != StateFailed {
			t.Fatalf("expected Failed, got %s", s.State())
		}
		if s.FailureReason() != "challenge was cancelled" {
			t.Fatalf("unexpected reason: %q", s.FailureReason())
		}
	})
}

func TestSubmitServerError(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusBadRequest, map[string]any{
		"error": "Your card was declined.",
	}))
	defer srv.Close()

	s := NewSession(srv.URL, srv.Client(), &fakeConfirmer{})
	err := s.Submit(context.Background(), testRequest())
	if err == nil || err.Error() != "Your card was declined." {
		t.Fatalf("expected decline message, got %v", err)
	}
	if s.State() != StateFailed {
		t.Fatalf("expected Failed, got %s", s.State())
	}
}

func TestSubmitRejectedWhileInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		jsonHandler(http.StatusOK, map[string]any{"success": true, "paymentIntentId": "pi_1"})(w, r)
	}))
	defer srv.Close()

	s := NewSession(srv.URL, srv.Client(), &fakeConfirmer{})

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background(), testRequest()) }()
	<-entered

	if err := s.Submit(context.Background(), testRequest()); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
}

func TestResetDiscardsInFlightResult(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		jsonHandler(http.StatusOK, map[string]any{"success": true, "paymentIntentId": "pi_1"})(w, r)
	}))
	defer srv.Close()

	s := NewSession(srv.URL, srv.Client(), &fakeConfirmer{})

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background(), testRequest()) }()
	<-entered

	// User navigated back to plan selection: the session resets and the
	// dispatched request must not apply its result.
	s.Reset()
	close(release)

	if err := <-done; !errors.Is(err, ErrStaleAttempt) {
		t.Fatalf("expected ErrStaleAttempt, got %v", err)
	}
	if s.State() != StateEditing {
		t.Fatalf("expected Editing after reset, got %s", s.State())
	}
	if s.PaymentIntentID() != "" {
		t.Fatal("stale result must not be applied")
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, map[string]any{
		"success":         true,
		"paymentIntentId": "pi_1",
	}))
	defer srv.Close()

	s := NewSession(srv.URL, srv.Client(), &fakeConfirmer{})
	if err := s.Submit(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Submit(context.Background(), testRequest()); !errors.Is(err, ErrCheckoutComplete) {
		t.Fatalf("expected ErrCheckoutComplete, got %v", err)
	}
}

func TestFailedAllowsFreshAttempt(t *testing.T) {
	attempt := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempt++
		if attempt == 1 {
			jsonHandler(http.StatusBadRequest, map[string]any{"error": "Your card was declined."})(w, r)
			return
		}
		jsonHandler(http.StatusOK, map[string]any{"success": true, "paymentIntentId": "pi_2"})(w, r)
	}))
	defer srv.Close()

	s := NewSession(srv.URL, srv.Client(), &fakeConfirmer{})

	if err := s.Submit(context.Background(), testRequest()); err == nil {
		t.Fatal("expected first attempt to fail")
	}
	if s.State() != StateFailed {
		t.Fatalf("expected Failed, got %s", s.State())
	}

	// A new request with a fresh token may be submitted after a failure.
	fresh := testRequest()
	fresh.PaymentMethodID = "pm_2"
	if err := s.Submit(context.Background(), fresh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.State() != StateCompleted || s.PaymentIntentID() != "pi_2" {
		t.Fatalf("unexpected end state: %s %q", s.State(), s.PaymentIntentID())
	}
}

func TestCheckoutTokenizesBeforeSubmitting(t *testing.T) {
	identity := PayerIdentity{FullName: "Jane Doe", Email: "jane@example.com"}

	t.Run("tokenization failure never reaches the endpoint", func(t *testing.T) {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
		}))
		defer srv.Close()

		s := NewSession(srv.URL, srv.Client(), &fakeConfirmer{})
		tok := &fakeTokenizer{err: errors.New("card number is invalid")}

		err := s.Checkout(context.Background(), selectedPlan(t, 1), identity, tok)
		if err == nil {
			t.Fatal("expected tokenization error")
		}
		if hits != 0 {
			t.Fatal("charge endpoint must not be called when tokenization fails")
		}
		if s.State() != StateEditing {
			t.Fatalf("expected Editing, got %s", s.State())
		}
	})

	t.Run("token flows into the submitted request", func(t *testing.T) {
		var got ChargeRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			jsonHandler(http.StatusOK, map[string]any{"success": true, "paymentIntentId": "pi_1"})(w, r)
		}))
		defer srv.Close()

		s := NewSession(srv.URL, srv.Client(), &fakeConfirmer{})
		tok := &fakeTokenizer{token: "pm_fresh"}

		sel := NewSelection(plans.Default())
		if err := sel.Select(3); err != nil {
			t.Fatalf("select: %v", err)
		}
		if err := s.Checkout(context.Background(), sel, identity, tok); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.calls != 1 {
			t.Fatalf("expected one tokenization, got %d", tok.calls)
		}
		if got.PaymentMethodID != "pm_fresh" || got.PlanID != 3 {
			t.Fatalf("unexpected request body: %+v", got)
		}
	})
}
