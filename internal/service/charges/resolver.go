package charges

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"enrollment-app/internal/domain/billing"
	"enrollment-app/internal/domain/payers"
	"enrollment-app/internal/domain/plans"

	"github.com/google/uuid"
)

// ChargeRequest is the server-side view of one checkout submission. There is
// deliberately no amount field: the settlement amount is always derived from
// the catalog by plan id.
type ChargeRequest struct {
	PlanID          uint
	PaymentMethodID string
	Email           string
	FullName        string
	Currency        string
}

// Outcome is one of exactly three results: requires-action (carries the
// challenge secret), succeeded (carries the intent id), or an error.
type Outcome struct {
	RequiresAction  bool
	ClientSecret    string
	PaymentIntentID string
}

// Resolver is the trust boundary of the checkout: it re-derives the amount
// from its own catalog copy, finds-or-creates the payer, and creates the
// charge against the processor.
type Resolver struct {
	catalog         *plans.Catalog
	payerRepo       PayerRepository
	chargeRepo      ChargeRepository
	gateway         PaymentGateway
	defaultCurrency string
}

func NewResolver(catalog *plans.Catalog, payerRepo PayerRepository, chargeRepo ChargeRepository, gateway PaymentGateway, defaultCurrency string) *Resolver {
	return &Resolver{
		catalog:         catalog,
		payerRepo:       payerRepo,
		chargeRepo:      chargeRepo,
		gateway:         gateway,
		defaultCurrency: defaultCurrency,
	}
}

func (r *Resolver) CreateCharge(ctx context.Context, req ChargeRequest) (Outcome, error) {
	if strings.TrimSpace(req.PaymentMethodID) == "" {
		return Outcome{}, ErrMissingPaymentMethod
	}
	if req.PlanID == 0 {
		return Outcome{}, ErrMissingPlan
	}

	// Must fail before any processor call so an invalid plan is never charged.
	plan, ok := r.catalog.Get(req.PlanID)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %d", ErrUnknownPlan, req.PlanID)
	}

	amountDue := plans.AmountDueCents(plan)

	currency := plan.Currency
	if currency == "" {
		currency = req.Currency
	}
	if currency == "" {
		currency = r.defaultCurrency
	}

	var payer *payers.Payer
	if strings.TrimSpace(req.Email) != "" {
		var err error
		payer, err = r.ensurePayer(ctx, req)
		if err != nil {
			return Outcome{}, err
		}
	}

	params := CreateIntentParams{
		AmountCents:     amountDue,
		Currency:        currency,
		PaymentMethodID: req.PaymentMethodID,
		Description:     fmt.Sprintf("Enrollment for Plan ID: %d", plan.ID),
		ReceiptEmail:    req.Email,
		IdempotencyKey:  uuid.NewString(),
	}
	if payer != nil {
		params.CustomerID = payer.StripeCustomerID
	}

	intent, err := r.gateway.CreatePaymentIntent(ctx, params)
	if err != nil {
		var decline *DeclineError
		if errors.As(err, &decline) {
			return Outcome{}, decline
		}
		log.Printf("payment intent creation failed (plan %d): %v", plan.ID, err)
		return Outcome{}, fmt.Errorf("create payment intent: %w", err)
	}

	switch intent.Status {
	case billing.StatusRequiresAction:
		r.recordCharge(ctx, payer, plan, intent, amountDue, currency)
		return Outcome{RequiresAction: true, ClientSecret: intent.ClientSecret}, nil

	case billing.StatusSucceeded:
		r.recordCharge(ctx, payer, plan, intent, amountDue, currency)
		return Outcome{PaymentIntentID: intent.ID}, nil

	default:
		log.Printf("unhandled payment intent status %q for intent %s", intent.Status, intent.ID)
		return Outcome{}, fmt.Errorf("payment intent %s returned unexpected status %q", intent.ID, intent.Status)
	}
}

// ensurePayer finds-or-creates the payer by email. The local row caches the
// processor customer id; on a local miss the processor is consulted before a
// new customer is created with the incoming payment method as its default.
//
// Two concurrent first-time checkouts with the same new email can still race
// to create two processor customers; the unique index on email means only one
// local row wins and the loser re-finds it.
func (r *Resolver) ensurePayer(ctx context.Context, req ChargeRequest) (*payers.Payer, error) {
	existing, err := r.payerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find payer: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	cus, err := r.gateway.FindCustomerByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if cus == nil {
		cus, err = r.gateway.CreateCustomer(ctx, req.Email, req.FullName, req.PaymentMethodID)
		if err != nil {
			return nil, fmt.Errorf("create customer: %w", err)
		}
	}

	payer := &payers.Payer{
		FullName:         req.FullName,
		Email:            req.Email,
		StripeCustomerID: cus.ID,
	}
	if err := r.payerRepo.Create(ctx, payer); err != nil {
		// Lost the insert race: another request created the row first.
		if again, findErr := r.payerRepo.FindByEmail(ctx, req.Email); findErr == nil && again != nil {
			return again, nil
		}
		return nil, fmt.Errorf("create payer: %w", err)
	}
	return payer, nil
}

// recordCharge persists the attempt after the processor has acknowledged it.
// The intent already exists at the processor, so a storage failure here is
// logged and reconciled by the webhook rather than failing the checkout.
func (r *Resolver) recordCharge(ctx context.Context, payer *payers.Payer, plan plans.Plan, intent *PaymentIntent, amountCents int64, currency string) {
	ch := &billing.Charge{
		PlanID:                plan.ID,
		StripePaymentIntentID: intent.ID,
		AmountCents:           amountCents,
		Currency:              currency,
		Status:                intent.Status,
	}
	if payer != nil {
		ch.PayerID = payer.ID
	}
	if err := r.chargeRepo.Create(ctx, ch); err != nil {
		log.Printf("failed to record charge for intent %s: %v", intent.ID, err)
	}
}
