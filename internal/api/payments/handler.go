package payments

import (
	"context"
	"errors"
	"log"
	"net/http"

	"enrollment-app/internal/service/charges"

	"github.com/gin-gonic/gin"
)

// ChargeCreator is what this handler needs from the charge resolver.
type ChargeCreator interface {
	CreateCharge(ctx context.Context, req charges.ChargeRequest) (charges.Outcome, error)
}

type Handler struct {
	creator ChargeCreator
}

func NewHandler(creator ChargeCreator) *Handler {
	return &Handler{creator: creator}
}

type createPaymentIntentRequest struct {
	PaymentMethodID string `json:"paymentMethodId"`
	PlanID          uint   `json:"planId"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	Currency        string `json:"currency"`

	// Amount is accepted because older clients send it, and it is ignored
	// entirely: the settlement amount is derived from the catalog by planId.
	Amount int64 `json:"amount"`
}

// CreatePaymentIntent is the charge-creation boundary: POST /api/create-payment-intent.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var body createPaymentIntentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	out, err := h.creator.CreateCharge(c.Request.Context(), charges.ChargeRequest{
		PlanID:          body.PlanID,
		PaymentMethodID: body.PaymentMethodID,
		Email:           body.Email,
		FullName:        body.FullName,
		Currency:        body.Currency,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if out.RequiresAction {
		c.JSON(http.StatusOK, gin.H{
			"requiresAction": true,
			"clientSecret":   out.ClientSecret,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"paymentIntentId": out.PaymentIntentID,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, charges.ErrMissingPaymentMethod), errors.Is(err, charges.ErrMissingPlan):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing paymentMethodId or planId."})

	case errors.Is(err, charges.ErrUnknownPlan):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid plan selected."})

	default:
		var decline *charges.DeclineError
		if errors.As(err, &decline) {
			c.JSON(http.StatusBadRequest, gin.H{"error": decline.Message})
			return
		}
		// Full detail stays server-side only.
		log.Printf("create payment intent failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error. Please try again."})
	}
}
