package admin

import (
	"net/http"
	"time"

	"enrollment-app/database"
	"enrollment-app/internal/domain/billing"
	"enrollment-app/internal/domain/payers"

	"github.com/gin-gonic/gin"
)

type AdminCharge struct {
	ID              uint   `json:"id"`
	Email           string `json:"email"`
	PlanID          uint   `json:"plan_id"`
	AmountCents     int64  `json:"amount_cents"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
	PaymentIntentID string `json:"payment_intent_id"`
	CreatedAt       string `json:"created_at"`
}

type AdminPayer struct {
	ID               uint   `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
	CreatedAt        string `json:"created_at"`
}

func ListAllCharges(c *gin.Context) {
	var list []billing.Charge
	if err := database.DB.
		Preload("Payer").
		Order("created_at DESC").
		Limit(200).
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load charges"})
		return
	}

	out := make([]AdminCharge, 0, len(list))
	for _, ch := range list {
		out = append(out, AdminCharge{
			ID:              ch.ID,
			Email:           ch.Payer.Email,
			PlanID:          ch.PlanID,
			AmountCents:     ch.AmountCents,
			Currency:        ch.Currency,
			Status:          ch.Status,
			PaymentIntentID: ch.StripePaymentIntentID,
			CreatedAt:       ch.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, out)
}

func ListAllPayers(c *gin.Context) {
	var list []payers.Payer
	if err := database.DB.
		Order("created_at DESC").
		Limit(200).
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payers"})
		return
	}

	out := make([]AdminPayer, 0, len(list))
	for _, p := range list {
		out = append(out, AdminPayer{
			ID:               p.ID,
			FullName:         p.FullName,
			Email:            p.Email,
			StripeCustomerID: p.StripeCustomerID,
			CreatedAt:        p.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, out)
}
