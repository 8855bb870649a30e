package routes

import (
	"enrollment-app/config"
	"enrollment-app/database"
	adminapi "enrollment-app/internal/api/admin"
	paymentsapi "enrollment-app/internal/api/payments"
	plansapi "enrollment-app/internal/api/plans"
	stripewebhooks "enrollment-app/internal/api/stripewebhook"
	"enrollment-app/internal/app/http/middleware"
	"enrollment-app/internal/domain/plans"
	stripeinfra "enrollment-app/internal/infra/stripe"
	"enrollment-app/internal/repository"
	"enrollment-app/internal/service/charges"
	"net/http"

	"github.com/gin-gonic/gin"
)

// allowedMethods backs the Allow header on 405 responses. Gin's NoMethod
// handler does not expose which methods a route supports, so the map is kept
// alongside the registrations below.
var allowedMethods = map[string]string{
	"/health":                    http.MethodGet,
	"/webhook":                   http.MethodPost,
	"/api/plans":                 http.MethodGet,
	"/api/create-payment-intent": http.MethodPost,
}

func RegisterRoutes(r *gin.Engine, catalog *plans.Catalog) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		if allow, ok := allowedMethods[c.Request.URL.Path]; ok {
			c.Header("Allow", allow)
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	// Webhook stays outside the sanitized group: its body must reach the
	// signature check byte for byte.
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	resolver := charges.NewResolver(
		catalog,
		repository.NewPayerRepository(database.DB),
		repository.NewChargeRepository(database.DB),
		stripeinfra.NewGateway(config.STRIPE_SECRET_KEY),
		config.DEFAULT_CURRENCY,
	)

	plansHandler := plansapi.NewHandler(catalog)
	paymentsHandler := paymentsapi.NewHandler(resolver)

	public := r.Group("/api")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.GET("/plans", plansHandler.ListPlans)
	public.POST("/create-payment-intent", paymentsHandler.CreatePaymentIntent)

	// Operator routes
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdminKey())
	admin.GET("/charges", adminapi.ListAllCharges)
	admin.GET("/payers", adminapi.ListAllPayers)
}
