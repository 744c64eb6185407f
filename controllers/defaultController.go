package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the WebiRent API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- PUT "/auth/profile" - Update name and email

TEMPLATE
- GET "/templates" - List templates (supports ?search= and ?category=)
- GET "/templates/:id" - Get template by ID
- POST "/templates" - Add a new template (admin)
- POST "/templates/:id/image" - Upload a preview image (admin)

CHECKOUT
- POST "/payment-orders" - Create a payment-gateway order
- POST "/orders" - Create an order after payment
- GET "/orders" - Get your orders`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
