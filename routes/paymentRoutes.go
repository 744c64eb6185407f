package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/webirent/webirent-api/controllers"
	"github.com/webirent/webirent-api/middlewares"
)

func PaymentRoutes(server *gin.Engine, pc *controllers.PaymentController, jwtSecret string) {
	server.POST("/payment-orders", middlewares.RequireAuth(jwtSecret), pc.CreatePaymentOrder)
}
