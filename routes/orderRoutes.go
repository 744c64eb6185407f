package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/webirent/webirent-api/controllers"
	"github.com/webirent/webirent-api/middlewares"
)

func OrderRoutes(server *gin.Engine, oc *controllers.OrderController, jwtSecret string) {
	server.POST("/orders", middlewares.RequireAuth(jwtSecret), oc.CreateOrder)
	server.GET("/orders", middlewares.RequireAuth(jwtSecret), oc.GetOrders)
}
