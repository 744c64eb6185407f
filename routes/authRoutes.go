package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/webirent/webirent-api/controllers"
	"github.com/webirent/webirent-api/middlewares"
)

func AuthRoutes(server *gin.Engine, ac *controllers.AuthController, jwtSecret string) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", ac.Signup)
		auth.POST("/login", ac.Login)
		auth.PUT("/profile", middlewares.RequireAuth(jwtSecret), ac.UpdateProfile)
	}
}
