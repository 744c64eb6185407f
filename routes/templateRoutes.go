package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/webirent/webirent-api/controllers"
	"github.com/webirent/webirent-api/middlewares"
)

func TemplateRoutes(server *gin.Engine, tc *controllers.TemplateController, jwtSecret string) {
	server.GET("/templates", tc.GetTemplates)
	server.GET("/templates/:id", tc.GetTemplate)
	server.POST("/templates", middlewares.RequireAuth(jwtSecret), middlewares.RequireAdmin(), tc.CreateTemplate)
	server.POST("/templates/:id/image", middlewares.RequireAuth(jwtSecret), middlewares.RequireAdmin(), tc.UploadTemplateImage)
}
