package controllers

import "github.com/gin-gonic/gin"

// Standard response messages
const (
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "user already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid email or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgUnauthorized          = "Unauthorized - Please log in"
	msgTemplateNotFound      = "Template not found"
	msgPaymentInitFailed     = "Payment could not be initiated, try again"
	msgOrderSaveFailed       = "Payment completed but we could not save your order, contact support"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}
