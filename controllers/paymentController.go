package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/webirent/webirent-api/checkout"
	"github.com/webirent/webirent-api/errs"
)

// Every external call in the checkout path gets an explicit deadline so
// a hung gateway cannot hold the request open indefinitely.
const checkoutStepTimeout = 30 * time.Second

type PaymentController struct {
	Checkout *checkout.Service
}

// CreatePaymentOrder registers a payment intent with the gateway. The
// amount is computed server-side from the template's current price; the
// client never names its own price.
func (pc *PaymentController) CreatePaymentOrder(ctx *gin.Context) {
	var body struct {
		TemplateID uint   `json:"templateId" binding:"required"`
		Currency   string `json:"currency"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), checkoutStepTimeout)
	defer cancel()

	paymentOrder, err := pc.Checkout.CreatePaymentOrder(reqCtx, body.TemplateID, body.Currency)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, msgTemplateNotFound)
		case errors.Is(err, errs.ErrValidation):
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		default:
			log.Println("Error creating payment order:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgPaymentInitFailed)
		}
		return
	}

	ctx.JSON(http.StatusOK, paymentOrder)
}
