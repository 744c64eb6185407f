package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webirent/webirent-api/checkout"
	"github.com/webirent/webirent-api/errs"
	"github.com/webirent/webirent-api/middlewares"
	"github.com/webirent/webirent-api/models"
)

type OrderController struct {
	Checkout *checkout.Service
}

type createOrderBody struct {
	TemplateID      uint                   `json:"templateId" binding:"required"`
	CustomerDetails models.CustomerDetails `json:"customerDetails" binding:"required"`
	PaymentID       string                 `json:"paymentId" binding:"required"`
	GatewayOrderID  string                 `json:"gatewayOrderId"`
}

// CreateOrder persists the order once the processor has confirmed the
// payment. Resubmitting the same payment reference returns the order
// already written for it instead of creating a duplicate.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	identity, exists := middlewares.CurrentIdentity(ctx)
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var body createOrderBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Missing required fields")
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), checkoutStepTimeout)
	defer cancel()

	result, err := oc.Checkout.PlaceOrder(reqCtx, identity, checkout.PlaceOrderInput{
		TemplateID:      body.TemplateID,
		CustomerDetails: body.CustomerDetails,
		PaymentID:       body.PaymentID,
		GatewayOrderID:  body.GatewayOrderID,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, msgTemplateNotFound)
		case errors.Is(err, errs.ErrValidation):
			sendErrorResponse(ctx, http.StatusBadRequest, "Missing required fields")
		default:
			// Money is captured but no record was written: the worst case.
			// Never claim success here.
			log.Println("Error creating order:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgOrderSaveFailed)
		}
		return
	}

	status := http.StatusCreated
	if !result.Created {
		status = http.StatusOK
	}
	sendJSONResponse(ctx, status, gin.H{
		"message": "Order created successfully",
		"order":   result.Order,
	})
}

// GetOrders returns the caller's own orders, newest first.
func (oc *OrderController) GetOrders(ctx *gin.Context) {
	identity, exists := middlewares.CurrentIdentity(ctx)
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	orders, err := oc.Checkout.ListOrders(ctx.Request.Context(), identity)
	if err != nil {
		log.Println("Error fetching orders:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}
