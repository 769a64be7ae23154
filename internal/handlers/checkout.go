// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopkart/backend/internal/middleware"
	"github.com/shopkart/backend/internal/models"
	"github.com/shopkart/backend/internal/services"
	"github.com/shopkart/backend/internal/utils"
)

type CheckoutHandler struct {
	orderService   *services.OrderService
	paymentService *services.PaymentService
}

type CheckoutRequest struct {
	Address services.ShippingAddress `json:"address"`
	Payment services.PaymentState    `json:"payment"`
}

func NewCheckoutHandler(orderService *services.OrderService, paymentService *services.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{
		orderService:   orderService,
		paymentService: paymentService,
	}
}

// POST /checkout
//
// Validation runs first, then payment, then order creation. A payment failure
// is terminal: no order row is written and the cart stays intact.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	key := middleware.GetCartKey(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req.Address)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req.Payment)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.paymentService.ProcessPayment(c.Request.Context(), &req.Payment)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	if !result.Success {
		utils.PaymentFailedResponse(c, result.Message)
		return
	}

	var userID *uuid.UUID
	if userIDStr, exists := utils.GetUserIDFromContext(c); exists {
		if uid, err := uuid.Parse(userIDStr); err == nil {
			userID = &uid
		}
	}
	email, _ := utils.GetUserEmailFromContext(c)

	order, err := h.orderService.CreateOrder(key, &req.Address, &services.PaymentDetails{
		Method:        req.Payment.Method,
		Status:        models.PaymentStatusCompleted,
		TransactionID: result.TransactionID,
	}, userID, email)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.ConflictResponse(c, "Your cart is empty")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"order":   order,
		"payment": result,
	})
}
