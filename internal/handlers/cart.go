// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopkart/backend/internal/middleware"
	"github.com/shopkart/backend/internal/services"
	"github.com/shopkart/backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	key := middleware.GetCartKey(c)

	items, err := h.cartService.Items(key)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items":  items,
		"totals": h.cartService.Totals(items),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	key := middleware.GetCartKey(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if req.Quantity < 1 {
		req.Quantity = 1
	}

	items, err := h.cartService.Add(key, req.ProductID, req.Quantity)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items":  items,
		"totals": h.cartService.Totals(items),
	})
}

// PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	key := middleware.GetCartKey(c)
	lineID := c.Param("id")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	items, err := h.cartService.SetQuantity(key, lineID, req.Quantity)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items":  items,
		"totals": h.cartService.Totals(items),
	})
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	key := middleware.GetCartKey(c)

	items, err := h.cartService.Remove(key, c.Param("id"))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items":  items,
		"totals": h.cartService.Totals(items),
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	key := middleware.GetCartKey(c)

	if err := h.cartService.Clear(key); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": []interface{}{},
	})
}
