// internal/handlers/wishlist.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopkart/backend/internal/middleware"
	"github.com/shopkart/backend/internal/models"
	"github.com/shopkart/backend/internal/services"
	"github.com/shopkart/backend/internal/utils"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

type AddWishlistItemRequest struct {
	ProductID     string   `json:"product_id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Price         float64  `json:"price" validate:"required,min=0"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Image         string   `json:"image,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	ReviewsCount  int64    `json:"reviews_count,omitempty"`
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	key := middleware.GetWishlistKey(c)

	entries, err := h.wishlistService.Items(key)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": entries,
	})
}

// POST /wishlist/items
func (h *WishlistHandler) AddItem(c *gin.Context) {
	key := middleware.GetWishlistKey(c)

	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	entries, err := h.wishlistService.Add(key, models.WishlistEntry{
		ProductID:     req.ProductID,
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Rating:        req.Rating,
		ReviewsCount:  req.ReviewsCount,
	})
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": entries,
	})
}

// DELETE /wishlist/items/:productId
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	key := middleware.GetWishlistKey(c)

	entries, err := h.wishlistService.Remove(key, c.Param("productId"))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": entries,
	})
}

// DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	key := middleware.GetWishlistKey(c)

	if err := h.wishlistService.Clear(key); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": []interface{}{},
	})
}
