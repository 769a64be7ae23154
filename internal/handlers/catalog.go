// internal/handlers/catalog.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shopkart/backend/internal/services"
	"github.com/shopkart/backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.FetchCategories()
	if err != nil {
		// A failed catalog read renders as an empty list, not a crash.
		logrus.WithError(err).Error("Failed to fetch categories")
		utils.SuccessResponse(c, gin.H{"categories": []interface{}{}})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}

// GET /products?category=<slug>&search=<q>
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, err := h.catalogService.FetchProducts(params.Category, params.Search)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch products")
		utils.SuccessResponse(c, gin.H{"products": []interface{}{}})
		return
	}

	// Page the searched set in-process; ordering is already decided by the
	// search policy or catalog order.
	total := int64(len(products))
	start := (params.Page - 1) * params.Limit
	if start > len(products) {
		start = len(products)
	}
	end := start + params.Limit
	if end > len(products) {
		end = len(products)
	}

	result := utils.CreatePaginationResult(products[start:end], total, params)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalogService.FetchProduct(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}
