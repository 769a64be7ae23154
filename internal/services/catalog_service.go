// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopkart/backend/internal/models"
	"github.com/shopkart/backend/internal/search"
)

// CatalogService owns category and product reads. Category filtering is pushed
// down to the database; search and ranking happen in-process over the fetched
// rows, exactly one strategy per query.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) FetchCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// FetchProducts returns the catalog filtered by category slug (resolved to an
// id equality pushed down to the store) and then searched in-process. An
// unresolved slug leaves the catalog unfiltered, matching the storefront's
// browse behavior.
func (s *CatalogService) FetchProducts(categorySlug, searchText string) ([]models.Product, error) {
	query := s.db.Model(&models.Product{}).Preload("Category").Order("created_at ASC")

	if categorySlug != "" && categorySlug != "all" {
		var category models.Category
		err := s.db.First(&category, "slug = ?", categorySlug).Error
		switch {
		case err == nil:
			query = query.Where("category_id = ?", category.ID)
		case errors.Is(err, gorm.ErrRecordNotFound):
			logrus.WithField("slug", categorySlug).Warn("Unknown category slug, returning unfiltered catalog")
		default:
			return nil, fmt.Errorf("failed to resolve category slug: %w", err)
		}
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	for i := range products {
		if err := validateJoinedProduct(&products[i]); err != nil {
			return nil, err
		}
	}

	if searchText == "" {
		return products, nil
	}

	categories, err := s.FetchCategories()
	if err != nil {
		return nil, err
	}

	return search.Search(searchText, products, categories), nil
}

func (s *CatalogService) FetchProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := validateJoinedProduct(&product); err != nil {
		return nil, err
	}

	return &product, nil
}

// validateJoinedProduct fails fast on a malformed joined row instead of
// letting a half-populated category leak into search and totals.
func validateJoinedProduct(p *models.Product) error {
	if p.CategoryID == uuid.Nil {
		return fmt.Errorf("product %s has no category id", p.ID)
	}
	if p.Category.ID == uuid.Nil || p.Category.Name == "" || p.Category.Slug == "" {
		return fmt.Errorf("product %s has a malformed category join", p.ID)
	}
	return nil
}
