// internal/services/cart_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shopkart/backend/internal/models"
	"github.com/shopkart/backend/internal/pricing"
	"github.com/shopkart/backend/internal/store"
)

// ProductSource is the slice of the catalog the cart needs to enrich its
// lines.
type ProductSource interface {
	FetchProduct(id uuid.UUID) (*models.Product, error)
}

// CartService holds cart line state in the blob store. Every mutation writes
// the full line set before returning and callers re-read the enriched view as
// the result; there is no cached cart object beside the store.
type CartService struct {
	store    store.Store
	products ProductSource
}

func NewCartService(store store.Store, products ProductSource) *CartService {
	return &CartService{store: store, products: products}
}

// Items returns the enriched line set for a storage key. A line whose product
// can no longer be resolved keeps a nil Product; it still counts zero toward
// totals, matching the storefront's tolerance for stale lines.
func (s *CartService) Items(key string) ([]models.CartItem, error) {
	lines, err := s.lines(key)
	if err != nil {
		return nil, err
	}

	items := make([]models.CartItem, 0, len(lines))
	for _, line := range lines {
		item := models.CartItem{CartLine: line}
		if productID, err := uuid.Parse(line.ProductID); err == nil {
			product, err := s.products.FetchProduct(productID)
			if err != nil {
				logrus.WithField("product_id", line.ProductID).Warn("Cart line references unavailable product")
			} else {
				item.Product = product
			}
		}
		items = append(items, item)
	}

	return items, nil
}

// Add merges into an existing line for the product or creates a new one. No
// stock check happens here; stock is advisory and enforced upstream.
func (s *CartService) Add(key, productID string, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	lines, err := s.lines(key)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{
			ID:        uuid.NewString(),
			ProductID: productID,
			Quantity:  quantity,
		})
	}

	if err := s.save(key, lines); err != nil {
		return nil, err
	}
	return s.Items(key)
}

// SetQuantity overwrites a line's quantity; zero or less deletes the line. An
// unknown line id is a silent no-op.
func (s *CartService) SetQuantity(key, lineID string, quantity int) ([]models.CartItem, error) {
	lines, err := s.lines(key)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].ID != lineID {
			continue
		}
		if quantity <= 0 {
			lines = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i].Quantity = quantity
		}
		if err := s.save(key, lines); err != nil {
			return nil, err
		}
		break
	}

	return s.Items(key)
}

func (s *CartService) Remove(key, lineID string) ([]models.CartItem, error) {
	lines, err := s.lines(key)
	if err != nil {
		return nil, err
	}

	filtered := lines[:0]
	for _, line := range lines {
		if line.ID != lineID {
			filtered = append(filtered, line)
		}
	}

	if err := s.save(key, filtered); err != nil {
		return nil, err
	}
	return s.Items(key)
}

// Clear drops the blob entirely; an absent key reads back as an empty cart.
func (s *CartService) Clear(key string) error {
	if err := s.store.Delete(key); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Totals derives order totals from an enriched line set. Lines with an
// unresolved product contribute nothing.
func (s *CartService) Totals(items []models.CartItem) pricing.OrderTotals {
	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		line := pricing.Line{Quantity: item.Quantity}
		if item.Product != nil {
			line.Price = item.Product.Price
			line.OriginalPrice = item.Product.OriginalPrice
		}
		lines = append(lines, line)
	}
	return pricing.ComputeTotals(lines)
}

func (s *CartService) lines(key string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := s.store.Load(key, &lines); err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	return lines, nil
}

func (s *CartService) save(key string, lines []models.CartLine) error {
	if err := s.store.Save(key, lines); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
