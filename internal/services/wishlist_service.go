// internal/services/wishlist_service.go
package services

import (
	"fmt"

	"github.com/shopkart/backend/internal/models"
	"github.com/shopkart/backend/internal/store"
)

// WishlistService keeps product snapshots in the blob store under the
// wishlist storage key. Adds are idempotent by product id.
type WishlistService struct {
	store store.Store
}

func NewWishlistService(store store.Store) *WishlistService {
	return &WishlistService{store: store}
}

func (s *WishlistService) Items(key string) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	if err := s.store.Load(key, &entries); err != nil {
		return nil, fmt.Errorf("failed to read wishlist: %w", err)
	}
	return entries, nil
}

func (s *WishlistService) Add(key string, entry models.WishlistEntry) ([]models.WishlistEntry, error) {
	entries, err := s.Items(key)
	if err != nil {
		return nil, err
	}

	for _, existing := range entries {
		if existing.ProductID == entry.ProductID {
			return entries, nil
		}
	}

	entries = append(entries, entry)
	if err := s.store.Save(key, entries); err != nil {
		return nil, fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return entries, nil
}

func (s *WishlistService) Remove(key, productID string) ([]models.WishlistEntry, error) {
	entries, err := s.Items(key)
	if err != nil {
		return nil, err
	}

	filtered := entries[:0]
	for _, entry := range entries {
		if entry.ProductID != productID {
			filtered = append(filtered, entry)
		}
	}

	if err := s.store.Save(key, filtered); err != nil {
		return nil, fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return filtered, nil
}

func (s *WishlistService) Contains(key, productID string) (bool, error) {
	entries, err := s.Items(key)
	if err != nil {
		return false, err
	}

	for _, entry := range entries {
		if entry.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *WishlistService) Clear(key string) error {
	if err := s.store.Delete(key); err != nil {
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}
	return nil
}
