// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopkart/backend/internal/database"
	"github.com/shopkart/backend/internal/models"
	"github.com/shopkart/backend/internal/utils"
)

// ErrEmptyCart aborts checkout before any backend write.
var ErrEmptyCart = errors.New("cart is empty")

type OrderService struct {
	db            *gorm.DB
	cart          *CartService
	notifications *NotificationService
}

type ShippingAddress struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,in_phone"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Pincode string `json:"pincode" validate:"required,in_pincode"`
}

type PaymentDetails struct {
	Method        models.PaymentMethod
	Status        models.PaymentStatus
	TransactionID string
}

func NewOrderService(db *gorm.DB, cart *CartService, notifications *NotificationService) *OrderService {
	return &OrderService{
		db:            db,
		cart:          cart,
		notifications: notifications,
	}
}

// CreateOrder persists an order header plus one item row per cart line in a
// single transaction, then clears the cart. The caller must have completed
// payment first; this method never touches the payment simulator.
func (s *OrderService) CreateOrder(sessionKey string, address *ShippingAddress, payment *PaymentDetails, userID *uuid.UUID, email string) (*models.Order, error) {
	// Validate request
	if err := utils.ValidateStruct(address); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	items, err := s.cart.Items(sessionKey)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	for _, item := range items {
		if item.Product == nil {
			return nil, fmt.Errorf("cart line %s references a product that is no longer available", item.ID)
		}
	}

	totals := s.cart.Totals(items)

	order := &models.Order{
		OrderNumber:     fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		ShippingName:    address.Name,
		ShippingPhone:   address.Phone,
		ShippingAddress: address.Address,
		ShippingCity:    address.City,
		ShippingState:   address.State,
		ShippingPincode: address.Pincode,
		Subtotal:        totals.Subtotal,
		ShippingCost:    totals.ShippingCost,
		Total:           totals.GrandTotal,
		Status:          models.OrderStatusPending,
		PaymentMethod:   payment.Method,
		PaymentStatus:   payment.Status,
		TransactionID:   payment.TransactionID,
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range items {
			image := ""
			if len(item.Product.Images) > 0 {
				image = item.Product.Images[0]
			}

			orderItem := &models.OrderItem{
				OrderID:      order.ID,
				ProductID:    item.Product.ID,
				ProductName:  item.Product.Name,
				ProductImage: image,
				Price:        item.Product.Price,
				Quantity:     item.Quantity,
			}
			if err := tx.Create(orderItem).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.cart.Clear(sessionKey); err != nil {
		logrus.WithError(err).Error("Failed to clear cart after checkout")
	}

	// Reload with items
	s.db.Preload("Items").First(order, order.ID)

	if email != "" && s.notifications != nil {
		if err := s.notifications.RecordOrderConfirmation(email, order, userID); err != nil {
			logrus.WithError(err).Error("Failed to record order confirmation notification")
		}
	}

	return order, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *OrderService) ListOrders(params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).Preload("Items")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query = query.Order("created_at DESC")
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}
