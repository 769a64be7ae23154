// internal/services/notification_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopkart/backend/internal/models"
)

// NotificationService records notifications as rows for a downstream mailer.
// Nothing here dispatches anything.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) RecordOrderConfirmation(email string, order *models.Order, userID *uuid.UUID) error {
	items := make([]map[string]interface{}, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, map[string]interface{}{
			"name":  item.ProductName,
			"qty":   item.Quantity,
			"price": item.Price,
		})
	}

	notification := &models.Notification{
		UserID:  userID,
		Email:   email,
		Type:    "order_confirmation",
		OrderID: &order.ID,
		Content: models.JSONB{
			"order_number": order.OrderNumber,
			"total":        order.Total,
			"items":        items,
		},
		Status: models.NotificationStatusPending,
	}

	if err := s.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	return nil
}
