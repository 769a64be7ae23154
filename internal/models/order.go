// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	OrderNumber     string        `json:"order_number" gorm:"size:50;uniqueIndex;not null"`
	ShippingName    string        `json:"shipping_name" gorm:"size:255;not null"`
	ShippingPhone   string        `json:"shipping_phone" gorm:"size:20;not null"`
	ShippingAddress string        `json:"shipping_address" gorm:"type:text;not null"`
	ShippingCity    string        `json:"shipping_city" gorm:"size:100;not null"`
	ShippingState   string        `json:"shipping_state" gorm:"size:100;not null"`
	ShippingPincode string        `json:"shipping_pincode" gorm:"size:10;not null"`
	Subtotal        float64       `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	ShippingCost    float64       `json:"shipping_cost" gorm:"type:decimal(10,2);not null"`
	Total           float64       `json:"total" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus   `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	PaymentMethod   PaymentMethod `json:"payment_method" gorm:"type:varchar(20);not null"`
	PaymentStatus   PaymentStatus `json:"payment_status" gorm:"type:varchar(20);not null"`
	TransactionID   string        `json:"transaction_id,omitempty" gorm:"size:100"`

	// Relationships
	Items []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	BaseModel
	OrderID      uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	ProductName  string    `json:"product_name" gorm:"size:255;not null"`
	ProductImage string    `json:"product_image" gorm:"size:500"`
	Price        float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
}

// Notification rows are recorded for later delivery; nothing in this service
// dispatches them.
type Notification struct {
	BaseModel
	UserID  *uuid.UUID         `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Email   string             `json:"email" gorm:"size:255;not null"`
	Type    string             `json:"type" gorm:"size:50;not null;index"`
	OrderID *uuid.UUID         `json:"order_id,omitempty" gorm:"type:uuid;index"`
	Content JSONB              `json:"content" gorm:"type:jsonb"`
	Status  NotificationStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
}
