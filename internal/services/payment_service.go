// internal/services/payment_service.go
package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopkart/backend/internal/config"
	"github.com/shopkart/backend/internal/models"
)

// PaymentService simulates a payment gateway: it introduces an artificial
// settlement delay, validates method-specific fields and fabricates a
// transaction id. No real settlement occurs.
type PaymentService struct {
	delay time.Duration
}

type CardDetails struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
	HolderName string `json:"holder_name"`
}

type PaymentState struct {
	Method      models.PaymentMethod `json:"method" validate:"required,oneof=COD UPI CARD"`
	CardDetails *CardDetails         `json:"card_details,omitempty"`
	UPIID       string               `json:"upi_id,omitempty"`
}

type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message,omitempty"`
}

func NewPaymentService(cfg *config.Config) *PaymentService {
	return &PaymentService{
		delay: time.Duration(cfg.Payment.SimulatedDelayMs) * time.Millisecond,
	}
}

// ProcessPayment validates the payment state after the simulated delay. A
// failed result is terminal for the attempt; callers must not create an order
// from it.
func (s *PaymentService) ProcessPayment(ctx context.Context, state *PaymentState) (*PaymentResult, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := time.Now().UnixMilli()

	switch state.Method {
	case models.PaymentMethodCOD:
		return &PaymentResult{
			Success:       true,
			TransactionID: codTransactionID(now),
			Message:       "Order placed successfully with Cash on Delivery",
		}, nil

	case models.PaymentMethodUPI:
		if !strings.Contains(state.UPIID, "@") {
			return &PaymentResult{Success: false, Message: "Invalid UPI ID"}, nil
		}
		return &PaymentResult{
			Success:       true,
			TransactionID: upiTransactionID(now),
			Message:       "Payment processed successfully via UPI",
		}, nil

	case models.PaymentMethodCard:
		if state.CardDetails == nil || len(state.CardDetails.CardNumber) < 12 {
			return &PaymentResult{Success: false, Message: "Invalid Card Details"}, nil
		}
		return &PaymentResult{
			Success:       true,
			TransactionID: cardTransactionID(now),
			Message:       "Card payment processed successfully",
		}, nil
	}

	return &PaymentResult{Success: false, Message: "Unknown payment method"}, nil
}

func codTransactionID(now int64) string {
	return fmt.Sprintf("COD-%d", now)
}

func upiTransactionID(now int64) string {
	return fmt.Sprintf("UPI-%d-%d", now, rand.Intn(1000))
}

func cardTransactionID(now int64) string {
	return fmt.Sprintf("TXN-%d-%d", now, rand.Intn(10000))
}
