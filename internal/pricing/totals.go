// internal/pricing/totals.go
package pricing

const (
	// FreeShippingThreshold is the subtotal above which delivery is free.
	FreeShippingThreshold = 500

	// FlatShippingFee applies to orders at or below the threshold.
	FlatShippingFee = 40
)

// Line carries the priced quantities of a single cart line. OriginalPrice is
// nil when the product was never discounted.
type Line struct {
	Price         float64
	OriginalPrice *float64
	Quantity      int
}

// OrderTotals is derived on every read and never persisted.
type OrderTotals struct {
	Subtotal         float64 `json:"subtotal"`
	OriginalSubtotal float64 `json:"original_subtotal"`
	Discount         float64 `json:"discount"`
	ShippingCost     float64 `json:"shipping_cost"`
	GrandTotal       float64 `json:"grand_total"`
}

// ComputeTotals folds the line set into order totals. Input is not validated;
// callers are responsible for rejecting malformed quantities upstream.
func ComputeTotals(lines []Line) OrderTotals {
	var subtotal, originalSubtotal float64
	for _, line := range lines {
		qty := float64(line.Quantity)
		subtotal += line.Price * qty

		original := line.Price
		if line.OriginalPrice != nil {
			original = *line.OriginalPrice
		}
		originalSubtotal += original * qty
	}

	discount := originalSubtotal - subtotal
	if discount < 0 {
		discount = 0
	}

	shippingCost := float64(FlatShippingFee)
	if subtotal > FreeShippingThreshold {
		shippingCost = 0
	}

	return OrderTotals{
		Subtotal:         subtotal,
		OriginalSubtotal: originalSubtotal,
		Discount:         discount,
		ShippingCost:     shippingCost,
		GrandTotal:       subtotal + shippingCost,
	}
}
