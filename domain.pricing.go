package main

import "github.com/shopspring/decimal"

// PricingRules holds the storefront pricing constants: the flat tax
// rate, the flat shipping fee and the subtotal above which shipping
// becomes free.
type PricingRules struct {
	TaxRate          decimal.Decimal
	ShippingFee      decimal.Decimal
	FreeShippingOver decimal.Decimal
}

// Totals is the derived pricing breakdown of a set of cart lines. It is
// recomputed from the lines on every read and never stored alongside
// the cart, so it can not drift from the latest mutation.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives the pricing breakdown for the given lines:
// subtotal is the quantity-weighted sum of line prices, tax is the
// subtotal at the configured rate rounded to cents, shipping is the
// flat fee waived once the subtotal exceeds the free-shipping mark.
func ComputeTotals(lines []CartLine, rules PricingRules) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Book.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	tax := subtotal.Mul(rules.TaxRate).Round(2)

	shipping := rules.ShippingFee
	if subtotal.GreaterThan(rules.FreeShippingOver) {
		shipping = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}
