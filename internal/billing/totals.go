// Package billing implements the shared money math applied to every
// line-item-bearing document type. Discounts are applied before tax: the tax
// base is the post-discount subtotal.
package billing

import (
	"github.com/shopspring/decimal"

	"folio/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ComputeItems recomputes each item's amount as quantity*rate and returns the
// subtotal. Client-supplied amounts are never trusted.
func ComputeItems(items []domain.LineItem) ([]domain.LineItem, decimal.Decimal) {
	subtotal := decimal.Zero
	for i := range items {
		items[i].Amount = items[i].Quantity.Mul(items[i].Rate)
		subtotal = subtotal.Add(items[i].Amount)
	}
	return items, subtotal
}

// AppliedDiscount resolves a discount value against a subtotal.
// A percentage discount of 10 on a subtotal of 100 yields 10; a fixed
// discount is taken verbatim regardless of subtotal.
func AppliedDiscount(subtotal, discount decimal.Decimal, discountType domain.DiscountType) decimal.Decimal {
	if discount.IsZero() {
		return decimal.Zero
	}
	if discountType == domain.DiscountTypePercentage {
		return subtotal.Mul(discount).Div(hundred)
	}
	return discount
}

// Totals holds the derived money fields of a document.
type Totals struct {
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal // the applied discount value
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// Compute derives subtotal, applied discount, tax, and total from line items.
// taxAmount = (subtotal - discount) * taxRate/100; total = subtotal -
// discount + taxAmount.
func Compute(items []domain.LineItem, taxRate, discount decimal.Decimal, discountType domain.DiscountType) ([]domain.LineItem, Totals) {
	items, subtotal := ComputeItems(items)
	applied := AppliedDiscount(subtotal, discount, discountType)
	taxBase := subtotal.Sub(applied)
	taxAmount := taxBase.Mul(taxRate).Div(hundred)
	return items, Totals{
		Subtotal:  subtotal,
		Discount:  applied,
		TaxAmount: taxAmount,
		Total:     taxBase.Add(taxAmount),
	}
}
