package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"folio/internal/billing"
	"folio/internal/domain"
)

func item(qty, rate int64) domain.LineItem {
	return domain.LineItem{
		Quantity: decimal.NewFromInt(qty),
		Rate:     decimal.NewFromInt(rate),
	}
}

func TestComputeItems_RecomputesAmounts(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(50), Amount: decimal.NewFromInt(9999)},
		{Quantity: decimal.NewFromFloat(1.5), Rate: decimal.NewFromInt(100)},
	}

	items, subtotal := billing.ComputeItems(items)

	assert.True(t, items[0].Amount.Equal(decimal.NewFromInt(100)), "client-supplied amount must be overwritten")
	assert.True(t, items[1].Amount.Equal(decimal.NewFromInt(150)))
	assert.True(t, subtotal.Equal(decimal.NewFromInt(250)))
}

func TestCompute_TaxOnly(t *testing.T) {
	_, totals := billing.Compute(
		[]domain.LineItem{item(1, 100)},
		decimal.NewFromInt(10), decimal.Zero, domain.DiscountTypePercentage)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(110)))
}

func TestCompute_PercentageDiscountBeforeTax(t *testing.T) {
	// 200 subtotal, 10% discount -> 180 tax base, 10% tax -> 18
	_, totals := billing.Compute(
		[]domain.LineItem{item(2, 100)},
		decimal.NewFromInt(10), decimal.NewFromInt(10), domain.DiscountTypePercentage)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, totals.Discount.Equal(decimal.NewFromInt(20)))
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromInt(18)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(198)))
}

func TestCompute_FixedDiscountBeforeTax(t *testing.T) {
	// 200 subtotal, 20 fixed discount -> 180 tax base
	_, totals := billing.Compute(
		[]domain.LineItem{item(2, 100)},
		decimal.NewFromInt(10), decimal.NewFromInt(20), domain.DiscountTypeFixed)

	assert.True(t, totals.Discount.Equal(decimal.NewFromInt(20)))
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromInt(18)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(198)))
}

func TestCompute_FixedDiscountNoTax(t *testing.T) {
	_, totals := billing.Compute(
		[]domain.LineItem{item(2, 100)},
		decimal.Zero, decimal.NewFromInt(20), domain.DiscountTypeFixed)

	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(180)))
}

func TestCompute_NoItems(t *testing.T) {
	items, totals := billing.Compute(nil, decimal.NewFromInt(10), decimal.Zero, domain.DiscountTypePercentage)

	assert.Empty(t, items)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestAppliedDiscount_ZeroIsZero(t *testing.T) {
	applied := billing.AppliedDiscount(decimal.NewFromInt(500), decimal.Zero, domain.DiscountTypeFixed)
	assert.True(t, applied.IsZero())
}
