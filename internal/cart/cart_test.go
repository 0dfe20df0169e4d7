package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmanature-storefront/internal/models"
)

func product(id int, price float64) *models.Product {
	return &models.Product{
		ID:       id,
		Name:     "Produit Test",
		Price:    price,
		ImageURL: "/images/test.jpg",
	}
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	c := New()
	p := product(1, 45.500)
	c.AddItem(p, 2)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, "Produit Test", items[0].Name)
	assert.Equal(t, "/images/test.jpg", items[0].ImageURL)
	assert.Equal(t, 45.500, items[0].UnitPrice)
	assert.Equal(t, 2, items[0].Quantity)

	// later catalog price changes must not affect the snapshot
	p.Price = 99.000
	assert.Equal(t, 45.500, c.Items()[0].UnitPrice)
}

func TestAddItemIncrementsExisting(t *testing.T) {
	c := New()
	c.AddItem(product(1, 10), 1)
	c.AddItem(product(1, 10), 3)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestAddItemNonPositiveQuantityIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(product(1, 10), 0)
	c.AddItem(product(1, 10), -3)

	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.ItemCount())
}

func TestAddItemNilProductIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(nil, 2)
	assert.Empty(t, c.Items())
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := New()
	c.AddItem(product(3, 1), 1)
	c.AddItem(product(1, 1), 1)
	c.AddItem(product(2, 1), 1)
	c.AddItem(product(1, 1), 1) // increment, must not reorder

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 3, items[0].ProductID)
	assert.Equal(t, 1, items[1].ProductID)
	assert.Equal(t, 2, items[2].ProductID)
}

func TestUpdateQuantitySets(t *testing.T) {
	c := New()
	c.AddItem(product(1, 10), 2)
	c.UpdateQuantity(1, 7)

	assert.Equal(t, 7, c.Items()[0].Quantity)
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	c := New()
	c.AddItem(product(1, 10), 2)
	c.UpdateQuantity(1, 0)
	assert.Empty(t, c.Items())

	c.AddItem(product(1, 10), 2)
	c.UpdateQuantity(1, -5)
	assert.Empty(t, c.Items())
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(product(1, 10), 2)
	c.UpdateQuantity(99, 5)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c := New()
	c.AddItem(product(1, 10), 1)
	c.RemoveItem(1)
	assert.Empty(t, c.Items())

	// second removal must be a silent no-op
	c.RemoveItem(1)
	assert.Empty(t, c.Items())
}

func TestRemoveMiddleItemKeepsOrder(t *testing.T) {
	c := New()
	c.AddItem(product(1, 1), 1)
	c.AddItem(product(2, 1), 1)
	c.AddItem(product(3, 1), 1)
	c.RemoveItem(2)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 3, items[1].ProductID)

	// index must stay consistent after the shift
	c.UpdateQuantity(3, 9)
	assert.Equal(t, 9, c.Items()[1].Quantity)
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(product(1, 10), 2)
	c.AddItem(product(2, 20), 1)
	c.Clear()

	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, 0.0, c.Subtotal())
}

func TestItemCountMatchesQuantities(t *testing.T) {
	c := New()
	c.AddItem(product(1, 10), 2)
	c.AddItem(product(2, 20), 3)
	c.AddItem(product(1, 10), 1)
	assert.Equal(t, 6, c.ItemCount())

	c.UpdateQuantity(2, 1)
	assert.Equal(t, 4, c.ItemCount())

	c.RemoveItem(1)
	assert.Equal(t, 1, c.ItemCount())

	c.RemoveItem(2)
	assert.Equal(t, 0, c.ItemCount())
	assert.GreaterOrEqual(t, c.ItemCount(), 0)
}

func TestTotalsAboveThreshold(t *testing.T) {
	c := New()
	c.AddItem(product(1, 45.500), 2)
	c.AddItem(product(2, 89.000), 1)

	assert.InDelta(t, 180.000, c.Subtotal(), 1e-9)
	assert.Equal(t, 0.0, c.ShippingFee())
	assert.InDelta(t, 180.000, c.GrandTotal(), 1e-9)
	assert.Equal(t, 100.0, c.ShippingProgressPercent())
	assert.Equal(t, 0.0, c.RemainingForFreeShipping())
}

func TestTotalsBelowThreshold(t *testing.T) {
	c := New()
	c.AddItem(product(1, 45.500), 1)

	assert.InDelta(t, 45.500, c.Subtotal(), 1e-9)
	assert.InDelta(t, 74.500, c.RemainingForFreeShipping(), 1e-9)
	assert.InDelta(t, 37.9167, c.ShippingProgressPercent(), 1e-4)
	assert.Equal(t, 7.000, c.ShippingFee())
	assert.InDelta(t, 52.500, c.GrandTotal(), 1e-9)
}

func TestFreeShippingAtExactThreshold(t *testing.T) {
	c := New()
	c.AddItem(product(1, 60.000), 2)

	assert.Equal(t, 0.0, c.ShippingFee())
	assert.Equal(t, 100.0, c.ShippingProgressPercent())
	assert.Equal(t, 0.0, c.RemainingForFreeShipping())
}

func TestEmptyCartDerivedValues(t *testing.T) {
	c := New()

	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, 0.0, c.Subtotal())
	assert.Equal(t, 0.0, c.ShippingProgressPercent())
	assert.Equal(t, FreeShippingThreshold, c.RemainingForFreeShipping())
	assert.Equal(t, FlatShippingFee, c.ShippingFee())
	assert.Equal(t, FlatShippingFee, c.GrandTotal())
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 37.917, Round3(37.91666666))
	assert.Equal(t, 45.500, Round3(45.5))
	assert.Equal(t, 0.0, Round3(0))
}
