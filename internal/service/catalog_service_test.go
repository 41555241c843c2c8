package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFinalPrice(t *testing.T) {
	cases := []struct {
		purchase, markup, want string
	}{
		{"1000.00", "10.00", "1100.00"},
		{"100.00", "0.00", "100.00"},
		{"0.00", "50.00", "0.00"},
		{"33.33", "7.50", "35.83"},
		{"19.99", "33.33", "26.65"},
	}
	for _, tc := range cases {
		got := finalPrice(dec(tc.purchase), dec(tc.markup))
		assert.True(t, got.Equal(dec(tc.want)),
			"finalPrice(%s, %s) = %s, want %s", tc.purchase, tc.markup, got, tc.want)
	}
}

func TestCreateProductDerivesFinalPrice(t *testing.T) {
	products := newStubProductRepo()
	svc := NewCatalogService(products, newStubSaleRepo())

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Treadmill",
		PurchasePrice: dec("1000.00"),
		Markup:        dec("10.00"),
		PurchaseDate:  "2026-01-15",
		Quantity:      3,
	})
	require.NoError(t, err)
	assert.True(t, resp.FinalPrice.Equal(dec("1100.00")), "got %s", resp.FinalPrice)
	assert.False(t, resp.IsSold)
	assert.Nil(t, resp.SaleDate)

	// The derived value is persisted, not just echoed.
	stored, ok := products.get(mustUUID(t, resp.ID))
	require.True(t, ok)
	assert.True(t, stored.FinalPrice.Equal(dec("1100.00")))
}

func TestCreateProductDerivesFromPersistedPrecision(t *testing.T) {
	// Inputs beyond 2 decimals are rounded before persisting; the final
	// price must be derived from what is stored, not from the raw input.
	// 10.004 rounds to 10.00, and 10.00 + 50% is 15.00 — not the 15.01 a
	// derivation from the unrounded input would give.
	products := newStubProductRepo()
	svc := NewCatalogService(products, newStubSaleRepo())

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Jump Rope",
		PurchasePrice: dec("10.004"),
		Markup:        dec("50.00"),
		PurchaseDate:  "2026-01-15",
		Quantity:      1,
	})
	require.NoError(t, err)

	stored, ok := products.get(mustUUID(t, resp.ID))
	require.True(t, ok)
	assert.True(t, stored.PurchasePrice.Equal(dec("10.00")), "got purchase %s", stored.PurchasePrice)
	assert.True(t, stored.FinalPrice.Equal(dec("15.00")), "got final %s", stored.FinalPrice)
	// The stored row satisfies the pricing rule over its own fields.
	assert.True(t, stored.FinalPrice.Equal(finalPrice(stored.PurchasePrice, stored.Markup)))
}

func TestCreateProductRejectsNegativeQuantity(t *testing.T) {
	svc := NewCatalogService(newStubProductRepo(), newStubSaleRepo())

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Bench",
		PurchasePrice: dec("100.00"),
		Markup:        dec("5.00"),
		PurchaseDate:  "2026-01-15",
		Quantity:      -1,
	})
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	svc := NewCatalogService(newStubProductRepo(), newStubSaleRepo())

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Bench",
		PurchasePrice: dec("-100.00"),
		Markup:        dec("5.00"),
		PurchaseDate:  "2026-01-15",
		Quantity:      1,
	})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestUpdateProductRejectsNegativePrice(t *testing.T) {
	products := newStubProductRepo()
	p := products.put(model.Product{
		Name:          "Rower",
		PurchasePrice: dec("200.00"),
		Markup:        dec("10.00"),
		FinalPrice:    dec("220.00"),
		PurchaseDate:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Quantity:      1,
	})
	svc := NewCatalogService(products, newStubSaleRepo())

	negPrice := dec("-50.00")
	_, err := svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{PurchasePrice: &negPrice})
	assert.ErrorIs(t, err, ErrNegativePrice)

	negMarkup := dec("-1.00")
	_, err = svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{Markup: &negMarkup})
	assert.ErrorIs(t, err, ErrNegativePrice)

	// Neither rejected edit touched the stored row.
	stored, _ := products.get(p.ID)
	assert.True(t, stored.PurchasePrice.Equal(dec("200.00")))
	assert.True(t, stored.Markup.Equal(dec("10.00")))
}

func TestUpdateProductRecomputesFinalPrice(t *testing.T) {
	products := newStubProductRepo()
	p := products.put(model.Product{
		Name:          "Rower",
		PurchasePrice: dec("200.00"),
		Markup:        dec("10.00"),
		FinalPrice:    dec("220.00"),
		PurchaseDate:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Quantity:      1,
	})
	svc := NewCatalogService(products, newStubSaleRepo())

	// Only the markup changes; the final price must follow.
	markup := dec("25.00")
	resp, err := svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{Markup: &markup})
	require.NoError(t, err)
	assert.True(t, resp.FinalPrice.Equal(dec("250.00")), "got %s", resp.FinalPrice)
}

func TestUpdateProductNeverTouchesSoldState(t *testing.T) {
	products := newStubProductRepo()
	saleDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	p := products.put(model.Product{
		Name:          "Bike",
		PurchasePrice: dec("500.00"),
		Markup:        dec("20.00"),
		FinalPrice:    dec("600.00"),
		PurchaseDate:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		IsSold:        true,
		SaleDate:      &saleDate,
		Quantity:      1,
	})
	svc := NewCatalogService(products, newStubSaleRepo())

	name := "Exercise Bike"
	_, err := svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)

	stored, _ := products.get(p.ID)
	assert.True(t, stored.IsSold, "catalog edit must not clear the sold flag")
	require.NotNil(t, stored.SaleDate)
	assert.Equal(t, saleDate, *stored.SaleDate)
}

func TestDeleteProductBlockedByDependentSales(t *testing.T) {
	products := newStubProductRepo()
	sales := newStubSaleRepo()
	p := products.put(model.Product{Name: "Kettlebell", Quantity: 1,
		PurchaseDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)})
	sales.sales = append(sales.sales, model.Sale{ProductID: p.ID, SalePrice: dec("50.00")})

	svc := NewCatalogService(products, sales)
	err := svc.Delete(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrHasDependentSales)

	var depErr *DependentSalesError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, "Kettlebell", depErr.ProductName)

	// Product survived.
	_, ok := products.get(p.ID)
	assert.True(t, ok)
}

func TestDeleteProductWithoutSales(t *testing.T) {
	products := newStubProductRepo()
	p := products.put(model.Product{Name: "Mat", Quantity: 5,
		PurchaseDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)})

	svc := NewCatalogService(products, newStubSaleRepo())
	require.NoError(t, svc.Delete(context.Background(), p.ID))

	_, ok := products.get(p.ID)
	assert.False(t, ok)
}

func TestBulkDeletePartialSuccess(t *testing.T) {
	products := newStubProductRepo()
	sales := newStubSaleRepo()

	deletable := products.put(model.Product{Name: "Dumbbell", Quantity: 2,
		PurchaseDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)})
	blocked := products.put(model.Product{Name: "Barbell", Quantity: 1,
		PurchaseDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)})
	sales.sales = append(sales.sales, model.Sale{ProductID: blocked.ID, SalePrice: dec("80.00")})

	svc := NewCatalogService(products, sales)
	resp, err := svc.BulkDelete(context.Background(), dto.BulkDeleteProductsRequest{
		IDs: []string{
			deletable.ID.String(),
			blocked.ID.String(),
			"1b671a64-40d5-491e-99b0-da01ff1f3341", // unknown id
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{deletable.ID.String()}, resp.Deleted)
	require.Len(t, resp.Failed, 2)
	assert.Equal(t, "Barbell", resp.Failed[0].ProductName)
	assert.Equal(t, "product has associated sales", resp.Failed[0].Reason)
	assert.Equal(t, "product not found", resp.Failed[1].Reason)

	// The blocked product is untouched; the deletable one is gone.
	_, ok := products.get(blocked.ID)
	assert.True(t, ok)
	_, ok = products.get(deletable.ID)
	assert.False(t, ok)
}

func TestCanDelete(t *testing.T) {
	products := newStubProductRepo()
	sales := newStubSaleRepo()
	free := products.put(model.Product{Name: "Rope", Quantity: 1,
		PurchaseDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)})
	sold := products.put(model.Product{Name: "Rack", Quantity: 1,
		PurchaseDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)})
	sales.sales = append(sales.sales, model.Sale{ProductID: sold.ID, SalePrice: dec("300.00")})

	svc := NewCatalogService(products, sales)

	ok, err := svc.CanDelete(context.Background(), free.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CanDelete(context.Background(), sold.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
