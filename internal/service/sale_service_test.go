package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(products *stubProductRepo, quantity int, sold bool) model.Product {
	return products.put(model.Product{
		Name:          "Squat Rack",
		PurchasePrice: dec("400.00"),
		Markup:        dec("25.00"),
		FinalPrice:    dec("500.00"),
		PurchaseDate:  time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		IsSold:        sold,
		Quantity:      quantity,
	})
}

func TestCreateSaleSuccess(t *testing.T) {
	products := newStubProductRepo()
	sales := newStubSaleRepo()
	p := seedProduct(products, 5, false)

	svc := NewSaleService(sales, products)
	resp, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: p.ID.String(),
		SaleDate:  "2026-03-01",
		SalePrice: dec("550.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID.String(), resp.ProductID)
	assert.Equal(t, "Squat Rack", resp.ProductName)
	assert.Equal(t, "2026-03-01", resp.SaleDate)
	assert.True(t, resp.SalePrice.Equal(dec("550.00")))

	stored, _ := products.get(p.ID)
	assert.True(t, stored.IsSold)
	require.NotNil(t, stored.SaleDate)
	// The sale's own date, not today's.
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *stored.SaleDate)
	// Quantity stays as-is; only the sold flag marks the product off-market.
	assert.Equal(t, 5, stored.Quantity)

	require.Len(t, sales.sales, 1)
	assert.Equal(t, p.ID, sales.sales[0].ProductID)
}

func TestCreateSaleAlreadySold(t *testing.T) {
	products := newStubProductRepo()
	sales := newStubSaleRepo()
	p := seedProduct(products, 5, true)

	svc := NewSaleService(sales, products)
	_, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: p.ID.String(),
		SaleDate:  "2026-03-01",
		SalePrice: dec("550.00"),
	})
	assert.ErrorIs(t, err, ErrAlreadySold)
	assert.Empty(t, sales.sales, "no ledger row on a rejected sale")
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	products := newStubProductRepo()
	sales := newStubSaleRepo()
	p := seedProduct(products, 0, false)

	svc := NewSaleService(sales, products)
	_, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: p.ID.String(),
		SaleDate:  "2026-03-01",
		SalePrice: dec("550.00"),
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	stored, _ := products.get(p.ID)
	assert.False(t, stored.IsSold, "rejected sale must not mutate the product")
	assert.Nil(t, stored.SaleDate)
	assert.Empty(t, sales.sales)
}

func TestCreateSalePreconditionOrder(t *testing.T) {
	// A product that is both sold and out of stock reports already_sold:
	// the sold check runs first.
	products := newStubProductRepo()
	p := seedProduct(products, 0, true)

	svc := NewSaleService(newStubSaleRepo(), products)
	_, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: p.ID.String(),
		SaleDate:  "2026-03-01",
		SalePrice: dec("550.00"),
	})
	assert.ErrorIs(t, err, ErrAlreadySold)
}

func TestCreateSaleProductMissing(t *testing.T) {
	svc := NewSaleService(newStubSaleRepo(), newStubProductRepo())
	_, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: "1b671a64-40d5-491e-99b0-da01ff1f3341",
		SaleDate:  "2026-03-01",
		SalePrice: dec("10.00"),
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateSaleRollsBackProductOnLedgerFailure(t *testing.T) {
	products := newStubProductRepo()
	sales := newStubSaleRepo()
	sales.createErr = errStoreDown
	p := seedProduct(products, 2, false)

	svc := NewSaleService(sales, products)
	_, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: p.ID.String(),
		SaleDate:  "2026-03-01",
		SalePrice: dec("100.00"),
	})
	require.Error(t, err)

	// The transaction rolled back the product mutation.
	stored, _ := products.get(p.ID)
	assert.False(t, stored.IsSold)
	assert.Nil(t, stored.SaleDate)
}

func TestCreateSaleConcurrentOnlyOneSucceeds(t *testing.T) {
	products := newStubProductRepo()
	sales := newStubSaleRepo()
	p := seedProduct(products, 10, false)

	svc := NewSaleService(sales, products)

	req := dto.CreateSaleRequest{
		ProductID: p.ID.String(),
		SaleDate:  "2026-03-01",
		SalePrice: dec("550.00"),
	}

	const attempts = 2
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), req)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, rejected int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrAlreadySold)
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent sale may win")
	assert.Equal(t, 1, rejected)
	assert.Len(t, sales.sales, 1, "the ledger holds exactly one row")
}

func TestGetSaleNotFound(t *testing.T) {
	svc := NewSaleService(newStubSaleRepo(), newStubProductRepo())
	_, err := svc.Get(context.Background(), mustUUID(t, "1b671a64-40d5-491e-99b0-da01ff1f3341"))
	assert.ErrorIs(t, err, ErrSaleNotFound)
}
