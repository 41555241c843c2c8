package service

import (
	"context"
	"time"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/model"
	"github.com/beknazar93/CRM2/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CatalogService owns product records and their derived pricing, and guards
// destructive operations against products that sales already reference.
type CatalogService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, req dto.BulkDeleteProductsRequest) (*dto.BulkDeleteProductsResponse, error)
	// CanDelete exposes the deletion rule to the permission layer: delete
	// permission for a product equals "no sale references it".
	CanDelete(ctx context.Context, id uuid.UUID) (bool, error)
}

type catalogService struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
}

func NewCatalogService(products repository.ProductRepository, sales repository.SaleRepository) CatalogService {
	return &catalogService{products: products, sales: sales}
}

// finalPrice derives the selling price from the purchase price and markup
// percentage. Runs on EVERY persist, not only creation, so edits to either
// input always re-derive the stored value.
func finalPrice(purchase, markup decimal.Decimal) decimal.Decimal {
	return purchase.Add(purchase.Mul(markup).Div(decimal.NewFromInt(100))).Round(2)
}

func (s *catalogService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if req.PurchasePrice.IsNegative() || req.Markup.IsNegative() {
		return nil, ErrNegativePrice
	}
	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:          req.Name,
		PurchasePrice: req.PurchasePrice.Round(2),
		Markup:        req.Markup.Round(2),
		PurchaseDate:  purchaseDate,
		Quantity:      req.Quantity,
	}
	// Derive from the rounded values that are actually persisted, so the
	// stored row always satisfies final = purchase + purchase*markup/100.
	p.FinalPrice = finalPrice(p.PurchasePrice, p.Markup)
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *catalogService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return productToResponse(p), nil
}

func (s *catalogService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	products, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *catalogService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if req.PurchasePrice != nil && req.PurchasePrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if req.Markup != nil && req.Markup.IsNegative() {
		return nil, ErrNegativePrice
	}

	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.PurchasePrice != nil {
		p.PurchasePrice = req.PurchasePrice.Round(2)
	}
	if req.Markup != nil {
		p.Markup = req.Markup.Round(2)
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := parseDate(*req.PurchaseDate)
		if err != nil {
			return nil, err
		}
		p.PurchaseDate = purchaseDate
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	// IsSold and SaleDate are never touched here — only a successful sale
	// mutates them.
	p.FinalPrice = finalPrice(p.PurchasePrice, p.Markup)

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *catalogService) CanDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	count, err := s.sales.CountByProductID(ctx, id)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return ErrProductNotFound
	}
	ok, err := s.CanDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &DependentSalesError{ProductName: p.Name}
	}
	return s.products.Delete(ctx, id)
}

// BulkDelete evaluates every product independently: products that pass the
// deletion guard are removed, failures are collected per item. A failure for
// one product never aborts or rolls back deletions of its siblings.
func (s *catalogService) BulkDelete(ctx context.Context, req dto.BulkDeleteProductsRequest) (*dto.BulkDeleteProductsResponse, error) {
	resp := &dto.BulkDeleteProductsResponse{
		Deleted: make([]string, 0, len(req.IDs)),
		Failed:  make([]dto.BulkDeleteFailure, 0),
	}

	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			resp.Failed = append(resp.Failed, dto.BulkDeleteFailure{ProductName: raw, Reason: "invalid id"})
			continue
		}
		p, err := s.products.FindByID(ctx, id)
		if err != nil {
			resp.Failed = append(resp.Failed, dto.BulkDeleteFailure{ProductName: raw, Reason: "product not found"})
			continue
		}
		ok, err := s.CanDelete(ctx, id)
		if err != nil {
			resp.Failed = append(resp.Failed, dto.BulkDeleteFailure{ProductName: p.Name, Reason: err.Error()})
			continue
		}
		if !ok {
			resp.Failed = append(resp.Failed, dto.BulkDeleteFailure{ProductName: p.Name, Reason: "product has associated sales"})
			continue
		}
		if err := s.products.Delete(ctx, id); err != nil {
			log.Error().Err(err).Str("product_id", id.String()).Msg("bulk delete: store error")
			resp.Failed = append(resp.Failed, dto.BulkDeleteFailure{ProductName: p.Name, Reason: err.Error()})
			continue
		}
		resp.Deleted = append(resp.Deleted, id.String())
	}
	return resp, nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	var saleDate *string
	if p.SaleDate != nil {
		formatted := p.SaleDate.Format(dateLayout)
		saleDate = &formatted
	}
	sales := make([]dto.SaleResponse, 0, len(p.Sales))
	for i := range p.Sales {
		sale := saleToResponse(&p.Sales[i])
		sale.ProductName = p.Name
		sales = append(sales, *sale)
	}
	return &dto.ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		Markup:        p.Markup,
		FinalPrice:    p.FinalPrice,
		PurchaseDate:  p.PurchaseDate.Format(dateLayout),
		IsSold:        p.IsSold,
		SaleDate:      saleDate,
		Quantity:      p.Quantity,
		Sales:         sales,
	}
}
