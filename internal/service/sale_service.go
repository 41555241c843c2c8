package service

import (
	"context"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/model"
	"github.com/beknazar93/CRM2/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleService is the sale ledger: it records sales, enforcing the stock and
// sold-state invariants, and propagates the state change to the referenced
// product inside a single transaction.
type SaleService interface {
	Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
}

type saleService struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
}

func NewSaleService(sales repository.SaleRepository, products repository.ProductRepository) SaleService {
	return &saleService{sales: sales, products: products}
}

// Create registers a sale. Preconditions run in order, short-circuiting on
// the first failure, against a row-locked read of the product so that two
// concurrent calls for the same product cannot both succeed:
//  1. product must exist
//  2. product must not be sold already
//  3. quantity must be at least 1
//
// On success the product is marked sold with the sale's date (not today's)
// and the sale row is persisted — both inside the same transaction, so a
// storage failure leaves neither write behind.
func (s *saleService) Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	pid, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	saleDate, err := parseDate(req.SaleDate)
	if err != nil {
		return nil, err
	}

	var sale model.Sale
	var productName string
	txErr := s.products.Transaction(ctx, func(tx *gorm.DB) error {
		p, err := s.products.FindByIDForUpdate(tx, pid)
		if err != nil {
			return ErrProductNotFound
		}
		if p.IsSold {
			return ErrAlreadySold
		}
		if p.Quantity < 1 {
			return ErrInsufficientStock
		}

		p.IsSold = true
		p.SaleDate = &saleDate
		// Quantity is deliberately NOT decremented: the upstream business
		// rule treats quantity and the sold flag as independent fields, so a
		// product with quantity 50 is fully sold after one sale. Flagged,
		// not fixed — see DESIGN.md.
		if err := s.products.UpdateTx(tx, p); err != nil {
			return err
		}

		productName = p.Name
		sale = model.Sale{
			ProductID: pid,
			SaleDate:  saleDate,
			SalePrice: req.SalePrice.Round(2),
		}
		return s.sales.CreateTx(tx, &sale)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := saleToResponse(&sale)
	resp.ProductName = productName
	return resp, nil
}

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, ErrSaleNotFound
	}
	resp := saleToResponse(sale)
	if sale.Product != nil {
		resp.ProductName = sale.Product.Name
	}
	return resp, nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	sales, total, err := s.sales.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		resp := saleToResponse(&sales[i])
		if sales[i].Product != nil {
			resp.ProductName = sales[i].Product.Name
		}
		items = append(items, *resp)
	}
	return &dto.SaleListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func saleToResponse(sale *model.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:        sale.ID.String(),
		ProductID: sale.ProductID.String(),
		SaleDate:  sale.SaleDate.Format(dateLayout),
		SalePrice: sale.SalePrice,
	}
}
