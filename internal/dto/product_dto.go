package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string          `json:"name"           validate:"required,min=1,max=100"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"min=0"`
	Markup        decimal.Decimal `json:"markup"         validate:"min=0"`
	PurchaseDate  string          `json:"purchase_date"  validate:"required,datetime=2006-01-02"`
	Quantity      int             `json:"quantity"       validate:"min=0"`
}

// UpdateProductRequest carries partial edits. final_price is absent on
// purpose: it is derived and recomputed on every save.
type UpdateProductRequest struct {
	Name          *string          `json:"name"           validate:"omitempty,min=1,max=100"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" validate:"omitempty,min=0"`
	Markup        *decimal.Decimal `json:"markup"         validate:"omitempty,min=0"`
	PurchaseDate  *string          `json:"purchase_date"  validate:"omitempty,datetime=2006-01-02"`
	Quantity      *int             `json:"quantity"       validate:"omitempty,min=0"`
}

type BulkDeleteProductsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	Name   string `form:"name"`
	IsSold *bool  `form:"is_sold"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Markup        decimal.Decimal `json:"markup"`
	FinalPrice    decimal.Decimal `json:"final_price"`
	PurchaseDate  string          `json:"purchase_date"`
	IsSold        bool            `json:"is_sold"`
	SaleDate      *string         `json:"sale_date"`
	Quantity      int             `json:"quantity"`
	Sales         []SaleResponse  `json:"sales"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// BulkDeleteFailure reports one product that could not be deleted. Failures
// never abort sibling deletions — each object's fate is decided independently.
type BulkDeleteFailure struct {
	ProductName string `json:"product_name"`
	Reason      string `json:"reason"`
}

type BulkDeleteProductsResponse struct {
	Deleted []string            `json:"deleted"`
	Failed  []BulkDeleteFailure `json:"failed"`
}
