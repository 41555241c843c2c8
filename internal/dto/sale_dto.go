package dto

import "github.com/shopspring/decimal"

type CreateSaleRequest struct {
	ProductID string          `json:"product"    validate:"required,uuid"`
	SaleDate  string          `json:"sale_date"  validate:"required,datetime=2006-01-02"`
	SalePrice decimal.Decimal `json:"sale_price" validate:"min=0"`
}

type SaleFilter struct {
	ProductID string `form:"product"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product"`
	ProductName string          `json:"product_name"`
	SaleDate    string          `json:"sale_date"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
