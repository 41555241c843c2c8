package handler

import (
	"errors"
	"net/http"

	"github.com/beknazar93/CRM2/internal/apierror"
	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/service"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	svc service.SaleService
}

func NewSaleHandler(svc service.SaleService) *SaleHandler {
	return &SaleHandler{svc: svc}
}

// Create registers a sale. Precondition failures come back as 409 with a
// machine-readable code so the UI can distinguish a double-sell from an
// out-of-stock product.
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		case errors.Is(err, service.ErrAlreadySold):
			c.JSON(http.StatusConflict, apierror.NewWithCode("This product is already sold.", "already_sold"))
		case errors.Is(err, service.ErrInsufficientStock):
			c.JSON(http.StatusConflict, apierror.NewWithCode("Not enough stock to sell this product.", "insufficient_stock"))
		default:
			c.Error(err)
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Sale not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SaleHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if !bindQuery(c, &filter) {
		return
	}

	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
