package handler

import (
	"errors"
	"net/http"

	"github.com/beknazar93/CRM2/internal/apierror"
	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc service.CatalogService
}

func NewProductHandler(svc service.CatalogService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create registers a new product. The final price is derived server-side
// from the purchase price and markup; any value sent by the client is ignored.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNegativeQuantity):
			c.JSON(http.StatusUnprocessableEntity, apierror.New("Quantity cannot be negative"))
		case errors.Is(err, service.ErrNegativePrice):
			c.JSON(http.StatusUnprocessableEntity, apierror.New("Purchase price and markup cannot be negative"))
		default:
			c.Error(err)
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
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

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Product not found"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		case errors.Is(err, service.ErrNegativeQuantity):
			c.JSON(http.StatusUnprocessableEntity, apierror.New("Quantity cannot be negative"))
		case errors.Is(err, service.ErrNegativePrice):
			c.JSON(http.StatusUnprocessableEntity, apierror.New("Purchase price and markup cannot be negative"))
		default:
			c.Error(err)
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete removes a product unless a sale references it.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		case errors.Is(err, service.ErrHasDependentSales):
			c.JSON(http.StatusConflict, apierror.NewWithCode(err.Error(), "has_dependent_sales"))
		default:
			c.Error(err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkDelete deletes a batch of products with partial success. Products with
// dependent sales are reported in the failed list; the rest are deleted.
func (h *ProductHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteProductsRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.BulkDelete(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
