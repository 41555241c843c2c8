package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSaleService struct {
	createErr error
}

func (s *stubSaleService) Create(_ context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.SaleResponse{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		SaleDate:  req.SaleDate,
		SalePrice: req.SalePrice,
	}, nil
}

func (s *stubSaleService) Get(context.Context, uuid.UUID) (*dto.SaleResponse, error) {
	return nil, service.ErrSaleNotFound
}

func (s *stubSaleService) List(context.Context, dto.SaleFilter) (*dto.SaleListResponse, error) {
	return &dto.SaleListResponse{Data: []dto.SaleResponse{}}, nil
}

func newSaleRouter(svc service.SaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSaleHandler(svc)
	r.POST("/v1/sales", h.Create)
	return r
}

func postSale(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validSaleBody = `{"product":"1b671a64-40d5-491e-99b0-da01ff1f3341","sale_date":"2026-03-01","sale_price":"550.00"}`

func TestCreateSaleHandlerSuccess(t *testing.T) {
	r := newSaleRouter(&stubSaleService{})
	w := postSale(t, r, validSaleBody)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateSaleHandlerAlreadySold(t *testing.T) {
	r := newSaleRouter(&stubSaleService{createErr: service.ErrAlreadySold})
	w := postSale(t, r, validSaleBody)
	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "already_sold", body["code"])
}

func TestCreateSaleHandlerInsufficientStock(t *testing.T) {
	r := newSaleRouter(&stubSaleService{createErr: service.ErrInsufficientStock})
	w := postSale(t, r, validSaleBody)
	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "insufficient_stock", body["code"])
}

func TestCreateSaleHandlerProductMissing(t *testing.T) {
	r := newSaleRouter(&stubSaleService{createErr: service.ErrProductNotFound})
	w := postSale(t, r, validSaleBody)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSaleHandlerValidation(t *testing.T) {
	r := newSaleRouter(&stubSaleService{})

	// Not a UUID and not a date.
	w := postSale(t, r, `{"product":"nope","sale_date":"March 1st","sale_price":"1.00"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
