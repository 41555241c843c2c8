package handler

import (
	"errors"
	"net/http"

	"github.com/beknazar93/CRM2/internal/apierror"
	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	svc           service.ClientService
	retentionDays int
}

func NewClientHandler(svc service.ClientService, retentionDays int) *ClientHandler {
	return &ClientHandler{svc: svc, retentionDays: retentionDays}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateClient) {
			c.JSON(http.StatusConflict, apierror.NewWithCode(err.Error(), "duplicate_client"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClientHandler) List(c *gin.Context) {
	var filter dto.ClientFilter
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

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Client not found"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateClientRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Client not found"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Client not found"))
			return
		}
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Cleanup removes stale client records past the retention window.
func (h *ClientHandler) Cleanup(c *gin.Context) {
	resp, err := h.svc.Cleanup(c.Request.Context(), h.retentionDays)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Import bulk-creates clients from an uploaded CSV file (multipart field "file").
func (h *ClientHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("CSV file is required (multipart field \"file\")"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Cannot read uploaded file"))
		return
	}
	defer f.Close()

	resp, err := h.svc.ImportCSV(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
