package handler

import (
	"errors"
	"net/http"

	"github.com/beknazar93/CRM2/internal/apierror"
	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/service"

	"github.com/gin-gonic/gin"
)

type StageHandler struct {
	svc service.StageService
}

func NewStageHandler(svc service.StageService) *StageHandler {
	return &StageHandler{svc: svc}
}

func (h *StageHandler) Create(c *gin.Context) {
	var req dto.CreateStageRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StageHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StageHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StageHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateStageRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StageHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StageHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStageNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Stage not found"))
	case errors.Is(err, service.ErrClientNotFound):
		c.JSON(http.StatusUnprocessableEntity, apierror.New("One or more linked clients do not exist"))
	case errors.Is(err, service.ErrInvalidClientID):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	default:
		c.Error(err)
	}
}
