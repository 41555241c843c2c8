package handler

import (
	"errors"
	"net/http"

	"github.com/beknazar93/CRM2/internal/apierror"
	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/middleware"
	"github.com/beknazar93/CRM2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownRole) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("Unknown role"))
			return
		}
		// Unique violation on username surfaces here.
		c.JSON(http.StatusConflict, apierror.New("Username already taken"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid username or password"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Refresh token invalid or expired"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token invalid or expired"))
		return
	}

	resp, err := h.svc.Profile(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("User not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
