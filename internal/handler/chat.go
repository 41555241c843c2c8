package handler

import (
	"net/http"
	"strconv"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	svc service.ChatService
}

func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Post accepts a message from the public site and queues the HR relay.
// Delivery to HR is asynchronous; the caller gets an ack once the message
// is stored.
func (h *ChatHandler) Post(c *gin.Context) {
	var req dto.PostChatMessageRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Post(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List returns the most recent messages, newest first.
func (h *ChatHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 50
	}

	resp, err := h.svc.List(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
