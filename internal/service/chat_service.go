package service

import (
	"context"
	"time"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/model"
	"github.com/beknazar93/CRM2/internal/repository"
	"github.com/beknazar93/CRM2/internal/worker"

	"github.com/rs/zerolog/log"
)

type ChatService interface {
	Post(ctx context.Context, req dto.PostChatMessageRequest) (*dto.PostChatMessageResponse, error)
	List(ctx context.Context, limit int) ([]dto.ChatMessageResponse, error)
}

type chatService struct {
	repo       repository.ChatRepository
	dispatcher *worker.Dispatcher
}

func NewChatService(repo repository.ChatRepository, dispatcher *worker.Dispatcher) ChatService {
	return &chatService{repo: repo, dispatcher: dispatcher}
}

// Post persists the message and hands the HR relay to the worker pool.
// Enqueue is best-effort: if the queue is down the message is still stored
// and shows up in the HR inbox with is_forwarded=false.
func (s *chatService) Post(ctx context.Context, req dto.PostChatMessageRequest) (*dto.PostChatMessageResponse, error) {
	msg := &model.ChatMessage{
		UserName: req.UserName,
		Message:  req.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		payload := worker.ChatRelayPayload{
			MessageID: msg.ID.String(),
			UserName:  msg.UserName,
			Message:   msg.Message,
			SentAt:    msg.CreatedAt.Format(time.RFC3339),
		}
		if err := s.dispatcher.EnqueueChatRelay(ctx, payload); err != nil {
			log.Error().Err(err).Str("message_id", msg.ID.String()).Msg("chat relay enqueue failed")
		}
	}

	return &dto.PostChatMessageResponse{
		Status:  "success",
		Message: "Message forwarded to managers.",
	}, nil
}

func (s *chatService) List(ctx context.Context, limit int) ([]dto.ChatMessageResponse, error) {
	if limit < 1 {
		limit = 100
	}
	messages, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, dto.ChatMessageResponse{
			ID:          m.ID.String(),
			UserName:    m.UserName,
			Message:     m.Message,
			IsForwarded: m.IsForwarded,
			Timestamp:   m.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}
