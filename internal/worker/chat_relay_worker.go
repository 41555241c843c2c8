package worker

// chat_relay_worker.go
// Processes chat relay jobs: every stored chat message is forwarded to the
// HR inbox by email, then marked as forwarded.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/beknazar93/CRM2/internal/infra"
	"github.com/beknazar93/CRM2/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ChatRelayPayload is the job envelope sent to QueueChatRelay.
type ChatRelayPayload struct {
	MessageID string `json:"message_id"`
	UserName  string `json:"user_name"`
	Message   string `json:"message"`
	SentAt    string `json:"sent_at"`
}

// ChatRelayWorker sends the HR notification email through a circuit breaker
// so a dead SMTP server fast-fails instead of blocking the pool.
type ChatRelayWorker struct {
	mailer  *infra.Mailer
	breaker *infra.CircuitBreaker
	repo    repository.ChatRepository
	hrEmail string
}

func NewChatRelayWorker(mailer *infra.Mailer, breaker *infra.CircuitBreaker, repo repository.ChatRepository, hrEmail string) *ChatRelayWorker {
	return &ChatRelayWorker{mailer: mailer, breaker: breaker, repo: repo, hrEmail: hrEmail}
}

// Process relays one chat message. A non-nil return means the pool should
// retry (or dead-letter) the job.
func (w *ChatRelayWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ChatRelayPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Malformed payloads are unrecoverable — log and drop, don't retry.
		log.Error().Err(err).Msg("chat_relay: invalid payload")
		return nil
	}

	subject := fmt.Sprintf("New message from %s", payload.UserName)
	body := fmt.Sprintf("Message: %s\n\nSent: %s", payload.Message, payload.SentAt)

	if err := w.breaker.Execute(func() error {
		return w.mailer.Send(w.hrEmail, subject, body)
	}); err != nil {
		log.Error().Err(err).Str("message_id", payload.MessageID).Msg("chat_relay: send failed")
		return err
	}

	id, err := uuid.Parse(payload.MessageID)
	if err == nil {
		if err := w.repo.MarkForwarded(ctx, id); err != nil {
			log.Warn().Err(err).Str("message_id", payload.MessageID).
				Msg("chat_relay: email sent but forward flag update failed")
		}
	}

	log.Info().Str("message_id", payload.MessageID).Str("to", w.hrEmail).
		Msg("chat_relay: message forwarded to HR")
	return nil
}
