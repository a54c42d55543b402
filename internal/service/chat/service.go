// Package chat persists coordinator chat messages and fans them out over
// the message broker for live delivery.
package chat

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
	"github.com/medibridge/directory-api/pkg/messaging"
)

type Service struct {
	messages store.Repository[model.ChatMessage, *model.ChatMessage]
	broker   messaging.Broker
	logger   zerolog.Logger
}

func NewService(backend store.Backend, broker messaging.Broker, logger zerolog.Logger) *Service {
	return &Service{
		messages: store.NewRepository[model.ChatMessage](backend),
		broker:   broker,
		logger:   logger,
	}
}

// Send stores the message, then publishes it to chat:<room_id>. The publish
// is best-effort; the insert is the source of truth.
func (s *Service) Send(ctx context.Context, msg *model.ChatMessage) (string, error) {
	id, err := s.messages.Insert(ctx, msg)
	if err != nil {
		return "", err
	}

	msg.SetID(id)
	if err := s.broker.Publish(ctx, channelFor(msg.RoomID), msg); err != nil {
		s.logger.Warn().Err(err).Str("room_id", msg.RoomID).Msg("chat publish failed")
	}
	return id, nil
}

// Stream subscribes to a room's live messages. The channel closes when ctx
// is cancelled; history is not replayed.
func (s *Service) Stream(ctx context.Context, roomID string) (<-chan []byte, error) {
	return s.broker.Subscribe(ctx, channelFor(roomID))
}

func channelFor(roomID string) string { return "chat:" + roomID }
