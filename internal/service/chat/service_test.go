package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
	"github.com/medibridge/directory-api/pkg/messaging"
)

// mockBroker records publishes; PublishErr makes every publish fail.
type mockBroker struct {
	messaging.NoopBroker
	PublishErr error
	channels   []string
	payloads   []interface{}
	stream     chan []byte
	subscribed []string
}

func (m *mockBroker) Publish(ctx context.Context, channel string, message interface{}) error {
	if m.PublishErr != nil {
		return m.PublishErr
	}
	m.channels = append(m.channels, channel)
	m.payloads = append(m.payloads, message)
	return nil
}

func (m *mockBroker) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	m.subscribed = append(m.subscribed, channel)
	return m.stream, nil
}

func TestSendStoresAndPublishes(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemory()
	broker := &mockBroker{}
	svc := NewService(backend, broker, zerolog.Nop())

	id, err := svc.Send(ctx, (&model.SendMessageRequest{
		RoomID:   "room-7",
		SenderID: "patient-1",
		Content:  "When is my consult?",
	}).ChatMessage())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	msgs, err := store.NewRepository[model.ChatMessage](backend).Query(ctx, store.Filter{}.Eq("room_id", "room-7"), 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, model.SenderRolePatient, msgs[0].SenderRole)
	assert.Equal(t, model.MessageTypeText, msgs[0].Type)

	require.Len(t, broker.channels, 1)
	assert.Equal(t, "chat:room-7", broker.channels[0])
}

func TestSendSucceedsWhenPublishFails(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemory()
	broker := &mockBroker{PublishErr: errors.New("redis down")}
	svc := NewService(backend, broker, zerolog.Nop())

	id, err := svc.Send(ctx, (&model.SendMessageRequest{
		RoomID:   "room-1",
		SenderID: "s-1",
		Content:  "hello",
	}).ChatMessage())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	msgs, err := store.NewRepository[model.ChatMessage](backend).Query(ctx, store.Filter{}, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestStreamSubscribesToRoomChannel(t *testing.T) {
	ctx := context.Background()
	stream := make(chan []byte, 1)
	stream <- []byte(`{"content":"hi"}`)
	close(stream)

	broker := &mockBroker{stream: stream}
	svc := NewService(store.NewMemory(), broker, zerolog.Nop())

	out, err := svc.Stream(ctx, "room-7")
	require.NoError(t, err)
	assert.Equal(t, []string{"chat:room-7"}, broker.subscribed)

	msg, ok := <-out
	require.True(t, ok)
	assert.Equal(t, `{"content":"hi"}`, string(msg))

	_, ok = <-out
	assert.False(t, ok)
}
