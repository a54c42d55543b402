package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
	"github.com/medibridge/directory-api/internal/service/chat"
	"github.com/medibridge/directory-api/pkg/messaging"
)

// streamBroker hands out a fixed channel on Subscribe.
type streamBroker struct {
	messaging.NoopBroker
	stream chan []byte
}

func (b *streamBroker) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	return b.stream, nil
}

func setupRouter(t *testing.T, broker messaging.Broker) (*gin.Engine, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	backend := store.NewMemory()
	engine := gin.New()
	NewHandler(chat.NewService(backend, broker, zerolog.Nop())).RegisterRoutes(engine.Group(""))
	return engine, backend
}

func TestSendMessage(t *testing.T) {
	engine, backend := setupRouter(t, messaging.NoopBroker{})

	req := httptest.NewRequest(http.MethodPost, "/chat/send", strings.NewReader(`{
		"room_id": "room-7",
		"sender_id": "patient-1",
		"content": "When is my consult?"
	}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])

	msgs, err := store.NewRepository[model.ChatMessage](backend).Query(
		context.Background(), store.Filter{}.Eq("room_id", "room-7"), 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, model.SenderRolePatient, msgs[0].SenderRole)
}

func TestStreamMessages(t *testing.T) {
	stream := make(chan []byte, 2)
	stream <- []byte(`{"content":"welcome"}`)
	stream <- []byte(`{"content":"doctor joined"}`)
	close(stream)

	engine, _ := setupRouter(t, &streamBroker{stream: stream})

	req := httptest.NewRequest(http.MethodGet, "/chat/stream?room_id=room-7", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "event:message")
	assert.Contains(t, body, `{"content":"welcome"}`)
	assert.Contains(t, body, `{"content":"doctor joined"}`)
}

func TestStreamMessagesRequiresRoomID(t *testing.T) {
	engine, _ := setupRouter(t, messaging.NoopBroker{})

	req := httptest.NewRequest(http.MethodGet, "/chat/stream", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
