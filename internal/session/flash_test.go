package session

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash_MessagesAreOneShot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	writer := New(ctx, "s1", store)
	writer.Success("Case created")
	writer.Error("Wallet not found")

	reader := New(ctx, "s1", store)
	msgs := reader.Messages()
	assert.Equal(t, []string{"Case created"}, msgs.Success)
	assert.Equal(t, []string{"Wallet not found"}, msgs.Error)

	again := reader.Messages()
	assert.Empty(t, again.Success)
	assert.Empty(t, again.Error)
}

func TestFlash_SessionsAreSeparate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	New(ctx, "a", store).Success("for a")

	assert.Empty(t, New(ctx, "b", store).Messages().Success)
	assert.Equal(t, []string{"for a"}, New(ctx, "a", store).Messages().Success)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Push(ctx, "s1", Message{Kind: KindSuccess, Text: "hi"}))
	now = now.Add(2 * time.Minute)

	msgs, err := store.Pop(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

type failingStore struct{}

func (failingStore) Push(context.Context, string, Message) error { return errors.New("down") }

func (failingStore) Pop(context.Context, string) ([]Message, error) { return nil, errors.New("down") }

func (failingStore) Ping(context.Context) error { return errors.New("down") }

func TestFlash_StoreErrorsAreSwallowed(t *testing.T) {
	f := New(context.Background(), "s1", failingStore{})
	f.Success("lost")
	msgs := f.Messages()
	assert.Empty(t, msgs.Success)
}

func TestFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)

	noop := FromContext(c)
	noop.Success("dropped")
	assert.Empty(t, noop.Messages().Success)

	f := New(context.Background(), "s1", NewMemoryStore(time.Minute))
	Attach(c, f)
	assert.Same(t, f, FromContext(c))
}
