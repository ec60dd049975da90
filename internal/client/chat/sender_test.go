package chat

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/uniswap/internal/client/apiclient"
	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/services"
	"github.com/dmitrijs2005/uniswap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessages(t *testing.T, b *testutil.Backend) services.MessageService {
	t.Helper()
	token := testutil.MintToken(t, 7, time.Now().Add(time.Hour))
	return services.NewMessageService(apiclient.New(b.URL(), testutil.NewMemoryTokens(token)))
}

func TestSend_DoubleEnterPostsOnce(t *testing.T) {
	b := testutil.NewBackend(t)
	b.JSON(http.MethodPost, "/api/messages", http.StatusOK, map[string]any{"messageId": 1, "text": "hi"})

	s := NewSender(newMessages(t, b), DefaultGuardWindow)
	t.Cleanup(s.Close)
	ctx := context.Background()

	msg, err := s.Send(ctx, 7, 9, "  hi  ", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.MessageID)

	_, err = s.Send(ctx, 7, 9, "hi", 0)
	assert.ErrorIs(t, err, ErrSendInProgress)

	assert.Equal(t, 1, b.Count(http.MethodPost, "/api/messages"))
	body := b.Last().JSON()
	assert.Equal(t, "hi", body["text"])
	assert.EqualValues(t, 9, body["receiverId"])
}

func TestSend_GuardReopensAfterWindow(t *testing.T) {
	b := testutil.NewBackend(t)
	b.JSON(http.MethodPost, "/api/messages", http.StatusOK, map[string]any{"messageId": 1})

	s := NewSender(newMessages(t, b), 20*time.Millisecond)
	t.Cleanup(s.Close)
	ctx := context.Background()

	_, err := s.Send(ctx, 7, 9, "one", 0)
	require.NoError(t, err)
	assert.True(t, s.Busy())

	assert.Eventually(t, func() bool { return !s.Busy() }, time.Second, 5*time.Millisecond)

	_, err = s.Send(ctx, 7, 9, "two", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Count(http.MethodPost, "/api/messages"))
}

func TestSend_FailureStillHoldsGuard(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Handle(http.MethodPost, "/api/messages", func(w http.ResponseWriter, _ *http.Request) {
		testutil.WriteMessage(w, http.StatusInternalServerError, "db down")
	})

	s := NewSender(newMessages(t, b), DefaultGuardWindow)
	t.Cleanup(s.Close)
	ctx := context.Background()

	_, err := s.Send(ctx, 7, 9, "hi", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apiclient.ErrServer))

	_, err = s.Send(ctx, 7, 9, "hi", 0)
	assert.ErrorIs(t, err, ErrSendInProgress)
	assert.Equal(t, 1, b.Count(http.MethodPost, "/api/messages"))
}

func TestSend_EmptyIsRejectedWithoutClosingGuard(t *testing.T) {
	p := &countingPoster{}
	s := NewSender(p, 0)
	t.Cleanup(s.Close)

	_, err := s.Send(context.Background(), 7, 9, "   ", 0)
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.False(t, s.Busy())
	assert.Zero(t, p.calls)
}

type countingPoster struct{ calls int }

func (p *countingPoster) Send(context.Context, models.SendMessageRequest) (*models.Message, error) {
	p.calls++
	return &models.Message{}, nil
}
