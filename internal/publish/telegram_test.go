package publish

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksarkisyan/catalog-intake/internal/common"
)

func newTestNotifier(t *testing.T, handler http.HandlerFunc) (*TelegramNotifier, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	n, err := NewTelegramNotifier(TelegramConfig{
		BotToken: "123:abc",
		ChatID:   "-1001234567890",
		BaseURL:  srv.URL,
		Timeout:  5 * time.Second,
	}, nil)
	require.NoError(t, err)
	return n, srv
}

func TestPublishPhotoSendsMultipart(t *testing.T) {
	var gotPath, gotChatID, gotCaption, gotFilename string
	var gotPhoto []byte

	n, _ := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotChatID = r.FormValue("chat_id")
		gotCaption = r.FormValue("caption")
		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		gotPhoto, err = io.ReadAll(file)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":42}}`))
	})

	err := n.PublishPhoto(context.Background(), []byte("png-bytes"), "collage_1.png", "VERA MODA AB-220 BLACK")
	require.NoError(t, err)

	assert.Equal(t, "/bot123:abc/sendPhoto", gotPath)
	assert.Equal(t, "-1001234567890", gotChatID)
	assert.Equal(t, "VERA MODA AB-220 BLACK", gotCaption)
	assert.Equal(t, "collage_1.png", gotFilename)
	assert.Equal(t, []byte("png-bytes"), gotPhoto)
}

func TestPublishPhotoAPIError(t *testing.T) {
	n, _ := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})

	err := n.PublishPhoto(context.Background(), []byte("x"), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPublish)
	assert.True(t, strings.Contains(err.Error(), "chat not found"))
}

func TestPublishPhotoNotOKDespite200(t *testing.T) {
	n, _ := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"description":"flood control"}`))
	})

	err := n.PublishPhoto(context.Background(), []byte("x"), "c.png", "")
	assert.ErrorIs(t, err, common.ErrPublish)
}

func TestPublishPhotoRejectsEmpty(t *testing.T) {
	n, _ := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})
	err := n.PublishPhoto(context.Background(), nil, "c.png", "")
	assert.ErrorIs(t, err, common.ErrPublish)
}

func TestNewTelegramNotifierValidation(t *testing.T) {
	_, err := NewTelegramNotifier(TelegramConfig{ChatID: "1"}, nil)
	assert.Error(t, err)
	_, err = NewTelegramNotifier(TelegramConfig{BotToken: "t"}, nil)
	assert.Error(t, err)
}
