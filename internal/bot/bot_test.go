package bot

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type telegramStub struct {
	mu    sync.Mutex
	texts []string
}

func (s *telegramStub) handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"log","username":"lyricecho_log_bot"}}`))
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		_ = r.ParseForm()
		s.mu.Lock()
		s.texts = append(s.texts, r.FormValue("text"))
		s.mu.Unlock()
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":-100,"type":"channel"}}}`))
	default:
		http.NotFound(w, r)
	}
}

func TestBot_SendMessage(t *testing.T) {
	stub := &telegramStub{}
	srv := httptest.NewServer(http.HandlerFunc(stub.handler))
	defer srv.Close()

	b, err := NewWithEndpoint("log", "token", srv.URL+"/bot%s/%s")
	require.NoError(t, err)
	assert.Equal(t, "lyricecho_log_bot", b.Client.Self.UserName)
	assert.Equal(t, "log", b.Name())

	require.NoError(t, b.SendMessage(-100, "search failed"))

	stub.mu.Lock()
	defer stub.mu.Unlock()
	assert.Equal(t, []string{"search failed"}, stub.texts)
}

func TestBot_UnauthorizedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	}))
	defer srv.Close()

	_, err := NewWithEndpoint("log", "bad", srv.URL+"/bot%s/%s")
	assert.Error(t, err)
}
