//go:build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const (
	stubBotToken = "e2e-token"
	stubChatID   = "4242"
)

// SentMessage is one sendMessage call received by the stub.
type SentMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// TelegramStub stands in for the Bot API. It answers ok:true unless Reject was called.
type TelegramStub struct {
	server *httptest.Server

	mu       sync.Mutex
	messages []SentMessage
	reject   bool
}

func NewTelegramStub(t *testing.T) *TelegramStub {
	t.Helper()

	stub := &TelegramStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(stub.handle))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *TelegramStub) URL() string { return s.server.URL }

func (s *TelegramStub) handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/bot"+stubBotToken+"/sendMessage") {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"ok":false,"error_code":404,"description":"Not Found"}`)
		return
	}

	var msg SentMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request"}`)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reject {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
		return
	}
	s.messages = append(s.messages, msg)
	_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1}}`)
}

func (s *TelegramStub) Messages() []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SentMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reject makes every following sendMessage call fail the way the Bot API does for a bad chat id.
func (s *TelegramStub) Reject() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reject = true
}

func (s *TelegramStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.reject = false
}
