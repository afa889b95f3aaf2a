package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
	// WriteTimeout bounds every reply sent to a client.
	WriteTimeout time.Duration
}

func NewWebSocket() (*WebSocket, error) {
	timeoutMs, err := lookupInt("WS_WRITE_TIMEOUT_MS", 5000)
	if err != nil {
		return nil, err
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:     upgrader,
		WriteTimeout: time.Duration(timeoutMs) * time.Millisecond,
	}

	return ws, nil
}
