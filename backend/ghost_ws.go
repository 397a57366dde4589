package main

import (
	"net/http"
	"sync"
)

type ghostCell struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Player int `json:"player"`
}

// ghostPayload is a move hint for the human to play. Active=false retracts
// the previous hint.
type ghostPayload struct {
	Mode       string     `json:"mode,omitempty"`
	Best       *ghostCell `json:"best,omitempty"`
	Depth      int        `json:"depth,omitempty"`
	Score      int        `json:"score,omitempty"`
	NextPlayer int        `json:"next_player,omitempty"`
	HistoryLen int        `json:"history_len,omitempty"`
	Active     bool       `json:"active"`
}

// GhostHub fans hints out on /ws/ghost. A hint stays current until the
// retraction that follows the human's move, and a browser that connects in
// between is sent it straight away instead of waiting for the next position.
type GhostHub struct {
	*Hub
	mu      sync.Mutex
	current *ghostPayload
}

func NewGhostHub() *GhostHub {
	return &GhostHub{Hub: NewHub()}
}

func (h *GhostHub) Publish(payload ghostPayload) bool {
	h.mu.Lock()
	if payload.Active {
		hint := payload
		h.current = &hint
	} else {
		h.current = nil
	}
	h.mu.Unlock()
	return h.Hub.Publish("ghost", payload)
}

func (h *GhostHub) Current() (ghostPayload, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		return ghostPayload{}, false
	}
	return *h.current, true
}

func serveGhostWS(hub *GhostHub, w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub.Hub, send: make(chan []byte, 16)}
	hub.Register(client)
	if hint, ok := hub.Current(); ok {
		client.sendJSON(wsMessage{Type: "ghost", Payload: mustMarshal(hint)})
	}

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send, wsIdlePingInterval); err != nil {
			return
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.Unregister(client)
			return
		}
	}
}
