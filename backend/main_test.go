package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AmineOuatt/othello-game/othello"
)

func newTestServer(t *testing.T) (*httptest.Server, *GameController, *Hub) {
	t.Helper()
	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()
	ghostHub := NewGhostHub()
	done := make(chan struct{})
	go hub.Run(done)
	go ghostHub.Run(done)
	server := httptest.NewServer(newRouter(controller, hub, ghostHub))
	t.Cleanup(func() {
		server.Close()
		close(done)
	})
	return server, controller, hub
}

func postJSON(t *testing.T, url string, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func getStatus(t *testing.T, url string) StatusResponse {
	t.Helper()
	resp, err := http.Get(url + "/api/status")
	if err != nil {
		t.Fatalf("GET status: %v", err)
	}
	defer resp.Body.Close()
	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	return status
}

func TestPing(t *testing.T) {
	server, _, _ := newTestServer(t)
	resp, err := http.Get(server.URL + "/api/ping")
	if err != nil {
		t.Fatalf("ping: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestStartAndPlayThroughAPI(t *testing.T) {
	server, _, _ := newTestServer(t)

	status := getStatus(t, server.URL)
	if status.Status != "not_started" || status.Score.Black != 2 || status.Score.White != 2 || status.Score.Empty != 60 {
		t.Fatalf("unexpected initial status %+v", status)
	}
	if status.LastMove != nil {
		t.Fatalf("expected no last move before play, got %+v", status.LastMove)
	}

	resp, body := postJSON(t, server.URL+"/api/start", `{"settings":{"mode":"human_vs_human"}}`)
	if resp.StatusCode != http.StatusOK || body["status"] != "running" {
		t.Fatalf("expected running game, got %d %v", resp.StatusCode, body["status"])
	}

	legalResp, err := http.Get(server.URL + "/api/legal")
	if err != nil {
		t.Fatalf("GET legal: %v", err)
	}
	var legal legalMovesResponse
	if err := json.NewDecoder(legalResp.Body).Decode(&legal); err != nil {
		t.Fatalf("decode legal: %v", err)
	}
	legalResp.Body.Close()
	if legal.Player != 1 || len(legal.Moves) != 4 {
		t.Fatalf("expected four opening moves for Black, got %+v", legal)
	}

	resp, _ = postJSON(t, server.URL+"/api/move", `{"row":2,"col":3}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected legal move to be accepted, got %d", resp.StatusCode)
	}
	status = getStatus(t, server.URL)
	if status.Board[3][3] != 1 || status.Board[2][3] != 1 || status.NextPlayer != 2 {
		t.Fatalf("board not updated after move: %v next=%d", status.Board, status.NextPlayer)
	}
	if len(status.History) != 1 || len(status.History[0].Changes) != 2 {
		t.Fatalf("expected one history entry with two changes, got %+v", status.History)
	}
	if status.LastMove == nil || *status.LastMove != (othello.Move{Row: 2, Col: 3}) {
		t.Fatalf("expected last move (2,3), got %+v", status.LastMove)
	}

	resp, body = postJSON(t, server.URL+"/api/move", `{"row":0,"col":0}`)
	if resp.StatusCode != http.StatusBadRequest || body["error"] == nil {
		t.Fatalf("expected 400 for illegal move, got %d %v", resp.StatusCode, body)
	}

	resp, _ = postJSON(t, server.URL+"/api/move", `{"row":`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a broken payload, got %d", resp.StatusCode)
	}

	resp, body = postJSON(t, server.URL+"/api/stop", `{}`)
	if resp.StatusCode != http.StatusOK || body["status"] != "not_started" {
		t.Fatalf("expected stop to reset the game, got %v", body["status"])
	}
}

func TestMoveRefusedOnAITurn(t *testing.T) {
	server, _, _ := newTestServer(t)
	resp, _ := postJSON(t, server.URL+"/api/start", `{"settings":{"mode":"ai_vs_human","human_player":2}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("start failed: %d", resp.StatusCode)
	}
	resp, body := postJSON(t, server.URL+"/api/move", `{"row":2,"col":3}`)
	if resp.StatusCode != http.StatusBadRequest || body["error"] != "not human turn" {
		t.Fatalf("expected not human turn, got %d %v", resp.StatusCode, body)
	}
}

func TestSettingsValidation(t *testing.T) {
	withConfig(t, func(cfg *Config) {})
	server, controller, _ := newTestServer(t)

	resp, _ := postJSON(t, server.URL+"/api/start", `{"settings":{"mode":"chess"}}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected unknown mode to be rejected, got %d", resp.StatusCode)
	}
	resp, _ = postJSON(t, server.URL+"/api/settings", `{"settings":{"mode":"ai_vs_ai","black_depth":-2}}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected negative depth to be rejected, got %d", resp.StatusCode)
	}
	resp, _ = postJSON(t, server.URL+"/api/settings", `{"config":{"ai_depth":0}}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected zero config depth to be rejected, got %d", resp.StatusCode)
	}

	resp, body := postJSON(t, server.URL+"/api/settings", `{"settings":{"white_depth":5},"config":{"ghost_mode":true}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected settings update to succeed, got %d %v", resp.StatusCode, body)
	}
	if !GetConfig().GhostMode || GetConfig().AiDepth <= 0 {
		t.Fatalf("partial config should only flip ghost_mode, got %+v", GetConfig())
	}
	if controller.Settings().WhiteDepth != 5 {
		t.Fatalf("expected white depth 5, got %d", controller.Settings().WhiteDepth)
	}
}

func TestSettingsDTORoundTrip(t *testing.T) {
	for _, mode := range []GameSettingsDTO{
		{Mode: "ai_vs_ai", BlackDepth: 2, WhiteDepth: 4},
		{Mode: "human_vs_human", HumanPlayer: 1, BlackDepth: 3, WhiteDepth: 3},
		{Mode: "ai_vs_human", HumanPlayer: 2, BlackDepth: 5, WhiteDepth: 3},
		{Mode: "ai_vs_human", HumanPlayer: 1, BlackDepth: 3, WhiteDepth: 1},
	} {
		settings, err := settingsFromDTO(mode, DefaultGameSettings())
		if err != nil {
			t.Fatalf("settingsFromDTO(%+v): %v", mode, err)
		}
		if got := controllerSettingsDTO(settings); got != mode {
			t.Fatalf("round trip changed settings: %+v -> %+v", mode, got)
		}
	}
}

func TestListenAddrCannotChangeLive(t *testing.T) {
	withConfig(t, func(cfg *Config) {})
	server, _, _ := newTestServer(t)
	before := GetConfig()

	resp, body := postJSON(t, server.URL+"/api/settings", `{"config":{"listen_addr":":9999","ghost_mode":true}}`)
	if resp.StatusCode != http.StatusBadRequest || body["error"] == nil {
		t.Fatalf("expected listen_addr change to be rejected, got %d %v", resp.StatusCode, body)
	}
	if GetConfig() != before {
		t.Fatalf("a rejected update must not change the config, got %+v", GetConfig())
	}

	resp, _ = postJSON(t, server.URL+"/api/settings", `{"config":{"listen_addr":"`+before.ListenAddr+`","tick_interval_ms":20}}`)
	if resp.StatusCode != http.StatusOK || GetConfig().TickIntervalMs != 20 {
		t.Fatalf("expected tick interval update with the same address, got %d %+v", resp.StatusCode, GetConfig())
	}
}

func TestTickerFollowsTickIntervalChanges(t *testing.T) {
	withConfig(t, func(cfg *Config) { cfg.TickIntervalMs = 5 })
	controller := NewGameController(humanVsHuman())
	controller.StartGame(humanVsHuman())
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runTicker(ctx, controller, hub)

	if queued, reason := controller.OnCellClicked(2, 3); !queued {
		t.Fatalf("expected click to queue: %s", reason)
	}
	deadline := time.Now().Add(2 * time.Second)
	for controller.History().Size() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("ticker never applied the first click")
		}
		time.Sleep(2 * time.Millisecond)
	}

	cfg := GetConfig()
	cfg.TickIntervalMs = int(time.Hour / time.Millisecond)
	configStore.Update(cfg)
	time.Sleep(50 * time.Millisecond)

	if queued, reason := controller.OnCellClicked(2, 2); !queued {
		t.Fatalf("expected second click to queue: %s", reason)
	}
	time.Sleep(100 * time.Millisecond)
	if size := controller.History().Size(); size != 1 {
		t.Fatalf("ticker kept the old interval, history=%d", size)
	}
}
