package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AmineOuatt/othello-game/othello"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type StatusResponse struct {
	Settings        GameSettingsDTO   `json:"settings"`
	Config          Config            `json:"config"`
	Board           [][]int           `json:"board"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	BoardSize       int               `json:"board_size"`
	Status          string            `json:"status"`
	Score           scoreDTO          `json:"score"`
	LegalMoves      []othello.Move    `json:"legal_moves"`
	LastMove        *othello.Move     `json:"last_move"`
	Passes          int               `json:"passes"`
	AiThinking      bool              `json:"ai_thinking"`
	History         []historyEntryDTO `json:"history"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	Mode        string `json:"mode"`
	HumanPlayer int    `json:"human_player"`
	BlackDepth  int    `json:"black_depth"`
	WhiteDepth  int    `json:"white_depth"`
}

type scoreDTO struct {
	Black int `json:"black"`
	White int `json:"white"`
	Empty int `json:"empty"`
}

type apiMove struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type historyEntryDTO struct {
	Row       int            `json:"row"`
	Col       int            `json:"col"`
	Player    int            `json:"player"`
	Pass      bool           `json:"pass"`
	Flipped   []othello.Move `json:"flipped"`
	ElapsedMs float64        `json:"elapsed_ms"`
	IsAi      bool           `json:"is_ai"`
	Depth     int            `json:"depth"`
	Score     int            `json:"score"`
	Changes   []cellChange   `json:"changes"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type cellChange struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

type settingsPayload struct {
	Settings GameSettingsDTO `json:"settings"`
	Config   Config          `json:"config"`
}

type legalMovesResponse struct {
	Player int            `json:"player"`
	Moves  []othello.Move `json:"moves"`
}

func main() {
	configPath := flag.String("config", "", "optional JSON config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	if *configPath != "" {
		config, err := LoadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("[backend] %v", err)
		}
		configStore.Update(config)
	}
	config := GetConfig()
	if *addr != "" {
		config.ListenAddr = *addr
		configStore.Update(config)
	}

	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()
	ghostHub := NewGhostHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	controller.SetGhostPublisher(
		func() bool { return ghostHub.HasClients() && GetConfig().GhostMode },
		func(payload ghostPayload) {
			ghostHub.Publish(payload)
		},
	)

	go hub.Run(ctx.Done())
	go ghostHub.Run(ctx.Done())
	go runTicker(ctx, controller, hub)

	server := &http.Server{
		Addr:              config.ListenAddr,
		Handler:           newRouter(controller, hub, ghostHub),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Printf("[backend] listening on %s", config.ListenAddr)
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}

	cancel()
	if runErr != nil {
		log.Printf("[backend] exiting after server error: %v", runErr)
		os.Exit(1)
	}
}

// runTicker drives the game. A tick_interval_ms change sent to
// /api/settings takes effect from the next tick.
func runTicker(ctx context.Context, controller *GameController, hub *Hub) {
	interval := tickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if next := tickInterval(); next != interval {
				interval = next
				ticker.Reset(interval)
			}
			if controller.Tick() {
				publishLatest(controller, hub)
			}
		}
	}
}

func tickInterval() time.Duration {
	return time.Duration(GetConfig().TickIntervalMs) * time.Millisecond
}

func publishLatest(controller *GameController, hub *Hub) {
	if entry, ok := controller.LatestHistoryEntry(); ok {
		hub.Publish("history", historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}})
	}
	hub.Publish("status", controllerStatus(controller))
}

func newRouter(controller *GameController, hub *Hub, ghostHub *GhostHub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/api/legal", func(w http.ResponseWriter, r *http.Request) {
		state := controller.State()
		moves := state.LegalMoves()
		if moves == nil {
			moves = []othello.Move{}
		}
		writeJSON(w, http.StatusOK, legalMovesResponse{Player: playerToInt(state.ToMove), Moves: moves})
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid payload")
			return
		}
		settings, err := settingsFromDTO(payload.Settings, DefaultGameSettings())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		controller.StartGame(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.Publish("reset", controllerStatus(controller))
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		controller.Reset(controller.Settings())
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.Publish("reset", controllerStatus(controller))
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   json.RawMessage  `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid payload")
			return
		}
		var settings *GameSettings
		if payload.Settings != nil {
			updated, err := settingsFromDTO(*payload.Settings, controller.Settings())
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			settings = &updated
		}
		if len(payload.Config) > 0 {
			// Partial objects only change the fields they name.
			current := GetConfig()
			config := current
			if err := json.Unmarshal(payload.Config, &config); err != nil {
				writeError(w, http.StatusBadRequest, "invalid config")
				return
			}
			// The listener is bound once at startup.
			if config.ListenAddr != current.ListenAddr {
				writeError(w, http.StatusBadRequest, "listen_addr only applies at startup")
				return
			}
			if err := config.Validate(); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			configStore.Update(config)
			controller.ResetForConfigChange()
		}
		if settings != nil {
			controller.UpdateSettings(*settings, false)
		}
		hub.Publish("settings", settingsPayload{
			Settings: controllerSettingsDTO(controller.Settings()),
			Config:   GetConfig(),
		})
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid payload")
			return
		}
		applied, errMsg := controller.ApplyHumanMove(othello.Move{Row: payload.Row, Col: payload.Col})
		if !applied {
			writeError(w, http.StatusBadRequest, errMsg)
			return
		}
		publishLatest(controller, hub)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})
	r.Get("/ws/ghost", func(w http.ResponseWriter, r *http.Request) {
		serveGhostWS(ghostHub, w, r)
	})
	return r
}

type wsClick struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send, wsIdlePingInterval); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})
		case "click":
			var click wsClick
			if err := json.Unmarshal(msg.Payload, &click); err != nil {
				continue
			}
			if queued, reason := controller.OnCellClicked(click.Row, click.Col); !queued {
				client.sendJSON(wsMessage{Type: "error", Payload: mustMarshal(map[string]string{"error": reason})})
			}
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	snapshot := controller.Snapshot()
	state := snapshot.State
	black, white := state.Board.Score()
	moves := state.LegalMoves()
	if moves == nil {
		moves = []othello.Move{}
	}
	var lastMove *othello.Move
	if state.HasLastMove {
		move := state.LastMove
		lastMove = &move
	}
	return StatusResponse{
		Settings:        controllerSettingsDTO(snapshot.Settings),
		Config:          GetConfig(),
		Board:           boardToSlice(state.Board),
		NextPlayer:      playerToInt(state.ToMove),
		Winner:          winnerFromState(state),
		BoardSize:       othello.BoardSize,
		Status:          state.Status.String(),
		Score:           scoreDTO{Black: black, White: white, Empty: state.Board.CountEmpty()},
		LegalMoves:      moves,
		LastMove:        lastMove,
		Passes:          state.Passes,
		AiThinking:      snapshot.AiThinking,
		History:         historyToDTO(snapshot.History),
		TurnStartedAtMs: snapshot.TurnStartedAtMs,
	}
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) (GameSettings, error) {
	settings := base
	switch dto.Mode {
	case "":
	case "ai_vs_ai":
		settings.BlackType = PlayerAI
		settings.WhiteType = PlayerAI
	case "human_vs_human":
		settings.BlackType = PlayerHuman
		settings.WhiteType = PlayerHuman
	case "ai_vs_human":
		if dto.HumanPlayer == 2 {
			settings.BlackType = PlayerAI
			settings.WhiteType = PlayerHuman
		} else {
			settings.BlackType = PlayerHuman
			settings.WhiteType = PlayerAI
		}
	default:
		return base, fmt.Errorf("unknown mode %q", dto.Mode)
	}
	if dto.BlackDepth != 0 {
		settings.BlackDepth = dto.BlackDepth
	}
	if dto.WhiteDepth != 0 {
		settings.WhiteDepth = dto.WhiteDepth
	}
	if err := settings.Validate(); err != nil {
		return base, err
	}
	return settings, nil
}

func controllerSettingsDTO(settings GameSettings) GameSettingsDTO {
	mode := "ai_vs_human"
	if settings.BlackType == PlayerAI && settings.WhiteType == PlayerAI {
		mode = "ai_vs_ai"
	} else if settings.BlackType == PlayerHuman && settings.WhiteType == PlayerHuman {
		mode = "human_vs_human"
	}
	humanPlayer := 0
	if settings.BlackType == PlayerHuman {
		humanPlayer = 1
	} else if settings.WhiteType == PlayerHuman {
		humanPlayer = 2
	}
	return GameSettingsDTO{
		Mode:        mode,
		HumanPlayer: humanPlayer,
		BlackDepth:  settings.BlackDepth,
		WhiteDepth:  settings.WhiteDepth,
	}
}

func boardToSlice(board othello.Board) [][]int {
	rows := make([][]int, othello.BoardSize)
	for row := 0; row < othello.BoardSize; row++ {
		rows[row] = make([]int, othello.BoardSize)
		for col := 0; col < othello.BoardSize; col++ {
			rows[row][col] = cellToInt(board.At(row, col))
		}
	}
	return rows
}

func cellToInt(cell othello.Cell) int {
	switch cell {
	case othello.CellBlack:
		return 1
	case othello.CellWhite:
		return 2
	default:
		return 0
	}
}

func playerToInt(player othello.PlayerColor) int {
	if player == othello.PlayerBlack {
		return 1
	}
	return 2
}

func winnerFromState(state othello.GameState) int {
	winner, ok := state.Winner()
	if !ok {
		return 0
	}
	return playerToInt(winner)
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryToDTO(entry))
	}
	return result
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	dto := historyEntryDTO{
		Row:       -1,
		Col:       -1,
		Player:    playerToInt(entry.Player),
		Pass:      entry.Pass,
		Flipped:   append([]othello.Move{}, entry.Flipped...),
		ElapsedMs: entry.ElapsedMs,
		IsAi:      entry.IsAi,
		Depth:     entry.Depth,
		Score:     entry.Score,
		Changes:   changesFromEntry(entry),
	}
	if !entry.Pass {
		dto.Row = entry.Move.Row
		dto.Col = entry.Move.Col
	}
	return dto
}

// changesFromEntry lists every cell the entry wrote: the placed disc and all
// flipped discs, each now showing the mover's colour.
func changesFromEntry(entry HistoryEntry) []cellChange {
	if entry.Pass {
		return []cellChange{}
	}
	value := playerToInt(entry.Player)
	changes := []cellChange{{Row: entry.Move.Row, Col: entry.Move.Col, Value: value}}
	for _, flipped := range entry.Flipped {
		changes = append(changes, cellChange{Row: flipped.Row, Col: flipped.Col, Value: value})
	}
	return changes
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
