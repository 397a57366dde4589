package main

import (
	"fmt"
	"time"

	"github.com/AmineOuatt/othello-game/othello"
	"github.com/gdamore/tcell/v2"
)

type mode int

const (
	modeHumanVsHuman mode = iota
	modeHumanVsAI
	modeAIVsAI
)

func parseMode(name string) (mode, error) {
	switch name {
	case "hvh":
		return modeHumanVsHuman, nil
	case "hva":
		return modeHumanVsAI, nil
	case "ava":
		return modeAIVsAI, nil
	default:
		return modeHumanVsHuman, fmt.Errorf("unknown mode %q (want hvh, hva or ava)", name)
	}
}

type uiSettings struct {
	mode     mode
	depth    int
	human    othello.PlayerColor
	aiDelay  time.Duration
	logStats bool
}

type ui struct {
	screen   tcell.Screen
	settings uiSettings
	state    othello.GameState
	ai       map[othello.PlayerColor]*othello.AIPlayer
	cursor   othello.Move
	message  string
	quit     bool
}

func newUI(screen tcell.Screen, settings uiSettings) (*ui, error) {
	u := &ui{
		screen:   screen,
		settings: settings,
		ai:       make(map[othello.PlayerColor]*othello.AIPlayer),
	}
	for _, color := range []othello.PlayerColor{othello.PlayerBlack, othello.PlayerWhite} {
		if !u.isAIColor(color) {
			continue
		}
		ai, err := othello.NewAIPlayer(color, settings.depth)
		if err != nil {
			return nil, err
		}
		ai.SetLogStats(settings.logStats)
		u.ai[color] = ai
	}
	u.restart()
	return u, nil
}

func (u *ui) isAIColor(color othello.PlayerColor) bool {
	switch u.settings.mode {
	case modeAIVsAI:
		return true
	case modeHumanVsAI:
		return color != u.settings.human
	default:
		return false
	}
}

func (u *ui) restart() {
	u.state = othello.NewGameState()
	u.cursor = othello.Move{Row: 3, Col: 3}
	u.message = ""
	if u.settings.mode == modeHumanVsAI {
		u.advanceAI()
	}
}

// Run draws and handles input until the user quits. In AI vs AI mode one
// move is played per delay unless a key arrives first.
func (u *ui) Run() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for !u.quit {
		u.draw()
		if u.settings.mode == modeAIVsAI && !u.state.IsOver() {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				u.handleEvent(ev)
			case <-time.After(u.settings.aiDelay):
				u.stepAI()
			}
			continue
		}
		ev, ok := <-events
		if !ok {
			return nil
		}
		u.handleEvent(ev)
	}
	return nil
}

func (u *ui) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		u.handleKey(ev)
	case *tcell.EventResize:
		u.screen.Sync()
	}
}

func (u *ui) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		u.quit = true
		return
	case tcell.KeyUp:
		u.moveCursor(-1, 0)
		return
	case tcell.KeyDown:
		u.moveCursor(1, 0)
		return
	case tcell.KeyLeft:
		u.moveCursor(0, -1)
		return
	case tcell.KeyRight:
		u.moveCursor(0, 1)
		return
	case tcell.KeyEnter:
		u.playHuman()
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch ev.Rune() {
	case 'q':
		u.quit = true
	case 'k':
		u.moveCursor(-1, 0)
	case 'j':
		u.moveCursor(1, 0)
	case 'h':
		u.moveCursor(0, -1)
	case 'l':
		u.moveCursor(0, 1)
	case ' ':
		u.playHuman()
	case 'p':
		u.passHuman()
	case 'r':
		u.restart()
	}
}

func (u *ui) moveCursor(dRow, dCol int) {
	row := u.cursor.Row + dRow
	col := u.cursor.Col + dCol
	if othello.InBounds(row, col) {
		u.cursor = othello.Move{Row: row, Col: col}
	}
}

func (u *ui) humanToMove() bool {
	return u.state.Status == othello.StatusRunning && !u.isAIColor(u.state.ToMove)
}

func (u *ui) playHuman() {
	if !u.humanToMove() {
		return
	}
	player := u.state.ToMove
	flipped, err := u.state.Play(u.cursor)
	if err != nil {
		u.message = fmt.Sprintf("Illegal move %s for %s", u.cursor, player)
		return
	}
	u.message = fmt.Sprintf("%s played %s, flipped %d", player, u.cursor, len(flipped))
	u.afterHumanTurn()
}

func (u *ui) passHuman() {
	if !u.humanToMove() {
		return
	}
	player := u.state.ToMove
	if err := u.state.Pass(); err != nil {
		u.message = fmt.Sprintf("%s still has a legal move", player)
		return
	}
	u.message = fmt.Sprintf("%s passed", player)
	u.afterHumanTurn()
}

func (u *ui) afterHumanTurn() {
	if u.settings.mode == modeHumanVsAI {
		u.advanceAI()
	}
	if u.humanToMove() && u.state.MustPass() {
		u.message += fmt.Sprintf("; %s has no legal move, press p to pass", u.state.ToMove)
	}
}

// advanceAI plays AI turns until a human is to move or the game ends.
func (u *ui) advanceAI() {
	for u.state.Status == othello.StatusRunning && u.isAIColor(u.state.ToMove) {
		if !u.stepAI() {
			return
		}
	}
}

// stepAI plays one AI turn and reports whether the state changed.
func (u *ui) stepAI() bool {
	if u.state.Status != othello.StatusRunning {
		return false
	}
	player := u.state.ToMove
	ai, ok := u.ai[player]
	if !ok {
		return false
	}
	move, ok := ai.ChooseMove(u.state.Board)
	if !ok {
		if err := u.state.Pass(); err != nil {
			u.message = err.Error()
			return false
		}
		u.message = fmt.Sprintf("%s (AI) passed", player)
		return true
	}
	if _, err := u.state.Play(move); err != nil {
		u.message = err.Error()
		return false
	}
	u.message = fmt.Sprintf("%s (AI) played %s", player, move)
	return true
}
