package main

import (
	"fmt"

	"github.com/AmineOuatt/othello-game/othello"
	"github.com/gdamore/tcell/v2"
)

const (
	boardTop  = 0
	boardLeft = 3
	statusTop = boardTop + othello.BoardSize + 2
	helpText  = "arrows/hjkl move  enter play  p pass  r restart  q quit"
)

var (
	styleDefault = tcell.StyleDefault
	styleBlack   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleWhite   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

const lastMoveLine = statusTop + 3

// cellX maps a board column to its screen column; cells sit two apart like
// othello.Board.String.
func cellX(col int) int {
	return boardLeft + 2*col
}

func cellY(row int) int {
	return boardTop + 1 + row
}

func (u *ui) draw() {
	u.screen.Clear()
	u.drawBoard()
	u.drawStatus()
	u.screen.Show()
}

func (u *ui) drawBoard() {
	for col := 0; col < othello.BoardSize; col++ {
		drawText(u.screen, cellX(col), boardTop, styleLabel, fmt.Sprint(col))
	}
	showHints := u.humanToMove()
	for row := 0; row < othello.BoardSize; row++ {
		drawText(u.screen, 0, cellY(row), styleLabel, fmt.Sprint(row))
		for col := 0; col < othello.BoardSize; col++ {
			here := othello.NewMove(row, col)
			symbol, style := rune('.'), styleDefault
			switch u.state.Board.At(row, col) {
			case othello.CellBlack:
				symbol, style = 'B', styleBlack
			case othello.CellWhite:
				symbol, style = 'W', styleWhite
			default:
				if showHints && u.state.Board.IsLegal(row, col, u.state.ToMove) {
					symbol, style = '+', styleHint
				}
			}
			if u.state.HasLastMove && u.state.LastMove.Equals(here) {
				style = style.Underline(true)
			}
			if showHints && u.cursor.Equals(here) {
				style = style.Reverse(true)
			}
			u.screen.SetContent(cellX(col), cellY(row), symbol, nil, style)
		}
	}
}

func (u *ui) drawStatus() {
	black, white := u.state.Board.Score()
	drawText(u.screen, 0, statusTop, styleDefault, fmt.Sprintf("Black %d - White %d", black, white))
	drawText(u.screen, 0, statusTop+1, styleDefault, u.turnLine())
	drawText(u.screen, 0, statusTop+2, styleDefault, u.message)
	if u.state.HasLastMove {
		drawText(u.screen, 0, lastMoveLine, styleDefault, "Last move "+u.state.LastMove.String())
	}
	drawText(u.screen, 0, statusTop+4, styleLabel, helpText)
}

func (u *ui) turnLine() string {
	switch u.state.Status {
	case othello.StatusBlackWon:
		return "Game over: Black wins"
	case othello.StatusWhiteWon:
		return "Game over: White wins"
	case othello.StatusDraw:
		return "Game over: draw"
	}
	who := "Human"
	if u.isAIColor(u.state.ToMove) {
		who = "AI"
	}
	return fmt.Sprintf("%s to move (%s)", u.state.ToMove, who)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
