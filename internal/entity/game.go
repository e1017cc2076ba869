package entity

import (
	"fmt"

	"github.com/ninjamadeena/XO-Online/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	ResultDraw    = "Draw"
	ResultForfeit = "Opponent Left"

	EmptyCell = ""
)

const (
	CustomRoom = "custom"
	AutoRoom   = "auto"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game holds the mutable board state of one match: nine cells in row-major
// order and the mark whose turn it is. X always moves first.
type Game struct {
	Board [9]string `json:"board"`
	Turn  string    `json:"turn"`
	Moves int       `json:"moves"`
}

func NewGame() *Game {
	return &Game{
		Board: [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:  PlayerX,
	}
}

// MakeTurn - places mark on cell and passes the turn to the other mark.
// A rejected turn leaves the game untouched.
func (that *Game) MakeTurn(mark string, cell int) error {
	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark
	that.Moves++

	if that.Turn == PlayerX {
		that.Turn = PlayerO
	} else {
		that.Turn = PlayerX
	}

	return nil
}

// DetermineResult - returns the winning mark, ResultDraw when the board is
// full with no winner, or an empty string while the game is still ongoing.
func (that *Game) DetermineResult() string {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	// the game continues until all the cells are full
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return ""
		}
	}

	return ResultDraw
}
