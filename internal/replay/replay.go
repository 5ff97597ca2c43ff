// Package replay steps through a recorded move history, rebuilding the
// intermediate board positions by replaying the moves on a fresh board.
// It never touches the live game state.
package replay

import (
	"github.com/benbeisheim/jungle-backend/internal/model"
)

type Engine struct {
	moves []model.Move
	index int
	board *model.Board
}

// New creates a replay positioned before the first move.
func New(history []model.Move) *Engine {
	e := &Engine{moves: append([]model.Move(nil), history...)}
	e.Reset()
	return e
}

func (e *Engine) Reset() {
	e.index = 0
	e.board = model.NewBoard()
	e.board.SetupInitialPosition()
}

// StepForward advances one move. Returns false at the end of the game.
func (e *Engine) StepForward() bool {
	if e.index >= len(e.moves) {
		return false
	}
	move := e.moves[e.index]
	e.board.MovePiece(move.From, move.To)
	e.index++
	return true
}

// StepBackward goes back one move by rebuilding from the start. Returns
// false at the start of the game.
func (e *Engine) StepBackward() bool {
	if e.index <= 0 {
		return false
	}
	return e.Goto(e.index - 1)
}

// Goto jumps to the position after the first n moves.
func (e *Engine) Goto(n int) bool {
	if n < 0 || n > len(e.moves) {
		return false
	}
	e.Reset()
	for i := 0; i < n; i++ {
		if !e.StepForward() {
			return false
		}
	}
	return true
}

// Board returns the board at the current replay position.
func (e *Engine) Board() *model.Board {
	return e.board
}

// CurrentMove returns the move that produced the current position, or
// nil at the start.
func (e *Engine) CurrentMove() *model.Move {
	if e.index == 0 {
		return nil
	}
	move := e.moves[e.index-1]
	return &move
}

// Progress returns the current move index and the total move count.
func (e *Engine) Progress() (int, int) {
	return e.index, len(e.moves)
}
