package model

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusWon        Status = "WON"
	StatusDrawn      Status = "DRAWN"
)

const (
	// MaxUndoDepth bounds the undo stack; pushing beyond it evicts the
	// oldest snapshot.
	MaxUndoDepth = 10
	// MaxMovesWithoutCapture is the half-move limit for the no-capture
	// draw rule.
	MaxMovesWithoutCapture = 50
	// RepetitionLimit is the number of occurrences of one position that
	// forces a draw.
	RepetitionLimit = 3
)

// Win/draw reasons, surfaced to clients verbatim.
const (
	ReasonDenEntry     = "den entry"
	ReasonNoLegalMoves = "opponent has no legal moves"
	ReasonFiftyMoves   = "fifty-move limit"
	ReasonRepetition   = "threefold repetition"
)

// snapshot is the undo unit: a deep copy of everything a move mutates,
// taken immediately before the move is applied.
type snapshot struct {
	board          *Board
	toMove         Player
	noCaptureMoves int
	positionCount  int
	status         Status
	winner         Player
	resolution     string
	captured       CapturedPieces
}

// GameState is the single-threaded rules engine for one game: the board,
// the active player, histories, and the bounded undo/redo stacks. All
// mutation happens inside MakeMove, Undo and Redo.
type GameState struct {
	board           *Board
	toMove          Player
	moveHistory     []Move
	noCaptureMoves  int
	positionHistory []string
	status          Status
	winner          Player
	resolution      string
	captured        CapturedPieces
	undoStack       []snapshot
	redoStack       []Move
}

// NewGameState returns a fresh game with the standard starting layout
// and RED to move.
func NewGameState() *GameState {
	board := NewBoard()
	board.SetupInitialPosition()
	gs := &GameState{
		board:       board,
		toMove:      PlayerRed,
		moveHistory: make([]Move, 0),
		status:      StatusInProgress,
		captured:    newCapturedPieces(),
	}
	gs.positionHistory = []string{gs.positionSignature()}
	return gs
}

func (gs *GameState) Board() *Board        { return gs.board }
func (gs *GameState) ToMove() Player       { return gs.toMove }
func (gs *GameState) Status() Status       { return gs.status }
func (gs *GameState) Winner() Player       { return gs.winner }
func (gs *GameState) Resolution() string   { return gs.resolution }
func (gs *GameState) MoveHistory() []Move  { return gs.moveHistory }
func (gs *GameState) NoCaptureMoves() int  { return gs.noCaptureMoves }
func (gs *GameState) Captured() CapturedPieces {
	return gs.captured.clone()
}

// MakeMove validates and applies one move for the active player.
func (gs *GameState) MakeMove(from, to Position) error {
	if gs.status != StatusInProgress {
		return ErrGameOver
	}
	piece := gs.board.PieceAt(from)
	if piece == nil {
		return ErrNoPieceAtSource
	}
	if piece.Owner != gs.toMove {
		return ErrNotYourTurn
	}
	validator := NewMoveValidator(gs.board)
	if _, err := validator.Validate(piece, to); err != nil {
		return err
	}
	gs.apply(from, to, true)
	return nil
}

// Undo restores the state from immediately before the last applied move
// and makes that move redoable. A terminal state produced by the undone
// move reverts to in-progress.
func (gs *GameState) Undo() error {
	if len(gs.undoStack) == 0 {
		return ErrNothingToUndo
	}
	snap := gs.undoStack[len(gs.undoStack)-1]
	gs.undoStack = gs.undoStack[:len(gs.undoStack)-1]

	undone := gs.moveHistory[len(gs.moveHistory)-1]
	gs.moveHistory = gs.moveHistory[:len(gs.moveHistory)-1]
	gs.redoStack = append(gs.redoStack, undone)

	gs.board = snap.board
	gs.toMove = snap.toMove
	gs.noCaptureMoves = snap.noCaptureMoves
	gs.positionHistory = gs.positionHistory[:snap.positionCount]
	gs.status = snap.status
	gs.winner = snap.winner
	gs.resolution = snap.resolution
	gs.captured = snap.captured
	return nil
}

// Redo re-applies the most recently undone move. Validation is skipped,
// the move was legal against this exact board, but terminal conditions
// are re-evaluated through the shared apply path.
func (gs *GameState) Redo() error {
	if len(gs.redoStack) == 0 {
		return ErrNothingToRedo
	}
	move := gs.redoStack[len(gs.redoStack)-1]
	gs.redoStack = gs.redoStack[:len(gs.redoStack)-1]
	gs.apply(move.From, move.To, false)
	return nil
}

// apply mutates the board for an accepted move and runs all bookkeeping:
// undo snapshot, move record, counters, position history, turn switch and
// terminal evaluation. clearRedo is false only when re-applying via Redo.
func (gs *GameState) apply(from, to Position, clearRedo bool) {
	gs.pushUndo()
	if clearRedo {
		gs.redoStack = nil
	}

	captured := gs.board.MovePiece(from, to)
	mover := *gs.board.PieceAt(to)

	var capturedCopy *Piece
	if captured != nil {
		c := *captured
		capturedCopy = &c
		gs.captured.add(c)
		gs.noCaptureMoves = 0
	} else {
		gs.noCaptureMoves++
	}

	gs.moveHistory = append(gs.moveHistory, Move{
		Piece:    mover,
		From:     from,
		To:       to,
		Captured: capturedCopy,
		Number:   len(gs.moveHistory) + 1,
	})

	gs.toMove = gs.toMove.Opponent()
	gs.positionHistory = append(gs.positionHistory, gs.positionSignature())

	gs.evaluateTerminal(mover, to)
}

// evaluateTerminal applies the end-of-game checks in their fixed order.
// At most one condition fires; den entry beats everything else on the
// same move.
func (gs *GameState) evaluateTerminal(mover Piece, to Position) {
	if IsOpponentDen(to, mover.Owner) {
		gs.status = StatusWon
		gs.winner = mover.Owner
		gs.resolution = ReasonDenEntry
		return
	}
	if !gs.HasLegalMoves(gs.toMove) {
		gs.status = StatusWon
		gs.winner = mover.Owner
		gs.resolution = ReasonNoLegalMoves
		return
	}
	if gs.noCaptureMoves >= MaxMovesWithoutCapture {
		gs.status = StatusDrawn
		gs.resolution = ReasonFiftyMoves
		return
	}
	if gs.repetitionCount() >= RepetitionLimit {
		gs.status = StatusDrawn
		gs.resolution = ReasonRepetition
	}
}

func (gs *GameState) pushUndo() {
	gs.undoStack = append(gs.undoStack, snapshot{
		board:          gs.board.Clone(),
		toMove:         gs.toMove,
		noCaptureMoves: gs.noCaptureMoves,
		positionCount:  len(gs.positionHistory),
		status:         gs.status,
		winner:         gs.winner,
		resolution:     gs.resolution,
		captured:       gs.captured.clone(),
	})
	if len(gs.undoStack) > MaxUndoDepth {
		gs.undoStack = gs.undoStack[1:]
	}
}

// HasLegalMoves reports whether player has at least one legal move.
func (gs *GameState) HasLegalMoves(player Player) bool {
	validator := NewMoveValidator(gs.board)
	for _, piece := range gs.board.Pieces(player) {
		if len(validator.LegalMoves(piece)) > 0 {
			return true
		}
	}
	return false
}

// LegalMovesAt returns the legal destinations for the piece on pos.
func (gs *GameState) LegalMovesAt(pos Position) ([]Position, error) {
	piece := gs.board.PieceAt(pos)
	if piece == nil {
		return nil, ErrNoPieceAtSource
	}
	return NewMoveValidator(gs.board).LegalMoves(piece), nil
}

// positionSignature canonically encodes the full occupancy plus the
// player to move. Two states with equal signatures are the same position
// for repetition purposes, regardless of the moves that produced them.
func (gs *GameState) positionSignature() string {
	var sb strings.Builder
	for _, piece := range gs.board.AllPieces() {
		fmt.Fprintf(&sb, "%s_%s_%d_%d|", piece.Owner, piece.Type, piece.Position.Row, piece.Position.Col)
	}
	fmt.Fprintf(&sb, "TURN_%s", gs.toMove)
	return sb.String()
}

// repetitionCount counts how often the current position has occurred.
func (gs *GameState) repetitionCount() int {
	current := gs.positionHistory[len(gs.positionHistory)-1]
	count := 0
	for _, sig := range gs.positionHistory {
		if sig == current {
			count++
		}
	}
	return count
}

// ClientState is the JSON view of a game pushed to display clients.
type ClientState struct {
	Board          [][]*Piece     `json:"board"`
	Terrain        [][]SquareType `json:"terrain"`
	ToMove         Player         `json:"toMove"`
	Status         Status         `json:"status"`
	Winner         *Player        `json:"winner"`
	Resolution     *string        `json:"resolution"`
	MoveHistory    []Move         `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	NoCaptureMoves int            `json:"noCaptureMoves"`
	LastMove       *MoveRequest   `json:"lastMove"`
}

func (gs *GameState) ClientState() ClientState {
	state := ClientState{
		Board:          gs.board.Grid(),
		Terrain:        TerrainGrid(),
		ToMove:         gs.toMove,
		Status:         gs.status,
		MoveHistory:    append([]Move(nil), gs.moveHistory...),
		CapturedPieces: gs.captured.clone(),
		NoCaptureMoves: gs.noCaptureMoves,
	}
	if gs.status == StatusWon {
		winner := gs.winner
		state.Winner = &winner
	}
	if gs.resolution != "" {
		resolution := gs.resolution
		state.Resolution = &resolution
	}
	if len(gs.moveHistory) > 0 {
		last := gs.moveHistory[len(gs.moveHistory)-1]
		state.LastMove = &MoveRequest{From: last.From, To: last.To}
	}
	return state
}
