package model

import (
	"fmt"
	"time"
)

// SavedPiece is one occupancy entry of a save document.
type SavedPiece struct {
	Type  PieceType `json:"type"`
	Owner Player    `json:"owner"`
	Row   int       `json:"row"`
	Col   int       `json:"col"`
}

// SaveDocument is the persisted form of a game at the state-machine
// boundary. File handling lives in the storage layer; this package only
// defines the contract and its validation.
type SaveDocument struct {
	Timestamp       string          `json:"timestamp"`
	ToMove          Player          `json:"currentPlayer"`
	NoCaptureMoves  int             `json:"noCaptureMoves"`
	Status          Status          `json:"status"`
	Winner          Player          `json:"winner,omitempty"`
	Resolution      string          `json:"resolution,omitempty"`
	Pieces          []SavedPiece    `json:"pieces"`
	MoveHistory     []Move          `json:"moveHistory"`
	PositionHistory []string        `json:"positionHistory"`
	CapturedPieces  *CapturedPieces `json:"capturedPieces,omitempty"`
}

// Save serializes the current state. Undo/redo stacks are deliberately
// not persisted.
func (gs *GameState) Save() *SaveDocument {
	pieces := make([]SavedPiece, 0, 16)
	for _, piece := range gs.board.AllPieces() {
		pieces = append(pieces, SavedPiece{
			Type:  piece.Type,
			Owner: piece.Owner,
			Row:   piece.Position.Row,
			Col:   piece.Position.Col,
		})
	}
	captured := gs.captured.clone()
	return &SaveDocument{
		Timestamp:       time.Now().Format(time.RFC3339),
		ToMove:          gs.toMove,
		NoCaptureMoves:  gs.noCaptureMoves,
		Status:          gs.status,
		Winner:          gs.winner,
		Resolution:      gs.resolution,
		Pieces:          pieces,
		MoveHistory:     append([]Move(nil), gs.moveHistory...),
		PositionHistory: append([]string(nil), gs.positionHistory...),
		CapturedPieces:  &captured,
	}
}

// RestoreGameState rebuilds an engine state from a save document. Any
// missing required field, invalid coordinate, unknown piece kind or
// doubly occupied square fails with ErrCorruptSave. Undo/redo history
// does not survive a reload.
func RestoreGameState(doc *SaveDocument) (*GameState, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", ErrCorruptSave)
	}
	if !doc.ToMove.Valid() {
		return nil, fmt.Errorf("%w: missing or invalid current player", ErrCorruptSave)
	}
	if doc.Pieces == nil {
		return nil, fmt.Errorf("%w: missing board occupancy", ErrCorruptSave)
	}
	if doc.MoveHistory == nil {
		return nil, fmt.Errorf("%w: missing move history", ErrCorruptSave)
	}
	if doc.PositionHistory == nil {
		return nil, fmt.Errorf("%w: missing position history", ErrCorruptSave)
	}
	if doc.NoCaptureMoves < 0 {
		return nil, fmt.Errorf("%w: negative no-capture counter", ErrCorruptSave)
	}

	status := doc.Status
	if status == "" {
		status = StatusInProgress
	}
	switch status {
	case StatusInProgress, StatusWon, StatusDrawn:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrCorruptSave, doc.Status)
	}
	if status == StatusWon && !doc.Winner.Valid() {
		return nil, fmt.Errorf("%w: won game without winner", ErrCorruptSave)
	}

	board := NewBoard()
	for _, saved := range doc.Pieces {
		pos := Position{Row: saved.Row, Col: saved.Col}
		if !InBounds(pos) {
			return nil, fmt.Errorf("%w: piece at invalid square (%d,%d)", ErrCorruptSave, saved.Row, saved.Col)
		}
		if !saved.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown piece kind %q", ErrCorruptSave, saved.Type)
		}
		if !saved.Owner.Valid() {
			return nil, fmt.Errorf("%w: unknown owner %q", ErrCorruptSave, saved.Owner)
		}
		if board.PieceAt(pos) != nil {
			return nil, fmt.Errorf("%w: two pieces on %s", ErrCorruptSave, pos.Notation())
		}
		board.Place(&Piece{Type: saved.Type, Owner: saved.Owner}, pos)
	}

	captured := newCapturedPieces()
	if doc.CapturedPieces != nil {
		captured = doc.CapturedPieces.clone()
	}

	return &GameState{
		board:           board,
		toMove:          doc.ToMove,
		moveHistory:     append([]Move(nil), doc.MoveHistory...),
		noCaptureMoves:  doc.NoCaptureMoves,
		positionHistory: append([]string(nil), doc.PositionHistory...),
		status:          status,
		winner:          doc.Winner,
		resolution:      doc.Resolution,
		captured:        captured,
	}, nil
}
