package model

import "fmt"

// Move is the immutable record of one accepted move. Captured is nil for
// quiet moves. Number is 1-based and strictly increasing within a game.
type Move struct {
	Piece    Piece    `json:"piece"`
	From     Position `json:"from"`
	To       Position `json:"to"`
	Captured *Piece   `json:"captured"`
	Number   int      `json:"moveNumber"`
}

// Notation renders the move for history display,
// e.g. "3. RED Lion A3->A4 (captured Wolf)".
func (m Move) Notation() string {
	s := fmt.Sprintf("%d. %s %s %s->%s",
		m.Number, m.Piece.Owner, m.Piece.Type.getPieceName(),
		m.From.Notation(), m.To.Notation())
	if m.Captured != nil {
		s += fmt.Sprintf(" (captured %s)", m.Captured.Type.getPieceName())
	}
	return s
}

// MoveRequest is a structured move submission from the transport layer.
type MoveRequest struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

type CapturedPieces struct {
	Red  []Piece `json:"red"`
	Blue []Piece `json:"blue"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		Red:  make([]Piece, 0),
		Blue: make([]Piece, 0),
	}
}

func (c CapturedPieces) clone() CapturedPieces {
	out := CapturedPieces{
		Red:  make([]Piece, len(c.Red)),
		Blue: make([]Piece, len(c.Blue)),
	}
	copy(out.Red, c.Red)
	copy(out.Blue, c.Blue)
	return out
}

func (c *CapturedPieces) add(piece Piece) {
	if piece.Owner == PlayerRed {
		c.Red = append(c.Red, piece)
	} else {
		c.Blue = append(c.Blue, piece)
	}
}
