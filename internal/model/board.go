package model

import (
	"fmt"
	"strings"
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Notation renders a position as column letter + row number, e.g. E3.
// Columns run A-G, rows 1-9 from RED's baseline.
func (p Position) Notation() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}

// ParsePosition converts notation like "E3" back to a Position.
func ParsePosition(s string) (Position, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}
	col := int(s[0] - 'A')
	row := int(s[1] - '1')
	pos := Position{Row: row, Col: col}
	if !InBounds(pos) {
		return Position{}, fmt.Errorf("square %q is off the board", s)
	}
	return pos, nil
}

// Board holds the mutable piece occupancy layered over the fixed terrain.
type Board struct {
	grid [BoardRows][BoardCols]*Piece
}

func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition places the 8 pieces of each side on their
// starting squares, BLUE mirroring RED.
func (b *Board) SetupInitialPosition() {
	start := []struct {
		pieceType PieceType
		owner     Player
		pos       Position
	}{
		{Lion, PlayerRed, Position{Row: 2, Col: 0}},
		{Dog, PlayerRed, Position{Row: 2, Col: 1}},
		{Cat, PlayerRed, Position{Row: 2, Col: 2}},
		{Elephant, PlayerRed, Position{Row: 1, Col: 3}},
		{Rat, PlayerRed, Position{Row: 2, Col: 4}},
		{Leopard, PlayerRed, Position{Row: 2, Col: 5}},
		{Tiger, PlayerRed, Position{Row: 2, Col: 6}},
		{Wolf, PlayerRed, Position{Row: 0, Col: 2}},

		{Tiger, PlayerBlue, Position{Row: 6, Col: 0}},
		{Leopard, PlayerBlue, Position{Row: 6, Col: 1}},
		{Rat, PlayerBlue, Position{Row: 6, Col: 2}},
		{Elephant, PlayerBlue, Position{Row: 7, Col: 3}},
		{Cat, PlayerBlue, Position{Row: 6, Col: 4}},
		{Dog, PlayerBlue, Position{Row: 6, Col: 5}},
		{Lion, PlayerBlue, Position{Row: 6, Col: 6}},
		{Wolf, PlayerBlue, Position{Row: 8, Col: 4}},
	}
	for _, s := range start {
		b.Place(&Piece{Type: s.pieceType, Owner: s.owner}, s.pos)
	}
}

func (b *Board) PieceAt(pos Position) *Piece {
	if !InBounds(pos) {
		return nil
	}
	return b.grid[pos.Row][pos.Col]
}

func (b *Board) Place(piece *Piece, pos Position) {
	if !InBounds(pos) {
		return
	}
	b.grid[pos.Row][pos.Col] = piece
	if piece != nil {
		piece.Position = pos
	}
}

func (b *Board) Remove(pos Position) *Piece {
	piece := b.PieceAt(pos)
	if piece != nil {
		b.grid[pos.Row][pos.Col] = nil
	}
	return piece
}

// MovePiece relocates the piece on from to to, returning the piece that
// occupied the destination, if any.
func (b *Board) MovePiece(from, to Position) *Piece {
	piece := b.Remove(from)
	captured := b.Remove(to)
	if piece != nil {
		b.Place(piece, to)
	}
	return captured
}

// Pieces returns all pieces owned by player, in row-major order.
func (b *Board) Pieces(player Player) []*Piece {
	var pieces []*Piece
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			piece := b.grid[row][col]
			if piece != nil && piece.Owner == player {
				pieces = append(pieces, piece)
			}
		}
	}
	return pieces
}

// AllPieces returns every piece on the board in row-major order.
func (b *Board) AllPieces() []*Piece {
	var pieces []*Piece
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			if piece := b.grid[row][col]; piece != nil {
				pieces = append(pieces, piece)
			}
		}
	}
	return pieces
}

// Clone returns a deep copy of the board with independent piece values.
func (b *Board) Clone() *Board {
	clone := NewBoard()
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			if piece := b.grid[row][col]; piece != nil {
				clone.Place(&Piece{Type: piece.Type, Owner: piece.Owner}, piece.Position)
			}
		}
	}
	return clone
}

// Grid returns the occupancy as a 9x7 slice of piece copies for clients.
func (b *Board) Grid() [][]*Piece {
	grid := make([][]*Piece, BoardRows)
	for row := 0; row < BoardRows; row++ {
		grid[row] = make([]*Piece, BoardCols)
		for col := 0; col < BoardCols; col++ {
			if piece := b.grid[row][col]; piece != nil {
				p := *piece
				grid[row][col] = &p
			}
		}
	}
	return grid
}

// String renders the occupancy as an ASCII diagram, row 9 first. Empty
// squares show their terrain: ~ water, + trap, * den, . normal.
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardRows - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < BoardCols; col++ {
			if piece := b.grid[row][col]; piece != nil {
				sb.WriteString(piece.Type.getPieceSymbol(piece.Owner))
				continue
			}
			switch terrain[row][col] {
			case SquareWater:
				sb.WriteString("~")
			case SquareTrap:
				sb.WriteString("+")
			case SquareDen:
				sb.WriteString("*")
			default:
				sb.WriteString(".")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  ABCDEFG")
	return sb.String()
}

// TerrainGrid returns the static terrain in the same layout as Grid.
func TerrainGrid() [][]SquareType {
	grid := make([][]SquareType, BoardRows)
	for row := 0; row < BoardRows; row++ {
		grid[row] = make([]SquareType, BoardCols)
		for col := 0; col < BoardCols; col++ {
			grid[row][col] = terrain[row][col]
		}
	}
	return grid
}
