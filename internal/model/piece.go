package model

import "strings"

// Player identifies one of the two sides. RED plays from rows 0-2,
// BLUE from rows 6-8.
type Player string

const (
	PlayerRed  Player = "RED"
	PlayerBlue Player = "BLUE"
)

func (p Player) Opponent() Player {
	if p == PlayerRed {
		return PlayerBlue
	}
	return PlayerRed
}

func (p Player) Valid() bool {
	return p == PlayerRed || p == PlayerBlue
}

type PieceType string

const (
	Rat      PieceType = "rat"
	Cat      PieceType = "cat"
	Dog      PieceType = "dog"
	Wolf     PieceType = "wolf"
	Leopard  PieceType = "leopard"
	Tiger    PieceType = "tiger"
	Lion     PieceType = "lion"
	Elephant PieceType = "elephant"
)

// Rank returns the capture rank of the piece type, 1 (Rat) through 8 (Elephant).
func (t PieceType) Rank() int {
	switch t {
	case Rat:
		return 1
	case Cat:
		return 2
	case Dog:
		return 3
	case Wolf:
		return 4
	case Leopard:
		return 5
	case Tiger:
		return 6
	case Lion:
		return 7
	case Elephant:
		return 8
	}
	return 0
}

// CanSwim reports whether the piece type may occupy water squares.
func (t PieceType) CanSwim() bool {
	return t == Rat
}

// CanJump reports whether the piece type may jump across a river.
func (t PieceType) CanJump() bool {
	return t == Lion || t == Tiger
}

func (t PieceType) Valid() bool {
	return t.Rank() != 0
}

func (t PieceType) getPieceName() string {
	switch t {
	case Rat:
		return "Rat"
	case Cat:
		return "Cat"
	case Dog:
		return "Dog"
	case Wolf:
		return "Wolf"
	case Leopard:
		return "Leopard"
	case Tiger:
		return "Tiger"
	case Lion:
		return "Lion"
	case Elephant:
		return "Elephant"
	}
	return ""
}

// getPieceSymbol returns the one-letter board symbol. Lion uses N because
// L is taken by Leopard. RED pieces render lowercase, BLUE uppercase.
func (t PieceType) getPieceSymbol(owner Player) string {
	var s string
	switch t {
	case Rat:
		s = "R"
	case Cat:
		s = "C"
	case Dog:
		s = "D"
	case Wolf:
		s = "W"
	case Leopard:
		s = "L"
	case Tiger:
		s = "T"
	case Lion:
		s = "N"
	case Elephant:
		s = "E"
	}
	if owner == PlayerRed {
		return strings.ToLower(s)
	}
	return s
}

type Piece struct {
	Type     PieceType `json:"type"`
	Owner    Player    `json:"owner"`
	Position Position  `json:"position"`
}
