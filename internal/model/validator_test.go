package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func place(b *Board, pieceType PieceType, owner Player, row, col int) *Piece {
	piece := &Piece{Type: pieceType, Owner: owner}
	b.Place(piece, Position{Row: row, Col: col})
	return piece
}

func requireRejected(t *testing.T, err error, want RejectReason) {
	t.Helper()
	require.Error(t, err)
	reason, ok := RejectionReason(err)
	require.True(t, ok, "expected a move rejection, got %v", err)
	require.Equal(t, want, reason)
}

func TestSingleStepShapes(t *testing.T) {
	board := NewBoard()
	dog := place(board, Dog, PlayerRed, 4, 3)
	v := NewMoveValidator(board)

	for _, to := range []Position{{Row: 3, Col: 3}, {Row: 5, Col: 3}, {Row: 4, Col: 2}, {Row: 4, Col: 4}} {
		captured, err := v.Validate(dog, to)
		require.NoError(t, err, "step to %s", to.Notation())
		require.Nil(t, captured)
	}

	// Diagonals and longer slides are not moves.
	_, err := v.Validate(dog, Position{Row: 5, Col: 4})
	requireRejected(t, err, RejectIllegalShape)
	_, err = v.Validate(dog, Position{Row: 4, Col: 5})
	requireRejected(t, err, RejectIllegalShape)
	_, err = v.Validate(dog, Position{Row: 6, Col: 3})
	requireRejected(t, err, RejectIllegalShape)
}

func TestOutOfBounds(t *testing.T) {
	board := NewBoard()
	wolf := place(board, Wolf, PlayerRed, 0, 0)
	v := NewMoveValidator(board)

	_, err := v.Validate(wolf, Position{Row: -1, Col: 0})
	requireRejected(t, err, RejectOutOfBounds)
	_, err = v.Validate(wolf, Position{Row: 0, Col: -1})
	requireRejected(t, err, RejectOutOfBounds)
}

func TestWaterEntry(t *testing.T) {
	board := NewBoard()
	dog := place(board, Dog, PlayerRed, 3, 4)
	rat := place(board, Rat, PlayerRed, 4, 4)
	v := NewMoveValidator(board)

	_, err := v.Validate(dog, Position{Row: 3, Col: 5})
	requireRejected(t, err, RejectCannotSwim)

	captured, err := v.Validate(rat, Position{Row: 4, Col: 5})
	require.NoError(t, err)
	require.Nil(t, captured)
}

func TestOwnDenEntry(t *testing.T) {
	board := NewBoard()
	redWolf := place(board, Wolf, PlayerRed, 0, 2)
	blueWolf := place(board, Wolf, PlayerBlue, 1, 3)
	v := NewMoveValidator(board)

	_, err := v.Validate(redWolf, Position{Row: 0, Col: 3})
	requireRejected(t, err, RejectOwnDen)

	// The opponent's den is always enterable.
	captured, err := v.Validate(blueWolf, Position{Row: 0, Col: 3})
	require.NoError(t, err)
	require.Nil(t, captured)
}

func TestFriendlyOccupied(t *testing.T) {
	board := NewBoard()
	dog := place(board, Dog, PlayerRed, 4, 3)
	place(board, Cat, PlayerRed, 4, 2)
	v := NewMoveValidator(board)

	_, err := v.Validate(dog, Position{Row: 4, Col: 2})
	requireRejected(t, err, RejectFriendlyOccupied)
}

func TestRankCapture(t *testing.T) {
	board := NewBoard()
	dog := place(board, Dog, PlayerRed, 4, 3)
	leopard := place(board, Leopard, PlayerBlue, 4, 2)
	blueDog := place(board, Dog, PlayerBlue, 3, 3)
	v := NewMoveValidator(board)

	// Lower rank cannot capture higher.
	_, err := v.Validate(dog, Position{Row: 4, Col: 2})
	requireRejected(t, err, RejectInsufficientRank)

	// Equal rank captures.
	captured, err := v.Validate(dog, Position{Row: 3, Col: 3})
	require.NoError(t, err)
	require.Same(t, blueDog, captured)

	// Higher rank captures lower.
	captured, err = v.Validate(leopard, Position{Row: 4, Col: 3})
	require.NoError(t, err)
	require.Same(t, dog, captured)
}

func TestRatBeatsElephant(t *testing.T) {
	board := NewBoard()
	rat := place(board, Rat, PlayerRed, 4, 2)
	elephant := place(board, Elephant, PlayerBlue, 4, 3)
	v := NewMoveValidator(board)

	captured, err := v.Validate(rat, Position{Row: 4, Col: 3})
	require.NoError(t, err)
	require.Same(t, elephant, captured)
}

func TestRatBeatsElephantEvenFromEnemyTrap(t *testing.T) {
	board := NewBoard()
	rat := place(board, Rat, PlayerRed, 7, 3) // blue trap: effective rank 0
	place(board, Elephant, PlayerBlue, 6, 3)
	v := NewMoveValidator(board)

	captured, err := v.Validate(rat, Position{Row: 6, Col: 3})
	require.NoError(t, err)
	require.Equal(t, Elephant, captured.Type)
}

func TestElephantCannotBeatRat(t *testing.T) {
	board := NewBoard()
	elephant := place(board, Elephant, PlayerRed, 4, 3)
	place(board, Rat, PlayerBlue, 4, 2)
	v := NewMoveValidator(board)

	_, err := v.Validate(elephant, Position{Row: 4, Col: 2})
	requireRejected(t, err, RejectElephantCannotBeatRat)
}

func TestElephantCannotBeatRatEvenOnTrap(t *testing.T) {
	board := NewBoard()
	elephant := place(board, Elephant, PlayerRed, 0, 1)
	place(board, Rat, PlayerBlue, 0, 2) // red trap: effective rank 0
	v := NewMoveValidator(board)

	_, err := v.Validate(elephant, Position{Row: 0, Col: 2})
	requireRejected(t, err, RejectElephantCannotBeatRat)
}

func TestRatProtectedInWater(t *testing.T) {
	board := NewBoard()
	elephant := place(board, Elephant, PlayerRed, 3, 4)
	lion := place(board, Lion, PlayerRed, 2, 5)
	redRat := place(board, Rat, PlayerRed, 4, 4)
	place(board, Rat, PlayerBlue, 3, 5)
	place(board, Rat, PlayerBlue, 4, 5)
	v := NewMoveValidator(board)

	// No land piece can touch a rat in water, rank 8 included.
	_, err := v.Validate(elephant, Position{Row: 3, Col: 5})
	requireRejected(t, err, RejectRatProtectedInWater)
	_, err = v.Validate(lion, Position{Row: 3, Col: 5})
	requireRejected(t, err, RejectRatProtectedInWater)

	// Another rat can.
	captured, err := v.Validate(redRat, Position{Row: 4, Col: 5})
	require.NoError(t, err)
	require.Equal(t, Rat, captured.Type)
	require.Equal(t, PlayerBlue, captured.Owner)
}

func TestTrapZeroesDefenderRank(t *testing.T) {
	board := NewBoard()
	cat := place(board, Cat, PlayerRed, 0, 1)
	tiger := place(board, Tiger, PlayerBlue, 0, 2) // red trap, enemy for blue
	v := NewMoveValidator(board)

	captured, err := v.Validate(cat, Position{Row: 0, Col: 2})
	require.NoError(t, err)
	require.Same(t, tiger, captured)
}

func TestOwnTrapKeepsRank(t *testing.T) {
	board := NewBoard()
	cat := place(board, Cat, PlayerRed, 8, 1)
	place(board, Tiger, PlayerBlue, 8, 2) // blue's own trap: full rank
	v := NewMoveValidator(board)

	_, err := v.Validate(cat, Position{Row: 8, Col: 2})
	requireRejected(t, err, RejectInsufficientRank)
}

func TestTrapZeroesAttackerRank(t *testing.T) {
	board := NewBoard()
	cat := place(board, Cat, PlayerRed, 8, 2) // blue trap: effective rank 0
	place(board, Cat, PlayerBlue, 8, 1)
	v := NewMoveValidator(board)

	_, err := v.Validate(cat, Position{Row: 8, Col: 1})
	requireRejected(t, err, RejectInsufficientRank)
}

func TestJumpAcrossRiver(t *testing.T) {
	board := NewBoard()
	lion := place(board, Lion, PlayerRed, 2, 0)
	v := NewMoveValidator(board)

	captured, err := v.Validate(lion, Position{Row: 6, Col: 0})
	require.NoError(t, err)
	require.Nil(t, captured)
}

func TestJumpCaptureOnLanding(t *testing.T) {
	board := NewBoard()
	lion := place(board, Lion, PlayerRed, 2, 0)
	blueDog := place(board, Dog, PlayerBlue, 6, 0)
	v := NewMoveValidator(board)

	captured, err := v.Validate(lion, Position{Row: 6, Col: 0})
	require.NoError(t, err)
	require.Same(t, blueDog, captured)
}

func TestJumpRejections(t *testing.T) {
	board := NewBoard()
	lion := place(board, Lion, PlayerRed, 2, 0)
	leopard := place(board, Leopard, PlayerRed, 2, 6)
	midLion := place(board, Lion, PlayerRed, 2, 2)
	v := NewMoveValidator(board)

	// Only jump-capable kinds may jump.
	_, err := v.Validate(leopard, Position{Row: 6, Col: 6})
	requireRejected(t, err, RejectNotAJumper)

	// The path must be water all the way.
	_, err = v.Validate(midLion, Position{Row: 6, Col: 2})
	requireRejected(t, err, RejectJumpBlocked)

	// A rat in the path blocks the jump regardless of its owner.
	ratPos := Position{Row: 4, Col: 0}
	place(board, Rat, PlayerBlue, ratPos.Row, ratPos.Col)
	_, err = v.Validate(lion, Position{Row: 6, Col: 0})
	requireRejected(t, err, RejectJumpBlocked)

	board.Remove(ratPos)
	place(board, Rat, PlayerRed, ratPos.Row, ratPos.Col)
	_, err = v.Validate(lion, Position{Row: 6, Col: 0})
	requireRejected(t, err, RejectJumpBlocked)

	// Friendly piece on the landing square.
	board.Remove(ratPos)
	place(board, Wolf, PlayerRed, 6, 0)
	_, err = v.Validate(lion, Position{Row: 6, Col: 0})
	requireRejected(t, err, RejectFriendlyOccupied)
}

func TestHorizontalJumpHasNoCrossing(t *testing.T) {
	// The rivers are two columns wide, so a horizontal four-square
	// displacement never spans three water squares on this board.
	board := NewBoard()
	lion := place(board, Lion, PlayerRed, 3, 2)
	v := NewMoveValidator(board)

	_, err := v.Validate(lion, Position{Row: 3, Col: 6})
	requireRejected(t, err, RejectJumpBlocked)
}

func TestLegalMovesEnumeration(t *testing.T) {
	board := NewBoard()
	lion := place(board, Lion, PlayerRed, 2, 0)
	v := NewMoveValidator(board)

	moves := v.LegalMoves(lion)
	require.ElementsMatch(t, []Position{
		{Row: 1, Col: 0}, // step down
		{Row: 2, Col: 1}, // step right
		{Row: 6, Col: 0}, // jump across the river
	}, moves)
}

func TestLegalMovesForNonJumper(t *testing.T) {
	board := NewBoard()
	dog := place(board, Dog, PlayerRed, 2, 0)
	v := NewMoveValidator(board)

	moves := v.LegalMoves(dog)
	require.ElementsMatch(t, []Position{
		{Row: 1, Col: 0},
		{Row: 2, Col: 1},
	}, moves)
}

func TestValidateDoesNotMutate(t *testing.T) {
	board := NewBoard()
	board.SetupInitialPosition()
	v := NewMoveValidator(board)
	rat := board.PieceAt(Position{Row: 2, Col: 4})

	before := board.Grid()
	for i := 0; i < 3; i++ {
		v.Validate(rat, Position{Row: 3, Col: 4})
		v.Validate(rat, Position{Row: 3, Col: 3})
		v.LegalMoves(rat)
	}
	require.Equal(t, before, board.Grid())
}
