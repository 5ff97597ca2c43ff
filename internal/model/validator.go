package model

// MoveValidator decides move legality against a board. It never mutates
// the board or the piece, so it is safe to call repeatedly while
// enumerating legal moves.
type MoveValidator struct {
	board *Board
}

func NewMoveValidator(board *Board) *MoveValidator {
	return &MoveValidator{board: board}
}

// jumpSpan is the axis displacement of a river jump: three water squares
// between take-off and landing.
const jumpSpan = 4

// Validate checks whether piece may move to its destination. On success
// it returns the defender that would be captured, or nil when the
// destination is empty. On failure it returns a MoveRejection.
func (v *MoveValidator) Validate(piece *Piece, to Position) (*Piece, error) {
	from := piece.Position

	if !InBounds(to) {
		return nil, reject(RejectOutOfBounds)
	}

	dRow := to.Row - from.Row
	dCol := to.Col - from.Col
	isStep := abs(dRow)+abs(dCol) == 1
	isJump := (dRow == 0 && abs(dCol) == jumpSpan) || (dCol == 0 && abs(dRow) == jumpSpan)
	if !isStep && !isJump {
		return nil, reject(RejectIllegalShape)
	}

	if isJump {
		if !piece.Type.CanJump() {
			return nil, reject(RejectNotAJumper)
		}
		if err := v.validateJumpPath(from, to); err != nil {
			return nil, err
		}
	}

	defender := v.board.PieceAt(to)

	// Water entry applies to single steps onto an empty square; an
	// occupied water square is resolved by capture evaluation, since only
	// a Rat can be standing there.
	if isStep && defender == nil && IsWater(to) && !piece.Type.CanSwim() {
		return nil, reject(RejectCannotSwim)
	}

	if IsDen(to, piece.Owner) {
		return nil, reject(RejectOwnDen)
	}

	if defender == nil {
		return nil, nil
	}
	if defender.Owner == piece.Owner {
		return nil, reject(RejectFriendlyOccupied)
	}
	if err := v.validateCapture(piece, defender); err != nil {
		return nil, err
	}
	return defender, nil
}

// validateJumpPath checks the three intermediate squares of a jump: all
// water, none holding a Rat of either side, and a dry landing square.
func (v *MoveValidator) validateJumpPath(from, to Position) error {
	stepRow := sign(to.Row - from.Row)
	stepCol := sign(to.Col - from.Col)
	pos := Position{Row: from.Row + stepRow, Col: from.Col + stepCol}
	for pos != to {
		if !IsWater(pos) {
			return reject(RejectJumpBlocked)
		}
		if blocker := v.board.PieceAt(pos); blocker != nil && blocker.Type == Rat {
			return reject(RejectJumpBlocked)
		}
		pos = Position{Row: pos.Row + stepRow, Col: pos.Col + stepCol}
	}
	if IsWater(to) {
		return reject(RejectJumpBlocked)
	}
	return nil
}

// validateCapture applies the capture hierarchy with its two asymmetric
// exceptions and the rat-in-water protection.
func (v *MoveValidator) validateCapture(attacker, defender *Piece) error {
	// A Rat in water is safe from everything but another Rat. This
	// overrides rank comparison entirely.
	if defender.Type == Rat && IsWater(defender.Position) && attacker.Type != Rat {
		return reject(RejectRatProtectedInWater)
	}

	// The Rat beats the Elephant regardless of traps; the reverse
	// capture is explicitly forbidden.
	if attacker.Type == Rat && defender.Type == Elephant {
		return nil
	}
	if attacker.Type == Elephant && defender.Type == Rat {
		return reject(RejectElephantCannotBeatRat)
	}

	if effectiveRank(attacker) >= effectiveRank(defender) {
		return nil
	}
	return reject(RejectInsufficientRank)
}

// effectiveRank is the piece's rank for capture purposes: zero while it
// stands in an enemy trap, its base rank otherwise. Never stored.
func effectiveRank(piece *Piece) int {
	if IsEnemyTrap(piece.Position, piece.Owner) {
		return 0
	}
	return piece.Type.Rank()
}

var orthoDirs = []Position{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}

// LegalMoves enumerates every destination piece may legally move to: the
// four orthogonal steps plus, for jumpers, the four jump landings.
// Enumeration order is not part of the contract.
func (v *MoveValidator) LegalMoves(piece *Piece) []Position {
	var moves []Position
	spans := []int{1}
	if piece.Type.CanJump() {
		spans = append(spans, jumpSpan)
	}
	for _, span := range spans {
		for _, dir := range orthoDirs {
			to := Position{
				Row: piece.Position.Row + dir.Row*span,
				Col: piece.Position.Col + dir.Col*span,
			}
			if _, err := v.Validate(piece, to); err == nil {
				moves = append(moves, to)
			}
		}
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
