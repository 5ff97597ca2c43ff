package model

import "errors"

// RejectReason is the closed set of causes for which the validator turns
// down a proposed move.
type RejectReason string

const (
	RejectOutOfBounds           RejectReason = "OutOfBounds"
	RejectIllegalShape          RejectReason = "IllegalShape"
	RejectNotAJumper            RejectReason = "NotAJumper"
	RejectJumpBlocked           RejectReason = "JumpBlocked"
	RejectCannotSwim            RejectReason = "CannotSwim"
	RejectOwnDen                RejectReason = "OwnDen"
	RejectFriendlyOccupied      RejectReason = "FriendlyOccupied"
	RejectRatProtectedInWater   RejectReason = "RatProtectedInWater"
	RejectElephantCannotBeatRat RejectReason = "ElephantCannotBeatRat"
	RejectInsufficientRank      RejectReason = "InsufficientRank"
)

var rejectMessages = map[RejectReason]string{
	RejectOutOfBounds:           "move is out of bounds",
	RejectIllegalShape:          "can only move one square orthogonally",
	RejectNotAJumper:            "only Lion and Tiger can jump the river",
	RejectJumpBlocked:           "jump path is blocked",
	RejectCannotSwim:            "only the Rat can enter water",
	RejectOwnDen:                "cannot enter own den",
	RejectFriendlyOccupied:      "square is occupied by a friendly piece",
	RejectRatProtectedInWater:   "only a Rat can attack a Rat in water",
	RejectElephantCannotBeatRat: "the Elephant cannot capture the Rat",
	RejectInsufficientRank:      "cannot capture a higher-ranked piece",
}

// MoveRejection is the error returned by the validator for illegal moves.
// It carries the machine-readable reason alongside a display message.
type MoveRejection struct {
	Reason RejectReason
}

func (e MoveRejection) Error() string {
	if msg, ok := rejectMessages[e.Reason]; ok {
		return msg
	}
	return string(e.Reason)
}

func reject(reason RejectReason) error {
	return MoveRejection{Reason: reason}
}

// RejectionReason extracts the rejection reason from an error returned by
// Validate or MakeMove, if the error was a move rejection.
func RejectionReason(err error) (RejectReason, bool) {
	var rejection MoveRejection
	if errors.As(err, &rejection) {
		return rejection.Reason, true
	}
	return "", false
}

// State machine and persistence errors.
var (
	ErrNoPieceAtSource = errors.New("no piece at source square")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrGameOver        = errors.New("game has ended")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrNothingToRedo   = errors.New("nothing to redo")
	ErrCorruptSave     = errors.New("corrupt save document")
	ErrIOFailure       = errors.New("storage failure")
)
