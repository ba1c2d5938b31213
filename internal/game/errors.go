package game

import "errors"

// Move and join rejections. These are user-correctable conditions reported
// back to the caller with game state left untouched.
var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrOutOfBounds    = errors.New("cell is out of bounds")
	ErrNotParticipant = errors.New("player is not part of this game")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrCellOccupied   = errors.New("cell is already occupied")

	ErrJoinComputerGame = errors.New("cannot join a game against the computer")
	ErrJoinOwnGame      = errors.New("creator already holds the X seat")
	ErrSeatTaken        = errors.New("game already has two players")
)
