package bot

import (
	"errors"
	"math/rand/v2"

	"github.com/playforge/tictactoe-backend/internal/game"
)

// ErrNoAvailableMoves is returned when a picker is asked to move on a board
// with no empty cells. Callers rule this out by checking completion first,
// so hitting it indicates a bug upstream.
var ErrNoAvailableMoves = errors.New("no available moves left")

// RandomPicker implements game.MovePicker with a uniformly random choice
// among the empty cells. This is the computer opponent's entire strategy.
type RandomPicker struct{}

// NewRandomPicker creates the move picker used by the computer opponent.
func NewRandomPicker() *RandomPicker {
	return &RandomPicker{}
}

// PickMove returns the coordinates of a randomly chosen empty cell.
func (p *RandomPicker) PickMove(b game.Board) (int, int, error) {
	available := b.EmptyCells()
	if len(available) == 0 {
		return -1, -1, ErrNoAvailableMoves
	}
	cell := available[rand.IntN(len(available))]
	return cell[0], cell[1], nil
}
