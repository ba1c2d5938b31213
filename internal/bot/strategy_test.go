package bot

import (
	"errors"
	"testing"

	"github.com/playforge/tictactoe-backend/internal/game"
)

// moveIn is a helper function to check if a move is in a list of expected moves.
func moveIn(move [2]int, list [][2]int) bool {
	for _, item := range list {
		if item == move {
			return true
		}
	}
	return false
}

func TestPickMoveReturnsEmptyCell(t *testing.T) {
	board := game.Board{
		{game.PlayerX, game.None, game.PlayerO},
		{game.None, game.PlayerX, game.None},
		{game.PlayerO, game.None, game.None},
	}
	empty := board.EmptyCells()
	picker := NewRandomPicker()

	for i := 0; i < 100; i++ {
		row, col, err := picker.PickMove(board)
		if err != nil {
			t.Fatalf("PickMove() unexpected error: %v", err)
		}
		if !moveIn([2]int{row, col}, empty) {
			t.Fatalf("PickMove() chose occupied or invalid cell (%d,%d)", row, col)
		}
	}
}

func TestPickMoveSingleCellLeft(t *testing.T) {
	board := game.Board{
		{game.PlayerX, game.PlayerO, game.PlayerX},
		{game.PlayerX, game.PlayerO, game.PlayerO},
		{game.PlayerO, game.PlayerX, game.None},
	}
	picker := NewRandomPicker()

	row, col, err := picker.PickMove(board)
	if err != nil {
		t.Fatalf("PickMove() unexpected error: %v", err)
	}
	if row != 2 || col != 2 {
		t.Errorf("PickMove() got = (%d,%d), want (2,2)", row, col)
	}
}

func TestPickMoveFullBoard(t *testing.T) {
	board := game.Board{
		{game.PlayerX, game.PlayerO, game.PlayerX},
		{game.PlayerX, game.PlayerO, game.PlayerO},
		{game.PlayerO, game.PlayerX, game.PlayerX},
	}
	picker := NewRandomPicker()

	_, _, err := picker.PickMove(board)
	if !errors.Is(err, ErrNoAvailableMoves) {
		t.Errorf("PickMove() error = %v, want ErrNoAvailableMoves", err)
	}
}

func TestPickMoveEventuallyCoversAllCells(t *testing.T) {
	// Not a statistical test, just a check that every empty cell is reachable.
	board := game.Board{
		{game.PlayerX, game.PlayerO, game.PlayerX},
		{game.None, game.PlayerO, game.None},
		{game.PlayerO, game.PlayerX, game.None},
	}
	picker := NewRandomPicker()

	seen := make(map[[2]int]bool)
	for i := 0; i < 300; i++ {
		row, col, err := picker.PickMove(board)
		if err != nil {
			t.Fatalf("PickMove() unexpected error: %v", err)
		}
		seen[[2]int{row, col}] = true
	}

	for _, cell := range board.EmptyCells() {
		if !seen[cell] {
			t.Errorf("cell (%d,%d) never chosen over 300 runs", cell[0], cell[1])
		}
	}
}
