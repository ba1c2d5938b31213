package game

import (
	"errors"
	"testing"
)

// Checks run in a fixed order; each case sets up a move that violates two
// rules and asserts the earlier one is reported.
func TestValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		prep     func(*testing.T) Game
		actor    int64
		row, col int
		wantErr  error
	}{
		{
			name: "finished game beats out-of-bounds",
			prep: func(t *testing.T) Game {
				g := joinedHumanGame(t)
				g.Complete = true
				g.Winner = ResultDraw
				return g
			},
			actor: creatorID, row: 9, col: 9,
			wantErr: ErrGameFinished,
		},
		{
			name: "out-of-bounds beats unknown player",
			prep: func(t *testing.T) Game {
				return joinedHumanGame(t)
			},
			actor: strangerID, row: 5, col: 0,
			wantErr: ErrOutOfBounds,
		},
		{
			name: "unknown player beats wrong turn and occupancy",
			prep: func(t *testing.T) Game {
				g := joinedHumanGame(t)
				mustApply(t, &g, creatorID, 0, 0)
				return g
			},
			actor: strangerID, row: 0, col: 0,
			wantErr: ErrNotParticipant,
		},
		{
			name: "wrong turn beats occupancy",
			prep: func(t *testing.T) Game {
				g := joinedHumanGame(t)
				mustApply(t, &g, creatorID, 0, 0)
				return g
			},
			actor: creatorID, row: 0, col: 0,
			wantErr: ErrNotYourTurn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.prep(t)
			_, err := g.ApplyMove(tt.actor, tt.row, tt.col, &stubPicker{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ApplyMove() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveSymbol(t *testing.T) {
	t.Run("creator controls X", func(t *testing.T) {
		g := joinedHumanGame(t)
		symbol, err := g.resolveSymbol(creatorID)
		if err != nil || symbol != PlayerX {
			t.Errorf("resolveSymbol(creator) = %v, %v; want X, nil", symbol, err)
		}
	})

	t.Run("joined player controls O", func(t *testing.T) {
		g := joinedHumanGame(t)
		symbol, err := g.resolveSymbol(joinerID)
		if err != nil || symbol != PlayerO {
			t.Errorf("resolveSymbol(joiner) = %v, %v; want O, nil", symbol, err)
		}
	})

	t.Run("pending human seat resolves nobody else", func(t *testing.T) {
		g := New("test-game", creatorID, OpponentHuman)
		if _, err := g.resolveSymbol(strangerID); !errors.Is(err, ErrNotParticipant) {
			t.Errorf("resolveSymbol(stranger) error = %v, want ErrNotParticipant", err)
		}
	})

	t.Run("computer game resolves outsiders to O", func(t *testing.T) {
		g := New("test-game", creatorID, OpponentComputer)
		symbol, err := g.resolveSymbol(strangerID)
		if err != nil || symbol != PlayerO {
			t.Errorf("resolveSymbol(stranger) = %v, %v; want O, nil", symbol, err)
		}
	})
}
