package game

import (
	"fmt"
	"time"
)

// OpponentKind tags how the O seat of a game is filled.
type OpponentKind string

const (
	OpponentHuman    OpponentKind = "human"
	OpponentComputer OpponentKind = "computer"
)

// Opponent describes the O seat. For human games PlayerID stays zero until
// somebody joins; computer games never register an O player.
type Opponent struct {
	Kind     OpponentKind
	PlayerID int64
}

// Joined reports whether a human has claimed the O seat.
func (o Opponent) Joined() bool {
	return o.Kind == OpponentHuman && o.PlayerID != 0
}

// GameResult is the recorded outcome of a game.
type GameResult string

const (
	ResultNone GameResult = ""
	ResultX    GameResult = "X"
	ResultO    GameResult = "O"
	ResultDraw GameResult = "draw"
)

// ComputerActor is the player ID recorded on moves made by the computer.
const ComputerActor int64 = 0

// Game is one game session. It is a plain value; persistence layers
// translate it to and from their own row types.
type Game struct {
	ID        string
	PlayerXID int64
	Opponent  Opponent
	Board     Board
	Turn      PlayerMark
	Winner    GameResult
	Complete  bool
	CreatedAt time.Time
}

// Move is one append-only move log entry. Numbers count occupied cells
// after the placement, so they run 1..N without gaps.
type Move struct {
	GameID   string
	PlayerID int64 // ComputerActor for computer moves
	Row      int
	Col      int
	Symbol   PlayerMark
	Number   int
}

// MovePicker chooses the computer's reply. Implementations must return the
// coordinates of an empty cell.
type MovePicker interface {
	PickMove(b Board) (row, col int, err error)
}

// New creates an open game with an empty board. The creator always plays X,
// and X always moves first.
func New(id string, creatorID int64, kind OpponentKind) Game {
	return Game{
		ID:        id,
		PlayerXID: creatorID,
		Opponent:  Opponent{Kind: kind},
		Turn:      PlayerX,
		CreatedAt: time.Now().UTC(),
	}
}

// Join claims the O seat for playerID.
func (g *Game) Join(playerID int64) error {
	if g.Opponent.Kind != OpponentHuman {
		return ErrJoinComputerGame
	}
	if playerID == g.PlayerXID {
		return ErrJoinOwnGame
	}
	if g.Opponent.Joined() {
		return ErrSeatTaken
	}
	g.Opponent.PlayerID = playerID
	return nil
}

// ApplyMove runs one move transition: validate, place the mark, evaluate
// the outcome, advance the turn. When the opponent is the computer and the
// game is still open with O to move, the computer's reply is applied inside
// the same transition. The returned slice holds the new move log entries in
// order; on rejection the game is left untouched and the error names the
// reason.
func (g *Game) ApplyMove(actorID int64, row, col int, picker MovePicker) ([]Move, error) {
	symbol, err := g.validateMove(actorID, row, col)
	if err != nil {
		return nil, err
	}

	moves := make([]Move, 0, 2)
	moves = append(moves, g.place(actorID, row, col, symbol))

	if !g.Complete && g.Opponent.Kind == OpponentComputer && g.Turn == PlayerO {
		replyRow, replyCol, err := picker.PickMove(g.Board)
		if err != nil {
			return nil, fmt.Errorf("computer move: %w", err)
		}
		moves = append(moves, g.place(ComputerActor, replyRow, replyCol, PlayerO))
	}

	return moves, nil
}

// place mutates the board and rolls the session state forward. The cell
// must already be validated.
func (g *Game) place(actorID int64, row, col int, symbol PlayerMark) Move {
	g.Board.Set(row, col, symbol)

	move := Move{
		GameID:   g.ID,
		PlayerID: actorID,
		Row:      row,
		Col:      col,
		Symbol:   symbol,
		Number:   g.Board.CountOccupied(),
	}

	if winner := CheckWinner(g.Board); winner != None {
		g.Winner = GameResult(winner)
		g.Complete = true
	} else if IsBoardFull(g.Board) {
		g.Winner = ResultDraw
		g.Complete = true
	} else {
		g.Turn = Opposite(g.Turn)
	}

	return move
}
