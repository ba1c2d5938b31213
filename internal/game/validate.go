package game

// validateMove checks a proposed move and resolves the acting player's
// symbol. Checks run in a fixed order and the first failure wins; nothing
// is mutated.
func (g *Game) validateMove(actorID int64, row, col int) (PlayerMark, error) {
	if g.Complete {
		return None, ErrGameFinished
	}
	if !InBounds(row, col) {
		return None, ErrOutOfBounds
	}
	symbol, err := g.resolveSymbol(actorID)
	if err != nil {
		return None, err
	}
	if symbol != g.Turn {
		return None, ErrNotYourTurn
	}
	if g.Board.IsOccupied(row, col) {
		return None, ErrCellOccupied
	}
	return symbol, nil
}

// resolveSymbol maps the acting player to the mark they control. The
// creator always controls X. In a computer game any other registered
// player resolves to O and is then stopped by the turn check, since an
// open computer game always has X to move once the reply is applied.
func (g *Game) resolveSymbol(actorID int64) (PlayerMark, error) {
	if actorID == g.PlayerXID {
		return PlayerX, nil
	}
	if g.Opponent.Joined() && actorID == g.Opponent.PlayerID {
		return PlayerO, nil
	}
	if g.Opponent.Kind == OpponentComputer {
		return PlayerO, nil
	}
	return None, ErrNotParticipant
}
