package game

// CheckWinner scans all rows, columns, and diagonals for a uniform line and
// returns its mark, or None when no line is complete. On a legally played
// board at most one mark can hold a winning line.
func CheckWinner(b Board) PlayerMark {
	// Check rows
	for i := range [3]int{} {
		if b[i][0] != None && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return b[i][0]
		}
	}

	// Check columns
	for i := range [3]int{} {
		if b[0][i] != None && b[0][i] == b[1][i] && b[1][i] == b[2][i] {
			return b[0][i]
		}
	}

	// Check diagonals
	if b[0][0] != None && b[0][0] == b[1][1] && b[1][1] == b[2][2] {
		return b[0][0]
	}
	if b[0][2] != None && b[0][2] == b[1][1] && b[1][1] == b[2][0] {
		return b[0][2]
	}

	return None
}

// IsBoardFull reports whether every cell holds a mark.
func IsBoardFull(b Board) bool {
	for r := range b {
		for c := range b[r] {
			if b[r][c] == None {
				return false
			}
		}
	}
	return true
}
