package game

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"
)

// Board boundaries
const (
	BorderMin = 0
	BorderMax = 2
)

// Board is the 3x3 grid. The zero value is an empty board.
type Board [3][3]PlayerMark

func (b Board) Get(row, col int) PlayerMark {
	return b[row][col]
}

// Set places a mark without re-checking occupancy; callers validate the
// cell first so the board stays a plain data container.
func (b *Board) Set(row, col int, mark PlayerMark) {
	b[row][col] = mark
}

func (b Board) IsOccupied(row, col int) bool {
	return b[row][col] != None
}

// InBounds reports whether the coordinates address a cell on the board.
func InBounds(row, col int) bool {
	return row >= BorderMin && row <= BorderMax && col >= BorderMin && col <= BorderMax
}

// CountOccupied returns the number of cells holding a mark. It doubles as
// the move number of the most recent placement.
func (b Board) CountOccupied() int {
	count := 0
	for r := range b {
		for c := range b[r] {
			if b[r][c] != None {
				count++
			}
		}
	}
	return count
}

// EmptyCells lists the coordinates of all unoccupied cells in row-major order.
func (b Board) EmptyCells() [][2]int {
	var cells [][2]int
	for r := range b {
		for c := range b[r] {
			if b[r][c] == None {
				cells = append(cells, [2]int{r, c})
			}
		}
	}
	return cells
}

// Opposite returns the other player's mark.
func Opposite(m PlayerMark) PlayerMark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}
