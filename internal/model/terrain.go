package model

// SquareType classifies the fixed terrain of a board square.
type SquareType string

const (
	SquareNormal SquareType = "NORMAL"
	SquareTrap   SquareType = "TRAP"
	SquareDen    SquareType = "DEN"
	SquareWater  SquareType = "WATER"
)

const (
	BoardRows = 9
	BoardCols = 7
)

// Special squares. RED's den sits on its baseline at D1, BLUE's at D9,
// each guarded by three traps. The two rivers span rows 3-5 across
// columns 0-1 and 5-6.
var (
	redDen  = Position{Row: 0, Col: 3}
	blueDen = Position{Row: 8, Col: 3}

	redTraps  = []Position{{Row: 0, Col: 2}, {Row: 0, Col: 4}, {Row: 1, Col: 3}}
	blueTraps = []Position{{Row: 8, Col: 2}, {Row: 8, Col: 4}, {Row: 7, Col: 3}}

	waterSquares = []Position{
		{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 4, Col: 0}, {Row: 4, Col: 1}, {Row: 5, Col: 0}, {Row: 5, Col: 1},
		{Row: 3, Col: 5}, {Row: 3, Col: 6}, {Row: 4, Col: 5}, {Row: 4, Col: 6}, {Row: 5, Col: 5}, {Row: 5, Col: 6},
	}
)

var terrain = initTerrain()

func initTerrain() [BoardRows][BoardCols]SquareType {
	var grid [BoardRows][BoardCols]SquareType
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			grid[row][col] = SquareNormal
		}
	}
	grid[redDen.Row][redDen.Col] = SquareDen
	grid[blueDen.Row][blueDen.Col] = SquareDen
	for _, pos := range redTraps {
		grid[pos.Row][pos.Col] = SquareTrap
	}
	for _, pos := range blueTraps {
		grid[pos.Row][pos.Col] = SquareTrap
	}
	for _, pos := range waterSquares {
		grid[pos.Row][pos.Col] = SquareWater
	}
	return grid
}

func InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardRows && pos.Col >= 0 && pos.Col < BoardCols
}

// TerrainAt returns the terrain of a square. Out-of-bounds squares read
// as normal terrain; callers bound-check before relying on it.
func TerrainAt(pos Position) SquareType {
	if !InBounds(pos) {
		return SquareNormal
	}
	return terrain[pos.Row][pos.Col]
}

func IsWater(pos Position) bool {
	return TerrainAt(pos) == SquareWater
}

// IsDen reports whether pos is the den belonging to player.
func IsDen(pos Position, player Player) bool {
	if player == PlayerRed {
		return pos == redDen
	}
	return pos == blueDen
}

// IsOpponentDen reports whether pos is the den of player's opponent.
func IsOpponentDen(pos Position, player Player) bool {
	return IsDen(pos, player.Opponent())
}

// IsEnemyTrap reports whether pos is a trap owned by owner's opponent.
// Standing there drops a piece's effective rank to zero.
func IsEnemyTrap(pos Position, owner Player) bool {
	if TerrainAt(pos) != SquareTrap {
		return false
	}
	enemyTraps := blueTraps
	if owner == PlayerBlue {
		enemyTraps = redTraps
	}
	for _, trap := range enemyTraps {
		if pos == trap {
			return true
		}
	}
	return false
}
