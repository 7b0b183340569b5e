package parameter

// Maze generation
const (
	// MazeWidth/Height are cell dimensions, rounded down to odd
	MazeWidth  = 31
	MazeHeight = 31

	// MazeCellSize is the world-units span of one cell
	MazeCellSize = 1.0

	// CarveDepthLimit caps corridor runs between junctions; short runs
	// force intersections
	CarveDepthLimit = 15

	// CarveBranchChance is the probability of opening a second
	// direction at a cell with several unvisited neighbours. Tuned for
	// junction-heavy layouts; validated statistically, not bit-exactly.
	CarveBranchChance = 0.35

	// SpawnCorridorLength is the forced clear hallway from spawn in
	// each cardinal direction
	SpawnCorridorLength = 2

	// ExitRetryLimit caps regeneration attempts when no edge candidate
	// qualifies for an exit before one is forced
	ExitRetryLimit = 4
)
