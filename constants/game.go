package constants

// Board Geometry
const (
	// BoardSize is the side length of every board (rows == columns)
	BoardSize = 10

	// MaxPlacementAttempts caps consecutive rejected samples for a single ship.
	// The fixed fleet never comes near it; it only stops pathological configurations from spinning forever
	MaxPlacementAttempts = 1_000_000
)

// FleetLengths is the fixed fleet placed on each board, in placement order.
// Two ships share length 5
var FleetLengths = [...]int{5, 4, 5, 5, 2}

// FleetCells returns the total number of cells occupied by the fleet
func FleetCells() int {
	total := 0
	for _, l := range FleetLengths {
		total += l
	}
	return total
}
