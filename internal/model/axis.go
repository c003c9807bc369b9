package model

// Axis is the line along which a turn's tiles are aligned
type Axis string

const (
	AxisUndecided Axis = "undecided"
	AxisAcross    Axis = "across" // along a row
	AxisDown      Axis = "down"   // along a column
)

// Axes lists the play axes. Across comes first so it wins ties.
var Axes = [2]Axis{AxisAcross, AxisDown}

// Cross returns the perpendicular axis
func (a Axis) Cross() Axis {
	switch a {
	case AxisAcross:
		return AxisDown
	case AxisDown:
		return AxisAcross
	default:
		return AxisUndecided
	}
}
