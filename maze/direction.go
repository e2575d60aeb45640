package maze

// Direction identifies one of the four cardinal moves on the grid.
//
// The numeric order (North, South, West, East) is the order Step draws
// directions in, so a fixed seed sequence reproduces the same walk.
type Direction uint8

const (
	North Direction = iota // toward row 0
	South                  // toward row height-1
	West                   // toward column 0
	East                   // toward column width-1
)

var directionNames = [...]string{"North", "South", "West", "East"}

// String returns the direction's name.
func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "Unknown"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back across the same edge.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// offset returns the row/col delta of a one-cell move in the direction.
func (d Direction) offset() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 1
	}
}

// Parent encodes a cell's link toward the spanning-tree origin. Every cell
// except the origin stores the direction its parent lies in; the origin cell
// stores the Origin sentinel.
type Parent uint8

const (
	Origin Parent = iota // the cell is the tree's origin; no parent
	ToNorth
	ToSouth
	ToWest
	ToEast
)

// parentOf converts a move direction into the matching parent pointer.
func parentOf(d Direction) Parent {
	switch d {
	case North:
		return ToNorth
	case South:
		return ToSouth
	case West:
		return ToWest
	default:
		return ToEast
	}
}

// Direction returns the direction the parent lies in. The second return is
// false for the Origin sentinel.
func (p Parent) Direction() (Direction, bool) {
	switch p {
	case ToNorth:
		return North, true
	case ToSouth:
		return South, true
	case ToWest:
		return West, true
	case ToEast:
		return East, true
	default:
		return 0, false
	}
}

// glyph is the single-character debug rendering of the pointer.
func (p Parent) glyph() byte {
	switch p {
	case ToNorth:
		return '^'
	case ToSouth:
		return 'v'
	case ToWest:
		return '<'
	case ToEast:
		return '>'
	default:
		return 'X'
	}
}
