package maze

import "strings"

// Render produces an ASCII snapshot of the maze as a
// (2*height+1) x (2*width+1) character grid, one line per grid row,
// each line terminated by a newline.
//
// Intersections render as '+', wall slots as '-'/'|' when closed (the outer
// border is always closed) and ' ' when open. Cell centers render as ' ',
// unless showParents is set, in which case they carry the parent-pointer
// glyph: '^' '<' 'v' '>' toward the parent, 'X' for the origin. The glyph
// view is a debugging aid; the plain view is the stable output.
func (m *OriginShiftMaze) Render(showParents bool) string {
	var b strings.Builder
	b.Grow((2*m.width + 2) * (2*m.height + 1))

	for y := 0; y < 2*m.height+1; y++ {
		rowEdge := y%2 == 0
		row := y / 2
		for x := 0; x < 2*m.width+1; x++ {
			colEdge := x%2 == 0
			col := x / 2
			switch {
			case colEdge && rowEdge:
				b.WriteByte('+')
			case !colEdge && !rowEdge:
				if showParents {
					b.WriteByte(m.parents[col+row*m.width].glyph())
				} else {
					b.WriteByte(' ')
				}
			case !colEdge: // horizontal wall slot between row-1 and row
				if row == 0 || row == m.height || m.horzWalls[col+(row-1)*m.width] {
					b.WriteByte('-')
				} else {
					b.WriteByte(' ')
				}
			default: // vertical wall slot between col-1 and col
				if col == 0 || col == m.width || m.vertWalls[(col-1)+row*(m.width-1)] {
					b.WriteByte('|')
				} else {
					b.WriteByte(' ')
				}
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// String provides the plain textual representation of the maze.
func (m *OriginShiftMaze) String() string {
	return m.Render(false)
}
