package parser

// Bounds is a 0-based inclusive cell rectangle.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

func (b Bounds) intersect(o Bounds) (Bounds, bool) {
	out := Bounds{
		MinRow: max(b.MinRow, o.MinRow),
		MaxRow: min(b.MaxRow, o.MaxRow),
		MinCol: max(b.MinCol, o.MinCol),
		MaxCol: min(b.MaxCol, o.MaxCol),
	}
	return out, out.MinRow <= out.MaxRow && out.MinCol <= out.MaxCol
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (Bounds, bool) {
	b := Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if b.MinRow < 0 || rowIdx < b.MinRow {
					b.MinRow = rowIdx
				}
				if b.MaxRow < 0 || rowIdx > b.MaxRow {
					b.MaxRow = rowIdx
				}
				if b.MinCol < 0 || colIdx < b.MinCol {
					b.MinCol = colIdx
				}
				if b.MaxCol < 0 || colIdx > b.MaxCol {
					b.MaxCol = colIdx
				}
			}
		}
	}

	return b, b.MinRow >= 0
}
