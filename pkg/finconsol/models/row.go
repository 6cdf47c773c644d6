package models

// Cell is one header/value pair of a row.
type Cell struct {
	// Header is the column header text.
	Header string `json:"header"`
	// Value is the raw cell value.
	Value Value `json:"value"`
}

// Row is an ordered sequence of cells in sheet column order.
// Position 0 is the account code, position 1 the account name,
// and every later position is a period amount.
type Row []Cell

// Headers returns the header of each cell in order.
func (r Row) Headers() []string {
	headers := make([]string, len(r))
	for i, c := range r {
		headers[i] = c.Header
	}
	return headers
}

// At returns the cell at position i and whether it exists.
func (r Row) At(i int) (Cell, bool) {
	if i < 0 || i >= len(r) {
		return Cell{}, false
	}
	return r[i], true
}

// Lookup returns the index of the cell with the given header, or -1.
func (r Row) Lookup(header string) int {
	for i, c := range r {
		if c.Header == header {
			return i
		}
	}
	return -1
}

// Set replaces the value of the cell with the given header in place.
// An unknown header is appended as a new trailing cell.
func (r *Row) Set(header string, v Value) {
	if i := r.Lookup(header); i >= 0 {
		(*r)[i].Value = v
		return
	}
	*r = append(*r, Cell{Header: header, Value: v})
}
