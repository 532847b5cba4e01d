package radical

// DefaultBound is the largest root whose square is tabulated.
const DefaultBound = 30

// Table is an ascending list of perfect squares used as candidate factors.
// The zero value is an empty table.
type Table struct {
	squares []float64
}

// DefaultTable holds the squares 2² through DefaultBound².
var DefaultTable = NewTable(DefaultBound)

// NewTable returns the squares of 2 through bound. A bound below 2 yields an
// empty table.
func NewTable(bound int) Table {
	if bound < 2 {
		return Table{}
	}
	squares := make([]float64, 0, bound-1)
	for i := 2; i <= bound; i++ {
		squares = append(squares, float64(i*i))
	}
	return Table{squares: squares}
}

// Squares returns a copy of the tabulated squares in ascending order.
func (t Table) Squares() []float64 {
	out := make([]float64, len(t.squares))
	copy(out, t.squares)
	return out
}

// Len reports the number of tabulated squares.
func (t Table) Len() int {
	return len(t.squares)
}

// Max returns the largest tabulated square, or 0 for an empty table.
func (t Table) Max() float64 {
	if len(t.squares) == 0 {
		return 0
	}
	return t.squares[len(t.squares)-1]
}
