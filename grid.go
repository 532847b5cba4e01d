package radical

// ResolvedMarker is appended to the root of a resolved perfect square.
const ResolvedMarker = "*"

// Cell is one grid position. Blank cells have empty Text.
type Cell struct {
	Text     string
	Resolved bool
}

// Grid holds the factoring steps row by row. Row i holds the calls made at
// recursion depth i, each at its column position.
type Grid [][]Cell

// BuildGrid flattens a factoring tree into a grid. The root sits at depth 0,
// column 1. A composite at (d, p) places its square factor at (d+1, p-1) and
// its quotient at (d+1, p+1); a resolved value at (d, p) places its root
// marker at (d+1, p). Nodes are visited in call order and later writes win.
// Every visit extends rows d and d+1 to hold column p.
func BuildGrid(tree *Node) Grid {
	g := Grid{make([]Cell, 1)}
	if tree == nil {
		return g
	}
	g.place(tree, 0, 1)
	return g
}

func (g *Grid) place(n *Node, depth, pos int) {
	if pos < 0 {
		return
	}
	g.extend(depth, pos)
	g.extend(depth+1, pos)

	text := formatInt(n.Value)
	if depth == 0 {
		text = formatFloat(n.Value)
	}
	(*g)[depth][pos] = Cell{Text: text}

	switch n.Kind {
	case KindResolved:
		(*g)[depth+1][pos] = Cell{Text: formatInt(n.Root) + ResolvedMarker, Resolved: true}
	case KindComposite:
		if n.Left != nil {
			g.place(n.Left, depth+1, pos-1)
		}
		if n.Right != nil {
			g.place(n.Right, depth+1, pos+1)
		}
	}
}

func (g *Grid) extend(depth, pos int) {
	for len(*g) <= depth {
		*g = append(*g, make([]Cell, 1))
	}
	row := (*g)[depth]
	for len(row) < pos+1 {
		row = append(row, Cell{})
	}
	(*g)[depth] = row
}

// Rows returns the cell texts, mainly for inspection and tests.
func (g Grid) Rows() [][]string {
	out := make([][]string, len(g))
	for i, row := range g {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = c.Text
		}
	}
	return out
}
