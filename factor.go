package radical

import (
	"math"

	"go.uber.org/zap"
)

// Options controls factoring and printing. The zero value is usable; nil
// options fall back to DefaultOptions.
type Options struct {
	// Table lists the candidate square factors. A zero Table means
	// DefaultTable.
	Table Table
	// Epsilon is the tolerance of the whole-number test. Default 1e-9.
	Epsilon float64
	// LegacyParity replaces the tolerance test with the parity heuristic
	// (x%2 == 0 or (x+1)%2 == 0) and truncates instead of rounding.
	LegacyParity bool
	// NoColor disables highlighting of resolved leaves. The reset sequence
	// is still written after every grid cell.
	NoColor bool
	// Palette selects the highlight colour by name. Empty means "default";
	// "none" disables highlighting like NoColor.
	Palette string
	// NoTree suppresses the factoring grid in Fprint.
	NoTree bool
	// Logger receives one debug entry per factoring step. Nil discards.
	Logger *zap.Logger
}

// DefaultOptions holds the fallback configuration.
var DefaultOptions = &Options{Table: DefaultTable, Epsilon: DefaultEpsilon}

// Kind tags the nodes of a factoring tree.
type Kind uint8

const (
	// KindResolved marks a value whose square root is whole.
	KindResolved Kind = iota
	// KindComposite marks a value split into a tabulated square and a
	// quotient.
	KindComposite
	// KindRemainder marks a value with no tabulated square factor. It stays
	// under the radical.
	KindRemainder
)

func (k Kind) String() string {
	switch k {
	case KindResolved:
		return "resolved"
	case KindComposite:
		return "composite"
	case KindRemainder:
		return "remainder"
	default:
		return "unknown"
	}
}

// Node is one call of the recursive factorizer.
type Node struct {
	Kind  Kind
	Value float64
	// Root is the integer square root of Value for resolved nodes.
	Root float64
	// Square is the tabulated factor for composite nodes. Left factors
	// Square and Right factors Value/Square.
	Square float64
	Left   *Node
	Right  *Node
}

// Result is a simplified radical: Coefficient √Remainder.
type Result struct {
	Input float64
	// Coefficient is the product of resolved roots, 1 when nothing resolved.
	Coefficient float64
	// Remainder is the sum of all remainder leaves, 0 when none.
	Remainder float64
	Tree      *Node
}

// Factor simplifies √num into radical form.
func Factor(num float64, opts *Options) Result {
	if opts == nil {
		opts = DefaultOptions
	}
	f := factorizer{
		table: opts.Table,
		test:  newWholeTest(opts),
		log:   opts.Logger,
	}
	if f.table.Len() == 0 {
		f.table = DefaultTable
	}
	if f.log == nil {
		f.log = zap.NewNop()
	}

	res := Result{Input: num}
	res.Tree, res.Coefficient = f.factor(num, 0, &res.Remainder)
	f.log.Debug("factored",
		zap.Float64("input", num),
		zap.Float64("coefficient", res.Coefficient),
		zap.Float64("remainder", res.Remainder),
	)
	return res
}

type factorizer struct {
	table Table
	test  wholeTest
	log   *zap.Logger
}

func (f *factorizer) factor(num float64, depth int, remainder *float64) (*Node, float64) {
	r := math.Sqrt(num)
	if f.test.whole(r) {
		root := f.test.integer(r)
		f.log.Debug("perfect square", zap.Int("depth", depth), zap.Float64("value", num), zap.Float64("root", root))
		n := &Node{Kind: KindResolved, Value: num, Root: root}
		if f.test.legacy {
			return n, r
		}
		return n, root
	}

	for _, s := range f.table.squares {
		q := num / s
		if q > 1 && f.test.whole(q) {
			f.log.Debug("square factor", zap.Int("depth", depth), zap.Float64("value", num), zap.Float64("square", s))
			left, lc := f.factor(s, depth+1, remainder)
			right, rc := f.factor(f.test.integer(q), depth+1, remainder)
			return &Node{Kind: KindComposite, Value: num, Square: s, Left: left, Right: right}, lc * rc
		}
	}

	f.log.Debug("remainder", zap.Int("depth", depth), zap.Float64("value", num))
	*remainder += num
	return &Node{Kind: KindRemainder, Value: num}, 1
}
