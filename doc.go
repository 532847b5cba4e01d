// Package radical simplifies square roots into radical form c√r by factoring
// out perfect squares from a bounded table (2² through 30² by default), and
// renders the recursive factoring steps as an aligned text grid with optional
// ANSI highlighting of the resolved perfect-square leaves.
//
// Arithmetic is plain float64. Whether a value counts as a whole number is
// decided by a tolerance test; Options.LegacyParity switches to the parity
// heuristic of the original tool.
//
// Basic usage:
//
//	res := radical.Factor(50, nil)
//	fmt.Println(res) // 5.0 √2
//
// Printing the factoring grid:
//
//	opts := *radical.DefaultOptions
//	opts.NoColor = true
//	if err := radical.Fprint(os.Stdout, radical.Factor(50, &opts), &opts); err != nil {
//		log.Fatal(err)
//	}
//
// Square factors larger than the last tabulated square are never recognised,
// so 1922 (31²·2) is reported as 1 √1922.
package radical
