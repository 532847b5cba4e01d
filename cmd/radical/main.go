package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pkt.systems/radical"
)

const (
	progName       = "radical"
	prompt         = "Get root of number:"
	defaultLogLvl  = "warn"
	exitOK         = 0
	exitInputError = 1
	exitUsage      = 2
)

type cliOptions struct {
	noColor      bool
	palette      string
	noTree       bool
	legacyParity bool
	logLevel     string
}

func defaultCLIOptions() cliOptions {
	return cliOptions{logLevel: defaultLogLvl}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func newFlagSet(o *cliOptions, stdout io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.BoolVarP(&o.noColor, "NoColor", "n", o.noColor, "disable highlighting of resolved perfect squares")
	fs.StringVar(&o.palette, "palette", o.palette, "highlight palette ("+strings.Join(radical.PaletteNames(), ", ")+")")
	fs.BoolVar(&o.noTree, "no-tree", o.noTree, "print only the simplified form, not the factoring grid")
	fs.BoolVar(&o.legacyParity, "legacy-parity", o.legacyParity, "use the parity whole-number heuristic instead of a tolerance test")
	fs.StringVar(&o.logLevel, "log-level", o.logLevel, "log level written to stderr (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintf(stdout, "Usage: %s [flags]\n\nReads one number per line from stdin and prints its simplified square root.\n\n", progName)
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs never fails on bad flags: the error is printed to stdout and the
// defaults are used. help reports whether -h/--help was given.
func parseArgs(argv []string, stdout io.Writer) (o cliOptions, help bool) {
	o = defaultCLIOptions()
	fs := newFlagSet(&o, stdout)
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return o, true
		}
		fmt.Fprintln(stdout, err)
		return defaultCLIOptions(), false
	}
	return o, false
}

func newLogger(level string, stderr io.Writer) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(stderr),
		lvl,
	)
	return zap.New(core).Named(progName), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, help := parseArgs(argv, stdout)
	if help {
		return exitOK
	}

	logger, err := newLogger(o.logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	opts := *radical.DefaultOptions
	opts.NoColor = o.noColor
	opts.Palette = o.palette
	opts.NoTree = o.noTree
	opts.LegacyParity = o.legacyParity
	opts.Logger = logger
	if _, err := radical.ResolvePalette(&opts); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitUsage
	}

	interactive := isTerminal(stdin)
	sc := bufio.NewScanner(stdin)
	for {
		if interactive {
			fmt.Fprint(stdout, prompt)
		}
		if !sc.Scan() {
			break
		}
		num, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", progName, err)
			return exitInputError
		}
		res := radical.Factor(num, &opts)
		if err := radical.Fprint(stdout, res, &opts); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", progName, err)
			return exitInputError
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(stderr, "%s: read error: %v\n", progName, err)
		return exitInputError
	}
	return exitOK
}
