package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkt.systems/radical/internal/ansi"
)

func runCLI(t *testing.T, args []string, input string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = run(args, strings.NewReader(input), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRunPrintsResultAndGrid(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, nil, "50\n")
	require.Equal(t, exitOK, code)
	assert.Empty(t, errOut)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "5.0 √2", lines[0])
	assert.Equal(t, ansi.Green+"5*  "+ansi.Reset+"    "+ansi.Reset+"    "+ansi.Reset, lines[3])
	assert.NotContains(t, out, prompt, "prompt is only shown on a terminal")
}

func TestRunNoColorShortAndLong(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"-n", "--NoColor"} {
		code, out, _ := runCLI(t, []string{flag}, "50\n")
		require.Equal(t, exitOK, code, flag)
		assert.NotContains(t, out, ansi.Green, flag)
		assert.Contains(t, out, ansi.Reset, "%s: reset still follows each cell", flag)
	}
}

func TestRunSeveralInputs(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, []string{"--no-tree"}, "8\n16\n 2 \n50")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "2.0 √2\n4.0 √0\n1 √2\n5.0 √2\n", out)
}

func TestRunInvalidFlagIsNotFatal(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, []string{"-n", "--bogus"}, "16\n")
	require.Equal(t, exitOK, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "unknown flag: --bogus")
	assert.Contains(t, out, "4.0 √0")
	assert.Contains(t, out, ansi.Green+"4*", "defaults restore colour after a flag error")
}

func TestRunInvalidNumberExits(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, []string{"--no-tree"}, "8\nnot-a-number\n16\n")
	assert.Equal(t, exitInputError, code)
	assert.Equal(t, "2.0 √2\n", out)
	assert.Contains(t, errOut, "radical: ")
	assert.Contains(t, errOut, "invalid syntax")
}

func TestRunEmptyInput(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, nil, "")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, []string{"--help"}, "16\n")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "Usage: radical")
	assert.Contains(t, out, "--NoColor")
	assert.NotContains(t, out, "4.0 √0")
}

func TestRunUnknownPalette(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, []string{"--palette", "nope"}, "16\n")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, `unknown palette "nope"`)
}

func TestRunBadLogLevel(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, []string{"--log-level", "loud"}, "16\n")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "log level")
}

func TestRunDebugLogging(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, []string{"--log-level", "debug", "--no-tree"}, "50\n")
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "square factor")
	assert.Contains(t, errOut, "factored")
}

func TestRunLegacyParity(t *testing.T) {
	t.Parallel()

	_, tolerant, _ := runCLI(t, []string{"--no-tree"}, "4.0000000004\n")
	_, legacy, _ := runCLI(t, []string{"--no-tree", "--legacy-parity"}, "4.0000000004\n")
	assert.Equal(t, "2.0 √0\n", tolerant)
	assert.Equal(t, "1 √4.0000000004\n", legacy)
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	o, help := parseArgs([]string{"-n", "--palette", "bold", "--no-tree", "--legacy-parity", "--log-level", "info"}, &out)
	require.False(t, help)
	assert.Equal(t, cliOptions{noColor: true, palette: "bold", noTree: true, legacyParity: true, logLevel: "info"}, o)
	assert.Empty(t, out.String())

	o, help = parseArgs([]string{"-x"}, &out)
	assert.False(t, help)
	assert.Equal(t, defaultCLIOptions(), o)
	assert.Contains(t, out.String(), "unknown shorthand flag")
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, isTerminal(strings.NewReader("")))

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f), "regular files are not terminals")
}
