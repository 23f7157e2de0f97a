package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skibidi/interpreter-go/pkg/interpreter"
	"skibidi/interpreter-go/pkg/runtime"
)

const countProgram = `{
  "type": "Program",
  "name": "count",
  "body": [
    {
      "type": "ForStatement",
      "init": {"type": "Assignment", "target": "i", "value": {"type": "Number", "value": 0}},
      "condition": {"type": "BinaryOperation", "operator": "<", "left": {"type": "Identifier", "name": "i"}, "right": {"type": "Number", "value": 3}},
      "increment": {"type": "Assignment", "target": "i", "value": {"type": "BinaryOperation", "operator": "+", "left": {"type": "Identifier", "name": "i"}, "right": {"type": "Number", "value": 1}}},
      "body": [{"type": "PrintStatement", "argument": {"type": "Identifier", "name": "i"}}]
    }
  ]
}`

const undefinedProgram = `
type: Program
name: broken
body:
  - {type: PrintStatement, argument: {type: Number, value: 1}}
  - {type: PrintStatement, argument: {type: Identifier, name: z, span: {line: 3, column: 9}}}
  - {type: PrintStatement, argument: {type: Number, value: 2}}
`

const overflowProgram = `
type: Program
name: overflow
body:
  - {type: Assignment, target: a, value: {type: Number, value: 1}}
  - {type: PrintStatement, argument: {type: Assignment, target: b, value: {type: Number, value: 5}}}
`

const stringMathProgram = `
type: Program
name: strings
body:
  - {type: PrintStatement, argument: {type: BinaryOperation, operator: "+", left: {type: StringLiteral, value: hi}, right: {type: Number, value: 2}}}
  - {type: PrintStatement, argument: {type: Number, value: 7}}
`

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

// programDir isolates config discovery from whatever sits above the temp dir.
func programDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SKIBIDI_CONFIG", "")
	writeFile(t, filepath.Join(dir, "skibidi.yml"), "log_level: warning\ncolor: never\n")
	return dir
}

func captureCLI(t *testing.T, args []string) (int, string, string) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	require.NoError(t, err)
	rErr, wErr, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = wOut
	os.Stderr = wErr

	code := run(args)

	require.NoError(t, wOut.Close())
	require.NoError(t, wErr.Close())

	os.Stdout = stdout
	os.Stderr = stderr

	outBytes, err := io.ReadAll(rOut)
	require.NoError(t, err)
	errBytes, err := io.ReadAll(rErr)
	require.NoError(t, err)
	require.NoError(t, rOut.Close())
	require.NoError(t, rErr.Close())

	return code, string(outBytes), string(errBytes)
}

func TestRunProgramFile(t *testing.T) {
	dir := programDir(t)
	path := filepath.Join(dir, "count.json")
	writeFile(t, path, countProgram)

	code, stdout, stderr := captureCLI(t, []string{"run", path})
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Equal(t, "0\n1\n2\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunIsTheDefaultCommand(t *testing.T) {
	dir := programDir(t)
	path := filepath.Join(dir, "count.json")
	writeFile(t, path, countProgram)

	code, stdout, _ := captureCLI(t, []string{path})
	require.Equal(t, 0, code)
	assert.Equal(t, "0\n1\n2\n", stdout)

	code, stdout, _ = captureCLI(t, []string{"--capacity", "4", path})
	require.Equal(t, 0, code)
	assert.Equal(t, "0\n1\n2\n", stdout)
}

func TestRunUndefinedVariableExitsWithDiagnostic(t *testing.T) {
	dir := programDir(t)
	path := filepath.Join(dir, "broken.yml")
	writeFile(t, path, undefinedProgram)

	code, stdout, stderr := captureCLI(t, []string{"run", "--color", "never", path})
	assert.Equal(t, 1, code)
	assert.Equal(t, "1\n", stdout)
	assert.Equal(t, "Error: Undefined variable 'z' at line 3\n", stderr)
}

func TestRunOverflowWarnsAndContinues(t *testing.T) {
	dir := programDir(t)
	path := filepath.Join(dir, "overflow.yml")
	writeFile(t, path, overflowProgram)

	code, stdout, stderr := captureCLI(t, []string{"run", "--capacity", "1", "--dump-symbols", path})
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Equal(t, "5\n", stdout)
	assert.Contains(t, stderr, "Warning: cannot store 'b': symbol table full (capacity 1)")
	assert.Contains(t, stderr, "capacity")
	assert.Contains(t, stderr, "| a ")

	code, _, stderr = captureCLI(t, []string{"run", "--capacity", "1", "--strict", path})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: cannot store 'b'")
}

func TestRunRecoveryPolicyFromConfig(t *testing.T) {
	dir := programDir(t)
	path := filepath.Join(dir, "strings.yml")
	writeFile(t, path, stringMathProgram)

	code, stdout, stderr := captureCLI(t, []string{"run", path})
	require.Equal(t, 0, code)
	assert.Equal(t, "2\n7\n", stdout)
	assert.Equal(t, "Error: Cannot evaluate a string literal as an integer\n", stderr)

	writeFile(t, filepath.Join(dir, "skibidi.yml"), "recovery: strict\n")
	code, stdout, _ = captureCLI(t, []string{"run", path})
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
}

func TestRunRejectsInvalidFlags(t *testing.T) {
	dir := programDir(t)
	path := filepath.Join(dir, "count.json")
	writeFile(t, path, countProgram)

	code, stdout, stderr := captureCLI(t, []string{"run", "--switch", "sideways", path})
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `switch "sideways" must be faithful or conventional`)
}

func TestRunMissingProgram(t *testing.T) {
	code, _, stderr := captureCLI(t, []string{"run"})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "run requires a program document")
}

func TestCheckCommand(t *testing.T) {
	dir := programDir(t)
	good := filepath.Join(dir, "count.json")
	writeFile(t, good, countProgram)
	code, stdout, _ := captureCLI(t, []string{"check", good})
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "ok")

	bad := filepath.Join(dir, "bad.yml")
	writeFile(t, bad, "type: Program\nbody:\n  - {type: BreakStatement, span: {line: 2}}\n")
	code, _, stderr := captureCLI(t, []string{"check", bad})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "break outside switch (line 2)")
}

func TestDumpCommand(t *testing.T) {
	dir := programDir(t)
	path := filepath.Join(dir, "count.json")
	writeFile(t, path, countProgram)
	code, stdout, _ := captureCLI(t, []string{"dump", path})
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "ast.Program")
	assert.Contains(t, stdout, "ast.ForStatement")
	assert.Contains(t, stdout, `"count"`)
}

func TestVersionAndUsage(t *testing.T) {
	code, stdout, _ := captureCLI(t, []string{"version"})
	assert.Equal(t, 0, code)
	assert.Equal(t, cliToolVersion+"\n", stdout)

	code, stdout, _ = captureCLI(t, []string{"--version"})
	assert.Equal(t, 0, code)
	assert.Equal(t, cliToolVersion+"\n", stdout)

	code, _, stderr := captureCLI(t, nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "usage:")
}

func TestRenderSymbolsTable(t *testing.T) {
	symbols := runtime.NewSymbolTable(0)
	require.NoError(t, symbols.Set("x", 3))
	require.NoError(t, symbols.Set("y", -1))
	var buf bytes.Buffer
	renderSymbols(&buf, symbols)
	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "unbounded")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("x")), bytes.Index(buf.Bytes(), []byte("y ")))
}

func TestReporterColorModes(t *testing.T) {
	var plain bytes.Buffer
	newReporter(&plain, "never").Report(interpreter.Diagnostic{Severity: interpreter.SeverityError, Message: "boom"})
	assert.Equal(t, "Error: boom\n", plain.String())

	var colored bytes.Buffer
	newReporter(&colored, "always").Report(interpreter.Diagnostic{Severity: interpreter.SeverityWarning, Message: "careful"})
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "Warning: careful")
}

func TestReporterAutoModeSkipsColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	newReporter(&buf, "auto").Report(interpreter.Diagnostic{Severity: interpreter.SeverityError, Message: "boom"})
	assert.Equal(t, "Error: boom\n", buf.String())

	r, w, err := os.Pipe()
	require.NoError(t, err)
	newReporter(w, "auto").Report(interpreter.Diagnostic{Severity: interpreter.SeverityWarning, Message: "careful"})
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.NotContains(t, string(out), "\x1b[")
	assert.Equal(t, "Warning: careful\n", string(out))
}
