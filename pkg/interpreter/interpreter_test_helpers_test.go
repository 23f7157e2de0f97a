package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"skibidi/interpreter-go/pkg/ast"
)

type testRun struct {
	interp *Interpreter
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestRun(mutators ...func(*Options)) *testRun {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	opts := DefaultOptions()
	opts.Stdout = stdout
	opts.Stderr = stderr
	for _, mutate := range mutators {
		mutate(&opts)
	}
	return &testRun{interp: New(opts), stdout: stdout, stderr: stderr}
}

func (r *testRun) run(t *testing.T, root ast.Node) error {
	t.Helper()
	return r.interp.Run(root)
}

func (r *testRun) mustRun(t *testing.T, root ast.Node) {
	t.Helper()
	if err := r.interp.Run(root); err != nil {
		t.Fatalf("unexpected error: %v (stderr %q)", err, r.stderr.String())
	}
}

func lines(values ...string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.Join(values, "\n") + "\n"
}

func expectOutput(t *testing.T, label, got, want string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", label, diff)
	}
}

func expectVar(t *testing.T, interp *Interpreter, name string, want int64) {
	t.Helper()
	got, err := interp.Symbols().Get(name)
	if err != nil {
		t.Fatalf("expected %s to be bound: %v", name, err)
	}
	if got != want {
		t.Fatalf("expected %s == %d, got %d", name, want, got)
	}
}

func strict(opts *Options) { opts.Recovery = Escalate }

func conventional(opts *Options) { opts.Switch = SwitchConventional }

func capacity(n int) func(*Options) {
	return func(opts *Options) { opts.SymbolCapacity = n }
}
