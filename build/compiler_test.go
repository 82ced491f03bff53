package build_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"simcl/build"
	"simcl/logging"
	"simcl/mods"
)

// newTestModule writes the given source as the entry file of a throwaway
// module and returns the module and a silent build profile.  Silent logging
// also resets the shared error counters between tests.
func newTestModule(t *testing.T, src string) (*mods.Module, *mods.BuildProfile) {
	t.Helper()

	dir := t.TempDir()
	if err := ioutil.WriteFile(filepath.Join(dir, "main.simcl"), []byte(src), 0644); err != nil {
		t.Fatalf("unable to write entry file: %v", err)
	}

	logging.Initialize("silent")

	mod := &mods.Module{
		Name:       "testmod",
		ModuleRoot: dir,
		EntryFile:  "main.simcl",
	}
	prof := &mods.BuildProfile{Name: "test", LogLevel: "silent"}

	return mod, prof
}

func TestAnalyzeValidSource(t *testing.T) {
	mod, prof := newTestModule(t, `
let dt = 0.01
let steps = 100

function advance(state, step) {
	return state + step * dt
}

simulate {
	let state = 0
	let i = 0
	while i < steps {
		state = advance(state, i)
		i = i + 1
	}
}
`)

	prog, ok := build.NewCompiler(mod, prof).Analyze()
	if !ok {
		t.Fatal("expected analysis to succeed")
	}
	if prog == nil {
		t.Fatal("expected a program AST")
	}

	if len(prog.Stmts) != 4 {
		t.Errorf("expected 4 top-level statements, got %d", len(prog.Stmts))
	}
}

func TestAnalyzeParseError(t *testing.T) {
	mod, prof := newTestModule(t, "let = 5")

	prog, ok := build.NewCompiler(mod, prof).Analyze()
	if ok {
		t.Fatal("expected analysis to fail")
	}
	if prog != nil {
		t.Fatal("expected no AST on a failed parse")
	}

	if logging.ShouldProceed() {
		t.Error("expected the logged parse error to block later stages")
	}
}

func TestAnalyzeMissingEntryFile(t *testing.T) {
	mod, prof := newTestModule(t, "let x = 1")
	mod.EntryFile = "absent.simcl"

	if _, ok := build.NewCompiler(mod, prof).Analyze(); ok {
		t.Fatal("expected analysis to fail for a missing entry file")
	}
}

func TestCompile(t *testing.T) {
	mod, prof := newTestModule(t, "simulate { let x = 1 }")

	if !build.NewCompiler(mod, prof).Compile() {
		t.Error("expected compilation to succeed")
	}
}
