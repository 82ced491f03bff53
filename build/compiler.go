package build

import (
	"io/ioutil"
	"path/filepath"

	"simcl/logging"
	"simcl/mods"
	"simcl/syntax"
	"simcl/walk"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of one compilation of a SimCL module
type Compiler struct {
	// rootMod is the module of the project being built
	rootMod *mods.Module

	// profile is the build profile being used to build the project
	profile *mods.BuildProfile
}

// NewCompiler creates a new compiler for a given root module and build
// profile.  Each compilation owns its lexer, parser, AST, and symbol-table
// chain exclusively; nothing is shared between runs.
func NewCompiler(rootMod *mods.Module, profile *mods.BuildProfile) *Compiler {
	return &Compiler{
		rootMod: rootMod,
		profile: profile,
	}
}

// Compile runs the full compilation algorithm on the root module.  It handles
// all compilation errors appropriately and returns whether the build
// succeeded.
func (c *Compiler) Compile() bool {
	_, ok := c.Analyze()

	// the later stages (IR, optimizer, code generator, VM) attach here once
	// they exist; the front end hands them the AST and symbol information

	logging.FinishCompilation()
	return ok
}

// Analyze runs just the front-end portion of the compilation algorithm:
// lexing, parsing, and the semantic pass.  It is exported for usage by
// embedding contexts (tests, editors, IDEs).  It returns the program AST and
// a boolean indicating whether analysis was successful.
func (c *Compiler) Analyze() (*syntax.Program, bool) {
	srcPath := filepath.Join(c.rootMod.ModuleRoot, c.rootMod.EntryFile)

	buff, err := ioutil.ReadFile(srcPath)
	if err != nil {
		logging.LogConfigError("File", "error opening entry file: "+err.Error())
		return nil, false
	}

	logging.BeginPhase("Parsing")

	p := syntax.NewParser(syntax.NewLexer(string(buff)))
	prog, err := p.Parse()
	if err != nil {
		// the parse error display also fails the phase spinner
		logging.LogParseError(err)
		return nil, false
	}

	logging.EndPhase(true)
	logging.BeginPhase("Analyzing")

	w := walk.NewWalker()
	w.Walk(prog)

	logging.EndPhase(true)

	return prog, logging.ShouldProceed()
}
