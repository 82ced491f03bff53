package cmd

import (
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"simcl/build"
	"simcl/common"
	"simcl/logging"
	"simcl/mods"
)

// Execute runs the main `simcl` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("simcl", "simcl is a tool for managing SimCL simulation projects", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})

	buildCmd := cli.AddSubcommand("build", "compile a simulation module", true)
	buildCmd.AddPrimaryArg("module-path", "the path to the module to build", true)
	buildCmd.AddStringArg("profile", "p", "the name of the profile to build", false)

	checkCmd := cli.AddSubcommand("check", "parse and analyze a module without building", true)
	checkCmd.AddPrimaryArg("module-path", "the path to the module to check", true)
	checkCmd.AddStringArg("profile", "p", "the name of the profile to check with", false)

	modCmd := cli.AddSubcommand("mod", "manage modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddFlag("no-profiles", "np", "indicates whether simcl should generate default profiles for this module")
	modInitCmd.AddPrimaryArg("module-name", "the name of the new module", true)

	cli.AddSubcommand("version", "print the SimCL version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	// the log level argument is optional; the selected build profile supplies
	// one when it is absent
	loglevel, _ := result.Arguments["loglevel"].(string)

	// process the inputted command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, loglevel, false)
	case "check":
		execBuildCommand(subResult, loglevel, true)
	case "mod":
		execModCommand(subResult)
	case "version":
		logging.PrintInfoMessage("SimCL Version", common.SimCLVersion)
	}
}

// execBuildCommand executes the build and check subcommands and handles all
// of their errors
func execBuildCommand(result *olive.ArgParseResult, loglevel string, checkOnly bool) {
	// extract CLI data
	moduleRelPath, _ := result.PrimaryArg()

	modulePath, err := filepath.Abs(moduleRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	profArgVal, ok := result.Arguments["profile"]
	selectedProfile := ""
	if ok {
		selectedProfile = profArgVal.(string)
	}

	// attempt to load the module
	mod, profile, err := mods.LoadModule(modulePath, selectedProfile)
	if err != nil {
		logging.PrintErrorMessage("Module Load Error", err)
		return
	}

	// an explicit CLI log level wins over the profile's
	if loglevel == "" {
		loglevel = profile.LogLevel
	}

	// initialize the logger
	logging.Initialize(loglevel)

	// build the main project
	c := build.NewCompiler(mod, profile)
	if checkOnly {
		if _, ok := c.Analyze(); !ok {
			os.Exit(1)
		}
	} else if !c.Compile() {
		os.Exit(1)
	}
}

// execModCommand executes the `mod` subcommand and its subcommands.  It
// handles all errors related to this command
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()

	workDir, err := os.Getwd()
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	switch subcmdName {
	case "init":
		modNameValue, _ := subResult.PrimaryArg()
		if err := mods.InitModule(modNameValue, workDir, subResult.HasFlag("no-profiles")); err != nil {
			logging.PrintErrorMessage("Module Init Error", err)
		}
	}
}
