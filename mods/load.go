package mods

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"

	"simcl/common"
	"simcl/logging"
)

// tomlModuleFile represents the module file as it is encoded in TOML
type tomlModuleFile struct {
	Module *tomlModule `toml:"module"`
}

// tomlModule represents a SimCL module as it is encoded in TOML
type tomlModule struct {
	Name          string         `toml:"name"`
	EntryFile     string         `toml:"entry"`
	Version       string         `toml:"simcl-version,omitempty"`
	BuildProfiles []*tomlProfile `toml:"profiles"`
}

// tomlProfile represents a profile as it is encoded in TOML
type tomlProfile struct {
	Name        string `toml:"name"`
	LogLevel    string `toml:"log-level,omitempty"`
	Debug       bool   `toml:"debug"`
	Primary     bool   `toml:"primary"` // of several profiles, choose this one
	DefaultProf bool   `toml:"default"` // in absence of a --profile argument, choose this one
}

// LoadModule loads and validates a module as well as determining the correct
// build profile.  `path` is the path to the module directory.
// `selectedProfile` can be empty if no profile was selected on the command
// line.  This function returns the deserialized module, the selected profile,
// and an error value.
func LoadModule(path, selectedProfile string) (*Module, *BuildProfile, error) {
	// open file
	f, err := os.Open(filepath.Join(path, common.ModuleFileName))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	// unmarshal the contents
	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, nil, err
	}

	if tmf.Module == nil {
		return nil, nil, fmt.Errorf("missing [module] table in module file at %s", path)
	}

	// mod is the final, extracted module that is returned
	mod := &Module{
		// module root is the directory enclosing the module file
		ModuleRoot: path,
		ID:         common.GenerateIDFromPath(path),
	}

	// ensure that the base module is valid
	if err := validateModule(mod, tmf.Module); err != nil {
		return nil, nil, err
	}

	// select and validate an appropriate build profile
	prof, err := selectProfile(tmf.Module, selectedProfile)
	if err != nil {
		return nil, nil, err
	}

	// move all the relevant TOML module attributes over to the SimCL module
	mod.Name = tmf.Module.Name
	mod.EntryFile = tmf.Module.EntryFile
	mod.Version = tmf.Module.Version

	return mod, prof, nil
}

// validateModule checks that the top level module contents are valid
func validateModule(mod *Module, tmod *tomlModule) error {
	if tmod.Name == "" {
		return fmt.Errorf("missing module name for module at %s", mod.ModuleRoot)
	}

	if !IsValidIdentifier(tmod.Name) {
		return errors.New("module name must be a valid identifier")
	}

	if tmod.EntryFile == "" {
		return fmt.Errorf("module `%s` does not specify an entry file", tmod.Name)
	}

	if !strings.HasSuffix(tmod.EntryFile, common.SrcFileExtension) {
		return fmt.Errorf("entry file of module `%s` must be a `%s` file", tmod.Name, common.SrcFileExtension)
	}

	if tmod.Version != "" && tmod.Version != common.SimCLVersion {
		logging.PrintWarningMessage(
			"Module Warning",
			fmt.Sprintf("version of module `%s` (v%s) does not match current simcl version (v%s)", tmod.Name, tmod.Version, common.SimCLVersion),
		)
	}

	return nil
}

// selectProfile attempts to select a build profile based on the selected
// profile name if one exists and validates it.  Modules with no profiles get
// an implicit default.
func selectProfile(tmod *tomlModule, selectedProfile string) (*BuildProfile, error) {
	if selectedProfile != "" {
		for _, prof := range tmod.BuildProfiles {
			if prof.Name == selectedProfile {
				return convertProfile(prof)
			}
		}

		return nil, fmt.Errorf("module `%s` has no profile `%s`", tmod.Name, selectedProfile)
	}

	// profiles are optional: a module without any builds with the defaults
	if len(tmod.BuildProfiles) == 0 {
		return &BuildProfile{Name: "default", LogLevel: "verbose"}, nil
	}

	// a profile marked default wins, then a primary one, then the first
	for _, prof := range tmod.BuildProfiles {
		if prof.DefaultProf {
			return convertProfile(prof)
		}
	}

	for _, prof := range tmod.BuildProfiles {
		if prof.Primary {
			return convertProfile(prof)
		}
	}

	return convertProfile(tmod.BuildProfiles[0])
}

// logLevelNames is the set of valid profile log level strings
var logLevelNames = map[string]struct{}{
	"silent":  {},
	"error":   {},
	"warn":    {},
	"verbose": {},
}

// convertProfile converts a TOML profile into a validated BuildProfile
func convertProfile(prof *tomlProfile) (*BuildProfile, error) {
	if prof.Name == "" {
		return nil, errors.New("build profiles must be named")
	}

	logLevel := prof.LogLevel
	if logLevel == "" {
		logLevel = "verbose"
	} else if _, ok := logLevelNames[logLevel]; !ok {
		return nil, fmt.Errorf("profile `%s` has invalid log level `%s`", prof.Name, prof.LogLevel)
	}

	return &BuildProfile{
		Name:     prof.Name,
		LogLevel: logLevel,
		Debug:    prof.Debug,
	}, nil
}
