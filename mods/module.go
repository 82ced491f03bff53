package mods

// Module represents a SimCL project module -- specifically, the project
// configuration loaded from its `simcl-mod.toml` file.
type Module struct {
	// ID is a numeric ID generated from the module root path
	ID uint

	// Name is the name of the module
	Name string

	// ModuleRoot is the path to the root directory of the module
	ModuleRoot string

	// EntryFile is the path to the source file compilation starts from,
	// relative to the module root
	EntryFile string

	// Version is the SimCL version the module file was written for
	Version string
}

// BuildProfile represents the profile the compiler will use to build -- it is
// selected from the module file by `LoadModule`.
type BuildProfile struct {
	// Name identifies the profile within the module file
	Name string

	// LogLevel is one of silent, error, warn, verbose
	LogLevel string

	// Debug indicates whether the simulation should be compiled with debug
	// information once the later stages exist
	Debug bool
}

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (module name, symbol name, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
