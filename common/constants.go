package common

const (
	SrcFileExtension = ".simcl"
	ModuleFileName   = "simcl-mod.toml"
	SimCLVersion     = "0.1.0"
)
