// Package constants defines common constants used across clideps
package constants

// Operating systems, as reported by runtime.GOOS
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// Command interpreters used to run version probes
const (
	ShellSh      = "sh"
	ShellShFlag  = "-c"
	ShellCmd     = "cmd"
	ShellCmdFlag = "/C"
)

// Environment variables
const (
	EnvRoot            = "CLIDEPS_ROOT"
	EnvPath            = "PATH"
	EnvLdLibraryPath   = "LD_LIBRARY_PATH"
	EnvDyldLibraryPath = "DYLD_LIBRARY_PATH"
)
