package buildinfo

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Commit is stamped at build time via -ldflags.
var Commit = "unknown"

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
