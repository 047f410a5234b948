package version

// Version is set at build time via -ldflags.
var Version = "dev"

// Full returns the display form used by --version.
func Full() string {
	return "cardflow " + Version
}
