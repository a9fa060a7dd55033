// Package constant defines application-level identifiers.
package constant

const (
	// App names the config file, env prefix and data directories.
	App = "streamsift"

	Version = "0.1.0"

	UserAgent = "streamsift/" + Version
)

// Build metadata, set with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
