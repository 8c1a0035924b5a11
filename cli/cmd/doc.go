// Package cmd provides the init, eval, and repl subcommands of the radish
// command line interface.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the default configuration file (without extension).
	ConfigIdentifier = "config"

	// RCIdentifier is the kong variable identifier containing the default
	// path to the startup definitions file.
	RCIdentifier = "rc"
)
