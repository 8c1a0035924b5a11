// Package cli contains the command line interface for radish.
//
// # Usage
//
// Running radish with no command starts the interactive calculator:
//
//	radish
//	radish --log-level=debug --log-format=text
//
// One-shot evaluation prints each result and exits:
//
//	radish eval "0xff + 0b10 / 10"
//	radish eval --output json "map([1, 2, 3], |x| x ** 2)"
//
// # Startup Definitions
//
// Variables and functions that should exist in every session can be placed
// in the startup definitions file, one expression per line (lines starting
// with # are comments). The file lives in the user configuration directory
// by default; --rc overrides the path and --no-rc skips it entirely. Use the
// init command to scaffold it:
//
//	radish init
//
// # Configuration
//
// Default flag values are read from a JSON configuration file in the user
// configuration directory. Command-line flags override configured values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
