// Package commands defines the weekgrid CLI and wires dependencies for subcommands.
//
// Commands
//
//   - render       Render a schedule document (file or stdin) as a grid
//   - generate     Ask the model for a schedule and render it
//   - demo         Render the built-in sample schedules
//   - fingerprint  Print the short digest of a schedule's rendered grid
//
// # Implementation
//
// The root command loads configuration, applies flag overrides, and builds
// the app context (logger, render options, exporters) before any subcommand
// runs. Grids go to stdout and logs to stderr.
package commands
