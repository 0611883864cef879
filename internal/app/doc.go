// Package app wires application dependencies for the CLI.
//
// It loads Config from defaults, an optional YAML file, a .env file and the
// environment, builds the zap logger, and assembles the render options,
// exporters and schedule generator exposed via the App struct.
package app
