// Package commands implements CLI command handlers for cf-ip-updater.
//
// Each command implements the Runner interface:
//   - Init(): parse arguments, load and validate configuration
//   - Run(): execute the command
//   - Name(): return command name for routing
//
// # Available Commands
//
//   - update: download the IP list and update all targets (under the PID lock)
//   - check: report which targets an update would change, without writing
//   - print: print the rendered IP list to stdout
//   - config: print the effective configuration
//   - version: print build information
//
// Commands are thin wrappers around the updater engine.
package commands
