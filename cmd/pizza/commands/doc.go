// Package commands defines the pizza CLI and wires dependencies for subcommands.
//
// Commands
//
//   - form      Fill in and submit the order form interactively
//   - order     Validate and submit one order from flags
//   - toppings  List the topping catalog
//
// # Implementation
//
// The root command loads the configuration, builds the logger and the
// dependency graph (validator, order API client, submitter) before any
// subcommand runs. The form command gets a logger that never writes to the
// terminal it draws on.
package commands
