// Package app wires application dependencies for the CLI.
//
// It builds the order API client, the validator and the submitter from
// Config, exposing them via the Wire struct for commands to use.
package app
