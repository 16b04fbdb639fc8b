// Package form holds the state of one order form: the draft being edited,
// its current validation errors, the in-flight flag and the last outcome.
//
// A State has a single owner (the UI event loop or a one-shot command) and
// is not safe for concurrent use.
package form
