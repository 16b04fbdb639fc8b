// Package validation evaluates the order rules against a draft.
//
// The rules are fixed: the trimmed full name must be 3 to 20 characters and
// the size must be S, M or L. Toppings are not checked. Every field is
// checked on every call and all failures are reported together. Only the
// messages are configurable.
package validation
