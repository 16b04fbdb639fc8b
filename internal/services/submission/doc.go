// Package submission sends validated orders and turns the result into the
// message shown to the user.
//
// Each call makes exactly one request. Any failure (network, non-2xx status,
// unreadable response) collapses into the same generic failure message; the
// cause is kept on the returned error and logged.
package submission
