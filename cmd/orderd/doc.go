// Package main runs the HTTP order endpoint used by the pizza client during
// development and tests. It validates incoming orders with the same rules as
// the form and acknowledges them; nothing is stored.
//
// HTTP API
//
//	POST /api/order { "fullName": ..., "size": "S"|"M"|"L", "toppings": [...] }
//	    201 with { id, message, order, placed_at } for a valid order.
//	    422 with { message, errors: {field: text} } for an invalid one.
//	    400 for a body that is not JSON; 429 when over the rate limit.
//
//	GET /api/toppings
//	    Return the topping catalog.
//
//	GET /health
//	    Return "ok".
//
// Behaviour
//
//   - Every request is logged with method, path, remote, status, bytes,
//     duration and request id.
//   - The default listen address is :9009, matching the client's default
//     endpoint.
//   - SIGINT or SIGTERM drains in-flight requests before exit.
package main
