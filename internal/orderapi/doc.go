// Package orderapi provides an HTTP implementation of the domain.OrderClient
// interface.
//
// An order is placed with a single JSON POST to the configured endpoint. Any
// 2xx status with a JSON body is success; the body is returned undecoded.
// Non-2xx statuses are returned as errors carrying the method, URL and
// status text. Requests are never retried.
package orderapi
