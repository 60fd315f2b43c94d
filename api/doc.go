// Package api provides the HTTP surface of the time-convert service.
//
// It is a thin layer over the core parse and timezone services: requests
// carry a raw time expression and an optional source zone specifier, and
// responses carry the parsed instant rendered in every configured display
// zone. Routing is built on chi with CORS, request logging and per-IP
// rate limiting middleware.
package api
