// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request guards validate path parameters and bodies and place the
// validated values on the request context before handlers run. Every failure,
// whether raised by a guard, a handler, the router itself or a recovered
// panic, is written by one terminal error handler so that clients always see
// the same error body.
package http
