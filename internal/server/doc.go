// Package server runs the HTTP transport of the users/posts API.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by a timeout.
package server
