// Package http implements the HTTP transport layer of the team-lock server.
//
// It wires chi routes for accounts and team security, and the middleware
// chain that runs before handlers: panic recovery, trace ids, access
// logging, gzip and bearer authentication.
package http
