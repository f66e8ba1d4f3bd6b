// Package console is the terminal front end of the engine: a Renderer that
// prints observations as they happen, a summary table, and an interactive
// Session that maps typed commands onto the engine's control protocol.
package console
