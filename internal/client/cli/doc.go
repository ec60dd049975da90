// Package cli provides the interactive UniSwap command-line client.
//
// It wires configuration, local storage, the API services and the session
// store into a REPL that stands in for the marketplace views. Every command
// moves the navigation router to the matching route, so a rejected token
// anywhere lands the user back on /login. List views (items, conversations,
// message threads, wishlist) keep a per-user cached copy and fall back to it
// while the backend is unreachable.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, commands and runREPL for details.
package cli
