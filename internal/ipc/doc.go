// Package ipc carries the catalog access protocol between the registrar CLI
// and the registrard daemon: JSON-RPC over a unix domain socket, one method
// per (resource family, verb) pair.
//
// The server is the command router: it dispatches to the matching access
// module, projects stored records into transfer records (business fields plus
// the opaque id, never store internals), and shapes every mutation outcome
// into a {success, reason} pair. Raw store faults never cross the boundary.
// Each call is individually correlated by the RPC layer, so concurrent calls
// on the same method are safe, and every request runs under the configured
// deadline.
package ipc
