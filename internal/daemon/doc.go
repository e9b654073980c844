// Package daemon owns the long-lived process state: the catalog store,
// the resource access modules built on it, and the single-instance lock.
// The IPC layer borrows module handles from here instead of opening its
// own store connections.
package daemon
