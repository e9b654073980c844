// Package main hosts the registrar CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into IPC calls
// against the registrard daemon: catalog listings, resource creation and
// editing, keyword searches, and configuration scaffolding. It centralizes
// configuration resolution and socket discovery so subcommands can focus on
// presentation.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
