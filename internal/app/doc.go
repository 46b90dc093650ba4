// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the read, expand, write lifecycle over the
// target files, decoupled from any specific entrypoint like a CLI.
package app
