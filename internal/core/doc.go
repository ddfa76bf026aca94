// Package core holds the small abstractions shared by the rest of the tool:
// a context-aware FileSystem with an OS-backed and an in-memory implementation,
// and the file permission constants used when writing.
package core
