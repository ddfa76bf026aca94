// Package plistfile loads and saves property list documents in the XML and
// binary variants. Documents are decoded into generic values so every key the
// tool does not touch survives a load/save cycle unchanged.
package plistfile
