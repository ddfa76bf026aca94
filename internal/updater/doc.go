// Package updater rewrites the version keys of a property list file.
//
// UpdateVersion is a single linear transaction: load the document, set the
// build version and display version keys, write the document back to the same
// path. Every failure along the way is reported as one OperationFailed value
// on the returned Result; callers only need to distinguish success from
// failure.
package updater
